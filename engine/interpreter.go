// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"fmt"

	"github.com/ovswitchdp/actionengine/actions"
	"github.com/ovswitchdp/actionengine/deferred"
	"github.com/ovswitchdp/actionengine/editors"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// Execute is the engine's sole public entry point (spec.md section 6/8):
// it runs actionList against packet, guarding against runaway recursion
// and, if this is the outermost call on this Executor, draining the
// deferred FIFO to completion afterward.
func (e *Executor) Execute(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, actionList actions.List) error {
	if e.level >= maxDepth {
		e.warnf("engine: packet loop detected at depth %d", e.level)
		return ErrLoop
	}

	outermost := e.level == 0
	e.level++
	err := e.runList(dp, packet, key, actionList)
	if outermost {
		e.drain(dp)
	}
	e.level--
	return err
}

// drain repeatedly pops the deferred FIFO until empty, running the
// interpreter on entries that carry an action list and re-entering
// classification for recirculation entries. Only the outermost Execute
// call on an Executor drains, per spec.md section 4.7; entries enqueued
// during drain are honored before drain terminates, since Pop/Push share
// the same Queue.
func (e *Executor) drain(dp uint32) {
	for e.queue.Len() > 0 {
		entry, ok := e.queue.Pop()
		if !ok {
			break
		}

		key := entry.Key
		var err error
		if entry.Actions != nil {
			err = e.runList(dp, entry.Packet, &key, *entry.Actions)
		} else if e.classifier != nil {
			err = e.classifier.ClassifyAndProcess(entry.Packet, &key)
		}
		// Deferred-execution errors do not propagate to the original
		// Execute caller; spec.md section 9 documents this as an
		// acknowledged limitation. WithDeferredErrorSink opts in to
		// observing them without changing that primary-error contract.
		e.deferredError(err)
	}
}

// runList walks one action list in order, implementing the pending-output
// optimization and dispatching every recognized tag, per spec.md section
// 4.6.
func (e *Executor) runList(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, list actions.List) error {
	prevPort := int64(-1)

	for i, a := range list {
		switch a.Tag {
		case actions.TagOutput:
			port, err := a.Output()
			if err != nil {
				return err
			}
			if prevPort == -1 {
				prevPort = int64(port)
				continue
			}
			clone := packet.Clone()
			if err := e.vports.Send(uint32(prevPort), clone); err != nil {
				return err
			}
			prevPort = int64(port)

		case actions.TagUserspace:
			if err := e.doUserspace(dp, packet, key, a); err != nil {
				return err
			}

		case actions.TagHash:
			if err := e.doHash(packet, key, a); err != nil {
				return err
			}

		case actions.TagPushVlan:
			p, err := a.PushVLAN()
			if err != nil {
				return err
			}
			if err := editors.PushVLAN(packet, key, p.TPID, p.TCI); err != nil {
				return err
			}

		case actions.TagPopVlan:
			if err := editors.PopVLAN(packet, key); err != nil {
				return err
			}

		case actions.TagPushMpls:
			p, err := a.PushMPLS()
			if err != nil {
				return err
			}
			if err := editors.PushMPLS(packet, key, pbuf.EtherType(p.Ethertype)); err != nil {
				return err
			}
			if err := editors.SetMPLS(packet, key, p.LSE, 0xffffffff); err != nil {
				return err
			}

		case actions.TagPopMpls:
			replacement, err := a.PopMPLS()
			if err != nil {
				return err
			}
			if err := editors.PopMPLS(packet, key, pbuf.EtherType(replacement)); err != nil {
				return err
			}

		case actions.TagSet:
			if err := doSet(packet, key, a); err != nil {
				return err
			}

		case actions.TagSample:
			e.doSample(dp, packet, key, a)

		case actions.TagRecirc:
			isLast := i == len(list)-1
			if done, err := e.doRecirc(packet, key, a, isLast); err != nil {
				return err
			} else if done {
				return nil
			}

		default:
			// Unrecognized tags are a control-plane validation failure and
			// are expected to be rejected before an action list ever
			// reaches the engine; skip defensively rather than abort.
		}
	}

	if prevPort != -1 {
		if err := e.vports.Send(uint32(prevPort), packet); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) doUserspace(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, a actions.Action) error {
	up, err := a.Userspace()
	if err != nil {
		return err
	}

	info := UpcallInfo{PID: up.PID, Userdata: up.Userdata}
	if up.HasEgressTunnel && e.vports != nil {
		ti, err := e.vports.EgressTunnelInfo(up.EgressTunPort, packet)
		if err != nil {
			return err
		}
		info.HasEgressTunnel = true
		info.EgressTunnel = ti
	}

	return e.upcaller.Upcall(dp, packet, key, info)
}

func (e *Executor) doHash(packet *pbuf.Buffer, key *flowkey.Key, a actions.Action) error {
	params, err := a.Hash()
	if err != nil {
		return err
	}

	h := l4Hash(key)
	combined := (h ^ params.Basis) * 2654435761
	combined ^= combined >> 15
	if combined == 0 {
		combined = 1
	}

	key.OVSFlowHash = combined
	packet.SetHash(combined)
	return nil
}

// l4Hash stands in for the platform's NIC/softirq L4 hash: a deterministic
// FNV-1a-style mix over the transport 4-tuple and protocol, since no real
// hardware RSS hash is available in a software-only implementation.
func l4Hash(key *flowkey.Key) uint32 {
	h := uint32(2166136261)
	mix := func(v uint32) { h = (h ^ v) * 16777619 }

	mix(be32(key.IPv4.Src[:]))
	mix(be32(key.IPv4.Dst[:]))
	mix(uint32(key.TP.Src)<<16 | uint32(key.TP.Dst))
	mix(uint32(key.IP.Proto))
	return h
}

func be32(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func (e *Executor) doSample(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, a actions.Action) {
	params, err := a.Sample()
	if err != nil {
		e.warnf("engine: sample: %v", err)
		return
	}
	if e.rnd.Uint32() >= params.Probability {
		return
	}

	if fastPathUserspace, ok := sampleFastPath(params.Actions); ok {
		if err := e.doUserspace(dp, packet, key, fastPathUserspace); err != nil {
			e.warnf("engine: sample userspace fast path: %v", err)
		}
		return
	}

	clone := packet.Clone()
	actionsCopy := params.Actions
	keySnapshot := key.Clone()
	if err := e.queue.Push(deferred.Entry{Packet: clone, Key: keySnapshot, Actions: &actionsCopy}); err != nil {
		e.warnf("engine: deferred queue full, dropping sample: %v", err)
	}
}

// sampleFastPath reports whether list is exactly one USERSPACE action
// spanning the whole list, per spec.md section 4.6/9: when true, the
// interpreter executes it directly against the live packet instead of
// cloning and deferring.
func sampleFastPath(list actions.List) (actions.Action, bool) {
	if len(list) == 1 && list[0].Tag == actions.TagUserspace {
		return list[0], true
	}
	return actions.Action{}, false
}

// doRecirc handles one RECIRC action. The bool return reports whether the
// interpreter must stop processing the outer list immediately (true only
// when this was the last action, per spec.md section 4.6).
func (e *Executor) doRecirc(packet *pbuf.Buffer, key *flowkey.Key, a actions.Action, isLast bool) (bool, error) {
	recircID, err := a.Recirc()
	if err != nil {
		return false, err
	}

	if !key.Valid() && e.keyUpdater != nil {
		if err := e.keyUpdater.UpdateKey(packet, key); err != nil {
			return false, fmt.Errorf("engine: recirc: update key: %w", err)
		}
	}

	target := packet
	if !isLast {
		target = packet.Clone()
	}

	keySnapshot := key.Clone()
	keySnapshot.RecircID = recircID

	if err := e.queue.Push(deferred.Entry{Packet: target, Key: keySnapshot}); err != nil {
		e.warnf("engine: deferred queue full, dropping recirc: %v", err)
	}

	return isLast, nil
}
