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

package actions

import (
	"encoding/binary"
	"fmt"

	"github.com/mdlayher/netlink"

	"github.com/ovswitchdp/actionengine/internal/ovsh"
)

// Output decodes an OUTPUT action's payload: the vport to send the packet
// out of.
func (a Action) Output() (uint32, error) {
	if len(a.Data) != 4 {
		return 0, fmt.Errorf("actions: output: want 4 bytes, got %d", len(a.Data))
	}
	return binary.LittleEndian.Uint32(a.Data), nil
}

// BuildOutput constructs an OUTPUT action targeting vport.
func BuildOutput(vport uint32) Action {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, vport)
	return Action{Tag: TagOutput, Data: b}
}

// Recirc decodes a RECIRC action's payload: the recirculation ID.
func (a Action) Recirc() (uint32, error) {
	if len(a.Data) != 4 {
		return 0, fmt.Errorf("actions: recirc: want 4 bytes, got %d", len(a.Data))
	}
	return binary.LittleEndian.Uint32(a.Data), nil
}

// BuildRecirc constructs a RECIRC action.
func BuildRecirc(id uint32) Action {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, id)
	return Action{Tag: TagRecirc, Data: b}
}

// Hash decodes a HASH action's payload: algorithm and basis.
type HashParams struct {
	Algorithm uint32
	Basis     uint32
}

func (a Action) Hash() (HashParams, error) {
	if len(a.Data) != 8 {
		return HashParams{}, fmt.Errorf("actions: hash: want 8 bytes, got %d", len(a.Data))
	}
	return HashParams{
		Algorithm: binary.LittleEndian.Uint32(a.Data[0:4]),
		Basis:     binary.LittleEndian.Uint32(a.Data[4:8]),
	}, nil
}

// BuildHash constructs a HASH action.
func BuildHash(p HashParams) Action {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:4], p.Algorithm)
	binary.LittleEndian.PutUint32(b[4:8], p.Basis)
	return Action{Tag: TagHash, Data: b}
}

// Sample decodes a SAMPLE action: a probability out of math.MaxUint32 and
// the nested action list to execute when sampled in.
type SampleParams struct {
	Probability uint32
	Actions     List
}

func (a Action) Sample() (SampleParams, error) {
	attrs, err := netlink.UnmarshalAttributes(a.Data)
	if err != nil {
		return SampleParams{}, fmt.Errorf("actions: sample: %w", err)
	}

	var sp SampleParams
	for _, attr := range attrs {
		switch attr.Type {
		case ovsh.SampleAttrProbability:
			if len(attr.Data) != 4 {
				return SampleParams{}, fmt.Errorf("actions: sample: bad probability length %d", len(attr.Data))
			}
			sp.Probability = binary.LittleEndian.Uint32(attr.Data)
		case ovsh.SampleAttrActions:
			sp.Actions, err = Decode(attr.Data)
			if err != nil {
				return SampleParams{}, err
			}
		}
	}
	return sp, nil
}

// BuildSample constructs a SAMPLE action.
func BuildSample(p SampleParams) (Action, error) {
	actionsBytes, err := p.Actions.Encode()
	if err != nil {
		return Action{}, err
	}

	prob := make([]byte, 4)
	binary.LittleEndian.PutUint32(prob, p.Probability)

	data, err := netlink.MarshalAttributes([]netlink.Attribute{
		{Type: ovsh.SampleAttrProbability, Data: prob},
		{Type: ovsh.SampleAttrActions, Data: actionsBytes},
	})
	if err != nil {
		return Action{}, err
	}
	return Action{Tag: TagSample, Data: data}, nil
}

// Userspace decodes a USERSPACE action: the listening PID, opaque
// userdata to hand back to the controller, and an optional egress tunnel
// port and nested action list.
type UserspaceParams struct {
	PID             uint32
	Userdata        []byte
	EgressTunPort   uint32
	HasEgressTunnel bool
	Actions         List
}

func (a Action) Userspace() (UserspaceParams, error) {
	attrs, err := netlink.UnmarshalAttributes(a.Data)
	if err != nil {
		return UserspaceParams{}, fmt.Errorf("actions: userspace: %w", err)
	}

	var up UserspaceParams
	for _, attr := range attrs {
		switch attr.Type {
		case ovsh.UserspaceAttrPid:
			if len(attr.Data) != 4 {
				return UserspaceParams{}, fmt.Errorf("actions: userspace: bad pid length %d", len(attr.Data))
			}
			up.PID = binary.LittleEndian.Uint32(attr.Data)
		case ovsh.UserspaceAttrUserdata:
			up.Userdata = attr.Data
		case ovsh.UserspaceAttrEgressTunPort:
			if len(attr.Data) != 4 {
				return UserspaceParams{}, fmt.Errorf("actions: userspace: bad egress tun port length %d", len(attr.Data))
			}
			up.EgressTunPort = binary.LittleEndian.Uint32(attr.Data)
			up.HasEgressTunnel = true
		case ovsh.UserspaceAttrActions:
			up.Actions, err = Decode(attr.Data)
			if err != nil {
				return UserspaceParams{}, err
			}
		}
	}
	return up, nil
}

// BuildUserspace constructs a USERSPACE action.
func BuildUserspace(p UserspaceParams) (Action, error) {
	pid := make([]byte, 4)
	binary.LittleEndian.PutUint32(pid, p.PID)

	attrs := []netlink.Attribute{
		{Type: ovsh.UserspaceAttrPid, Data: pid},
	}
	if p.Userdata != nil {
		attrs = append(attrs, netlink.Attribute{Type: ovsh.UserspaceAttrUserdata, Data: p.Userdata})
	}
	if p.HasEgressTunnel {
		tun := make([]byte, 4)
		binary.LittleEndian.PutUint32(tun, p.EgressTunPort)
		attrs = append(attrs, netlink.Attribute{Type: ovsh.UserspaceAttrEgressTunPort, Data: tun})
	}
	if p.Actions != nil {
		actionsBytes, err := p.Actions.Encode()
		if err != nil {
			return Action{}, err
		}
		attrs = append(attrs, netlink.Attribute{Type: ovsh.UserspaceAttrActions, Data: actionsBytes})
	}

	data, err := netlink.MarshalAttributes(attrs)
	if err != nil {
		return Action{}, err
	}
	return Action{Tag: TagUserspace, Data: data}, nil
}

// PushVLAN decodes a PUSH_VLAN action's wire struct: ovs_action_push_vlan
// is { __be16 vlan_tpid; __be16 vlan_tci; }, network byte order, so it is
// read directly rather than via an unsafe host-order struct overlay (the
// same distinction pbuf/headers.go draws for wire packet fields).
type PushVLANParams struct {
	TPID uint16
	TCI  uint16
}

func (a Action) PushVLAN() (PushVLANParams, error) {
	if len(a.Data) != 4 {
		return PushVLANParams{}, fmt.Errorf("actions: push_vlan: want 4 bytes, got %d", len(a.Data))
	}
	return PushVLANParams{
		TPID: binary.BigEndian.Uint16(a.Data[0:2]),
		TCI:  binary.BigEndian.Uint16(a.Data[2:4]),
	}, nil
}

// BuildPushVLAN constructs a PUSH_VLAN action.
func BuildPushVLAN(p PushVLANParams) Action {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], p.TPID)
	binary.BigEndian.PutUint16(b[2:4], p.TCI)
	return Action{Tag: TagPushVlan, Data: b}
}

// PushMPLS decodes a PUSH_MPLS action's wire struct: ovs_action_push_mpls
// is { __be32 mpls_lse; __be16 mpls_ethertype; }.
type PushMPLSParams struct {
	LSE       uint32
	Ethertype uint16
}

func (a Action) PushMPLS() (PushMPLSParams, error) {
	if len(a.Data) != 6 {
		return PushMPLSParams{}, fmt.Errorf("actions: push_mpls: want 6 bytes, got %d", len(a.Data))
	}
	return PushMPLSParams{
		LSE:       binary.BigEndian.Uint32(a.Data[0:4]),
		Ethertype: binary.BigEndian.Uint16(a.Data[4:6]),
	}, nil
}

// BuildPushMPLS constructs a PUSH_MPLS action.
func BuildPushMPLS(p PushMPLSParams) Action {
	b := make([]byte, 6)
	binary.BigEndian.PutUint32(b[0:4], p.LSE)
	binary.BigEndian.PutUint16(b[4:6], p.Ethertype)
	return Action{Tag: TagPushMpls, Data: b}
}

// PopMPLS decodes a POP_MPLS action's payload: the replacement ethertype.
func (a Action) PopMPLS() (uint16, error) {
	if len(a.Data) != 2 {
		return 0, fmt.Errorf("actions: pop_mpls: want 2 bytes, got %d", len(a.Data))
	}
	return binary.BigEndian.Uint16(a.Data), nil
}

// BuildPopMPLS constructs a POP_MPLS action.
func BuildPopMPLS(ethertype uint16) Action {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, ethertype)
	return Action{Tag: TagPopMpls, Data: b}
}

// Set decodes a SET action's payload: a single keyed field, identified by
// its ovsh.KeyAttr* type.
func (a Action) Set() (Tag, []byte, error) {
	return a.Nested()
}

// BuildSet constructs a SET action wrapping a single keyed field.
func BuildSet(fieldType Tag, fieldData []byte) (Action, error) {
	data, err := netlink.MarshalAttributes([]netlink.Attribute{
		{Type: uint16(fieldType), Data: fieldData},
	})
	if err != nil {
		return Action{}, err
	}
	return Action{Tag: TagSet, Data: data}, nil
}

// SetMasked decodes a SET_MASKED action's payload: a single keyed field
// whose Data is twice the field's natural length, value then mask.
func (a Action) SetMasked() (Tag, []byte, error) {
	return a.Nested()
}

// BuildSetMasked constructs a SET_MASKED action. fieldData must already be
// value||mask concatenated.
func BuildSetMasked(fieldType Tag, fieldData []byte) (Action, error) {
	data, err := netlink.MarshalAttributes([]netlink.Attribute{
		{Type: uint16(fieldType), Data: fieldData},
	})
	if err != nil {
		return Action{}, err
	}
	return Action{Tag: TagSetMasked, Data: data}, nil
}
