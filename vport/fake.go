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

package vport

import (
	"fmt"

	"github.com/ovswitchdp/actionengine/engine"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// Fake is an in-memory engine.VportTable for tests: it records every
// packet Send delivers, keyed by port, instead of touching netlink.
type Fake struct {
	Ports   map[uint32]bool
	Tunnels map[uint32]engine.TunnelInfo
	Sent    []FakeSend
}

// FakeSend records one Send call observed by Fake.
type FakeSend struct {
	Port   uint32
	Packet []byte
}

// NewFake constructs a Fake with the given known port numbers.
func NewFake(ports ...uint32) *Fake {
	f := &Fake{Ports: make(map[uint32]bool), Tunnels: make(map[uint32]engine.TunnelInfo)}
	for _, p := range ports {
		f.Ports[p] = true
	}
	return f
}

// Lookup implements engine.VportTable.
func (f *Fake) Lookup(port uint32) bool { return f.Ports[port] }

// Send implements engine.VportTable.
func (f *Fake) Send(port uint32, packet *pbuf.Buffer) error {
	if !f.Lookup(port) {
		return fmt.Errorf("vport: fake: send: unknown port %d", port)
	}
	b := make([]byte, len(packet.Bytes()))
	copy(b, packet.Bytes())
	f.Sent = append(f.Sent, FakeSend{Port: port, Packet: b})
	return nil
}

// EgressTunnelInfo implements engine.VportTable.
func (f *Fake) EgressTunnelInfo(port uint32, packet *pbuf.Buffer) (engine.TunnelInfo, error) {
	if !f.Lookup(port) {
		return engine.TunnelInfo{}, fmt.Errorf("vport: fake: egress tunnel info: unknown port %d", port)
	}
	if ti, ok := f.Tunnels[port]; ok {
		return ti, nil
	}
	return engine.TunnelInfo{Data: packet.TunnelInfo()}, nil
}

var _ engine.VportTable = (*Fake)(nil)
