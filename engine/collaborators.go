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
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// TunnelInfo is an opaque egress tunnel descriptor, stashed on a packet by
// SET(tunnel_info) and resolved by VportTable.EgressTunnelInfo for
// USERSPACE's optional egress_tun_port attribute.
type TunnelInfo struct {
	Data []byte
}

// VportTable resolves and sends to virtual ports. Implementations are
// expected to be non-blocking, per spec.md section 5; vport.NetlinkTable
// and vport.Fake both satisfy it.
type VportTable interface {
	// Send transmits packet out port. The engine does not retain packet
	// after Send returns.
	Send(port uint32, packet *pbuf.Buffer) error
	// Lookup reports whether port names a known vport.
	Lookup(port uint32) (ok bool)
	// EgressTunnelInfo resolves the egress tunnel descriptor for port, used
	// by USERSPACE's optional egress_tun_port attribute.
	EgressTunnelInfo(port uint32, packet *pbuf.Buffer) (TunnelInfo, error)
}

// UpcallInfo is the descriptor the interpreter builds from a USERSPACE
// action's nested attributes.
type UpcallInfo struct {
	PID             uint32
	Userdata        []byte
	HasEgressTunnel bool
	EgressTunnel    TunnelInfo
}

// Upcaller delivers a packet and its classification key to a userspace
// listener. The packet is borrowed: implementations must clone internally
// if they need to retain it past the call.
type Upcaller interface {
	Upcall(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, info UpcallInfo) error
}

// Classifier re-enters flow classification for a recirculated or deferred
// packet. Out of scope for this repository beyond the interface: see
// spec.md section 1's collaborator boundary.
type Classifier interface {
	ClassifyAndProcess(packet *pbuf.Buffer, key *flowkey.Key) error
}

// KeyUpdater re-parses packet headers into key, used by RECIRC when the
// key has been invalidated by an upstream editor.
type KeyUpdater interface {
	UpdateKey(packet *pbuf.Buffer, key *flowkey.Key) error
}

// RandomSource yields a uniform, non-cryptographic 32-bit value for
// SAMPLE's probability check.
type RandomSource interface {
	Uint32() uint32
}
