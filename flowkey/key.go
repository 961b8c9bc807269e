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

// Package flowkey implements the classification key carried alongside a
// packet through the action engine. It generalizes the read-only
// FlowKey/parseFlowKeys dump format in ovsnl/flow.go (built only to list
// kernel-resident flows) into a mutable, field-addressable struct the
// header editors update as they mutate packet bytes.
package flowkey

// Phy groups the physical/metadata fields of a Key.
type Phy struct {
	Priority uint32
	SkbMark  uint32
	InPort   uint32
}

// Eth groups the Ethernet-layer fields of a Key.
type Eth struct {
	Src  [6]byte
	Dst  [6]byte
	Type uint16 // ethertype; zero is the "key invalid" sentinel
	TCI  uint16
}

// IP groups the fields common to IPv4 and IPv6.
type IP struct {
	Proto uint8
	TOS   uint8
	TTL   uint8
}

// IPv4Addr groups the IPv4-specific address fields.
type IPv4Addr struct {
	Src [4]byte
	Dst [4]byte
}

// IPv6Addr groups the IPv6-specific address fields.
type IPv6Addr struct {
	Src [16]byte
	Dst [16]byte
}

// TP groups transport port fields, shared by TCP/UDP/SCTP.
type TP struct {
	Src uint16
	Dst uint16
}

// Key is the classification key for a packet, kept in sync with its
// header bytes by the editors package, or explicitly invalidated when a
// mutation makes that impossible to do cheaply (spec.md section 3).
type Key struct {
	Phy Phy
	Eth Eth
	IP  IP

	IPv4 IPv4Addr
	IPv6 IPv6Addr

	IPv6Label uint32

	MPLSTopLSE uint32

	TP TP

	RecircID uint32

	OVSFlowHash uint32
}

// Valid reports whether the key still describes the packet's current
// bytes. Per spec.md's design notes, ethertype zero is the sentinel for
// "invalid", mirroring the original's tagged-bit convention but made
// explicit here as a dedicated check instead of ad hoc comparisons.
func (k *Key) Valid() bool { return k.Eth.Type != 0 }

// Invalidate marks the key as no longer describing the packet's bytes.
// Revalidation is external (re-parsing headers via a Classifier/KeyUpdater
// collaborator), per spec.md section 3.
func (k *Key) Invalidate() { k.Eth.Type = 0 }

// Clone returns an independent copy, used to snapshot a key into a
// deferred action entry.
func (k *Key) Clone() Key { return *k }
