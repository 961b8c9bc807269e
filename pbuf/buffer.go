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

// Package pbuf implements the mutable packet buffer view that the action
// engine edits in place: layer offsets, checksum-offload mode, the hardware
// VLAN offload slot, and copy-on-write growth/shrink primitives.
package pbuf

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned by any Buffer operation that needs to grow or
// copy the backing store and fails to allocate.
var ErrOutOfMemory = errors.New("pbuf: out of memory")

// EtherType is an Ethernet frame's outermost or inner protocol identifier,
// in host byte order.
type EtherType uint16

// Well-known EtherType values used by the header editors. Kept as local,
// raw constants in the style of internal/ovsh/const.go rather than pulled
// from a packet-decoding library; see DESIGN.md for why.
const (
	EtherTypeIPv4    EtherType = 0x0800
	EtherTypeIPv6    EtherType = 0x86DD
	EtherTypeVLAN    EtherType = 0x8100
	EtherTypeSVLAN   EtherType = 0x88a8
	EtherTypeMPLSUC  EtherType = 0x8847
	EtherTypeMPLSMC  EtherType = 0x8848
	EtherTypeUnknown EtherType = 0x0000
)

// IPProto identifies an IPv4/IPv6 payload protocol.
type IPProto uint8

// Transport protocol numbers the header editors branch on.
const (
	IPProtoTCP  IPProto = 6
	IPProtoUDP  IPProto = 17
	IPProtoSCTP IPProto = 132
)

// CsumMode is the SKB-style checksum offload contract in effect for a
// Buffer, per spec.md section 3/4.2.
type CsumMode int

const (
	// CsumNone means no checksum information is available or required.
	CsumNone CsumMode = iota
	// CsumUnnecessary means the checksum has already been verified and
	// need not be touched on read, but must still be kept correct on write.
	CsumUnnecessary
	// CsumComplete means the caller maintains a running ones-complement
	// sum over the packet payload, which editors must adjust incrementally.
	CsumComplete
	// CsumPartial means hardware will compute the final transport
	// checksum; editors must still reflect pseudo-header field changes in
	// the stored partial checksum, but never attempt incremental transport
	// checksum math.
	CsumPartial
)

// VLANTag is the hardware VLAN offload slot: a VLAN tag carried out of
// band of the packet bytes, as produced by NIC RX offload.
type VLANTag struct {
	Present bool
	TPID    uint16
	TCI     uint16
}

// Buffer is a mutable view over a packet with layer offsets, a checksum
// mode, and a hardware VLAN offload slot. The zero value is not usable;
// construct with New.
type Buffer struct {
	data []byte

	macHeader       int
	macLen          int
	networkHeader   int
	transportHeader int

	csumMode CsumMode
	csum     uint16

	vlan VLANTag

	protocol      EtherType
	innerProtocol EtherType

	hash      uint32
	hashValid bool

	priority uint32
	skbMark  uint32
	tunnel   []byte

	shared bool
}

// New constructs a Buffer over data, with the mac header at offset 0 and
// network/transport headers left unset (callers typically call
// ResetMACHeader and set macLen once the Ethernet header is parsed).
func New(data []byte, protocol EtherType, mode CsumMode) *Buffer {
	return &Buffer{
		data:     data,
		protocol: protocol,
		csumMode: mode,
	}
}

// Bytes returns the current packet bytes.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the current packet length.
func (b *Buffer) Len() int { return len(b.data) }

// MACHeader returns the offset of the mac header.
func (b *Buffer) MACHeader() int { return b.macHeader }

// MACLen returns the distance from the mac header to the first non-L2
// header (includes VLAN tags, excludes any MPLS label stack).
func (b *Buffer) MACLen() int { return b.macLen }

// NetworkHeader returns the offset of the network header.
func (b *Buffer) NetworkHeader() int { return b.networkHeader }

// TransportHeader returns the offset of the transport header.
func (b *Buffer) TransportHeader() int { return b.transportHeader }

// SetNetworkHeader sets the network header offset.
func (b *Buffer) SetNetworkHeader(off int) { b.networkHeader = off }

// SetTransportHeader sets the transport header offset.
func (b *Buffer) SetTransportHeader(off int) { b.transportHeader = off }

// SetMACLen sets the mac_len field directly; used by editors that add or
// remove L2-adjacent headers (VLAN, MPLS).
func (b *Buffer) SetMACLen(n int) { b.macLen = n }

// ResetMACHeader recomputes the mac header offset to the current data
// start, per spec.md section 4.1.
func (b *Buffer) ResetMACHeader() { b.macHeader = 0 }

// CsumMode returns the current checksum offload mode.
func (b *Buffer) CsumMode() CsumMode { return b.csumMode }

// SetCsumMode overrides the checksum offload mode.
func (b *Buffer) SetCsumMode(m CsumMode) { b.csumMode = m }

// Csum returns the current CsumComplete running sum. Only meaningful when
// CsumMode() == CsumComplete.
func (b *Buffer) Csum() uint16 { return b.csum }

// SetCsum sets the CsumComplete running sum.
func (b *Buffer) SetCsum(c uint16) { b.csum = c }

// VLAN returns the hardware VLAN offload slot.
func (b *Buffer) VLAN() VLANTag { return b.vlan }

// SetVLAN overwrites the hardware VLAN offload slot.
func (b *Buffer) SetVLAN(v VLANTag) { b.vlan = v }

// ClearVLAN clears the hardware VLAN offload slot.
func (b *Buffer) ClearVLAN() { b.vlan = VLANTag{} }

// Protocol returns the outermost ethertype as seen by the stack.
func (b *Buffer) Protocol() EtherType { return b.protocol }

// SetProtocol sets the outermost ethertype.
func (b *Buffer) SetProtocol(p EtherType) { b.protocol = p }

// InnerProtocol returns the protocol saved when MPLS was pushed, if any.
func (b *Buffer) InnerProtocol() EtherType { return b.innerProtocol }

// SetInnerProtocolIfEmpty sets the saved inner protocol. A no-op once already set,
// matching spec.md 4.3's "record the original outer protocol ... if empty".
func (b *Buffer) SetInnerProtocolIfEmpty(p EtherType) {
	if b.innerProtocol == EtherTypeUnknown {
		b.innerProtocol = p
	}
}

// ClearInnerProtocol resets the saved inner protocol slot.
func (b *Buffer) ClearInnerProtocol() { b.innerProtocol = EtherTypeUnknown }

// ClearHash invalidates the cached packet hash. Called by any editor that
// mutates a field the hash was computed over.
func (b *Buffer) ClearHash() {
	b.hash = 0
	b.hashValid = false
}

// Hash returns the cached hash and whether it is valid.
func (b *Buffer) Hash() (uint32, bool) { return b.hash, b.hashValid }

// SetHash stores a freshly computed hash.
func (b *Buffer) SetHash(h uint32) {
	b.hash = h
	b.hashValid = true
}

// Priority returns the packet metadata priority field, the SET(priority)
// target alongside key.phy.priority.
func (b *Buffer) Priority() uint32 { return b.priority }

// SetPriority sets the packet metadata priority field.
func (b *Buffer) SetPriority(p uint32) { b.priority = p }

// SkbMark returns the packet metadata mark field, the SET(skb_mark)
// target alongside key.phy.skb_mark.
func (b *Buffer) SkbMark() uint32 { return b.skbMark }

// SetSkbMark sets the packet metadata mark field.
func (b *Buffer) SetSkbMark(m uint32) { b.skbMark = m }

// TunnelInfo returns the raw egress tunnel descriptor stashed by
// SET(tunnel_info), or nil if none was ever set.
func (b *Buffer) TunnelInfo() []byte { return b.tunnel }

// SetTunnelInfo stores the raw egress tunnel descriptor for later tunnel
// output.
func (b *Buffer) SetTunnelInfo(t []byte) { b.tunnel = t }

// Shared reports whether the backing store may be aliased by another
// Buffer (set only by MarkShared; a freshly New'd, Clone'd or
// EnsureWritable'd Buffer is never shared).
func (b *Buffer) Shared() bool { return b.shared }

// MarkShared flags the buffer as aliased, forcing the next EnsureWritable
// call to copy. The interpreter does not call it: it hands out Clone()
// copies instead of sharing backing bytes.
func (b *Buffer) MarkShared() { b.shared = true }

// Clone produces an independently owned Buffer with a copy of the packet
// bytes and all current offsets/mode/vlan/protocol state.
func (b *Buffer) Clone() *Buffer {
	cp := make([]byte, len(b.data))
	copy(cp, b.data)

	clone := *b
	clone.data = cp
	clone.shared = false
	return &clone
}

// EnsureWritable ensures the first rangeLen bytes from the current data
// start are owned exclusively. If the buffer is shared, it is copied
// (copy-on-write) before returning.
func (b *Buffer) EnsureWritable(rangeLen int) error {
	if rangeLen > len(b.data) {
		return fmt.Errorf("pbuf: ensure writable %d bytes: %w", rangeLen, ErrOutOfMemory)
	}
	if !b.shared {
		return nil
	}

	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	b.data = cp
	b.shared = false
	return nil
}

// PushFront grows headroom by n bytes, shifting existing bytes forward and
// zeroing the new region. All offsets that lie at or after the old data
// start are shifted by n; the caller is responsible for filling the new
// region and updating macHeader/macLen/networkHeader/transportHeader as
// appropriate for the header being pushed.
func (b *Buffer) PushFront(n int) error {
	if n < 0 {
		return fmt.Errorf("pbuf: negative push %d", n)
	}

	grown := make([]byte, len(b.data)+n)
	copy(grown[n:], b.data)
	b.data = grown
	b.shared = false

	b.macHeader += n
	b.networkHeader += n
	b.transportHeader += n
	return nil
}

// PullFront shrinks headroom by n bytes, removing the first n bytes of the
// buffer. All offsets are shifted back by n.
func (b *Buffer) PullFront(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("pbuf: invalid pull %d of %d", n, len(b.data))
	}

	shrunk := make([]byte, len(b.data)-n)
	copy(shrunk, b.data[n:])
	b.data = shrunk
	b.shared = false

	b.macHeader -= n
	b.networkHeader -= n
	b.transportHeader -= n
	return nil
}

// InsertAt grows the buffer by n bytes at offset off, shifting everything
// from off onward forward by n. The returned slice aliases the newly
// opened window for the caller to fill. networkHeader/transportHeader at
// or beyond off are shifted by n; macHeader is never shifted by InsertAt,
// since every editor that calls it does so at or after the mac header's
// own end (VLAN/MPLS tag insertion). This gets the same resulting layout
// the kernel's headroom-grow-then-memmove-the-mac-header-back technique
// produces, without the mac-header-relative headroom bookkeeping: Go
// slices don't distinguish headroom from the rest of the backing array, so
// a direct mid-buffer insert is both simpler and equivalent here.
func (b *Buffer) InsertAt(off, n int) ([]byte, error) {
	if off < 0 || off > len(b.data) || n < 0 {
		return nil, fmt.Errorf("pbuf: invalid insert at %d of %d bytes", off, n)
	}
	if err := b.EnsureWritable(len(b.data)); err != nil {
		return nil, err
	}

	grown := make([]byte, len(b.data)+n)
	copy(grown[:off], b.data[:off])
	copy(grown[off+n:], b.data[off:])
	b.data = grown

	if b.networkHeader >= off {
		b.networkHeader += n
	}
	if b.transportHeader >= off {
		b.transportHeader += n
	}
	return b.data[off : off+n], nil
}

// RemoveAt shrinks the buffer by n bytes at offset off, the inverse of
// InsertAt.
func (b *Buffer) RemoveAt(off, n int) error {
	if off < 0 || n < 0 || off+n > len(b.data) {
		return fmt.Errorf("pbuf: invalid remove at %d of %d bytes", off, n)
	}
	if err := b.EnsureWritable(len(b.data)); err != nil {
		return err
	}

	shrunk := make([]byte, len(b.data)-n)
	copy(shrunk[:off], b.data[:off])
	copy(shrunk[off:], b.data[off+n:])
	b.data = shrunk

	if b.networkHeader > off {
		b.networkHeader -= n
	}
	if b.transportHeader > off {
		b.transportHeader -= n
	}
	return nil
}
