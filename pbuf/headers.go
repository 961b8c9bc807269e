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

package pbuf

import (
	"encoding/binary"
	"fmt"
)

// Wire headers are multi-byte, network-byte-order fields living inside the
// shared packet backing store, so accessors here read/write through
// encoding/binary rather than the unsafe-pointer-over-host-order-struct
// cast internal/ovsh uses for netlink attribute payloads (which are
// already in host order); see ovsnl/flow.go's own
// binary.BigEndian.Uint16(a.Data) call for the same distinction.

const (
	ethernetHeaderLen = 14
	vlanHeaderLen     = 4
	mplsHeaderLen     = 4
	ipv4HeaderLen     = 20
	ipv6HeaderLen     = 40
	tcpHeaderLen      = 20
	udpHeaderLen      = 8
	sctpHeaderLen     = 12
)

// EthernetHeader is a view over an in-place Ethernet header.
type EthernetHeader struct{ b []byte }

// Dst returns the destination MAC address bytes (aliases the buffer).
func (h EthernetHeader) Dst() []byte { return h.b[0:6] }

// Src returns the source MAC address bytes (aliases the buffer).
func (h EthernetHeader) Src() []byte { return h.b[6:12] }

// EtherType returns the ethertype field.
func (h EthernetHeader) EtherType() EtherType {
	return EtherType(binary.BigEndian.Uint16(h.b[12:14]))
}

// SetEtherType writes the ethertype field.
func (h EthernetHeader) SetEtherType(t EtherType) {
	binary.BigEndian.PutUint16(h.b[12:14], uint16(t))
}

// Ethernet returns a view over the Ethernet header at the mac header offset.
// Callers must EnsureWritable(MACHeader()+14) first if they intend to write.
func (b *Buffer) Ethernet() (EthernetHeader, error) {
	off := b.macHeader
	if off+ethernetHeaderLen > len(b.data) {
		return EthernetHeader{}, fmt.Errorf("pbuf: short ethernet header")
	}
	return EthernetHeader{b.data[off : off+ethernetHeaderLen]}, nil
}

// VLANHeader is a view over an in-place 802.1Q tag.
type VLANHeader struct{ b []byte }

// TPID returns the tag protocol identifier.
func (h VLANHeader) TPID() uint16 { return binary.BigEndian.Uint16(h.b[0:2]) }

// TCI returns the tag control information.
func (h VLANHeader) TCI() uint16 { return binary.BigEndian.Uint16(h.b[2:4]) }

// Set writes both TPID and TCI.
func (h VLANHeader) Set(tpid, tci uint16) {
	binary.BigEndian.PutUint16(h.b[0:2], tpid)
	binary.BigEndian.PutUint16(h.b[2:4], tci)
}

// VLANHeaderAt returns a view over a 4-byte VLAN header at byte offset off.
func (b *Buffer) VLANHeaderAt(off int) (VLANHeader, error) {
	if off+vlanHeaderLen > len(b.data) {
		return VLANHeader{}, fmt.Errorf("pbuf: short vlan header")
	}
	return VLANHeader{b.data[off : off+vlanHeaderLen]}, nil
}

// MPLSHeader is a view over an in-place MPLS label stack entry.
type MPLSHeader struct{ b []byte }

// LSE returns the 32-bit label stack entry.
func (h MPLSHeader) LSE() uint32 { return binary.BigEndian.Uint32(h.b[0:4]) }

// SetLSE writes the label stack entry.
func (h MPLSHeader) SetLSE(v uint32) { binary.BigEndian.PutUint32(h.b[0:4], v) }

// MPLS returns a view over the topmost MPLS label stack entry, which sits
// at mac_header+mac_len (after the Ethernet header and any inline VLAN
// tags) once PushMPLS has run.
func (b *Buffer) MPLS() (MPLSHeader, error) {
	off := b.macHeader + b.macLen
	if off+mplsHeaderLen > len(b.data) {
		return MPLSHeader{}, fmt.Errorf("pbuf: short mpls header")
	}
	return MPLSHeader{b.data[off : off+mplsHeaderLen]}, nil
}

// IPv4Header is a view over an in-place IPv4 header.
type IPv4Header struct{ b []byte }

func (h IPv4Header) Src() []byte        { return h.b[12:16] }
func (h IPv4Header) Dst() []byte        { return h.b[16:20] }
func (h IPv4Header) TOS() uint8         { return h.b[1] }
func (h IPv4Header) SetTOS(v uint8)     { h.b[1] = v }
func (h IPv4Header) TTL() uint8         { return h.b[8] }
func (h IPv4Header) SetTTL(v uint8)     { h.b[8] = v }
func (h IPv4Header) Protocol() IPProto  { return IPProto(h.b[9]) }
func (h IPv4Header) Checksum() uint16   { return binary.BigEndian.Uint16(h.b[10:12]) }
func (h IPv4Header) SetChecksum(c uint16) {
	binary.BigEndian.PutUint16(h.b[10:12], c)
}

// TTLProtoWord returns the 16-bit word spanning the ttl and protocol bytes,
// the unit spec.md 4.4 replaces as one 2-byte checksum update.
func (h IPv4Header) TTLProtoWord() uint16 { return binary.BigEndian.Uint16(h.b[8:10]) }

// IPv4 returns a view over the IPv4 header at the network header offset.
func (b *Buffer) IPv4() (IPv4Header, error) {
	off := b.networkHeader
	if off+ipv4HeaderLen > len(b.data) {
		return IPv4Header{}, fmt.Errorf("pbuf: short ipv4 header")
	}
	return IPv4Header{b.data[off : off+ipv4HeaderLen]}, nil
}

// IPv6Header is a view over an in-place IPv6 header.
type IPv6Header struct{ b []byte }

func (h IPv6Header) Src() []byte       { return h.b[8:24] }
func (h IPv6Header) Dst() []byte       { return h.b[24:40] }
func (h IPv6Header) NextHeader() IPProto { return IPProto(h.b[6]) }
func (h IPv6Header) HopLimit() uint8     { return h.b[7] }
func (h IPv6Header) SetHopLimit(v uint8) { h.b[7] = v }

// VersionTclassFlow returns the first 4 bytes (version, traffic class,
// flow label) as a 32-bit word for bit-level editing.
func (h IPv6Header) VersionTclassFlow() uint32 { return binary.BigEndian.Uint32(h.b[0:4]) }
func (h IPv6Header) SetVersionTclassFlow(v uint32) {
	binary.BigEndian.PutUint32(h.b[0:4], v)
}

// IPv6 returns a view over the IPv6 header at the network header offset.
func (b *Buffer) IPv6() (IPv6Header, error) {
	off := b.networkHeader
	if off+ipv6HeaderLen > len(b.data) {
		return IPv6Header{}, fmt.Errorf("pbuf: short ipv6 header")
	}
	return IPv6Header{b.data[off : off+ipv6HeaderLen]}, nil
}

// TCPHeader is a view over an in-place TCP header.
type TCPHeader struct{ b []byte }

func (h TCPHeader) SrcPort() uint16     { return binary.BigEndian.Uint16(h.b[0:2]) }
func (h TCPHeader) DstPort() uint16     { return binary.BigEndian.Uint16(h.b[2:4]) }
func (h TCPHeader) SetSrcPort(p uint16) { binary.BigEndian.PutUint16(h.b[0:2], p) }
func (h TCPHeader) SetDstPort(p uint16) { binary.BigEndian.PutUint16(h.b[2:4], p) }
func (h TCPHeader) Checksum() uint16    { return binary.BigEndian.Uint16(h.b[16:18]) }
func (h TCPHeader) SetChecksum(c uint16) {
	binary.BigEndian.PutUint16(h.b[16:18], c)
}

// TCP returns a view over the TCP header at the transport header offset.
// ok is false if fewer than tcpHeaderLen bytes are present.
func (b *Buffer) TCP() (h TCPHeader, ok bool) {
	off := b.transportHeader
	if off+tcpHeaderLen > len(b.data) {
		return TCPHeader{}, false
	}
	return TCPHeader{b.data[off : off+tcpHeaderLen]}, true
}

// UDPHeader is a view over an in-place UDP header.
type UDPHeader struct{ b []byte }

func (h UDPHeader) SrcPort() uint16     { return binary.BigEndian.Uint16(h.b[0:2]) }
func (h UDPHeader) DstPort() uint16     { return binary.BigEndian.Uint16(h.b[2:4]) }
func (h UDPHeader) SetSrcPort(p uint16) { binary.BigEndian.PutUint16(h.b[0:2], p) }
func (h UDPHeader) SetDstPort(p uint16) { binary.BigEndian.PutUint16(h.b[2:4], p) }
func (h UDPHeader) Checksum() uint16    { return binary.BigEndian.Uint16(h.b[6:8]) }
func (h UDPHeader) SetChecksum(c uint16) {
	binary.BigEndian.PutUint16(h.b[6:8], c)
}

// UDP returns a view over the UDP header at the transport header offset.
func (b *Buffer) UDP() (h UDPHeader, ok bool) {
	off := b.transportHeader
	if off+udpHeaderLen > len(b.data) {
		return UDPHeader{}, false
	}
	return UDPHeader{b.data[off : off+udpHeaderLen]}, true
}

// SCTPHeader is a view over an in-place SCTP common header.
type SCTPHeader struct{ b []byte }

func (h SCTPHeader) SrcPort() uint16     { return binary.BigEndian.Uint16(h.b[0:2]) }
func (h SCTPHeader) DstPort() uint16     { return binary.BigEndian.Uint16(h.b[2:4]) }
func (h SCTPHeader) SetSrcPort(p uint16) { binary.BigEndian.PutUint16(h.b[0:2], p) }
func (h SCTPHeader) SetDstPort(p uint16) { binary.BigEndian.PutUint16(h.b[2:4], p) }
func (h SCTPHeader) Checksum() uint32    { return binary.BigEndian.Uint32(h.b[8:12]) }
func (h SCTPHeader) SetChecksum(c uint32) {
	binary.BigEndian.PutUint32(h.b[8:12], c)
}

// SCTP returns a view over the SCTP common header at the transport header
// offset.
func (b *Buffer) SCTP() (h SCTPHeader, ok bool) {
	off := b.transportHeader
	if off+sctpHeaderLen > len(b.data) {
		return SCTPHeader{}, false
	}
	return SCTPHeader{b.data[off : off+sctpHeaderLen]}, true
}
