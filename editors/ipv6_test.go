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

package editors

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// buildEthIPv6TCP builds a minimal Ethernet+IPv6+TCP packet.
func buildEthIPv6TCP(mode pbuf.CsumMode, nextHeader byte) *pbuf.Buffer {
	data := make([]byte, 14+40+20)

	binary.BigEndian.PutUint16(data[12:14], uint16(pbuf.EtherTypeIPv6))

	ip := data[14:54]
	ip[0] = 0x60 // version 6
	ip[6] = nextHeader
	ip[7] = 64 // hop limit
	copy(ip[8:24], bytes.Repeat([]byte{0x01}, 16))
	copy(ip[24:40], bytes.Repeat([]byte{0x02}, 16))

	tcp := data[54:74]
	binary.BigEndian.PutUint16(tcp[0:2], 1234)
	binary.BigEndian.PutUint16(tcp[2:4], 80)

	b := pbuf.New(data, pbuf.EtherTypeIPv6, mode)
	b.ResetMACHeader()
	b.SetMACLen(14)
	b.SetNetworkHeader(14)
	b.SetTransportHeader(54)
	return b
}

func TestSetIPv6Addrs(t *testing.T) {
	buf := buildEthIPv6TCP(pbuf.CsumComplete, byte(pbuf.IPProtoTCP))
	tcp, _ := buf.TCP()
	tcp.SetChecksum(0xaaaa)

	var key flowkey.Key
	var newSrc, newDst [16]byte
	for i := range newSrc {
		newSrc[i] = 0x10
		newDst[i] = 0x20
	}

	if err := SetIPv6Addrs(buf, &key, newSrc, newDst); err != nil {
		t.Fatalf("SetIPv6Addrs: %v", err)
	}

	ip, err := buf.IPv6()
	if err != nil {
		t.Fatalf("IPv6: %v", err)
	}
	if !bytes.Equal(ip.Src(), newSrc[:]) || !bytes.Equal(ip.Dst(), newDst[:]) {
		t.Fatalf("addresses not rewritten")
	}
	if key.IPv6.Src != newSrc || key.IPv6.Dst != newDst {
		t.Fatalf("key not updated")
	}

	tcp, _ = buf.TCP()
	if tcp.Checksum() == 0xaaaa {
		t.Fatalf("TCP checksum not updated for address change")
	}
}

func TestSetIPv6AddrsRewritesDstDespiteRoutingHeader(t *testing.T) {
	buf := buildEthIPv6TCP(pbuf.CsumNone, ipProtoRouting)

	var key flowkey.Key

	var newSrc, newDst [16]byte
	for i := range newSrc {
		newSrc[i] = 0x30
		newDst[i] = 0x40
	}

	if err := SetIPv6Addrs(buf, &key, newSrc, newDst); err != nil {
		t.Fatalf("SetIPv6Addrs: %v", err)
	}

	ip, _ := buf.IPv6()
	if !bytes.Equal(ip.Dst(), newDst[:]) {
		t.Fatalf("destination not rewritten with Routing extension header: %x", ip.Dst())
	}
	if key.IPv6.Dst != newDst {
		t.Fatalf("key.IPv6.Dst = %x, want %x", key.IPv6.Dst, newDst)
	}
	if !bytes.Equal(ip.Src(), newSrc[:]) {
		t.Fatalf("source not rewritten: %x", ip.Src())
	}
}

// TestSetIPv6AddrsUpdatesChecksumThroughHopByHopHeader checks that a
// Hop-by-Hop extension header sitting in front of the TCP header doesn't
// make the transport checksum update look skippable: walking past it to
// find the real transport protocol is required, not just reading
// NextHeader() on the fixed header.
func TestSetIPv6AddrsUpdatesChecksumThroughHopByHopHeader(t *testing.T) {
	// 14 Ethernet + 40 IPv6 + 8 Hop-by-Hop + 20 TCP.
	data := make([]byte, 14+40+8+20)
	binary.BigEndian.PutUint16(data[12:14], uint16(pbuf.EtherTypeIPv6))

	ip := data[14:54]
	ip[0] = 0x60
	ip[6] = ipProtoHopByHop
	ip[7] = 64
	copy(ip[8:24], bytes.Repeat([]byte{0x01}, 16))
	copy(ip[24:40], bytes.Repeat([]byte{0x02}, 16))

	hbh := data[54:62]
	hbh[0] = byte(pbuf.IPProtoTCP) // next header
	hbh[1] = 0                     // HdrExtLen 0 -> (0+1)*8 = 8 bytes total

	tcp := data[62:82]
	binary.BigEndian.PutUint16(tcp[0:2], 1234)
	binary.BigEndian.PutUint16(tcp[2:4], 80)

	buf := pbuf.New(data, pbuf.EtherTypeIPv6, pbuf.CsumComplete)
	buf.ResetMACHeader()
	buf.SetMACLen(14)
	buf.SetNetworkHeader(14)
	buf.SetTransportHeader(62)

	tcpHdr, _ := buf.TCP()
	tcpHdr.SetChecksum(0xaaaa)

	var key flowkey.Key
	var newSrc, newDst [16]byte
	for i := range newSrc {
		newSrc[i] = 0x10
		newDst[i] = 0x20
	}
	if err := SetIPv6Addrs(buf, &key, newSrc, newDst); err != nil {
		t.Fatalf("SetIPv6Addrs: %v", err)
	}

	tcpHdr, _ = buf.TCP()
	if tcpHdr.Checksum() == 0xaaaa {
		t.Fatalf("TCP checksum not updated through a Hop-by-Hop extension header")
	}
}

func TestSetIPv6TrafficClassFlowLabel(t *testing.T) {
	buf := buildEthIPv6TCP(pbuf.CsumNone, byte(pbuf.IPProtoTCP))
	var key flowkey.Key

	if err := SetIPv6TrafficClassFlowLabel(buf, &key, 0x2e, 0x12345); err != nil {
		t.Fatalf("SetIPv6TrafficClassFlowLabel: %v", err)
	}

	ip, _ := buf.IPv6()
	word := ip.VersionTclassFlow()
	if tclass := byte(word >> 20); tclass != 0x2e {
		t.Fatalf("traffic class = 0x%02x, want 0x2e", tclass)
	}
	if flow := word & 0x000fffff; flow != 0x12345&0x000fffff {
		t.Fatalf("flow label = 0x%05x, want 0x12345", flow)
	}
	if key.IPv6Label != 0x12345&0x000fffff {
		t.Fatalf("key.IPv6Label = 0x%05x, want 0x12345", key.IPv6Label)
	}
}

func TestSetIPv6HopLimit(t *testing.T) {
	buf := buildEthIPv6TCP(pbuf.CsumNone, byte(pbuf.IPProtoTCP))
	var key flowkey.Key

	if err := SetIPv6HopLimit(buf, &key, 5); err != nil {
		t.Fatalf("SetIPv6HopLimit: %v", err)
	}
	ip, _ := buf.IPv6()
	if ip.HopLimit() != 5 {
		t.Fatalf("HopLimit() = %d, want 5", ip.HopLimit())
	}
	if key.IP.TTL != 5 {
		t.Fatalf("key.IP.TTL = %d, want 5", key.IP.TTL)
	}
}
