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
	"github.com/ovswitchdp/actionengine/checksum"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// IPv6 extension header next-header values that can appear between the
// fixed header and the real transport header.
const (
	ipProtoHopByHop    = 0
	ipProtoRouting     = 43
	ipProtoFragment    = 44
	ipProtoDestOptions = 60
)

// ipv6FixedHeaderLen is the fixed IPv6 header's size; extension headers,
// if any, start immediately after it.
const ipv6FixedHeaderLen = 40

// extHdrLen reports the size in bytes of an extension header of kind
// proto starting at b[off], given its second byte (the "Hdr Ext Len" /
// "Fragment Offset" field depending on kind). Fragment headers are
// always exactly 8 bytes; the rest encode length in 8-octet units, not
// counting the first 8 octets.
func extHdrLen(proto pbuf.IPProto, b []byte, off int) int {
	if proto == ipProtoFragment {
		return 8
	}
	return (int(b[off+1]) + 1) * 8
}

// walkIPv6ExtHeaders scans the extension header chain starting right
// after the fixed IPv6 header, per spec.md section 4.4. It returns the
// protocol of the first header that isn't a recognized extension header
// (the real transport protocol, or another extension kind this walk
// doesn't understand) and whether a Routing header was seen anywhere in
// the chain.
func walkIPv6ExtHeaders(data []byte, start int, firstNextHeader pbuf.IPProto) (transport pbuf.IPProto, sawRouting bool) {
	proto := firstNextHeader
	off := start
	for {
		switch proto {
		case ipProtoHopByHop, ipProtoRouting, ipProtoFragment, ipProtoDestOptions:
			if proto == ipProtoRouting {
				sawRouting = true
			}
			if off+2 > len(data) {
				return proto, sawRouting
			}
			n := extHdrLen(proto, data, off)
			if n <= 0 || off+n > len(data) {
				return proto, sawRouting
			}
			proto = pbuf.IPProto(data[off])
			off += n
		default:
			return proto, sawRouting
		}
	}
}

// SetIPv6Addrs overwrites the source and/or destination IPv6 addresses,
// per spec.md section 4.4. If a Routing extension header appears
// anywhere in the header chain, the destination change is not folded into
// the transport checksum, since the transport pseudo-header then uses the
// final destination carried in the routing header rather than this
// field; the destination address and the key are still rewritten.
func SetIPv6Addrs(buf *pbuf.Buffer, key *flowkey.Key, src, dst [16]byte) error {
	ip, err := buf.IPv6()
	if err != nil {
		return err
	}

	var oldSrc, oldDst [16]byte
	copy(oldSrc[:], ip.Src())
	copy(oldDst[:], ip.Dst())

	_, skipDst := walkIPv6ExtHeaders(buf.Bytes(), buf.NetworkHeader()+ipv6FixedHeaderLen, ip.NextHeader())

	copy(ip.Src(), src[:])
	copy(ip.Dst(), dst[:])

	if buf.CsumMode() != pbuf.CsumNone {
		if err := updateTransportPseudoAddrs6(buf, oldSrc, src, oldDst, dst, skipDst); err != nil {
			return err
		}
	}

	key.IPv6.Src = src
	key.IPv6.Dst = dst
	return nil
}

// SetIPv6TrafficClassFlowLabel overwrites the traffic class and/or flow
// label bits of the version/tclass/flowlabel word. Neither field
// participates in any checksum, so no checksum bookkeeping is needed.
func SetIPv6TrafficClassFlowLabel(buf *pbuf.Buffer, key *flowkey.Key, tclass uint8, flowLabel uint32) error {
	ip, err := buf.IPv6()
	if err != nil {
		return err
	}
	word := ip.VersionTclassFlow()
	word = (word &^ 0x0ff00000) | (uint32(tclass) << 20)
	word = (word &^ 0x000fffff) | (flowLabel & 0x000fffff)
	ip.SetVersionTclassFlow(word)

	key.IP.TOS = tclass
	key.IPv6Label = flowLabel & 0x000fffff
	return nil
}

// SetIPv6HopLimit overwrites the hop limit byte.
func SetIPv6HopLimit(buf *pbuf.Buffer, key *flowkey.Key, hopLimit uint8) error {
	ip, err := buf.IPv6()
	if err != nil {
		return err
	}
	ip.SetHopLimit(hopLimit)
	key.IP.TTL = hopLimit
	return nil
}

// updateTransportPseudoAddrs6 folds an IPv6 address change into the
// transport checksum. SCTP is untouched, as in the IPv4 case. The real
// transport protocol is found by walking the extension header chain
// rather than trusting the fixed header's next-header field directly,
// since any extension header (not just Routing) sitting in front of the
// transport header would otherwise make this look like a non-TCP/UDP
// packet and silently skip the update.
func updateTransportPseudoAddrs6(buf *pbuf.Buffer, oldSrc, src, oldDst, dst [16]byte, skipDst bool) error {
	ip, err := buf.IPv6()
	if err != nil {
		return err
	}

	transport, _ := walkIPv6ExtHeaders(buf.Bytes(), buf.NetworkHeader()+ipv6FixedHeaderLen, ip.NextHeader())

	switch transport {
	case pbuf.IPProtoTCP:
		tcp, ok := buf.TCP()
		if !ok {
			return nil
		}
		c := tcp.Checksum()
		if oldSrc != src {
			c = checksum.Replace16(c, oldSrc, src)
		}
		if !skipDst && oldDst != dst {
			c = checksum.Replace16(c, oldDst, dst)
		}
		tcp.SetChecksum(c)
	case pbuf.IPProtoUDP:
		udp, ok := buf.UDP()
		if !ok || (udp.Checksum() == 0 && buf.CsumMode() != pbuf.CsumPartial) {
			return nil
		}
		c := udp.Checksum()
		if oldSrc != src {
			c = checksum.Replace16(c, oldSrc, src)
		}
		if !skipDst && oldDst != dst {
			c = checksum.Replace16(c, oldDst, dst)
		}
		udp.SetChecksum(checksum.MangleZero(c))
	}
	return nil
}
