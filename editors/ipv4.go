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

// SetIPv4Addrs overwrites the source and/or destination IPv4 addresses,
// updating the IPv4 header checksum and, since the addresses feed the
// transport pseudo-header, the TCP/UDP checksum too, per spec.md
// section 4.4.
func SetIPv4Addrs(buf *pbuf.Buffer, key *flowkey.Key, src, dst [4]byte) error {
	ip, err := buf.IPv4()
	if err != nil {
		return err
	}

	var oldSrc, oldDst [4]byte
	copy(oldSrc[:], ip.Src())
	copy(oldDst[:], ip.Dst())

	copy(ip.Src(), src[:])
	copy(ip.Dst(), dst[:])

	if oldSrc != src {
		ip.SetChecksum(checksum.Replace4(ip.Checksum(), oldSrc, src))
	}
	if oldDst != dst {
		ip.SetChecksum(checksum.Replace4(ip.Checksum(), oldDst, dst))
	}

	if err := updateTransportPseudoAddrs4(buf, oldSrc, src, oldDst, dst); err != nil {
		return err
	}

	key.IPv4.Src = src
	key.IPv4.Dst = dst
	return nil
}

// SetIPv4TOS overwrites the type-of-service byte.
func SetIPv4TOS(buf *pbuf.Buffer, key *flowkey.Key, tos uint8) error {
	ip, err := buf.IPv4()
	if err != nil {
		return err
	}
	old := ip.TOS()
	if old == tos {
		return nil
	}
	ip.SetTOS(tos)
	ip.SetChecksum(checksum.Replace2(ip.Checksum(), uint16(old), uint16(tos)))
	key.IP.TOS = tos
	return nil
}

// SetIPv4TTL overwrites the time-to-live byte. TTL and protocol share a
// 16-bit word for checksum purposes, per pbuf.IPv4Header.TTLProtoWord.
func SetIPv4TTL(buf *pbuf.Buffer, key *flowkey.Key, ttl uint8) error {
	ip, err := buf.IPv4()
	if err != nil {
		return err
	}
	old := ip.TTL()
	if old == ttl {
		return nil
	}
	oldWord := ip.TTLProtoWord()
	ip.SetTTL(ttl)
	newWord := ip.TTLProtoWord()
	ip.SetChecksum(checksum.Replace2(ip.Checksum(), oldWord, newWord))
	key.IP.TTL = ttl
	return nil
}

// updateTransportPseudoAddrs4 folds an IPv4 address change into the
// transport checksum, when one is present and the checksum mode is not
// CsumNone. SCTP's checksum is a CRC32-C over the whole segment with
// no pseudo-header, so it is untouched by address changes.
func updateTransportPseudoAddrs4(buf *pbuf.Buffer, oldSrc, src, oldDst, dst [4]byte) error {
	if buf.CsumMode() == pbuf.CsumNone {
		return nil
	}

	ip, err := buf.IPv4()
	if err != nil {
		return err
	}

	switch ip.Protocol() {
	case pbuf.IPProtoTCP:
		tcp, ok := buf.TCP()
		if !ok {
			return nil
		}
		c := tcp.Checksum()
		if oldSrc != src {
			c = checksum.Replace4(c, oldSrc, src)
		}
		if oldDst != dst {
			c = checksum.Replace4(c, oldDst, dst)
		}
		tcp.SetChecksum(c)
	case pbuf.IPProtoUDP:
		udp, ok := buf.UDP()
		if !ok || (udp.Checksum() == 0 && buf.CsumMode() != pbuf.CsumPartial) {
			// Outside CsumPartial, zero means "no checksum computed"; the
			// UDP convention is to leave it untouched rather than mangle a
			// checksum that was never there.
			return nil
		}
		c := udp.Checksum()
		if oldSrc != src {
			c = checksum.Replace4(c, oldSrc, src)
		}
		if oldDst != dst {
			c = checksum.Replace4(c, oldDst, dst)
		}
		udp.SetChecksum(checksum.MangleZero(c))
	}
	return nil
}
