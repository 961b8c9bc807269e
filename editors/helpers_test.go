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
	"encoding/binary"

	"github.com/ovswitchdp/actionengine/pbuf"
)

// buildEthIPv4TCP builds a minimal Ethernet+IPv4+TCP packet for tests: a
// 14-byte Ethernet header, a 20-byte IPv4 header (no options), and a
// 20-byte TCP header (no options, no payload).
func buildEthIPv4TCP(mode pbuf.CsumMode) *pbuf.Buffer {
	data := make([]byte, 14+20+20)

	// Ethernet: arbitrary src/dst, ethertype IPv4.
	copy(data[0:6], []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})
	copy(data[6:12], []byte{0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb})
	binary.BigEndian.PutUint16(data[12:14], uint16(pbuf.EtherTypeIPv4))

	ip := data[14:34]
	ip[0] = 0x45 // version 4, IHL 5
	ip[9] = byte(pbuf.IPProtoTCP)
	ip[8] = 64 // TTL
	copy(ip[12:16], []byte{10, 0, 0, 1})
	copy(ip[16:20], []byte{10, 0, 0, 2})

	tcp := data[34:54]
	binary.BigEndian.PutUint16(tcp[0:2], 1234)
	binary.BigEndian.PutUint16(tcp[2:4], 80)

	b := pbuf.New(data, pbuf.EtherTypeIPv4, mode)
	b.ResetMACHeader()
	b.SetMACLen(14)
	b.SetNetworkHeader(14)
	b.SetTransportHeader(34)
	return b
}
