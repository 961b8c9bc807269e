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

// SetUDPPorts overwrites the source and/or destination UDP ports, per
// spec.md section 4.5. A zero checksum field means "no checksum computed"
// and is left alone rather than mangled, except under CsumPartial: there
// the stored field isn't a real checksum yet (hardware fills it in later),
// so a zero there still gets the pseudo-header delta applied. Otherwise
// the result is mapped through checksum.MangleZero since UDP reserves
// 0x0000 for "no checksum computed".
func SetUDPPorts(buf *pbuf.Buffer, key *flowkey.Key, src, dst uint16) error {
	udp, ok := buf.UDP()
	if !ok {
		return nil
	}

	oldSrc, oldDst := udp.SrcPort(), udp.DstPort()
	udp.SetSrcPort(src)
	udp.SetDstPort(dst)

	mode := buf.CsumMode()
	if mode != pbuf.CsumNone && (udp.Checksum() != 0 || mode == pbuf.CsumPartial) {
		c := udp.Checksum()
		if oldSrc != src {
			c = checksum.Replace2(c, oldSrc, src)
		}
		if oldDst != dst {
			c = checksum.Replace2(c, oldDst, dst)
		}
		udp.SetChecksum(checksum.MangleZero(c))
	}

	key.TP.Src = src
	key.TP.Dst = dst
	return nil
}
