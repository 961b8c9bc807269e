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

// SetTCPPorts overwrites the source and/or destination TCP ports, keeping
// the TCP checksum consistent, per spec.md section 4.5.
func SetTCPPorts(buf *pbuf.Buffer, key *flowkey.Key, src, dst uint16) error {
	tcp, ok := buf.TCP()
	if !ok {
		return nil
	}

	oldSrc, oldDst := tcp.SrcPort(), tcp.DstPort()
	tcp.SetSrcPort(src)
	tcp.SetDstPort(dst)

	if buf.CsumMode() != pbuf.CsumNone {
		c := tcp.Checksum()
		if oldSrc != src {
			c = checksum.Replace2(c, oldSrc, src)
		}
		if oldDst != dst {
			c = checksum.Replace2(c, oldDst, dst)
		}
		tcp.SetChecksum(c)
	}

	key.TP.Src = src
	key.TP.Dst = dst
	return nil
}
