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

// SetSCTPPorts overwrites the source and/or destination SCTP ports, per
// spec.md section 4.5. SCTP's checksum is a CRC32-C over the entire
// segment rather than a pseudo-header sum, so there is no incremental
// update in the Replace2/Replace4 sense; instead the stored checksum is
// carried forward by an XOR delta: D = old_stored XOR old_correct, and
// the new stored value is new_correct XOR D. A packet that already
// arrived with a wrong checksum stays wrong by the same D after the
// rewrite, rather than being silently "fixed" by this edit.
func SetSCTPPorts(buf *pbuf.Buffer, key *flowkey.Key, src, dst uint16) error {
	sctp, ok := buf.SCTP()
	if !ok {
		return nil
	}

	if buf.CsumMode() == pbuf.CsumNone {
		sctp.SetSrcPort(src)
		sctp.SetDstPort(dst)
		key.TP.Src = src
		key.TP.Dst = dst
		return nil
	}

	oldStored := sctp.Checksum()
	sctp.SetChecksum(0)
	oldCorrect := checksum.SCTPChecksum(buf.Bytes(), buf.TransportHeader())
	delta := oldStored ^ oldCorrect

	sctp.SetSrcPort(src)
	sctp.SetDstPort(dst)
	key.TP.Src = src
	key.TP.Dst = dst

	sctp.SetChecksum(0)
	newCorrect := checksum.SCTPChecksum(buf.Bytes(), buf.TransportHeader())
	sctp.SetChecksum(newCorrect ^ delta)
	return nil
}
