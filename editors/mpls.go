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

// PushMPLS inserts a label stack entry immediately after the Ethernet
// header, sets the outer ethertype to ethertype, and stashes the
// pre-push outer protocol in the inner-protocol slot if it is empty, per
// spec.md section 4.3.
//
// mac_len is left untouched: section 3 defines it as excluding the MPLS
// label stack. network_header is pinned back to mac_header+mac_len after
// the insert, pointing at the newly pushed label rather than past it,
// matching the kernel's skb_set_network_header(skb, skb->mac_len); left to
// InsertAt's generic "shift anything at or past the insertion point"
// bookkeeping, network_header would instead advance by the label size and
// break the network_header-mac_header==mac_len invariant section 8 names.
func PushMPLS(buf *pbuf.Buffer, key *flowkey.Key, ethertype pbuf.EtherType) error {
	eth, err := buf.Ethernet()
	if err != nil {
		return err
	}
	outer := eth.EtherType()

	off := buf.MACHeader() + buf.MACLen()
	window, err := buf.InsertAt(off, 4)
	if err != nil {
		return err
	}
	for i := range window {
		window[i] = 0
	}
	buf.SetNetworkHeader(off)

	eth, err = buf.Ethernet()
	if err != nil {
		return err
	}
	eth.SetEtherType(ethertype)

	buf.SetInnerProtocolIfEmpty(outer)
	buf.SetProtocol(ethertype)

	if buf.CsumMode() == pbuf.CsumComplete {
		buf.SetCsum(checksum.RunningSumAdd(buf.Csum(), window))
	}

	key.Invalidate()
	return nil
}

// PopMPLS removes the topmost label stack entry and sets the Ethernet
// header's ethertype and the buffer's protocol to replacement. If
// replacement is not itself an MPLS ethertype (the popped label was the
// last one), the inner-protocol slot is also cleared. mac_len is never
// touched by this operation.
func PopMPLS(buf *pbuf.Buffer, key *flowkey.Key, replacement pbuf.EtherType) error {
	off := buf.MACHeader() + buf.MACLen()
	mpls, err := buf.MPLS()
	if err != nil {
		return err
	}
	var removed [4]byte
	removed[0] = byte(mpls.LSE() >> 24)
	removed[1] = byte(mpls.LSE() >> 16)
	removed[2] = byte(mpls.LSE() >> 8)
	removed[3] = byte(mpls.LSE())

	if buf.CsumMode() == pbuf.CsumComplete {
		buf.SetCsum(checksum.RunningSumSub(buf.Csum(), removed[:]))
	}

	if err := buf.RemoveAt(off, 4); err != nil {
		return err
	}

	eth, err := buf.Ethernet()
	if err != nil {
		return err
	}
	eth.SetEtherType(replacement)
	buf.SetProtocol(replacement)
	if !isMPLSEtherType(replacement) {
		buf.ClearInnerProtocol()
	}

	key.Invalidate()
	return nil
}

// SetMPLS overwrites the topmost label stack entry's bits selected by mask,
// keeping the CsumComplete running checksum consistent by subtracting the
// old 4-byte entry from it and adding the new one.
func SetMPLS(buf *pbuf.Buffer, key *flowkey.Key, lse, mask uint32) error {
	mplsHdr, err := buf.MPLS()
	if err != nil {
		return err
	}
	old := mplsHdr.LSE()
	updated := (old &^ mask) | (lse & mask)
	mplsHdr.SetLSE(updated)

	if buf.CsumMode() == pbuf.CsumComplete && old != updated {
		var oldBytes, newBytes [4]byte
		putBE32(oldBytes[:], old)
		putBE32(newBytes[:], updated)
		c := checksum.RunningSumSub(buf.Csum(), oldBytes[:])
		c = checksum.RunningSumAdd(c, newBytes[:])
		buf.SetCsum(c)
	}

	key.MPLSTopLSE = updated
	return nil
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func isMPLSEtherType(t pbuf.EtherType) bool {
	return t == pbuf.EtherTypeMPLSUC || t == pbuf.EtherTypeMPLSMC
}
