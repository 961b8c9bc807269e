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

	"github.com/ovswitchdp/actionengine/checksum"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// PushVLAN sets the hardware VLAN offload slot to tpid/tci. If a tag is
// already present in the slot, it is first materialized into the packet
// bytes (inserted right after the address pair) so the slot can hold the
// new one, per spec.md section 4.3.
func PushVLAN(buf *pbuf.Buffer, key *flowkey.Key, tpid, tci uint16) error {
	existing := buf.VLAN()
	if existing.Present {
		off := buf.MACHeader() + 12
		window, err := buf.InsertAt(off, 4)
		if err != nil {
			return err
		}
		binary.BigEndian.PutUint16(window[0:2], existing.TPID)
		binary.BigEndian.PutUint16(window[2:4], existing.TCI)

		buf.SetMACLen(buf.MACLen() + 4)
		if buf.CsumMode() == pbuf.CsumComplete {
			buf.SetCsum(checksum.RunningSumAdd(buf.Csum(), window))
		}
		key.Invalidate()
	} else {
		key.Eth.TCI = tci
	}

	buf.SetVLAN(pbuf.VLANTag{Present: true, TPID: tpid, TCI: tci})
	return nil
}

// PopVLAN clears the hardware VLAN offload slot. If the slot is empty but
// the packet bytes carry an inline 802.1Q tag (outer ethertype 0x8100 or
// 0x88a8), the tag is removed from the bytes instead, and a second stacked
// tag, if present, is promoted into the now-empty hardware slot. A no-op if
// neither is present, per spec.md section 4.3.
func PopVLAN(buf *pbuf.Buffer, key *flowkey.Key) error {
	if v := buf.VLAN(); v.Present {
		buf.ClearVLAN()
		key.Eth.TCI = 0
		return nil
	}

	eth, err := buf.Ethernet()
	if err != nil {
		return err
	}
	if !isVLANEtherType(eth.EtherType()) {
		return nil
	}

	if err := buf.EnsureWritable(buf.MACHeader() + 16); err != nil {
		return err
	}

	off := buf.MACHeader() + 12
	vh, err := buf.VLANHeaderAt(off)
	if err != nil {
		return err
	}
	removed := [4]byte{}
	binary.BigEndian.PutUint16(removed[0:2], vh.TPID())
	binary.BigEndian.PutUint16(removed[2:4], vh.TCI())

	if err := buf.RemoveAt(off, 4); err != nil {
		return err
	}
	buf.SetMACLen(buf.MACLen() - 4)
	if buf.CsumMode() == pbuf.CsumComplete {
		buf.SetCsum(checksum.RunningSumSub(buf.Csum(), removed[:]))
	}

	eth, err = buf.Ethernet()
	if err != nil {
		return err
	}
	newEtherType := eth.EtherType()
	buf.SetProtocol(newEtherType)
	key.Eth.Type = uint16(newEtherType)

	if !isVLANEtherType(newEtherType) {
		return nil
	}

	// A second stacked tag follows; pop it too and promote it into the
	// hardware offload slot.
	if err := buf.EnsureWritable(buf.MACHeader() + 16); err != nil {
		return err
	}
	vh2, err := buf.VLANHeaderAt(off)
	if err != nil {
		return err
	}
	innerTPID := vh2.TPID()
	innerTCI := vh2.TCI()
	var removed2 [4]byte
	binary.BigEndian.PutUint16(removed2[0:2], innerTPID)
	binary.BigEndian.PutUint16(removed2[2:4], innerTCI)

	if err := buf.RemoveAt(off, 4); err != nil {
		return err
	}
	buf.SetMACLen(buf.MACLen() - 4)
	if buf.CsumMode() == pbuf.CsumComplete {
		buf.SetCsum(checksum.RunningSumSub(buf.Csum(), removed2[:]))
	}

	eth, err = buf.Ethernet()
	if err != nil {
		return err
	}
	buf.SetProtocol(eth.EtherType())
	buf.SetVLAN(pbuf.VLANTag{Present: true, TPID: innerTPID, TCI: innerTCI})
	key.Invalidate()
	return nil
}

func isVLANEtherType(t pbuf.EtherType) bool {
	return t == pbuf.EtherTypeVLAN || t == pbuf.EtherTypeSVLAN
}
