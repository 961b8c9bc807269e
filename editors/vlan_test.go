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
	"testing"

	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

func TestPushVLANEmptySlotStaysOutOfBand(t *testing.T) {
	buf := buildEthIPv4TCP(pbuf.CsumNone)
	var key flowkey.Key

	if err := PushVLAN(buf, &key, 0x8100, 0x0005); err != nil {
		t.Fatalf("PushVLAN: %v", err)
	}

	v := buf.VLAN()
	if !v.Present || v.TPID != 0x8100 || v.TCI != 0x0005 {
		t.Fatalf("VLAN() = %+v, want present tpid=0x8100 tci=0x0005", v)
	}
	if key.Eth.TCI != 0x0005 {
		t.Fatalf("key.Eth.TCI = 0x%04x, want 0x0005", key.Eth.TCI)
	}
	// Packet bytes unchanged: the tag lives only in the offload slot.
	if buf.Len() != 14+20+20 {
		t.Fatalf("Len() = %d, want unchanged", buf.Len())
	}
}

func TestPushVLANMaterializesExistingTag(t *testing.T) {
	buf := buildEthIPv4TCP(pbuf.CsumNone)
	var key flowkey.Key

	if err := PushVLAN(buf, &key, 0x8100, 0x0001); err != nil {
		t.Fatalf("first PushVLAN: %v", err)
	}
	if err := PushVLAN(buf, &key, 0x8100, 0x0002); err != nil {
		t.Fatalf("second PushVLAN: %v", err)
	}

	// The first tag must now be inline, and the slot holds the second.
	v := buf.VLAN()
	if v.TCI != 0x0002 {
		t.Fatalf("VLAN().TCI = 0x%04x, want 0x0002", v.TCI)
	}
	if buf.Len() != 14+20+20+4 {
		t.Fatalf("Len() = %d, want grown by 4", buf.Len())
	}
	if key.Valid() {
		t.Fatalf("key should be invalidated after materializing a tag")
	}

	vh, err := buf.VLANHeaderAt(buf.MACHeader() + 12)
	if err != nil {
		t.Fatalf("VLANHeaderAt: %v", err)
	}
	if vh.TCI() != 0x0001 {
		t.Fatalf("materialized inline TCI = 0x%04x, want 0x0001", vh.TCI())
	}
}

func TestPopVLANFromOffloadSlot(t *testing.T) {
	buf := buildEthIPv4TCP(pbuf.CsumNone)
	var key flowkey.Key

	if err := PushVLAN(buf, &key, 0x8100, 0x0003); err != nil {
		t.Fatalf("PushVLAN: %v", err)
	}
	if err := PopVLAN(buf, &key); err != nil {
		t.Fatalf("PopVLAN: %v", err)
	}

	if buf.VLAN().Present {
		t.Fatalf("VLAN() still present after pop")
	}
	if key.Eth.TCI != 0 {
		t.Fatalf("key.Eth.TCI = 0x%04x, want 0", key.Eth.TCI)
	}
}

func TestPopVLANNoOpWhenAbsent(t *testing.T) {
	buf := buildEthIPv4TCP(pbuf.CsumNone)
	var key flowkey.Key

	if err := PopVLAN(buf, &key); err != nil {
		t.Fatalf("PopVLAN: %v", err)
	}
	if buf.Len() != 14+20+20 {
		t.Fatalf("Len() = %d, want unchanged", buf.Len())
	}
}
