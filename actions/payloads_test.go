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

package actions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutputRoundTrip(t *testing.T) {
	a := BuildOutput(9)
	got, err := a.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if got != 9 {
		t.Fatalf("Output() = %d, want 9", got)
	}
}

func TestHashRoundTrip(t *testing.T) {
	want := HashParams{Algorithm: 1, Basis: 0xdeadbeef}
	a := BuildHash(want)
	got, err := a.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleRoundTrip(t *testing.T) {
	want := SampleParams{
		Probability: 1 << 31,
		Actions:     List{BuildOutput(1), BuildOutput(2)},
	}
	a, err := BuildSample(want)
	if err != nil {
		t.Fatalf("BuildSample: %v", err)
	}
	got, err := a.Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserspaceRoundTripWithEgressTunnel(t *testing.T) {
	want := UserspaceParams{
		PID:             123,
		Userdata:        []byte{1, 2, 3},
		EgressTunPort:   7,
		HasEgressTunnel: true,
	}
	a, err := BuildUserspace(want)
	if err != nil {
		t.Fatalf("BuildUserspace: %v", err)
	}
	got, err := a.Userspace()
	if err != nil {
		t.Fatalf("Userspace: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserspaceRoundTripWithoutEgressTunnel(t *testing.T) {
	want := UserspaceParams{PID: 5}
	a, err := BuildUserspace(want)
	if err != nil {
		t.Fatalf("BuildUserspace: %v", err)
	}
	got, err := a.Userspace()
	if err != nil {
		t.Fatalf("Userspace: %v", err)
	}
	if got.HasEgressTunnel {
		t.Fatalf("HasEgressTunnel = true, want false")
	}
	if got.PID != want.PID {
		t.Fatalf("PID = %d, want %d", got.PID, want.PID)
	}
}

func TestPushVLANRoundTrip(t *testing.T) {
	want := PushVLANParams{TPID: 0x8100, TCI: 0x00ab}
	a := BuildPushVLAN(want)
	got, err := a.PushVLAN()
	if err != nil {
		t.Fatalf("PushVLAN: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPushMPLSRoundTrip(t *testing.T) {
	want := PushMPLSParams{LSE: 0x12345678, Ethertype: 0x8847}
	a := BuildPushMPLS(want)
	got, err := a.PushMPLS()
	if err != nil {
		t.Fatalf("PushMPLS: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPopMPLSRoundTrip(t *testing.T) {
	a := BuildPopMPLS(0x0800)
	got, err := a.PopMPLS()
	if err != nil {
		t.Fatalf("PopMPLS: %v", err)
	}
	if got != 0x0800 {
		t.Fatalf("PopMPLS() = 0x%04x, want 0x0800", got)
	}
}

func TestSetAndSetMaskedRoundTrip(t *testing.T) {
	a, err := BuildSet(TagOutput, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("BuildSet: %v", err)
	}
	tag, data, err := a.Set()
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if tag != TagOutput {
		t.Fatalf("tag = %v, want TagOutput", tag)
	}
	if string(data) != "\x01\x02\x03\x04" {
		t.Fatalf("data = %x, want 01020304", data)
	}

	masked, err := BuildSetMasked(TagOutput, []byte{1, 2, 3, 4, 0xff, 0xff, 0xff, 0xff})
	if err != nil {
		t.Fatalf("BuildSetMasked: %v", err)
	}
	_, maskedData, err := masked.SetMasked()
	if err != nil {
		t.Fatalf("SetMasked: %v", err)
	}
	if len(maskedData) != 8 {
		t.Fatalf("len(maskedData) = %d, want 8", len(maskedData))
	}
}

func TestPayloadLengthValidation(t *testing.T) {
	tests := []struct {
		name string
		a    Action
		fn   func(Action) error
	}{
		{"output", Action{Tag: TagOutput, Data: []byte{1, 2}}, func(a Action) error { _, err := a.Output(); return err }},
		{"recirc", Action{Tag: TagRecirc, Data: []byte{1}}, func(a Action) error { _, err := a.Recirc(); return err }},
		{"hash", Action{Tag: TagHash, Data: []byte{1, 2, 3}}, func(a Action) error { _, err := a.Hash(); return err }},
		{"push_vlan", Action{Tag: TagPushVlan, Data: []byte{1, 2, 3}}, func(a Action) error { _, err := a.PushVLAN(); return err }},
		{"push_mpls", Action{Tag: TagPushMpls, Data: []byte{1, 2}}, func(a Action) error { _, err := a.PushMPLS(); return err }},
		{"pop_mpls", Action{Tag: TagPopMpls, Data: []byte{1}}, func(a Action) error { _, err := a.PopMPLS(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(tt.a); err == nil {
				t.Fatalf("expected an error for a short %s payload", tt.name)
			}
		})
	}
}
