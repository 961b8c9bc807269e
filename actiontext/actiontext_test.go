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

package actiontext

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ovswitchdp/actionengine/actions"
)

func TestParseSimpleActionList(t *testing.T) {
	got, err := Parse("output(1), pop_vlan, recirc(5)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := actions.List{
		actions.BuildOutput(1),
		{Tag: actions.TagPopVlan},
		actions.BuildRecirc(5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHexAndDecimalArguments(t *testing.T) {
	got, err := Parse("push_vlan(tpid=0x8100,tci=5)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := got[0].PushVLAN()
	if err != nil {
		t.Fatalf("PushVLAN: %v", err)
	}
	if p.TPID != 0x8100 || p.TCI != 5 {
		t.Fatalf("PushVLAN = %+v, want TPID=0x8100 TCI=5", p)
	}
}

func TestParseNestedSampleDoesNotSplitOnInnerCommas(t *testing.T) {
	got, err := Parse("sample(probability=4294967295,actions=(output(1), output(2)))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 1 || got[0].Tag != actions.TagSample {
		t.Fatalf("got %+v, want a single sample action", got)
	}
	p, err := got[0].Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(p.Actions) != 2 {
		t.Fatalf("nested actions = %d, want 2", len(p.Actions))
	}
}

func TestParseUserspaceWithUserdata(t *testing.T) {
	got, err := Parse("userspace(pid=7,userdata=0102)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := got[0].Userspace()
	if err != nil {
		t.Fatalf("Userspace: %v", err)
	}
	if p.PID != 7 || string(p.Userdata) != "\x01\x02" {
		t.Fatalf("Userspace = %+v, want PID=7 Userdata=0102", p)
	}
}

func TestParseSetIPv4Dst(t *testing.T) {
	got, err := Parse("set(ipv4.dst=10.0.0.9)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, data, err := got[0].Set()
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if data[4] != 10 || data[5] != 0 || data[6] != 0 || data[7] != 9 {
		t.Fatalf("dst bytes = %v, want 10.0.0.9 in bytes 4-7", data)
	}
}

func TestParseUnbalancedParensIsError(t *testing.T) {
	if _, err := Parse("push_vlan(tpid=0x8100,tci=5"); err == nil {
		t.Fatalf("expected an error for an unbalanced action")
	}
}

func TestParseUnrecognizedActionIsError(t *testing.T) {
	if _, err := Parse("frobnicate(1)"); err == nil {
		t.Fatalf("expected an error for an unrecognized action")
	}
}

func TestStringRoundTripsEveryKind(t *testing.T) {
	us, err := actions.BuildUserspace(actions.UserspaceParams{PID: 3, Userdata: []byte{0xaa}})
	if err != nil {
		t.Fatalf("BuildUserspace: %v", err)
	}
	sample, err := actions.BuildSample(actions.SampleParams{
		Probability: 100,
		Actions:     actions.List{actions.BuildOutput(9)},
	})
	if err != nil {
		t.Fatalf("BuildSample: %v", err)
	}

	list := actions.List{
		actions.BuildOutput(1),
		{Tag: actions.TagPopVlan},
		actions.BuildPushVLAN(actions.PushVLANParams{TPID: 0x8100, TCI: 7}),
		actions.BuildPushMPLS(actions.PushMPLSParams{LSE: 0x1234, Ethertype: 0x8847}),
		actions.BuildPopMPLS(0x0800),
		actions.BuildRecirc(3),
		actions.BuildHash(actions.HashParams{Basis: 0xabc}),
		us,
		sample,
	}

	s := String(list)
	got, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if diff := cmp.Diff(list, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStringUnknownTagFallsBack(t *testing.T) {
	s := stringOne(actions.Action{Tag: 255})
	if s != "unknown(tag=255)" {
		t.Fatalf("stringOne = %q, want unknown(tag=255)", s)
	}
}
