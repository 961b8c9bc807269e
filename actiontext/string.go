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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ovswitchdp/actionengine/actions"
)

// String renders list back into its DSL text form, the inverse of Parse.
// Only round-trips actions this package can itself parse, except set:
// SET actions are not rendered. An unsupported or malformed action
// (including any SET) is rendered as "unknown(tag=N)" rather than
// returning an error, since String is typically used for diagnostics.
func String(list actions.List) string {
	parts := make([]string, 0, len(list))
	for _, a := range list {
		parts = append(parts, stringOne(a))
	}
	return strings.Join(parts, ", ")
}

func stringOne(a actions.Action) string {
	switch a.Tag {
	case actions.TagOutput:
		port, err := a.Output()
		if err != nil {
			break
		}
		return fmt.Sprintf("output(%d)", port)

	case actions.TagPopVlan:
		return "pop_vlan"

	case actions.TagPushVlan:
		p, err := a.PushVLAN()
		if err != nil {
			break
		}
		return fmt.Sprintf("push_vlan(tpid=0x%04x,tci=0x%04x)", p.TPID, p.TCI)

	case actions.TagPushMpls:
		p, err := a.PushMPLS()
		if err != nil {
			break
		}
		return fmt.Sprintf("push_mpls(lse=0x%08x,ethertype=0x%04x)", p.LSE, p.Ethertype)

	case actions.TagPopMpls:
		eth, err := a.PopMPLS()
		if err != nil {
			break
		}
		return fmt.Sprintf("pop_mpls(ethertype=0x%04x)", eth)

	case actions.TagRecirc:
		id, err := a.Recirc()
		if err != nil {
			break
		}
		return fmt.Sprintf("recirc(%d)", id)

	case actions.TagHash:
		p, err := a.Hash()
		if err != nil {
			break
		}
		return fmt.Sprintf("hash(basis=0x%08x)", p.Basis)

	case actions.TagUserspace:
		p, err := a.Userspace()
		if err != nil {
			break
		}
		s := fmt.Sprintf("pid=%d", p.PID)
		if len(p.Userdata) > 0 {
			s += ",userdata=" + hex.EncodeToString(p.Userdata)
		}
		return fmt.Sprintf("userspace(%s)", s)

	case actions.TagSample:
		p, err := a.Sample()
		if err != nil {
			break
		}
		return fmt.Sprintf("sample(probability=%d,actions=(%s))", p.Probability, String(p.Actions))
	}

	return fmt.Sprintf("unknown(tag=%d)", a.Tag)
}
