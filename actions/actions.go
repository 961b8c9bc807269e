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

// Package actions models the kernel datapath action list: a sequence of
// TLV-encoded attributes, each selecting one primitive the action engine
// interprets in order. The wire format is the same nested
// netlink.Attribute encoding ovsnl/datapath.go and ovsnl/flow.go already
// decode for dump replies (PACKET_ATTR_ACTIONS, FLOW_ATTR_ACTIONS), so
// this package reuses github.com/mdlayher/netlink for marshaling instead
// of hand-rolling TLV walking.
package actions

import (
	"fmt"

	"github.com/mdlayher/netlink"

	"github.com/ovswitchdp/actionengine/internal/ovsh"
)

// Tag identifies an action's type, mirroring ovsh.ActionAttr*.
type Tag uint16

// Action tags, one per ovs_action_attr value this package names. The
// interpreter dispatches all of them except SetMasked, Ct and Trunc.
const (
	TagOutput    Tag = ovsh.ActionAttrOutput
	TagUserspace Tag = ovsh.ActionAttrUserspace
	TagSet       Tag = ovsh.ActionAttrSet
	TagPushVlan  Tag = ovsh.ActionAttrPushVlan
	TagPopVlan   Tag = ovsh.ActionAttrPopVlan
	TagSample    Tag = ovsh.ActionAttrSample
	TagRecirc    Tag = ovsh.ActionAttrRecirc
	TagHash      Tag = ovsh.ActionAttrHash
	TagPushMpls  Tag = ovsh.ActionAttrPushMpls
	TagPopMpls   Tag = ovsh.ActionAttrPopMpls
	TagSetMasked Tag = ovsh.ActionAttrSetMasked
	TagCt        Tag = ovsh.ActionAttrCt
	TagTrunc     Tag = ovsh.ActionAttrTrunc
)

// Action is a single TLV entry in an action list.
type Action struct {
	Tag  Tag
	Data []byte
}

// List is an ordered sequence of actions, the unit the interpreter walks
// per spec.md section 4.6.
type List []Action

// Decode parses a List from its wire TLV encoding.
func Decode(b []byte) (List, error) {
	attrs, err := netlink.UnmarshalAttributes(b)
	if err != nil {
		return nil, fmt.Errorf("actions: decode: %w", err)
	}

	list := make(List, 0, len(attrs))
	for _, a := range attrs {
		list = append(list, Action{Tag: Tag(a.Type), Data: a.Data})
	}
	return list, nil
}

// Encode serializes a List to its wire TLV encoding.
func (l List) Encode() ([]byte, error) {
	attrs := make([]netlink.Attribute, 0, len(l))
	for _, a := range l {
		attrs = append(attrs, netlink.Attribute{Type: uint16(a.Tag), Data: a.Data})
	}
	b, err := netlink.MarshalAttributes(attrs)
	if err != nil {
		return nil, fmt.Errorf("actions: encode: %w", err)
	}
	return b, nil
}

// Nested decodes Data as a netlink attribute, for actions whose Data is
// itself a single nested attribute (e.g. SET's keyed field).
func (a Action) Nested() (Tag, []byte, error) {
	attrs, err := netlink.UnmarshalAttributes(a.Data)
	if err != nil {
		return 0, nil, fmt.Errorf("actions: nested: %w", err)
	}
	if len(attrs) != 1 {
		return 0, nil, fmt.Errorf("actions: nested: want 1 attribute, got %d", len(attrs))
	}
	return Tag(attrs[0].Type), attrs[0].Data, nil
}

// NestedList decodes Data as a List, for actions that carry a sub-program
// (SAMPLE, USERSPACE's ACTIONS attribute, CT's nested helper data).
func (a Action) NestedList() (List, error) {
	return Decode(a.Data)
}

// Build constructs an Action with tag and data as its payload, for a
// simple single-value action.
func Build(tag Tag, data []byte) Action {
	return Action{Tag: tag, Data: data}
}

// BuildNested wraps inner as a single nested attribute of type tag, for
// actions like SAMPLE/USERSPACE whose Data is itself an attribute list.
func BuildNested(tag Tag, inner List) (Action, error) {
	b, err := inner.Encode()
	if err != nil {
		return Action{}, err
	}
	return Action{Tag: tag, Data: b}, nil
}
