// Copyright 2017 DigitalOcean.
//
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

// Package upcall implements engine.Upcaller against the kernel's ovs_packet
// generic netlink family, the USERSPACE action's delivery path described
// in spec.md section 4.6.
package upcall

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"

	"github.com/ovswitchdp/actionengine/engine"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/internal/ovsh"
	"github.com/ovswitchdp/actionengine/pbuf"
)

const sizeofHeader = int(unsafe.Sizeof(ovsh.Header{}))

func headerBytes(h ovsh.Header) []byte {
	b := *(*[sizeofHeader]byte)(unsafe.Pointer(&h))
	return b[:]
}

// NetlinkUpcaller delivers packets to userspace over the ovs_packet generic
// netlink family's OVS_PACKET_CMD_ACTION command, the notification the
// kernel datapath sends when a USERSPACE action fires. Unlike
// OVS_PACKET_CMD_MISS (a full flow miss) this carries only the packet, the
// userdata attached to the action, and any egress tunnel info; the flow
// key is not encoded.
type NetlinkUpcaller struct {
	dpIfindex int32

	c *genetlink.Conn
	f genetlink.Family
}

// Dial opens a generic netlink connection and resolves the ovs_packet
// family.
func Dial(dpIfindex int32) (*NetlinkUpcaller, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, err
	}

	u, err := newNetlinkUpcaller(c, dpIfindex)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return u, nil
}

func newNetlinkUpcaller(c *genetlink.Conn, dpIfindex int32) (*NetlinkUpcaller, error) {
	families, err := c.ListFamilies()
	if err != nil {
		return nil, err
	}

	u := &NetlinkUpcaller{dpIfindex: dpIfindex, c: c}
	var found bool
	for _, f := range families {
		if !strings.HasPrefix(f.Name, "ovs_") {
			continue
		}
		if f.Name == ovsh.PacketFamily {
			u.f = f
			found = true
		}
	}
	if !found {
		return nil, os.ErrNotExist
	}
	return u, nil
}

// Close closes the underlying generic netlink connection.
func (u *NetlinkUpcaller) Close() error {
	return u.c.Close()
}

// Upcall implements engine.Upcaller: it encodes packet, info.Userdata and
// info.EgressTunnel (key and info.PID are not encoded) as an
// OVS_PACKET_CMD_ACTION multicast-equivalent message and hands it to the
// kernel family. Real delivery to a listening userspace socket is a kernel
// concern once the message reaches the ovs_packet family; this method's
// job ends at a successful Execute.
func (u *NetlinkUpcaller) Upcall(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, info engine.UpcallInfo) error {
	ae := netlink.NewAttributeEncoder()
	ae.Bytes(ovsh.PacketAttrPacket, packet.Bytes())
	if len(info.Userdata) > 0 {
		ae.Bytes(ovsh.PacketAttrUserdata, info.Userdata)
	}
	if info.HasEgressTunnel {
		ae.Bytes(ovsh.PacketAttrEgressTunKey, info.EgressTunnel.Data)
	}
	attrs, err := ae.Encode()
	if err != nil {
		return fmt.Errorf("upcall: encode attributes: %w", err)
	}

	req := genetlink.Message{
		Header: genetlink.Header{
			Command: ovsh.PacketCmdAction,
			Version: uint8(u.f.Version),
		},
		Data: append(headerBytes(ovsh.Header{Ifindex: int32(dp)}), attrs...),
	}

	_, err = u.c.Execute(req, u.f.ID, netlink.HeaderFlagsRequest)
	return err
}

var _ engine.Upcaller = (*NetlinkUpcaller)(nil)
