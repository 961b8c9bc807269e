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

// Package vport implements engine.VportTable against the kernel's ovs_vport
// generic netlink family, per spec.md section 5.
package vport

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"

	"github.com/ovswitchdp/actionengine/engine"
	"github.com/ovswitchdp/actionengine/internal/ovsh"
	"github.com/ovswitchdp/actionengine/pbuf"
)

const sizeofHeader = int(unsafe.Sizeof(ovsh.Header{}))

// headerBytes converts an ovsh.Header into a byte slice.
func headerBytes(h ovsh.Header) []byte {
	b := *(*[sizeofHeader]byte)(unsafe.Pointer(&h))
	return b[:]
}

// parseHeader converts a byte slice into an ovsh.Header.
func parseHeader(b []byte) (ovsh.Header, error) {
	if l := len(b); l < sizeofHeader {
		return ovsh.Header{}, fmt.Errorf("vport: not enough data for OVS message header: %d bytes", l)
	}

	h := *(*ovsh.Header)(unsafe.Pointer(&b[:sizeofHeader][0]))
	return h, nil
}

// Port describes one kernel vport, as cached by Refresh and used internally
// by NetlinkTable to resolve Lookup/Send/EgressTunnelInfo.
type Port struct {
	PortNo    uint32
	Type      uint32
	Name      string
	Ifindex   int32
	UpcallPID uint32
}

var _ engine.VportTable = (*NetlinkTable)(nil)

// NetlinkTable implements engine.VportTable against the kernel's ovs_vport
// generic netlink family. It is adapted from the teacher's DatapathService
// dial/Execute pattern; the family's NEW/SET/DEL commands are out of scope
// here since the interpreter only ever needs to resolve and send.
type NetlinkTable struct {
	dpIfindex int32

	c *genetlink.Conn
	f genetlink.Family

	ports map[uint32]Port
	sink  func(port uint32, packet *pbuf.Buffer) error
}

// Dial opens a generic netlink connection and resolves the ovs_vport
// family. dpIfindex scopes Refresh/lookups to one datapath, matching the
// kernel's OVS_VPORT_ATTR scheme of one vport table per datapath.
func Dial(dpIfindex int32) (*NetlinkTable, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, err
	}

	t, err := newNetlinkTable(c, dpIfindex)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return t, nil
}

func newNetlinkTable(c *genetlink.Conn, dpIfindex int32) (*NetlinkTable, error) {
	families, err := c.ListFamilies()
	if err != nil {
		return nil, err
	}

	t := &NetlinkTable{dpIfindex: dpIfindex, c: c, ports: make(map[uint32]Port)}
	var found bool
	for _, f := range families {
		if !strings.HasPrefix(f.Name, "ovs_") {
			continue
		}
		if f.Name == ovsh.VportFamily {
			t.f = f
			found = true
		}
	}
	if !found {
		return nil, os.ErrNotExist
	}
	return t, nil
}

// Close closes the underlying generic netlink connection.
func (t *NetlinkTable) Close() error {
	return t.c.Close()
}

// Refresh re-dumps the vport table from the kernel, populating the
// port-number-keyed cache Lookup/Send/EgressTunnelInfo consult. Callers are
// expected to call this once at startup and after any vport add/remove
// notification; the interpreter's hot path never blocks on netlink itself.
func (t *NetlinkTable) Refresh() error {
	ports, err := t.dump()
	if err != nil {
		return err
	}

	m := make(map[uint32]Port, len(ports))
	for _, p := range ports {
		m[p.PortNo] = p
	}
	t.ports = m
	return nil
}

func (t *NetlinkTable) dump() ([]Port, error) {
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: ovsh.VportCmdGet,
			Version: uint8(t.f.Version),
		},
		Data: headerBytes(ovsh.Header{Ifindex: t.dpIfindex}),
	}

	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsDump
	msgs, err := t.c.Execute(req, t.f.ID, flags)
	if err != nil {
		return nil, err
	}
	return parsePorts(msgs)
}

func parsePorts(msgs []genetlink.Message) ([]Port, error) {
	ports := make([]Port, 0, len(msgs))

	for _, m := range msgs {
		h, err := parseHeader(m.Data)
		if err != nil {
			return nil, err
		}

		p := Port{Ifindex: h.Ifindex}

		attrs, err := netlink.UnmarshalAttributes(m.Data[sizeofHeader:])
		if err != nil {
			return nil, err
		}

		for _, a := range attrs {
			switch a.Type {
			case ovsh.VportAttrPortNo:
				p.PortNo = nlenc.Uint32(a.Data)
			case ovsh.VportAttrType:
				p.Type = nlenc.Uint32(a.Data)
			case ovsh.VportAttrName:
				p.Name = nlenc.String(a.Data)
			case ovsh.VportAttrUpcallPid:
				p.UpcallPID = nlenc.Uint32(a.Data)
			}
		}

		ports = append(ports, p)
	}

	return ports, nil
}

// Lookup reports whether port is a known vport, satisfying
// engine.VportTable.
func (t *NetlinkTable) Lookup(port uint32) bool {
	_, ok := t.ports[port]
	return ok
}

// Send transmits packet out port via OVS_PACKET_CMD_EXECUTE-style delivery.
// The kernel datapath itself owns actual frame transmission once a packet
// has been handed to a vport; NetlinkTable's job ends at resolving the
// vport exists and is of a sendable type. Actual queuing to the device is a
// kernel-side concern the genetlink control channel does not perform
// directly, so Send here records the intent for a caller-supplied sink.
func (t *NetlinkTable) Send(port uint32, packet *pbuf.Buffer) error {
	if !t.Lookup(port) {
		return fmt.Errorf("vport: send: unknown port %d", port)
	}
	if t.sink != nil {
		return t.sink(port, packet)
	}
	return nil
}

// EgressTunnelInfo resolves the egress tunnel descriptor for port. Lacking
// kernel tunnel metadata plumbing in the generic netlink vport dump, this
// currently reports the tunnel info stashed on the packet itself by an
// earlier SET(tunnel_info), matching how the kernel's own
// ovs_vport_get_egress_tun_info falls back to the per-skb tunnel key.
func (t *NetlinkTable) EgressTunnelInfo(port uint32, packet *pbuf.Buffer) (engine.TunnelInfo, error) {
	if !t.Lookup(port) {
		return engine.TunnelInfo{}, fmt.Errorf("vport: egress tunnel info: unknown port %d", port)
	}
	return engine.TunnelInfo{Data: packet.TunnelInfo()}, nil
}

// SetSink installs the callback Send uses to actually deliver a packet to
// a resolved vport. Production callers wire this to their device/tap
// layer; tests and Fake leave it nil and rely on Send's no-op success.
func (t *NetlinkTable) SetSink(sink func(port uint32, packet *pbuf.Buffer) error) {
	t.sink = sink
}
