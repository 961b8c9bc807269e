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

package vport

import (
	"fmt"
	"os"
	"testing"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/genetlink/genltest"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/ovswitchdp/actionengine/internal/ovsh"
	"github.com/ovswitchdp/actionengine/pbuf"
)

func familyMessages(families []string) []genetlink.Message {
	msgs := make([]genetlink.Message, 0, len(families))
	var id uint16
	for _, f := range families {
		msgs = append(msgs, genetlink.Message{
			Data: mustMarshalAttributes([]netlink.Attribute{
				{Type: unix.CTRL_ATTR_FAMILY_ID, Data: nlenc.Uint16Bytes(id)},
				{Type: unix.CTRL_ATTR_FAMILY_NAME, Data: nlenc.Bytes(f)},
			}),
		})
		id++
	}
	return msgs
}

func ovsFamilies(fn genltest.Func) genltest.Func {
	return func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		if nreq.Header.Type == unix.GENL_ID_CTRL && greq.Header.Command == unix.CTRL_CMD_GETFAMILY {
			return familyMessages([]string{ovsh.VportFamily}), nil
		}
		return fn(greq, nreq)
	}
}

func mustMarshalAttributes(attrs []netlink.Attribute) []byte {
	b, err := netlink.MarshalAttributes(attrs)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal attributes: %v", err))
	}
	return b
}

func TestNewNetlinkTableNoFamiliesIsNotExist(t *testing.T) {
	conn := genltest.Dial(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		return familyMessages([]string{"TASKSTATS"}), nil
	})

	_, err := newNetlinkTable(conn, 0)
	if !os.IsNotExist(err) {
		t.Fatalf("expected is-not-exist error, got: %v", err)
	}
}

func TestNewNetlinkTableResolvesFamily(t *testing.T) {
	conn := genltest.Dial(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		return familyMessages([]string{ovsh.VportFamily}), nil
	})

	table, err := newNetlinkTable(conn, 5)
	if err != nil {
		t.Fatalf("newNetlinkTable: %v", err)
	}
	if table.dpIfindex != 5 {
		t.Fatalf("dpIfindex = %d, want 5", table.dpIfindex)
	}
}

func TestRefreshPopulatesPortsFromDump(t *testing.T) {
	conn := genltest.Dial(ovsFamilies(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		if greq.Header.Command != ovsh.VportCmdGet {
			t.Fatalf("unexpected command: %d", greq.Header.Command)
		}
		return []genetlink.Message{
			{
				Data: append(headerBytes(ovsh.Header{Ifindex: 5}), mustMarshalAttributes([]netlink.Attribute{
					{Type: ovsh.VportAttrPortNo, Data: nlenc.Uint32Bytes(1)},
					{Type: ovsh.VportAttrType, Data: nlenc.Uint32Bytes(100)},
					{Type: ovsh.VportAttrName, Data: nlenc.Bytes("eth0")},
					{Type: ovsh.VportAttrUpcallPid, Data: nlenc.Uint32Bytes(42)},
				})...),
			},
			{
				Data: append(headerBytes(ovsh.Header{Ifindex: 5}), mustMarshalAttributes([]netlink.Attribute{
					{Type: ovsh.VportAttrPortNo, Data: nlenc.Uint32Bytes(2)},
					{Type: ovsh.VportAttrName, Data: nlenc.Bytes("eth1")},
				})...),
			},
		}, nil
	}))

	table, err := newNetlinkTable(conn, 5)
	if err != nil {
		t.Fatalf("newNetlinkTable: %v", err)
	}

	if err := table.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if !table.Lookup(1) || !table.Lookup(2) {
		t.Fatalf("expected ports 1 and 2 to be known")
	}
	if table.Lookup(3) {
		t.Fatalf("port 3 should be unknown")
	}
	if table.ports[1].Name != "eth0" || table.ports[1].UpcallPID != 42 {
		t.Fatalf("port 1 = %+v, want name eth0 upcall_pid 42", table.ports[1])
	}
}

func TestSendUnknownPortFails(t *testing.T) {
	conn := genltest.Dial(ovsFamilies(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		return nil, nil
	}))
	table, err := newNetlinkTable(conn, 0)
	if err != nil {
		t.Fatalf("newNetlinkTable: %v", err)
	}

	if err := table.Send(9, pbuf.New([]byte{0}, pbuf.EtherTypeIPv4, pbuf.CsumNone)); err == nil {
		t.Fatalf("expected an error sending to an unresolved port")
	}
}

func TestSendUsesInstalledSink(t *testing.T) {
	conn := genltest.Dial(ovsFamilies(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		return nil, nil
	}))
	table, err := newNetlinkTable(conn, 0)
	if err != nil {
		t.Fatalf("newNetlinkTable: %v", err)
	}
	table.ports[1] = Port{PortNo: 1}

	var gotPort uint32
	table.SetSink(func(port uint32, packet *pbuf.Buffer) error {
		gotPort = port
		return nil
	})

	buf := pbuf.New([]byte{0xaa}, pbuf.EtherTypeIPv4, pbuf.CsumNone)
	if err := table.Send(1, buf); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotPort != 1 {
		t.Fatalf("sink saw port %d, want 1", gotPort)
	}
}

func TestEgressTunnelInfoReadsStashedTunnel(t *testing.T) {
	conn := genltest.Dial(ovsFamilies(func(greq genetlink.Message, nreq netlink.Message) ([]genetlink.Message, error) {
		return nil, nil
	}))
	table, err := newNetlinkTable(conn, 0)
	if err != nil {
		t.Fatalf("newNetlinkTable: %v", err)
	}
	table.ports[1] = Port{PortNo: 1}

	buf := pbuf.New([]byte{0xaa}, pbuf.EtherTypeIPv4, pbuf.CsumNone)
	buf.SetTunnelInfo([]byte{1, 2, 3})

	info, err := table.EgressTunnelInfo(1, buf)
	if err != nil {
		t.Fatalf("EgressTunnelInfo: %v", err)
	}
	if string(info.Data) != "\x01\x02\x03" {
		t.Fatalf("Data = %x, want 010203", info.Data)
	}
}
