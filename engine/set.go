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

package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/ovswitchdp/actionengine/actions"
	"github.com/ovswitchdp/actionengine/editors"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/internal/ovsh"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// doSet dispatches a SET action's single nested keyed field to the
// matching header editor or packet metadata field, per spec.md sections
// 4.3-4.6.
func doSet(buf *pbuf.Buffer, key *flowkey.Key, a actions.Action) error {
	tag, data, err := a.Set()
	if err != nil {
		return err
	}

	switch uint16(tag) {
	case ovsh.KeyAttrPriority:
		if len(data) != 4 {
			return fmt.Errorf("engine: set priority: bad length %d", len(data))
		}
		v := binary.LittleEndian.Uint32(data)
		buf.SetPriority(v)
		key.Phy.Priority = v

	case ovsh.KeyAttrSkbMark:
		if len(data) != 4 {
			return fmt.Errorf("engine: set skb_mark: bad length %d", len(data))
		}
		v := binary.LittleEndian.Uint32(data)
		buf.SetSkbMark(v)
		key.Phy.SkbMark = v

	case ovsh.KeyAttrTunnel:
		buf.SetTunnelInfo(data)

	case ovsh.KeyAttrEthernet:
		if len(data) != 12 {
			return fmt.Errorf("engine: set ethernet: bad length %d", len(data))
		}
		var src, dst [6]byte
		copy(src[:], data[0:6])
		copy(dst[:], data[6:12])
		return editors.SetEthernetAddrs(buf, key, src, dst)

	case ovsh.KeyAttrIpv4:
		if len(data) != 12 {
			return fmt.Errorf("engine: set ipv4: bad length %d", len(data))
		}
		var src, dst [4]byte
		copy(src[:], data[0:4])
		copy(dst[:], data[4:8])
		tos, ttl := data[9], data[10]
		if err := editors.SetIPv4Addrs(buf, key, src, dst); err != nil {
			return err
		}
		if err := editors.SetIPv4TOS(buf, key, tos); err != nil {
			return err
		}
		return editors.SetIPv4TTL(buf, key, ttl)

	case ovsh.KeyAttrIpv6:
		if len(data) != 40 {
			return fmt.Errorf("engine: set ipv6: bad length %d", len(data))
		}
		var src, dst [16]byte
		copy(src[:], data[0:16])
		copy(dst[:], data[16:32])
		label := binary.BigEndian.Uint32(data[32:36])
		tclass := data[37]
		hlimit := data[38]
		if err := editors.SetIPv6Addrs(buf, key, src, dst); err != nil {
			return err
		}
		if err := editors.SetIPv6TrafficClassFlowLabel(buf, key, tclass, label); err != nil {
			return err
		}
		return editors.SetIPv6HopLimit(buf, key, hlimit)

	case ovsh.KeyAttrTcp:
		if len(data) != 4 {
			return fmt.Errorf("engine: set tcp: bad length %d", len(data))
		}
		src := binary.BigEndian.Uint16(data[0:2])
		dst := binary.BigEndian.Uint16(data[2:4])
		return editors.SetTCPPorts(buf, key, src, dst)

	case ovsh.KeyAttrUdp:
		if len(data) != 4 {
			return fmt.Errorf("engine: set udp: bad length %d", len(data))
		}
		src := binary.BigEndian.Uint16(data[0:2])
		dst := binary.BigEndian.Uint16(data[2:4])
		return editors.SetUDPPorts(buf, key, src, dst)

	case ovsh.KeyAttrSctp:
		if len(data) != 4 {
			return fmt.Errorf("engine: set sctp: bad length %d", len(data))
		}
		src := binary.BigEndian.Uint16(data[0:2])
		dst := binary.BigEndian.Uint16(data[2:4])
		return editors.SetSCTPPorts(buf, key, src, dst)

	case ovsh.KeyAttrMpls:
		if len(data) != 4 {
			return fmt.Errorf("engine: set mpls: bad length %d", len(data))
		}
		lse := binary.BigEndian.Uint32(data)
		return editors.SetMPLS(buf, key, lse, 0xffffffff)

	default:
		return fmt.Errorf("engine: unsupported set target %d", tag)
	}
	return nil
}
