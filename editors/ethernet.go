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

// Package editors implements the per-protocol header mutators the action
// interpreter dispatches to: Ethernet, VLAN, MPLS, IPv4, IPv6, TCP, UDP,
// and SCTP, each keeping the packet's checksum and flow key consistent
// with the bytes it just wrote (spec.md section 4).
package editors

import (
	"github.com/ovswitchdp/actionengine/checksum"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// SetEthernetAddrs overwrites the source and destination MAC addresses,
// per spec.md section 4.3.
func SetEthernetAddrs(buf *pbuf.Buffer, key *flowkey.Key, src, dst [6]byte) error {
	if err := buf.EnsureWritable(buf.MACHeader() + 14); err != nil {
		return err
	}

	eth, err := buf.Ethernet()
	if err != nil {
		return err
	}

	var old [12]byte
	copy(old[0:6], eth.Dst())
	copy(old[6:12], eth.Src())

	copy(eth.Dst(), dst[:])
	copy(eth.Src(), src[:])

	if buf.CsumMode() == pbuf.CsumComplete {
		var updated [12]byte
		copy(updated[0:6], dst[:])
		copy(updated[6:12], src[:])

		c := checksum.RunningSumSub(buf.Csum(), old[:])
		c = checksum.RunningSumAdd(c, updated[:])
		buf.SetCsum(c)
	}

	key.Eth.Dst = dst
	key.Eth.Src = src
	return nil
}
