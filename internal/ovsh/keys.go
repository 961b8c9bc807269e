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

package ovsh

// The flow-key payload structs below mirror the kernel's ovs_key_* structs
// from openvswitch.h. They were never generated into struct.go here, but
// ovsnl/flow.go already names their fields in commented-out code
// (ip4.Proto, ip4.Src, ip4.Dst, ip6.Src as [4]uint32, ...); this file
// supplies the structs that code was written against.

// KeyEthernet mirrors struct ovs_key_ethernet.
type KeyEthernet struct {
	Src [6]byte
	Dst [6]byte
}

// KeyIPv4 mirrors struct ovs_key_ipv4.
type KeyIPv4 struct {
	Src   uint32
	Dst   uint32
	Proto uint8
	Tos   uint8
	Ttl   uint8
	Frag  uint8
}

// KeyIPv6 mirrors struct ovs_key_ipv6.
type KeyIPv6 struct {
	Src    [4]uint32
	Dst    [4]uint32
	Label  uint32
	Proto  uint8
	Tclass uint8
	Hlimit uint8
	Frag   uint8
}

// KeyTCP mirrors struct ovs_key_tcp.
type KeyTCP struct {
	Src uint16
	Dst uint16
}

// KeyUDP mirrors struct ovs_key_udp.
type KeyUDP struct {
	Src uint16
	Dst uint16
}

// KeySCTP mirrors struct ovs_key_sctp.
type KeySCTP struct {
	Src uint16
	Dst uint16
}

// KeyMpls mirrors struct ovs_key_mpls.
type KeyMpls struct {
	Lse uint32
}

// KeyVlan mirrors the TCI half of a VLAN tag as carried in a flow key.
type KeyVlan struct {
	Tci uint16
}
