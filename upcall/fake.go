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

package upcall

import (
	"github.com/ovswitchdp/actionengine/engine"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// Fake is an in-memory engine.Upcaller for tests: it records every call
// instead of touching netlink.
type Fake struct {
	Delivered []FakeUpcall
	Err       error
}

// FakeUpcall records one Upcall call observed by Fake.
type FakeUpcall struct {
	DP     uint32
	Packet []byte
	Key    flowkey.Key
	Info   engine.UpcallInfo
}

// Upcall implements engine.Upcaller.
func (f *Fake) Upcall(dp uint32, packet *pbuf.Buffer, key *flowkey.Key, info engine.UpcallInfo) error {
	if f.Err != nil {
		return f.Err
	}
	b := make([]byte, len(packet.Bytes()))
	copy(b, packet.Bytes())
	f.Delivered = append(f.Delivered, FakeUpcall{DP: dp, Packet: b, Key: *key, Info: info})
	return nil
}

var _ engine.Upcaller = (*Fake)(nil)
