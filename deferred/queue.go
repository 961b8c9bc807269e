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

// Package deferred implements the per-CPU deferred action FIFO: actions
// that can't run to completion inline (SAMPLE's clone-and-defer path,
// RECIRC) are queued here and drained only once
// the outermost Execute call returns to depth zero, per spec.md section 5.
package deferred

import (
	"errors"
	"fmt"

	"github.com/ovswitchdp/actionengine/actions"
	"github.com/ovswitchdp/actionengine/flowkey"
	"github.com/ovswitchdp/actionengine/pbuf"
)

// Capacity is the fixed size of a Queue, matching the kernel datapath's
// per-CPU OVS_DEFERRED_ACTION_THRESHOLD.
const Capacity = 10

// ErrFull is returned by Push when the queue is already at Capacity. The
// caller (the interpreter) treats this as packet loss for that one
// deferred action rather than failing the whole Execute call.
var ErrFull = errors.New("deferred: queue full")

// Entry is one deferred action: a packet, the flow key describing it, and
// the action list to resume with. Actions is nil for a bare RECIRC entry
// (resumed by re-entering classification, not by running a nested list).
type Entry struct {
	Packet  *pbuf.Buffer
	Key     flowkey.Key
	Actions *actions.List
}

// Queue is a fixed-capacity FIFO of deferred Entry values. The zero value
// is ready to use. Not safe for concurrent use; one Queue belongs to
// exactly one Executor, itself bound to one CPU/goroutine, per spec.md
// section 5.
type Queue struct {
	entries [Capacity]Entry
	head    int
	count   int
}

// Len returns the number of entries currently queued.
func (q *Queue) Len() int { return q.count }

// Full reports whether the queue is at Capacity.
func (q *Queue) Full() bool { return q.count == Capacity }

// Push appends e to the queue. Returns ErrFull if the queue is already at
// Capacity.
func (q *Queue) Push(e Entry) error {
	if q.Full() {
		return fmt.Errorf("deferred: push: %w", ErrFull)
	}
	tail := (q.head + q.count) % Capacity
	q.entries[tail] = e
	q.count++
	return nil
}

// Pop removes and returns the oldest entry. ok is false if the queue is
// empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if q.count == 0 {
		return Entry{}, false
	}
	e = q.entries[q.head]
	q.entries[q.head] = Entry{}
	q.head = (q.head + 1) % Capacity
	q.count--
	return e, true
}
