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

package deferred

import (
	"errors"
	"testing"

	"github.com/ovswitchdp/actionengine/flowkey"
)

func TestQueueFIFOOrder(t *testing.T) {
	var q Queue

	for i := 0; i < 5; i++ {
		key := flowkey.Key{RecircID: uint32(i)}
		if err := q.Push(Entry{Key: key}); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	for i := 0; i < 5; i++ {
		e, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() at %d: ok = false", i)
		}
		if e.Key.RecircID != uint32(i) {
			t.Fatalf("Pop() at %d: RecircID = %d, want %d", i, e.Key.RecircID, i)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty queue: ok = true")
	}
}

func TestQueueFullAtCapacity(t *testing.T) {
	var q Queue

	for i := 0; i < Capacity; i++ {
		if err := q.Push(Entry{}); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	if !q.Full() {
		t.Fatalf("Full() = false at capacity %d", Capacity)
	}

	if err := q.Push(Entry{}); !errors.Is(err, ErrFull) {
		t.Fatalf("Push at capacity: err = %v, want ErrFull", err)
	}
}

func TestQueueWrapsAroundRingBuffer(t *testing.T) {
	var q Queue

	// Fill, drain half, refill: exercises the head wraparound.
	for i := 0; i < Capacity; i++ {
		_ = q.Push(Entry{Key: flowkey.Key{RecircID: uint32(i)}})
	}
	for i := 0; i < Capacity/2; i++ {
		q.Pop()
	}
	for i := Capacity; i < Capacity+Capacity/2; i++ {
		if err := q.Push(Entry{Key: flowkey.Key{RecircID: uint32(i)}}); err != nil {
			t.Fatalf("Push(%d) after wraparound: %v", i, err)
		}
	}

	want := Capacity / 2
	for i := 0; i < Capacity; i++ {
		e, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() at %d: ok = false", i)
		}
		if int(e.Key.RecircID) != want {
			t.Fatalf("Pop() at %d: RecircID = %d, want %d", i, e.Key.RecircID, want)
		}
		want++
	}
}
