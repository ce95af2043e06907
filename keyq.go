// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keyq provides a priority queue with keyed random access: items can
// be looked up, reprioritised, replaced and removed by identity while
// enqueued, without the remove-and-reinsert round trip a plain heap
// requires. This is the access pattern of shortest-path relaxation and of
// event-driven simulation, both of which repeatedly ask "where is item X
// now?" and "move item X to priority p".
package keyq

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

var (
	// ErrAlreadyQueued is returned when the queue already holds an item with
	// the same identity.
	ErrAlreadyQueued = errors.New("item already queued")
	// ErrNotQueued is returned when an operation requires an item that the
	// queue does not hold.
	ErrNotQueued = errors.New("item not queued")
)

// An Order selects which end of the priority range a [Queue] pops first. It
// is fixed at construction for the lifetime of the queue.
type Order uint8

const (
	// MinFirst pops the smallest priority first.
	MinFirst Order = iota
	// MaxFirst pops the largest priority first.
	MaxFirst
)

func (o Order) String() string {
	switch o {
	case MinFirst:
		return "min_first"
	case MaxFirst:
		return "max_first"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// A Queue is a priority queue over (priority, item) pairs, indexed by item
// identity. Identity is Go equality of `F`; for pointer types this is
// pointer identity. The index makes [Queue.Has] and [Queue.Priority] O(1)
// and [Queue.Update], [Queue.Replace] and [Queue.Remove] O(log n), none of
// which a plain heap can better than O(n).
//
// Items are borrowed, not owned: the queue never mutates them, and the
// fields feeding an item's equality MUST NOT change while it is enqueued
// except via [Queue.Replace], as the index would silently decouple from the
// heap.
//
// A Queue is not thread safe nor is the zero value valid; use [New].
type Queue[P constraints.Ordered, F comparable] struct {
	order Order
	heap  []entry[P, F]
	// pos maps each queued item to its current heap slot. Only [Queue.swap]
	// and [Queue.popAt] write to both structures; everything else composes
	// them, which is what keeps the two in lockstep.
	pos map[F]int
}

type entry[P constraints.Ordered, F comparable] struct {
	priority P
	item     F
}

// Clone returns a deep copy of the queue; the copy and the original can
// then be mutated independently.
func (q *Queue[P, F]) Clone() *Queue[P, F] {
	return &Queue[P, F]{
		order: q.order,
		heap:  slices.Clone(q.heap),
		pos:   maps.Clone(q.pos),
	}
}

// New returns an empty queue that pops in the given [Order].
func New[P constraints.Ordered, F comparable](o Order) *Queue[P, F] {
	return &Queue[P, F]{
		order: o,
		pos:   make(map[F]int),
	}
}

// Len returns the number of items in the queue.
func (q *Queue[P, F]) Len() int {
	return len(q.heap)
}

// Has reports whether the queue holds the item.
func (q *Queue[P, F]) Has(item F) bool {
	_, ok := q.pos[item]
	return ok
}

// Priority returns the priority at which the item is queued, or false if it
// is not queued.
func (q *Queue[P, F]) Priority(item F) (P, bool) {
	i, ok := q.pos[item]
	if !ok {
		return zero[P](), false
	}
	return q.heap[i].priority, true
}

// Push queues the item at the given priority. It returns [ErrAlreadyQueued]
// if the queue already holds the item's identity: overwriting the index
// entry would strand the previous heap slot, unreachable by lookup, so the
// collision is rejected instead.
func (q *Queue[P, F]) Push(priority P, item F) error {
	if _, ok := q.pos[item]; ok {
		return ErrAlreadyQueued
	}
	q.heap = append(q.heap, entry[P, F]{priority: priority, item: item})
	q.pos[item] = len(q.heap) - 1
	q.up(len(q.heap) - 1)
	return nil
}

// Pop removes and returns the best (priority, item) pair: the minimum
// priority of a [MinFirst] queue, the maximum of a [MaxFirst] one. It is
// false if the queue is empty.
func (q *Queue[P, F]) Pop() (P, F, bool) {
	if len(q.heap) == 0 {
		return zero[P](), zero[F](), false
	}
	e := q.popAt(0)
	return e.priority, e.item, true
}

// Peek returns what [Queue.Pop] would, without removing it.
func (q *Queue[P, F]) Peek() (P, F, bool) {
	if len(q.heap) == 0 {
		return zero[P](), zero[F](), false
	}
	return q.heap[0].priority, q.heap[0].item, true
}

// Update changes the priority of a queued item in place. It returns
// [ErrNotQueued], leaving the queue untouched, if the item is not queued.
func (q *Queue[P, F]) Update(priority P, item F) error {
	i, ok := q.pos[item]
	if !ok {
		return ErrNotQueued
	}
	old := q.heap[i].priority
	q.heap[i].priority = priority
	// A single-slot change can break the invariant in only one direction:
	// an entry made worse can only need to move down, one made better only
	// up.
	if q.better(old, priority) {
		q.down(i)
	} else {
		q.up(i)
	}
	return nil
}

// Replace hands the heap slot and priority of `old` over to `new`,
// repointing the index, for when an item's identity changes but its place
// in the queue should not. It returns [ErrNotQueued] if `old` is not queued
// and [ErrAlreadyQueued] if `new` already is (the same index collision
// rejected by [Queue.Push]). Replacing an item with itself is a no-op.
func (q *Queue[P, F]) Replace(old, new F) error {
	i, ok := q.pos[old]
	if !ok {
		return ErrNotQueued
	}
	if old == new {
		return nil
	}
	if _, ok := q.pos[new]; ok {
		return ErrAlreadyQueued
	}
	q.heap[i].item = new
	delete(q.pos, old)
	q.pos[new] = i
	return nil
}

// Remove takes the item out of the queue, wherever it currently is,
// returning the priority it was queued at. It is false, and the queue is
// untouched, if the item is not queued.
func (q *Queue[P, F]) Remove(item F) (P, bool) {
	i, ok := q.pos[item]
	if !ok {
		return zero[P](), false
	}
	return q.popAt(i).priority, true
}

// Grow increases the queue's allocated buffer to hold up to `n` items. This
// does not place a limit on the size of the queue, but pre-allocates
// memory.
func (q *Queue[P, F]) Grow(n int) {
	if extra := n - len(q.heap); extra > 0 {
		q.heap = slices.Grow(q.heap, extra)
	}
}

// Clear removes all items. The allocated buffer is retained.
func (q *Queue[P, F]) Clear() {
	clear(q.heap) // drop item references held beyond the new length
	q.heap = q.heap[:0]
	clear(q.pos)
}
