// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keyq

// better reports whether priority `a` pops before priority `b` under the
// queue's [Order]. Every ordering decision in the heap routes through here;
// nothing else inspects the Order.
func (q *Queue[P, F]) better(a, b P) bool {
	if q.order == MaxFirst {
		return a > b
	}
	return a < b
}

// swap exchanges the entries in slots i and j and repoints both index
// mappings. Entries MUST only move between slots via swap so that the index
// can never lag the heap.
func (q *Queue[P, F]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i].item] = i
	q.pos[q.heap[j].item] = j
}

// up restores the heap invariant on the path from slot i to the root, for
// use after the entry at i may have become better. Equal priorities do not
// move, so an updated entry never migrates past peers it ties with.
func (q *Queue[P, F]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.better(q.heap[i].priority, q.heap[parent].priority) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// down restores the heap invariant on a path from slot i towards the
// leaves, for use after the entry at i may have become worse. As in
// [Queue.up], only a strictly better child displaces its parent.
func (q *Queue[P, F]) down(i int) {
	for {
		child := 2*i + 1
		if child >= len(q.heap) {
			return
		}
		// Of two children the better one competes with the parent; ties
		// between equal children resolve to the right one.
		if r := child + 1; r < len(q.heap) && !q.better(q.heap[child].priority, q.heap[r].priority) {
			child = r
		}
		if !q.better(q.heap[child].priority, q.heap[i].priority) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// popAt removes and returns the entry in slot i, restoring the heap
// invariant. The standard swap-with-last trick means only the vacated slot
// needs re-sifting, in whichever direction the displaced entry demands; for
// the root (i == 0) the [Queue.up] call is a no-op.
func (q *Queue[P, F]) popAt(i int) entry[P, F] {
	last := len(q.heap) - 1
	q.swap(i, last)
	e := q.heap[last]
	q.heap[last] = entry[P, F]{} // avoid memory leak
	q.heap = q.heap[:last]
	delete(q.pos, e.item)
	if i < last {
		q.down(i)
		q.up(i)
	}
	return e
}

func zero[T any]() (z T) { return }
