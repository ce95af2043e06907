// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keyqtest provides test doubles and helpers for code exercising
// [keyq.Queue] instances.
package keyqtest

import (
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/ava-labs/keyq"
)

// Drain pops `q` until empty, returning the priorities and items in pop
// order.
func Drain[P constraints.Ordered, F comparable](q *keyq.Queue[P, F]) ([]P, []F) {
	ps := make([]P, 0, q.Len())
	fs := make([]F, 0, q.Len())
	for {
		p, f, ok := q.Pop()
		if !ok {
			return ps, fs
		}
		ps = append(ps, p)
		fs = append(fs, f)
	}
}

// RequireDrainsInOrder drains `q`, failing `tb` unless the popped priorities
// are monotone for `o`: non-decreasing under [keyq.MinFirst], non-increasing
// under [keyq.MaxFirst]. The drained sequences are returned for further
// assertions.
func RequireDrainsInOrder[P constraints.Ordered, F comparable](tb testing.TB, q *keyq.Queue[P, F], o keyq.Order) ([]P, []F) {
	tb.Helper()
	ps, fs := Drain(q)
	for i := 1; i < len(ps); i++ {
		prev, curr := ps[i-1], ps[i]
		misordered := prev > curr
		if o == keyq.MaxFirst {
			misordered = prev < curr
		}
		if misordered {
			tb.Fatalf("%v queue popped priority %v after %v (pop %d of %d)", o, curr, prev, i+1, len(ps))
		}
	}
	return ps, fs
}
