// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dijkstra computes single-source shortest paths over
// non-negatively weighted graphs.
//
// The implementation is the classic decrease-key formulation: every node
// sits in a [keyq.Queue] keyed by its best known distance, and relaxing an
// edge is an in-place [keyq.Queue.Update] of the far node rather than a
// remove-and-reinsert.
package dijkstra

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ava-labs/keyq"
	"github.com/ava-labs/keyq/intmath"
)

// ErrUnknownSource is returned by [From] when the source is not a node of
// the graph.
var ErrUnknownSource = errors.New("source not in graph")

// An Edge is a directed connection to a node. Weights are unsigned, which
// is what makes greedy relaxation correct.
type Edge[N comparable, W constraints.Unsigned] struct {
	To     N
	Weight W
}

// A Graph presents its node set and each node's outgoing edges. Nodes MUST
// be distinct; edges to nodes not returned by Nodes are ignored.
type Graph[N comparable, W constraints.Unsigned] interface {
	Nodes() []N
	Neighbors(N) []Edge[N, W]
}

// unreached is the distance of a node before relaxation reaches it. Path
// lengths saturate here (see [intmath.BoundedAdd]) so a node whose true
// distance would be at least this is indistinguishable from an unreachable
// one.
func unreached[W constraints.Unsigned]() W {
	return ^W(0)
}

// Paths is the result of [From]: shortest distances from a single source,
// and the predecessor tree to walk them back.
type Paths[N comparable, W constraints.Unsigned] struct {
	source N
	dist   map[N]W
	prev   map[N]N
}

// From computes the shortest path from `source` to every reachable node of
// `g`.
func From[N comparable, W constraints.Unsigned](g Graph[N, W], source N) (*Paths[N, W], error) {
	nodes := g.Nodes()
	if !slices.Contains(nodes, source) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSource, source)
	}

	q := keyq.New[W, N](keyq.MinFirst)
	q.Grow(len(nodes))
	for _, n := range nodes {
		d := unreached[W]()
		if n == source {
			d = 0
		}
		if err := q.Push(d, n); err != nil {
			return nil, fmt.Errorf("seeding node %v: %w", n, err)
		}
	}

	p := &Paths[N, W]{
		source: source,
		dist:   make(map[N]W, len(nodes)),
		prev:   make(map[N]N),
	}
	for {
		d, u, ok := q.Pop()
		if !ok || d == unreached[W]() {
			// Anything still queued is unreachable from the source.
			return p, nil
		}
		p.dist[u] = d

		for _, e := range g.Neighbors(u) {
			alt := intmath.BoundedAdd(d, e.Weight, unreached[W]())
			// A node absent from the queue is either finalised or not in
			// the graph; either way it is not a relaxation candidate.
			known, queued := q.Priority(e.To)
			if !queued || alt >= known {
				continue
			}
			if err := q.Update(alt, e.To); err != nil {
				return nil, fmt.Errorf("relaxing %v->%v: %w", u, e.To, err)
			}
			p.prev[e.To] = u
		}
	}
}

// DistTo returns the length of the shortest path from the source to `n`,
// or false if `n` was unreachable (or not a node of the graph).
func (p *Paths[N, W]) DistTo(n N) (W, bool) {
	d, ok := p.dist[n]
	return d, ok
}

// PathTo returns the nodes of the shortest path from the source to `n`,
// inclusive of both endpoints, or false if `n` was unreachable. Ties
// between equal-length paths resolve arbitrarily but consistently with
// [Paths.DistTo].
func (p *Paths[N, W]) PathTo(n N) ([]N, bool) {
	if _, ok := p.dist[n]; !ok {
		return nil, false
	}
	var path []N
	for at := n; ; at = p.prev[at] {
		path = append(path, at)
		if at == p.source {
			break
		}
	}
	slices.Reverse(path)
	return path, true
}

// An AdjacencyList is a map-backed [Graph]. A node exists i.f.f. it has a
// key, so a sink node needs an explicit nil edge slice.
type AdjacencyList[N comparable, W constraints.Unsigned] map[N][]Edge[N, W]

var _ Graph[string, uint64] = AdjacencyList[string, uint64](nil)

// Nodes returns the keys of the map in unspecified order.
func (a AdjacencyList[N, W]) Nodes() []N {
	return slices.Collect(maps.Keys(a))
}

// Neighbors returns the edges out of `n`.
func (a AdjacencyList[N, W]) Neighbors(n N) []Edge[N, W] {
	return a[n]
}
