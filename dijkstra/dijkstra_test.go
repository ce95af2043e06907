// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dijkstra

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/keyq"
)

func TestFrom(t *testing.T) {
	g := AdjacencyList[string, uint]{
		"A": {{To: "B", Weight: 7}, {To: "C", Weight: 9}, {To: "F", Weight: 14}},
		"B": {{To: "C", Weight: 10}, {To: "D", Weight: 15}},
		"C": {{To: "D", Weight: 11}, {To: "F", Weight: 2}},
		"D": {{To: "E", Weight: 6}},
		"E": nil,
		"F": {{To: "E", Weight: 9}},
	}

	p, err := From(g, "A")
	require.NoErrorf(t, err, "From(%T, %q)", g, "A")

	wantDist := map[string]uint{"A": 0, "B": 7, "C": 9, "D": 20, "E": 20, "F": 11}
	gotDist := make(map[string]uint)
	for _, n := range g.Nodes() {
		d, ok := p.DistTo(n)
		require.Truef(t, ok, "%T.DistTo(%q)", p, n)
		gotDist[n] = d
	}
	if diff := cmp.Diff(wantDist, gotDist); diff != "" {
		t.Errorf("%T.DistTo() of every node; diff (-want +got):\n%s", p, diff)
	}

	// Every shortest path in this graph is unique, so the predecessor
	// chains are fully determined.
	wantPath := map[string][]string{
		"A": {"A"},
		"B": {"A", "B"},
		"C": {"A", "C"},
		"D": {"A", "C", "D"},
		"E": {"A", "C", "F", "E"},
		"F": {"A", "C", "F"},
	}
	for n, want := range wantPath {
		got, ok := p.PathTo(n)
		require.Truef(t, ok, "%T.PathTo(%q)", p, n)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%T.PathTo(%q); diff (-want +got):\n%s", p, n, diff)
		}
	}
}

func TestRelaxationReroutes(t *testing.T) {
	// B's direct edge is beaten by the longer hop through C, so B has to be
	// reprioritised while already queued.
	g := AdjacencyList[string, uint64]{
		"A": {{To: "B", Weight: 4}, {To: "C", Weight: 2}},
		"B": nil,
		"C": {{To: "B", Weight: 1}},
	}

	p, err := From(g, "A")
	require.NoErrorf(t, err, "From(%T, %q)", g, "A")

	d, ok := p.DistTo("B")
	require.Truef(t, ok, "%T.DistTo(%q)", p, "B")
	assert.Equalf(t, uint64(3), d, "%T.DistTo(%q)", p, "B")

	path, ok := p.PathTo("B")
	require.Truef(t, ok, "%T.PathTo(%q)", p, "B")
	if diff := cmp.Diff([]string{"A", "C", "B"}, path); diff != "" {
		t.Errorf("%T.PathTo(%q); diff (-want +got):\n%s", p, "B", diff)
	}
}

func TestUnknownSource(t *testing.T) {
	g := AdjacencyList[string, uint64]{"A": nil}
	_, err := From(g, "Z")
	require.ErrorIsf(t, err, ErrUnknownSource, "From(%T, %q)", g, "Z")
}

type duplicated struct{}

func (duplicated) Nodes() []string                         { return []string{"x", "x"} }
func (duplicated) Neighbors(string) []Edge[string, uint64] { return nil }

func TestDuplicateNodes(t *testing.T) {
	_, err := From[string, uint64](duplicated{}, "x")
	require.ErrorIsf(t, err, keyq.ErrAlreadyQueued, "From() of graph repeating a node")
}

func TestUnreachable(t *testing.T) {
	g := AdjacencyList[string, uint64]{
		"A":      {{To: "B", Weight: 1}},
		"B":      nil,
		"island": nil,
	}

	p, err := From(g, "A")
	require.NoErrorf(t, err, "From(%T, %q)", g, "A")

	for _, n := range []string{"island", "not-a-node"} {
		if d, ok := p.DistTo(n); ok {
			t.Errorf("%T.DistTo(%q) got (%d, true); want ok == false", p, n, d)
		}
		if path, ok := p.PathTo(n); ok {
			t.Errorf("%T.PathTo(%q) got (%v, true); want ok == false", p, n, path)
		}
	}
}

func TestZeroWeightEdges(t *testing.T) {
	g := AdjacencyList[string, uint64]{
		"A": {{To: "B", Weight: 0}},
		"B": {{To: "C", Weight: 0}},
		"C": nil,
	}

	p, err := From(g, "A")
	require.NoErrorf(t, err, "From(%T, %q)", g, "A")

	for _, n := range []string{"A", "B", "C"} {
		d, ok := p.DistTo(n)
		require.Truef(t, ok, "%T.DistTo(%q)", p, n)
		assert.Zerof(t, d, "%T.DistTo(%q)", p, n)
	}
	path, ok := p.PathTo("C")
	require.Truef(t, ok, "%T.PathTo(%q)", p, "C")
	if diff := cmp.Diff([]string{"A", "B", "C"}, path); diff != "" {
		t.Errorf("%T.PathTo(%q); diff (-want +got):\n%s", p, "C", diff)
	}
}

func TestSaturatedDistances(t *testing.T) {
	// uint8 weights keep the saturation point small. A distance that edges
	// up to the maximum of W is indistinguishable from unreached, so all
	// three of C, D and F are reported unreachable.
	g := AdjacencyList[string, uint8]{
		"A": {{To: "B", Weight: 200}, {To: "D", Weight: 255}, {To: "E", Weight: 100}},
		"B": {{To: "C", Weight: 100}}, // 200+100 overflows uint8
		"C": nil,
		"D": nil,
		"E": {{To: "F", Weight: 155}}, // 100+155 is exactly the sentinel
		"F": nil,
	}

	p, err := From(g, "A")
	require.NoErrorf(t, err, "From(%T, %q)", g, "A")

	for n, want := range map[string]uint8{"A": 0, "B": 200, "E": 100} {
		got, ok := p.DistTo(n)
		require.Truef(t, ok, "%T.DistTo(%q)", p, n)
		assert.Equalf(t, want, got, "%T.DistTo(%q)", p, n)
	}
	for _, n := range []string{"C", "D", "F"} {
		if d, ok := p.DistTo(n); ok {
			t.Errorf("%T.DistTo(%q) got (%d, true); want ok == false", p, n, d)
		}
	}
}

func TestIDNodes(t *testing.T) {
	// Nodes only need to be comparable, not ordered; routing over opaque
	// 32-byte identifiers must work unchanged.
	var (
		a = ids.GenerateTestID()
		b = ids.GenerateTestID()
		c = ids.GenerateTestID()
		d = ids.GenerateTestID()
	)
	g := AdjacencyList[ids.ID, uint64]{
		a: {{To: b, Weight: 5}, {To: c, Weight: 1}},
		b: {{To: d, Weight: 1}},
		c: {{To: b, Weight: 2}},
		d: nil,
	}

	p, err := From(g, a)
	require.NoErrorf(t, err, "From(%T, source)", g)

	for n, want := range map[ids.ID]uint64{a: 0, b: 3, c: 1, d: 4} {
		got, ok := p.DistTo(n)
		require.Truef(t, ok, "%T.DistTo(%s)", p, n)
		assert.Equalf(t, want, got, "%T.DistTo(%s)", p, n)
	}

	path, ok := p.PathTo(d)
	require.Truef(t, ok, "%T.PathTo(%s)", p, d)
	if diff := cmp.Diff([]ids.ID{a, c, b, d}, path); diff != "" {
		t.Errorf("%T.PathTo(%s); diff (-want +got):\n%s", p, d, diff)
	}
}
