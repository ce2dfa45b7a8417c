// Package biconn types and error definitions: the Chain edge-list form
// and the unordered-pair set produced by the structural filter.
package biconn

import "errors"

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("biconn: graph is nil")

// Chain is one chain (ear) of a chain decomposition: a walk of edges given
// as (from, to) vertex pairs. The first chain discovered in each
// 2-edge-connected piece is a closed cycle (its walk returns to the start);
// every later chain is a path whose endpoints lie on earlier structure.
type Chain [][2]string

// pairKey is an unordered vertex pair in canonical (a ≤ b) order.
type pairKey struct {
	a, b string
}

// keyOf canonicalizes an unordered pair.
func keyOf(u, v string) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// PairSet is a set of unordered vertex pairs, used as the cyclable-edge
// mask: membership of (u, v) means some edge joining u and v lies on a
// cycle. The zero value is not usable; create with NewPairSet.
//
// PairSet satisfies the cover.EdgeFilter capability.
type PairSet map[pairKey]struct{}

// NewPairSet returns an empty PairSet.
func NewPairSet() PairSet {
	return make(PairSet)
}

// Add inserts the unordered pair (u, v).
func (s PairSet) Add(u, v string) {
	s[keyOf(u, v)] = struct{}{}
}

// Has reports membership of the unordered pair (u, v).
func (s PairSet) Has(u, v string) bool {
	_, ok := s[keyOf(u, v)]

	return ok
}

// Len returns the number of pairs in the set.
func (s PairSet) Len() int {
	return len(s)
}
