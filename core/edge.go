// Package core: the immutable Edge type.
//
// An Edge is a set of ≥1 distinct vertices, optionally tagged with one
// designated head vertex that must be a member. Two edges are equal iff
// their vertex sets are equal AND their heads are equal (including both
// absent): the same vertex set with and without a head are two distinct
// edges. Identity is realized through a canonical string key built from
// the sorted, quoted members, so edges can live in plain Go maps.

package core

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Edge is an immutable labeled set of vertices, optionally with a head.
// The zero value is an empty edge and is rejected by every Hypergraph
// operation; construct edges with NewEdge or NewDirectedEdge.
type Edge[V cmp.Ordered] struct {
	members []V // sorted ascending, deduplicated; never mutated after construction
	head    *V
	key     string
}

// NewEdge builds an undirected edge from one or more vertices.
// Duplicate vertices are collapsed (set semantics).
// Returns ErrEmptyEdge when no vertices are given.
// Complexity: O(n log n) for the canonical sort.
func NewEdge[V cmp.Ordered](vertices ...V) (Edge[V], error) {
	members, err := canonicalMembers(vertices)
	if err != nil {
		return Edge[V]{}, err
	}

	return Edge[V]{members: members, key: edgeKey(members, (*V)(nil))}, nil
}

// NewDirectedEdge builds a directed edge with the given head vertex.
// The head must be among the vertices (ErrHeadNotMember otherwise).
// Returns ErrEmptyEdge when no vertices are given.
// Complexity: O(n log n).
func NewDirectedEdge[V cmp.Ordered](head V, vertices ...V) (Edge[V], error) {
	members, err := canonicalMembers(vertices)
	if err != nil {
		return Edge[V]{}, err
	}
	if _, ok := slices.BinarySearch(members, head); !ok {
		return Edge[V]{}, fmt.Errorf("%w: %v", ErrHeadNotMember, head)
	}
	h := head

	return Edge[V]{members: members, head: &h, key: edgeKey(members, &h)}, nil
}

// Vertices returns a sorted copy of the member set.
func (e Edge[V]) Vertices() []V {
	return slices.Clone(e.members)
}

// Head returns the designated head vertex and whether one is set.
func (e Edge[V]) Head() (V, bool) {
	if e.head == nil {
		var zero V
		return zero, false
	}

	return *e.head, true
}

// Tail returns the member set minus the head; the full member set when
// no head is set.
func (e Edge[V]) Tail() []V {
	if e.head == nil {
		return slices.Clone(e.members)
	}
	tail := make([]V, 0, len(e.members)-1)
	for _, m := range e.members {
		if m != *e.head {
			tail = append(tail, m)
		}
	}

	return tail
}

// Contains reports whether v is a member of the edge.
func (e Edge[V]) Contains(v V) bool {
	_, ok := slices.BinarySearch(e.members, v)

	return ok
}

// Len returns the number of distinct vertices in the edge.
func (e Edge[V]) Len() int { return len(e.members) }

// Directed reports whether the edge carries a head vertex.
func (e Edge[V]) Directed() bool { return e.head != nil }

// Key returns the canonical identity of the edge. Two edges are equal
// iff their keys are equal; the key is stable across processes.
func (e Edge[V]) Key() string { return e.key }

// Equal reports whether e and other have the same vertex set and head.
func (e Edge[V]) Equal(other Edge[V]) bool { return e.key == other.key }

// String renders the edge as {v1, v2, ...} with an optional ->head suffix.
func (e Edge[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range e.members {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", m)
	}
	sb.WriteByte('}')
	if e.head != nil {
		fmt.Fprintf(&sb, "->%v", *e.head)
	}

	return sb.String()
}

// canonicalMembers sorts and deduplicates the vertex list, rejecting an
// empty input with ErrEmptyEdge.
func canonicalMembers[V cmp.Ordered](vertices []V) ([]V, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyEdge
	}
	members := slices.Clone(vertices)
	slices.Sort(members)

	return slices.Compact(members), nil
}

// edgeKey builds the canonical key: quoted sorted members joined by ',',
// followed by '>' plus the quoted head when one is set. Quoting makes
// the encoding injective for any vertex type.
func edgeKey[V cmp.Ordered](members []V, head *V) string {
	var sb strings.Builder
	for i, m := range members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(fmt.Sprint(m)))
	}
	if head != nil {
		sb.WriteByte('>')
		sb.WriteString(strconv.Quote(fmt.Sprint(*head)))
	}

	return sb.String()
}
