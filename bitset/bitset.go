// Package bitset implements a fixed-capacity set of the byte-sized node
// ids used by the island graph. The storage is four inline machine
// words, so the set is a plain value with no heap allocation or
// indirection; the search engine performs a very large number of these
// operations on its hot path and a general resizable set measures out
// roughly an order of magnitude slower there.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Capacity is the number of representable elements, [0, Capacity).
const Capacity = 256

const numWords = Capacity / 64

// Set holds a subset of [0, 256). It is a value type; copies are
// independent and the zero value is the empty set.
type Set struct {
	words [numWords]uint64
}

// WithFirst returns {0}.
func WithFirst() Set {
	var s Set
	s.Insert(0)
	return s
}

// Of returns a set of the given elements.
func Of(elems ...uint8) Set {
	var s Set
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Contains reports whether e is a member.
func (s Set) Contains(e uint8) bool {
	return s.words[e>>6]&(1<<(e&63)) != 0
}

// Insert adds e to the set.
func (s *Set) Insert(e uint8) {
	s.words[e>>6] |= 1 << (e & 63)
}

// Len is the number of members.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s.words == [numWords]uint64{}
}

// SubsetOf reports whether every member of s is also in o.
func (s Set) SubsetOf(o Set) bool {
	for i, w := range s.words {
		if w&o.words[i] != w {
			return false
		}
	}
	return true
}

// UnionWith adds every member of o to s.
func (s *Set) UnionWith(o Set) {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
}

// IntersectWith removes every member of s not in o.
func (s *Set) IntersectWith(o Set) {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
}

// Without removes every member of o from s.
func (s *Set) Without(o Set) {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
}

// Union returns a ∪ b.
func Union(a, b Set) Set {
	a.UnionWith(b)
	return a
}

// Intersection returns a ∩ b.
func Intersection(a, b Set) Set {
	a.IntersectWith(b)
	return a
}

// CountCommon is |a ∩ b| without building the intersection.
func CountCommon(a, b Set) int {
	n := 0
	for i, w := range a.words {
		n += bits.OnesCount64(w & b.words[i])
	}
	return n
}

// CountOnlyInFirst is the number of members of a that are not in b.
func CountOnlyInFirst(a, b Set) int {
	n := 0
	for i, w := range a.words {
		n += bits.OnesCount64(w &^ b.words[i])
	}
	return n
}

// String formats the members in ascending order, e.g. "{0 3 17}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	it := s.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d", e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Iterator walks the members of a snapshot of the set in ascending
// order. Reset rewinds it to the beginning.
type Iterator struct {
	set  Set
	word int
	rest uint64
}

// Iter returns a fresh iterator over the set.
func (s Set) Iter() Iterator {
	return Iterator{set: s, word: -1}
}

// Next returns the next member, or ok == false when exhausted.
func (it *Iterator) Next() (e uint8, ok bool) {
	for it.rest == 0 {
		it.word++
		if it.word >= numWords {
			return 0, false
		}
		it.rest = it.set.words[it.word]
	}
	tz := bits.TrailingZeros64(it.rest)
	it.rest &= it.rest - 1
	return uint8(it.word<<6 + tz), true
}

// Reset rewinds the iterator.
func (it *Iterator) Reset() {
	it.word = -1
	it.rest = 0
}
