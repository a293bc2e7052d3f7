package bitset

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"

	bbs "github.com/bits-and-blooms/bitset"
)

// wordBits is the width of one storage word.
const wordBits = 64

// Set is a bit vector over the universe [0, n).
type Set struct {
	n  int
	bs *bbs.BitSet
}

// New returns an empty Set over [0, n). A negative n is treated as 0.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}

	return &Set{n: n, bs: bbs.New(uint(n))}
}

// Of returns a Set over [0, n) holding the given members.
func Of(n int, members ...int) *Set {
	s := New(n)
	for _, v := range members {
		s.Set(v)
	}

	return s
}

// Len reports the universe size n.
func (s *Set) Len() int { return s.n }

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool { return s.bs.Test(uint(i)) }

// Set sets bit i.
func (s *Set) Set(i int) { s.bs.Set(uint(i)) }

// Clear clears bit i.
func (s *Set) Clear(i int) { s.bs.Clear(uint(i)) }

// Count returns the number of set bits.
func (s *Set) Count() int { return int(s.bs.Count()) }

// Empty reports whether no bit is set.
func (s *Set) Empty() bool { return s.bs.None() }

// Equal reports whether s and o hold the same bits over the same universe.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}

	return s.n == o.n && s.bs.Equal(o.bs)
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	return &Set{n: s.n, bs: s.bs.Clone()}
}

// CopyFrom overwrites s with the bits of o. Both sets must share the
// same universe size.
func (s *Set) CopyFrom(o *Set) {
	copy(s.Words(), o.Words())
}

// Words exposes the packed storage words. The slice aliases s; callers
// must not set bits at index >= Len().
func (s *Set) Words() []uint64 { return s.bs.Bytes() }

// Intersects reports whether s and o share at least one set bit.
func (s *Set) Intersects(o *Set) bool {
	a, b := s.Words(), o.Words()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i]&b[i] != 0 {
			return true
		}
	}

	return false
}

// DifferenceCount returns popcount(s AND NOT o).
func (s *Set) DifferenceCount(o *Set) int {
	return int(s.bs.DifferenceCardinality(o.bs))
}

// ForEach calls fn for every set bit in ascending order.
func (s *Set) ForEach(fn func(i int)) {
	for w, word := range s.Words() {
		for word != 0 {
			fn(w*wordBits + bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
}

// Members returns the set bits in ascending order.
func (s *Set) Members() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(i int) { out = append(out, i) })

	return out
}

// Key returns a compact string uniquely identifying the bits of s,
// suitable as a map key.
func (s *Set) Key() string {
	words := s.Words()
	buf := make([]byte, 0, len(words)*8)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return string(buf)
}

// String renders s as "{a b c}" with 0-based members.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.ForEach(func(i int) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(i))
	})
	sb.WriteByte('}')

	return sb.String()
}
