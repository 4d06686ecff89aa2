package property

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a bit-set over a dense id space of at most 256 members.
type Set[T ~uint8] struct {
	bits [4]uint64
}

type (
	IDSet        = Set[ID]
	ShorthandSet = Set[ShorthandID]
)

// SetOf returns a set holding ids.
func SetOf[T ~uint8](ids ...T) Set[T] {
	var s Set[T]
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

func (s *Set[T]) Insert(id T) {
	s.bits[id>>6] |= 1 << (id & 63)
}

func (s *Set[T]) Remove(id T) {
	s.bits[id>>6] &^= 1 << (id & 63)
}

func (s *Set[T]) Clear() {
	s.bits = [4]uint64{}
}

func (s Set[T]) Contains(id T) bool {
	return s.bits[id>>6]&(1<<(id&63)) != 0
}

func (s Set[T]) Empty() bool {
	return s.bits == [4]uint64{}
}

func (s Set[T]) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s Set[T]) Union(o Set[T]) Set[T] {
	for i := range s.bits {
		s.bits[i] |= o.bits[i]
	}
	return s
}

func (s Set[T]) Intersect(o Set[T]) Set[T] {
	for i := range s.bits {
		s.bits[i] &= o.bits[i]
	}
	return s
}

func (s Set[T]) Difference(o Set[T]) Set[T] {
	for i := range s.bits {
		s.bits[i] &^= o.bits[i]
	}
	return s
}

// All iterates members in increasing order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, w := range s.bits {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if !yield(T(i*64 + b)) {
					return
				}
				w &^= 1 << b
			}
		}
	}
}

func (s Set[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}

// String lists member names, used in logs and dumps.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for id := range s.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		var name string
		switch v := any(id).(type) {
		case ID:
			name = v.String()
		case ShorthandID:
			name = v.String()
		}
		sb.WriteString(name)
	}
	sb.WriteByte(']')
	return sb.String()
}
