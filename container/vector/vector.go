package vector

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/cwbudde/algo-simcore/internal/growth"
)

// Vector is a growable array of Values.
//
// The zero value is an empty vector ready for use. A Vector is not safe for
// concurrent use.
type Vector struct {
	elems []Value

	// comparing holds the vectors this one is currently being compared
	// against, per comparison kind.
	comparing map[pairKey]struct{}
	hashing   bool
	printing  bool
}

type pairKey struct {
	other  *Vector
	strict bool
}

// New returns a vector holding elts in order.
func New(elts ...Value) *Vector {
	v := &Vector{}
	v.Push(elts...)
	return v
}

// Push appends values in order, growing the storage when full.
func (v *Vector) Push(values ...Value) {
	for _, val := range values {
		v.elems = growth.Append(v.elems, val)
	}
}

// Pop removes and returns the last element. ok is false when the vector is
// empty.
func (v *Vector) Pop() (val Value, ok bool) {
	n := len(v.elems)
	if n == 0 {
		return nil, false
	}
	val = v.elems[n-1]
	v.elems[n-1] = nil
	v.elems = v.elems[:n-1]
	return val, true
}

// Len returns the number of live elements.
func (v *Vector) Len() int { return len(v.elems) }

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int { return cap(v.elems) }

// At returns the element at index i. ok is false when i is out of range.
func (v *Vector) At(i int) (val Value, ok bool) {
	if i < 0 || i >= len(v.elems) {
		return nil, false
	}
	return v.elems[i], true
}

// Shrink releases spare capacity so that Cap equals Len.
func (v *Vector) Shrink() {
	v.elems = growth.ShrinkToFit(v.elems)
}

// All returns an iterator over the live elements in order. Each call to the
// iterator walks the elements present at that time.
func (v *Vector) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for i := 0; i < len(v.elems); i++ {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}

// Each calls fn for every element in order.
func (v *Vector) Each(fn func(Value)) {
	for val := range v.All() {
		fn(val)
	}
}

// ToSlice returns a snapshot copy of the elements.
func (v *Vector) ToSlice() []Value {
	out := make([]Value, len(v.elems))
	copy(out, v.elems)
	return out
}

// Clone returns a new vector holding the same references.
func (v *Vector) Clone() *Vector {
	return New(v.elems...)
}

// ForEachOwnedReference calls visit for every live element. A nil *Vector
// owns nothing.
func (v *Vector) ForEachOwnedReference(visit func(Value)) {
	if v == nil {
		return
	}
	for _, val := range v.elems {
		visit(val)
	}
}

// Equal reports whether other is a Vector of the same length whose elements
// are pairwise Equal.
func (v *Vector) Equal(other Value) bool {
	return v.compare(other, false)
}

// Eql is like Equal but compares elements with Eql.
func (v *Vector) Eql(other Value) bool {
	return v.compare(other, true)
}

func (v *Vector) compare(other Value, strict bool) bool {
	o, ok := other.(*Vector)
	if !ok {
		return false
	}
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if len(v.elems) != len(o.elems) {
		return false
	}
	if len(v.elems) == 0 {
		return true
	}

	key := pairKey{other: o, strict: strict}
	if _, active := v.comparing[key]; active {
		return false
	}
	if v.comparing == nil {
		v.comparing = make(map[pairKey]struct{})
	}
	v.comparing[key] = struct{}{}
	defer delete(v.comparing, key)

	for i, a := range v.elems {
		b := o.elems[i]
		if a == nil || b == nil {
			if a != b {
				return false
			}
			continue
		}
		if strict {
			if !a.Eql(b) {
				return false
			}
		} else if !a.Equal(b) {
			return false
		}
	}
	return true
}

// Hash combines the element hashes. A vector reached again while its own
// hash is being computed contributes 0, as does a nil *Vector.
func (v *Vector) Hash() uint64 {
	if v == nil || v.hashing {
		return 0
	}
	v.hashing = true
	defer func() { v.hashing = false }()

	h := uint64(len(v.elems))
	for _, val := range v.elems {
		h = bits.RotateLeft64(h, 1)
		if val != nil {
			h ^= val.Hash()
		}
	}
	return h
}

// DumpData returns the elements as a flat slice for serialization.
func (v *Vector) DumpData() []Value {
	return v.ToSlice()
}

// LoadData appends every element of data in order.
func (v *Vector) LoadData(data []Value) {
	v.Push(data...)
}

func (v *Vector) String() string {
	if v == nil {
		return "nil"
	}
	if v.printing {
		return "[...]"
	}
	v.printing = true
	defer func() { v.printing = false }()

	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch s := val.(type) {
		case nil:
			sb.WriteString("nil")
		case fmt.Stringer:
			sb.WriteString(s.String())
		default:
			fmt.Fprintf(&sb, "%v", s)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
