// Package floatvec provides Vector, a compact growable array of float32.
//
// It follows the same growth policy as container/vector (16 slots, then
// doubling, shrinking only on request) but stores primitive values, so it
// owns no references and needs no reachability hook.
package floatvec

import (
	"encoding/binary"
	"iter"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-simcore/internal/growth"
)

const hashMultiplier = 971

// Vector is a growable array of float32. The zero value is ready for use.
type Vector struct {
	elems []float32
}

// New returns a vector holding elts narrowed to float32.
func New(elts ...float64) *Vector {
	v := &Vector{}
	v.LoadData(elts)
	return v
}

// Push appends values in order.
func (v *Vector) Push(values ...float32) {
	for _, x := range values {
		v.elems = growth.Append(v.elems, x)
	}
}

// Pop removes and returns the last element. ok is false when empty.
func (v *Vector) Pop() (x float32, ok bool) {
	n := len(v.elems)
	if n == 0 {
		return 0, false
	}
	x = v.elems[n-1]
	v.elems = v.elems[:n-1]
	return x, true
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.elems) }

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int { return cap(v.elems) }

// At returns the element at index i. ok is false when i is out of range.
func (v *Vector) At(i int) (x float32, ok bool) {
	if i < 0 || i >= len(v.elems) {
		return 0, false
	}
	return v.elems[i], true
}

// Shrink releases spare capacity so that Cap equals Len.
func (v *Vector) Shrink() {
	v.elems = growth.ShrinkToFit(v.elems)
}

// All returns a restartable iterator over the elements in order.
func (v *Vector) All() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for i := 0; i < len(v.elems); i++ {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}

// ToSlice returns a snapshot copy of the elements.
func (v *Vector) ToSlice() []float32 {
	out := make([]float32, len(v.elems))
	copy(out, v.elems)
	return out
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	dup := &Vector{}
	dup.Push(v.elems...)
	return dup
}

// Equal reports whether other has the same length and pairwise equal
// elements. Elements compare with ==, so 0 equals -0 and NaN equals nothing.
func (v *Vector) Equal(other *Vector) bool {
	if v == other {
		return true
	}
	if other == nil || len(v.elems) != len(other.elems) {
		return false
	}
	for i, x := range v.elems {
		if x != other.elems[i] {
			return false
		}
	}
	return true
}

// Eql is the strict comparison. For primitive elements it is Equal.
func (v *Vector) Eql(other *Vector) bool {
	return v.Equal(other)
}

// Hash returns a hash consistent with Equal for all non-NaN contents.
func (v *Vector) Hash() uint64 {
	h := uint64(len(v.elems))
	for _, x := range v.elems {
		h = bits.RotateLeft64(h, 1)
		h ^= uint64(int64(elementHash(x)))
	}
	return h
}

// elementHash folds the little-endian bytes of x with multiplier 971.
// Negative zero hashes as positive zero.
func elementHash(x float32) int32 {
	if x == 0 {
		x = 0
	}
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], math.Float32bits(x))

	var h int32
	for _, b := range raw {
		h = h*hashMultiplier ^ int32(b)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// DumpData returns the elements widened to float64.
func (v *Vector) DumpData() []float64 {
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = float64(x)
	}
	return out
}

// LoadData appends every element of data narrowed to float32.
func (v *Vector) LoadData(data []float64) {
	for _, x := range data {
		v.elems = growth.Append(v.elems, float32(x))
	}
}

func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
