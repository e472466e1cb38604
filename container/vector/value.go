package vector

import (
	"hash/fnv"
	"math"
	"strconv"
)

// Value is the capability set a Vector element must provide.
type Value interface {
	// Equal is the permissive comparison (1 equals 1.0).
	Equal(other Value) bool
	// Eql is the strict comparison (1 does not eql 1.0).
	Eql(other Value) bool
	// Hash is consistent with Eql.
	Hash() uint64
	// ForEachOwnedReference calls visit for every Value held by the receiver.
	ForEachOwnedReference(visit func(Value))
}

// Int is an integer Value.
type Int int64

// Float is a floating point Value.
type Float float64

// String is a string Value.
type String string

// Equal reports numeric equality with Int or Float.
func (i Int) Equal(other Value) bool {
	switch o := other.(type) {
	case Int:
		return i == o
	case Float:
		return float64(i) == float64(o)
	}
	return false
}

// Eql reports equality with another Int only.
func (i Int) Eql(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

// Hash returns a mixed hash of the integer.
func (i Int) Hash() uint64 { return mix64(uint64(i)) }

// ForEachOwnedReference visits nothing.
func (Int) ForEachOwnedReference(func(Value)) {}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Equal reports numeric equality with Float or Int. NaN equals nothing.
func (f Float) Equal(other Value) bool {
	switch o := other.(type) {
	case Float:
		return f == o
	case Int:
		return float64(f) == float64(o)
	}
	return false
}

// Eql reports equality with another Float only.
func (f Float) Eql(other Value) bool {
	o, ok := other.(Float)
	return ok && f == o
}

// Hash hashes the bit pattern, with -0.0 folded onto 0.0.
func (f Float) Hash() uint64 {
	v := float64(f)
	if v == 0 {
		v = 0
	}
	return mix64(math.Float64bits(v) ^ 0x9e3779b97f4a7c15)
}

// ForEachOwnedReference visits nothing.
func (Float) ForEachOwnedReference(func(Value)) {}

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Equal reports string equality.
func (s String) Equal(other Value) bool { return s.Eql(other) }

// Eql reports string equality.
func (s String) Eql(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Hash returns the FNV-1a hash of the string.
func (s String) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// ForEachOwnedReference visits nothing.
func (String) ForEachOwnedReference(func(Value)) {}

func (s String) String() string { return strconv.Quote(string(s)) }

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
