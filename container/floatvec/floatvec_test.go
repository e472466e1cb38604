package floatvec

import (
	"math"
	"slices"
	"testing"
)

var negZero = float32(math.Copysign(0, -1))

func TestPushPop(t *testing.T) {
	v := &Vector{}
	v.Push(1, 2.567, 3)

	if got, ok := v.Pop(); !ok || got != 3 {
		t.Fatalf("Pop() = %v, %v, want 3, true", got, ok)
	}
	if got, ok := v.Pop(); !ok || math.Abs(float64(got)-2.567) > 0.01 {
		t.Fatalf("Pop() = %v, %v, want about 2.567, true", got, ok)
	}
	if got, ok := v.Pop(); !ok || got != 1 {
		t.Fatalf("Pop() = %v, %v, want 1, true", got, ok)
	}
	if got, ok := v.Pop(); ok || got != 0 {
		t.Fatalf("Pop() on empty = %v, %v, want 0, false", got, ok)
	}
}

func TestPushPopPreservesBits(t *testing.T) {
	values := []float32{
		0, negZero, 1, -1,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
	}

	for _, x := range values {
		v := &Vector{}
		v.Push(x)
		got, ok := v.Pop()
		if !ok {
			t.Fatalf("Pop() after Push(%v) reported empty", x)
		}
		if math.Float32bits(got) != math.Float32bits(x) {
			t.Fatalf("Pop() = %v (bits %#x), want %v (bits %#x)",
				got, math.Float32bits(got), x, math.Float32bits(x))
		}
	}
}

func TestPushPopReverseOrder(t *testing.T) {
	v := &Vector{}
	for i := 0; i < 100; i++ {
		v.Push(float32(i))
	}
	if v.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", v.Len())
	}
	for i := 99; i >= 0; i-- {
		got, ok := v.Pop()
		if !ok || got != float32(i) {
			t.Fatalf("Pop() = %v, %v, want %d, true", got, ok, i)
		}
	}
}

func TestGrowthAndShrink(t *testing.T) {
	v := &Vector{}
	if v.Cap() != 0 {
		t.Fatalf("Cap() = %d, want 0", v.Cap())
	}

	v.Push(1)
	if v.Cap() != 16 {
		t.Fatalf("Cap() = %d, want 16", v.Cap())
	}

	for i := 0; i < 16; i++ {
		v.Push(float32(i))
	}
	if v.Cap() != 32 {
		t.Fatalf("Cap() = %d, want 32", v.Cap())
	}

	v.Pop()
	if v.Cap() != 32 {
		t.Fatalf("Pop released capacity: Cap() = %d", v.Cap())
	}

	v.Shrink()
	if v.Cap() != v.Len() || v.Len() != 16 {
		t.Fatalf("after Shrink Len=%d Cap=%d, want 16/16", v.Len(), v.Cap())
	}
}

func TestAllAndToSlice(t *testing.T) {
	v := New(1, 2.5, 3)
	want := []float32{1, 2.5, 3}

	if got := slices.Collect(v.All()); !slices.Equal(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	if got := slices.Collect(v.All()); !slices.Equal(got, want) {
		t.Fatalf("second All() = %v, want %v", got, want)
	}
	if got := v.ToSlice(); !slices.Equal(got, want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	if New().ToSlice() == nil {
		t.Fatal("ToSlice() on empty vector should be non-nil")
	}
}

func TestAt(t *testing.T) {
	v := New(4)
	if x, ok := v.At(0); !ok || x != 4 {
		t.Fatalf("At(0) = %v, %v", x, ok)
	}
	if _, ok := v.At(1); ok {
		t.Fatal("At(1) should report out of range")
	}
}

func TestEqual(t *testing.T) {
	a := New(1, 2.567, 3)
	b := New(1, 2.567, 3, 4)

	if a.Equal(b) {
		t.Fatal("vectors of different length compare equal")
	}
	if !a.Equal(a) || !a.Eql(a) {
		t.Fatal("vector does not equal itself")
	}
	if !New().Equal(New()) {
		t.Fatal("empty vectors should be equal")
	}
	if !New(1).Equal(New(1.0)) {
		t.Fatal("New(1) should equal New(1.0)")
	}
	if a.Equal(nil) {
		t.Fatal("vector equals nil")
	}

	nan := New(math.NaN())
	if nan.Equal(New(math.NaN())) {
		t.Fatal("NaN elements compare equal")
	}
}

func TestSignedZero(t *testing.T) {
	pos := &Vector{}
	pos.Push(0)
	neg := &Vector{}
	neg.Push(negZero)

	if pos.Hash() != neg.Hash() {
		t.Fatalf("hash(0.0) = %d, hash(-0.0) = %d, want equal", pos.Hash(), neg.Hash())
	}
	if !pos.Equal(neg) {
		t.Fatal("0.0 and -0.0 elements should compare equal")
	}
	if elementHash(0) != elementHash(negZero) {
		t.Fatal("element hashes differ for signed zeros")
	}
}

func TestHash(t *testing.T) {
	if got := elementHash(1); got != 124351 {
		t.Fatalf("elementHash(1) = %d, want 124351", got)
	}
	if got := New(1).Hash(); got != 124349 {
		t.Fatalf("Hash([1]) = %d, want 124349", got)
	}
	if got := New().Hash(); got != 0 {
		t.Fatalf("Hash([]) = %d, want 0", got)
	}

	a := New(1, 2.567, 3)
	b := New(1, 2.567, 3)
	c := New(1, 2.567, 3, 4)
	if a.Hash() != b.Hash() {
		t.Fatal("equal vectors hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Fatal("different vectors share a hash")
	}
}

func TestElementHashNonNegative(t *testing.T) {
	for i := -1000; i < 1000; i++ {
		x := float32(i) * 0.37
		if h := elementHash(x); h < 0 && h != math.MinInt32 {
			t.Fatalf("elementHash(%v) = %d, want >= 0", x, h)
		}
	}
}

func TestDumpLoadRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 150} {
		v := &Vector{}
		for i := 0; i < n; i++ {
			v.Push(float32(i)/7 - 3)
		}
		if n > 0 {
			v.Push(negZero)
		}

		loaded := &Vector{}
		loaded.LoadData(v.DumpData())

		if !v.Equal(loaded) {
			t.Fatalf("n=%d: round trip mismatch", n)
		}
		if v.Hash() != loaded.Hash() {
			t.Fatalf("n=%d: round trip hash mismatch", n)
		}
		for i, x := range v.ToSlice() {
			y, _ := loaded.At(i)
			if math.Float32bits(x) != math.Float32bits(y) {
				t.Fatalf("n=%d index %d: bits %#x, want %#x", n, i, math.Float32bits(y), math.Float32bits(x))
			}
		}
	}
}

func TestLoadDataNarrows(t *testing.T) {
	v := &Vector{}
	v.LoadData([]float64{0.1})

	got, _ := v.At(0)
	if got != float32(0.1) {
		t.Fatalf("got %v, want %v", got, float32(0.1))
	}
	if v.DumpData()[0] == 0.1 {
		t.Fatal("dump should expose the narrowed single precision value")
	}
}

func TestCloneIndependent(t *testing.T) {
	v := New(1, 2)
	dup := v.Clone()
	dup.Push(3)

	if v.Len() != 2 || !v.Equal(New(1, 2)) {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestString(t *testing.T) {
	if got := New(1, 2.5, -3).String(); got != "[1, 2.5, -3]" {
		t.Fatalf("String() = %q", got)
	}
}
