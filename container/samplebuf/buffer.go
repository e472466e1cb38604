package samplebuf

import (
	"fmt"
	"math"
)

// Buffer is a circular buffer of float64 samples.
type Buffer struct {
	samples []float64
	offset  int
}

// New returns a buffer of length samples, each set to fill.
func New(length int, fill float64) (*Buffer, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	b := &Buffer{samples: make([]float64, length)}
	for i := range b.samples {
		b.samples[i] = fill
	}
	return b, nil
}

// FromSlice returns a buffer holding a copy of samples in logical order.
func FromSlice(samples []float64) *Buffer {
	b := &Buffer{}
	b.SetSlice(samples)
	return b
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Offset returns the physical index of the logically oldest sample.
func (b *Buffer) Offset() int {
	return b.offset
}

// SetOffset moves the logical start to physical index offset. Hosts that
// write samples through Samples use it to advance their write head.
func (b *Buffer) SetOffset(offset int) error {
	n := len(b.samples)
	if offset < 0 || (n > 0 && offset >= n) || (n == 0 && offset != 0) {
		return fmt.Errorf("sample buffer offset %d out of range for length %d", offset, n)
	}
	b.offset = offset
	return nil
}

// Samples returns the physical storage. Index Offset holds the logically
// oldest sample. Writes through the slice are visible in the buffer.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// At returns the sample at logical index i. ok is false when i is outside
// [0, Len).
func (b *Buffer) At(i int) (sample float64, ok bool) {
	n := len(b.samples)
	if i < 0 || i >= n {
		return 0, false
	}
	return b.samples[(b.offset+i)%n], true
}

// Resize changes the length to n in place, preserving logical order.
//
// Shrinking keeps the n most recent samples. Growing prepends n-Len copies
// of the current oldest sample. After Resize the storage holds exactly n
// samples. Negative n is rejected.
func (b *Buffer) Resize(n int) error {
	if err := validateLength(n); err != nil {
		return err
	}
	oldLen := len(b.samples)
	switch {
	case n < oldLen:
		b.shrink(n)
	case n > oldLen:
		b.grow(n)
	}
	return nil
}

func (b *Buffer) shrink(n int) {
	oldLen := len(b.samples)
	offset := b.offset
	s := b.samples

	if offset < n {
		// The retained window wraps: [offset+drop, oldLen) followed by
		// [0, offset). Close the gap left by the dropped samples.
		drop := oldLen - n
		copy(s[offset:n], s[offset+drop:oldLen])
	} else {
		// The retained window is contiguous just below offset.
		copy(s[:n], s[offset-n:offset])
		offset = 0
	}

	exact := make([]float64, n)
	copy(exact, s[:n])
	b.samples = exact
	b.offset = offset
}

func (b *Buffer) grow(n int) {
	oldLen := len(b.samples)
	offset := b.offset
	extra := n - oldLen

	s := make([]float64, n)
	copy(s, b.samples)

	var fill float64
	if oldLen > 0 {
		fill = s[offset]
	}
	copy(s[offset+extra:n], s[offset:oldLen])
	for i := offset; i < offset+extra; i++ {
		s[i] = fill
	}

	b.samples = s
}

// SetSlice replaces the contents with a copy of samples and resets the
// offset to 0.
func (b *Buffer) SetSlice(samples []float64) {
	if cap(b.samples) == len(samples) {
		b.samples = b.samples[:len(samples)]
	} else {
		b.samples = make([]float64, len(samples))
	}
	copy(b.samples, samples)
	b.offset = 0
}

// Slice returns the samples in logical order as a new slice.
func (b *Buffer) Slice() []float64 {
	return b.AppendTo(make([]float64, 0, len(b.samples)))
}

// AppendTo appends the samples in logical order to dst and returns the
// extended slice.
func (b *Buffer) AppendTo(dst []float64) []float64 {
	dst = append(dst, b.samples[b.offset:]...)
	return append(dst, b.samples[:b.offset]...)
}

// ReadFractional returns the sample at fractional logical position pos using
// cubic Hermite interpolation between the neighbouring samples. Positions
// outside [0, Len-1] are clamped. An empty buffer reads 0.
func (b *Buffer) ReadFractional(pos float64) float64 {
	n := len(b.samples)
	if n == 0 {
		return 0
	}
	if pos <= 0 || math.IsNaN(pos) {
		pos = 0
	}
	if pos > float64(n-1) {
		pos = float64(n - 1)
	}

	i := int(math.Floor(pos))
	t := pos - float64(i)

	xm1 := b.clampedAt(i - 1)
	x0 := b.clampedAt(i)
	x1 := b.clampedAt(i + 1)
	x2 := b.clampedAt(i + 2)
	return hermite4(t, xm1, x0, x1, x2)
}

func (b *Buffer) clampedAt(i int) float64 {
	n := len(b.samples)
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return b.samples[(b.offset+i)%n]
}

// hermite4 interpolates from x0 to x1 using neighbours xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
