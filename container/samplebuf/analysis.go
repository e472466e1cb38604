package samplebuf

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Energy returns the sum of squared samples.
func (b *Buffer) Energy() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	sq := make([]float64, len(b.samples))
	vecmath.MulBlock(sq, b.samples, b.samples)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}
	return sum
}

// Scaled returns a copy of the buffer with every sample multiplied by gain.
// The copy keeps the same physical layout and offset.
func (b *Buffer) Scaled(gain float64) *Buffer {
	out := &Buffer{samples: make([]float64, len(b.samples)), offset: b.offset}
	vecmath.ScaleBlock(out.samples, b.samples, gain)
	return out
}

// Spectrum returns the magnitude spectrum of the samples in logical order.
// The samples are zero-padded to the next power of two N and bins 0..N/2 are
// returned. An empty buffer yields nil.
func (b *Buffer) Spectrum() ([]float64, error) {
	n := len(b.samples)
	if n == 0 {
		return nil, nil
	}
	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("sample buffer spectrum: %w", err)
	}

	in := make([]complex128, size)
	for i := 0; i < n; i++ {
		in[i] = complex(b.samples[(b.offset+i)%n], 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("sample buffer spectrum: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
