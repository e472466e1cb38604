package dist

import (
	"fmt"
	"math"
)

// Source yields floats in [0, 1].
type Source interface {
	Next() float64
}

// Sequence yields samples of a distribution.
type Sequence interface {
	Next() float64
}

// Constant always returns Value.
type Constant struct {
	Value float64
}

// Next returns c.Value.
func (c Constant) Next() float64 { return c.Value }

// Uniform samples [Min, Max].
type Uniform struct {
	Min, Max float64
	src      Source
}

// NewUniform returns a uniform sequence over [min, max].
func NewUniform(src Source, min, max float64) *Uniform {
	return &Uniform{Min: min, Max: max, src: src}
}

// Next returns the next sample.
func (u *Uniform) Next() float64 {
	return u.Min + (u.Max-u.Min)*u.src.Next()
}

// Exponential samples an exponential distribution with the given mean.
type Exponential struct {
	Mean float64
	src  Source
}

// NewExponential returns an exponential sequence.
func NewExponential(src Source, mean float64) *Exponential {
	return &Exponential{Mean: mean, src: src}
}

// Next returns the next sample.
func (e *Exponential) Next() float64 {
	x := e.src.Next()
	for x == 0 {
		x = e.src.Next()
	}
	return -math.Log(x) * e.Mean
}

// Gaussian samples a normal distribution with the polar Box-Muller method.
// Each accepted pair of uniforms yields two samples; the second is returned
// by the following call. Samples outside the optional bounds are clamped.
type Gaussian struct {
	Mean, Stdev float64
	min, max    float64
	hasMin      bool
	hasMax      bool

	src     Source
	spare   float64
	hasNext bool
}

// GaussianOption configures a Gaussian.
type GaussianOption func(*Gaussian)

// WithMin clamps samples below min up to min.
func WithMin(min float64) GaussianOption {
	return func(g *Gaussian) {
		g.min, g.hasMin = min, true
	}
}

// WithMax clamps samples above max down to max.
func WithMax(max float64) GaussianOption {
	return func(g *Gaussian) {
		g.max, g.hasMax = max, true
	}
}

// NewGaussian returns a normal sequence.
func NewGaussian(src Source, mean, stdev float64, opts ...GaussianOption) (*Gaussian, error) {
	if stdev < 0 {
		return nil, fmt.Errorf("gaussian stdev must be >= 0: %f", stdev)
	}
	g := &Gaussian{Mean: mean, Stdev: stdev, src: src}
	for _, opt := range opts {
		opt(g)
	}
	if g.hasMin && g.hasMax && g.min > g.max {
		return nil, fmt.Errorf("gaussian bounds inverted: min %f > max %f", g.min, g.max)
	}
	return g, nil
}

// Next returns the next sample.
func (g *Gaussian) Next() float64 {
	var result float64
	if g.hasNext {
		result = g.Mean + g.spare*g.Stdev
		g.hasNext = false
	} else {
		var v1, v2, rsq float64
		for {
			v1 = 2*g.src.Next() - 1
			v2 = 2*g.src.Next() - 1
			rsq = v1*v1 + v2*v2
			if rsq < 1 && rsq != 0 {
				break
			}
		}
		fac := math.Sqrt(-2 * math.Log(rsq) / rsq)
		g.spare = v1 * fac
		g.hasNext = true
		result = g.Mean + v2*fac*g.Stdev
	}

	switch {
	case g.hasMin && result < g.min:
		result = g.min
	case g.hasMax && result > g.max:
		result = g.max
	}
	return result
}

// LogNormal samples a log-normal distribution parameterized by the mean and
// standard deviation of the samples themselves.
type LogNormal struct {
	Mean, Stdev float64

	normal   *Gaussian
	sqrtNVar float64
	halfNVar float64
}

// NewLogNormal returns a log-normal sequence. mean must be > 0.
func NewLogNormal(src Source, mean, stdev float64) (*LogNormal, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("lognormal mean must be > 0: %f", mean)
	}
	if stdev < 0 {
		return nil, fmt.Errorf("lognormal stdev must be >= 0: %f", stdev)
	}
	normal, err := NewGaussian(src, 0, 1)
	if err != nil {
		return nil, err
	}
	nVar := math.Log(1 + (stdev/mean)*(stdev/mean))
	return &LogNormal{
		Mean:     mean,
		Stdev:    stdev,
		normal:   normal,
		sqrtNVar: math.Sqrt(nVar),
		halfNVar: 0.5 * nVar,
	}, nil
}

// Next returns the next sample.
func (l *LogNormal) Next() float64 {
	return l.Mean * math.Exp(l.normal.Next()*l.sqrtNVar-l.halfNVar)
}
