package dist

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma samples a gamma distribution with shape Alpha and rate Beta.
type Gamma struct {
	d distuv.Gamma
}

// NewGamma returns a gamma sequence drawing from src, which is usually an
// *isaac.Generator.
func NewGamma(src rand.Source, alpha, beta float64) (*Gamma, error) {
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("gamma alpha and beta must be > 0: %f, %f", alpha, beta)
	}
	return &Gamma{d: distuv.Gamma{Alpha: alpha, Beta: beta, Src: src}}, nil
}

// Next returns the next sample.
func (g *Gamma) Next() float64 {
	return g.d.Rand()
}

// Mean returns the distribution mean, Alpha/Beta.
func (g *Gamma) Mean() float64 {
	return g.d.Mean()
}
