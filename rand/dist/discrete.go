package dist

import "fmt"

// Point is one outcome of a Discrete distribution.
type Point struct {
	Value  float64
	Weight float64
}

// Discrete samples a finite set of points in proportion to their weights.
type Discrete struct {
	points []Point
	src    Source
}

// NewDiscrete returns a discrete sequence. Weights are normalized to sum to
// 1; they must be non-negative with a positive total. With no points the
// sequence always yields 0.
func NewDiscrete(src Source, points ...Point) (*Discrete, error) {
	if len(points) == 0 {
		points = []Point{{Value: 0, Weight: 1}}
	}

	sum := 0.0
	for _, p := range points {
		if p.Weight < 0 {
			return nil, fmt.Errorf("discrete weight must be >= 0: %f at %f", p.Weight, p.Value)
		}
		sum += p.Weight
	}
	if sum <= 0 {
		return nil, fmt.Errorf("discrete weights must sum to > 0: %f", sum)
	}

	norm := make([]Point, len(points))
	for i, p := range points {
		norm[i] = Point{Value: p.Value, Weight: p.Weight / sum}
	}
	return &Discrete{points: norm, src: src}, nil
}

// Points returns the normalized points.
func (d *Discrete) Points() []Point {
	out := make([]Point, len(d.points))
	copy(out, d.points)
	return out
}

// Next returns the next sample. A draw that falls past the last point due to
// rounding is retried.
func (d *Discrete) Next() float64 {
	for {
		r := d.src.Next()
		for _, p := range d.points {
			if r < p.Weight {
				return p.Value
			}
			r -= p.Weight
		}
	}
}
