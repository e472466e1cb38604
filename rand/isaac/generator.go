package isaac

// unitScale maps a word onto [0, 1] inclusive.
const unitScale = 4294967295.0

// Generator is a seeded batch generator. It is not safe for concurrent use.
type Generator struct {
	count   uint32
	results [Size]uint32
	mixer   Mixer
	seeds   []uint32
}

// New returns a generator seeded with seed. See Seed.
func New(seed []uint32, opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.mixer == nil {
		cfg.mixer = &ISAAC{}
	}
	g := &Generator{mixer: cfg.mixer}
	g.Seed(seed)
	return g
}

// Seed resets the generator from up to Size seed words. Extra words are
// ignored and missing words are zero.
func (g *Generator) Seed(seed []uint32) {
	if len(seed) > Size {
		seed = seed[:Size]
	}
	g.seeds = append(g.seeds[:0], seed...)

	g.results = [Size]uint32{}
	copy(g.results[:], seed)
	g.mixer.Seed(&g.results)
	g.count = Size
}

// Seeds returns a copy of the seed words last passed to Seed, truncated to
// Size. It returns nil after LoadState, since a dump carries no seeds.
func (g *Generator) Seeds() []uint32 {
	if g.seeds == nil {
		return nil
	}
	out := make([]uint32, len(g.seeds))
	copy(out, g.seeds)
	return out
}

// NextU32 returns the next word, uniform over the full uint32 range.
func (g *Generator) NextU32() uint32 {
	if g.count == 0 {
		g.mixer.Refill(&g.results)
		g.count = Size
	}
	g.count--
	return g.results[g.count]
}

// NextUnit returns the next word scaled to [0, 1].
func (g *Generator) NextUnit() float64 {
	return float64(g.NextU32()) / unitScale
}

// Next is NextUnit. It lets a Generator drive the sequences in rand/dist.
func (g *Generator) Next() float64 {
	return g.NextUnit()
}

// Uint64 returns two consecutive words, the first in the high half. It makes
// a Generator usable as a math/rand/v2 Source.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.NextU32())
	return hi<<32 | uint64(g.NextU32())
}

// StateLen returns the number of words in DumpState.
func (g *Generator) StateLen() int {
	n := 1 + Size
	if sm, ok := g.mixer.(StatefulMixer); ok {
		n += sm.StateLen()
	}
	return n
}

// DumpState serializes the complete generator state. See the package
// documentation for the layout.
func (g *Generator) DumpState() []uint32 {
	out := make([]uint32, 0, g.StateLen())
	out = append(out, g.count)
	out = append(out, g.results[:]...)
	if sm, ok := g.mixer.(StatefulMixer); ok {
		out = sm.AppendState(out)
	}
	return out
}

// LoadState restores state produced by DumpState. A state of the wrong
// length is rejected with a *LengthMismatchError and the generator is left
// unchanged. A batch count larger than Size is clamped to Size. The seed
// words reported by Seeds are cleared.
func (g *Generator) LoadState(state []uint32) error {
	if want := g.StateLen(); len(state) != want {
		return &LengthMismatchError{Expected: want, Actual: len(state)}
	}

	g.seeds = nil

	g.count = min(state[0], Size)
	copy(g.results[:], state[1:1+Size])
	if sm, ok := g.mixer.(StatefulMixer); ok {
		sm.SetState(state[1+Size:])
	}
	return nil
}
