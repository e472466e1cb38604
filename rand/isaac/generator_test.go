package isaac

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingMixer writes batch number and index into each word so tests can
// see exactly which batch entry a draw came from.
type countingMixer struct {
	seeds   int
	refills int
	first   uint32
}

func (m *countingMixer) Seed(batch *[Size]uint32) {
	m.seeds++
	m.first = batch[0]
	m.fill(batch)
}

func (m *countingMixer) Refill(batch *[Size]uint32) {
	m.refills++
	m.fill(batch)
}

func (m *countingMixer) fill(batch *[Size]uint32) {
	for i := range batch {
		batch[i] = uint32(m.refills*Size + i)
	}
}

func draw(g *Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.NextU32()
	}
	return out
}

func TestSeedDeterminism(t *testing.T) {
	g1 := New([]uint32{1, 2, 3})
	g2 := New([]uint32{1, 2, 3})

	require.Equal(t, draw(g1, 300), draw(g2, 300))
}

func TestSeedPadding(t *testing.T) {
	short := New([]uint32{1, 2, 3})
	padded := New(append([]uint32{1, 2, 3}, make([]uint32, 100)...))

	require.Equal(t, draw(short, 300), draw(padded, 300))
}

func TestSeedIgnoresExtraWords(t *testing.T) {
	seed := make([]uint32, Size+10)
	for i := range seed {
		seed[i] = uint32(i * 7)
	}
	long := New(seed)
	exact := New(seed[:Size])

	require.Equal(t, draw(exact, 50), draw(long, 50))
	require.Len(t, long.Seeds(), Size)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := draw(New([]uint32{1}), 20)
	b := draw(New([]uint32{2}), 20)

	require.NotEqual(t, a, b)
}

func TestReseedRestartsSequence(t *testing.T) {
	g := New([]uint32{9})
	first := draw(g, 400)

	g.Seed([]uint32{9})
	require.Equal(t, first, draw(g, 400))
	require.Equal(t, []uint32{9}, g.Seeds())
}

func TestBatchConsumedTopDown(t *testing.T) {
	m := &countingMixer{}
	g := New([]uint32{5}, WithMixer(m))

	require.Equal(t, 1, m.seeds)
	require.Equal(t, uint32(5), m.first, "seed words must reach the mixer")

	got := draw(g, Size)
	for i, v := range got {
		require.Equal(t, uint32(Size-1-i), v, "draw %d", i)
	}
	require.Zero(t, m.refills, "no refill before the batch is exhausted")

	// The next draw refills and starts again from the top of batch 1.
	require.Equal(t, uint32(2*Size-1), g.NextU32())
	require.Equal(t, 1, m.refills)
}

func TestSeedZeroesPreviousState(t *testing.T) {
	m := &countingMixer{}
	g := New([]uint32{1, 2, 3, 4}, WithMixer(m))
	draw(g, 3)

	g.Seed([]uint32{8})
	require.Equal(t, uint32(8), m.first)
	require.Equal(t, uint32(Size), g.count)
}

func TestNextUnitRange(t *testing.T) {
	g := New([]uint32{123})
	for i := 0; i < 2000; i++ {
		u := g.NextUnit()
		require.GreaterOrEqual(t, u, 0.0)
		require.LessOrEqual(t, u, 1.0)
	}

	m := &countingMixer{}
	edge := New(nil, WithMixer(m))
	draw(edge, Size-1)
	require.Equal(t, 0.0, edge.NextUnit(), "word 0 maps to 0")
}

func TestNextUnitScaling(t *testing.T) {
	a := New([]uint32{77})
	b := New([]uint32{77})
	for i := 0; i < 10; i++ {
		require.Equal(t, float64(a.NextU32())/4294967295.0, b.NextUnit())
	}
}

func TestUint64CombinesWords(t *testing.T) {
	a := New([]uint32{3})
	b := New([]uint32{3})

	hi, lo := a.NextU32(), a.NextU32()
	require.Equal(t, uint64(hi)<<32|uint64(lo), b.Uint64())
}

func TestUsableAsRandSource(t *testing.T) {
	r1 := rand.New(New([]uint32{11}))
	r2 := rand.New(New([]uint32{11}))

	for i := 0; i < 20; i++ {
		require.Equal(t, r1.IntN(1000), r2.IntN(1000))
	}
}

func TestDumpLoadReproducesOutputs(t *testing.T) {
	orig := New([]uint32{1, 2, 3})
	draw(orig, 250)

	state := orig.DumpState()
	require.Len(t, state, 516)
	require.Equal(t, orig.StateLen(), len(state))

	restored := New([]uint32{99, 98})
	draw(restored, 17)
	require.NoError(t, restored.LoadState(state))

	// The next 10 draws cross the refill boundary at 256.
	require.Equal(t, draw(orig, 10), draw(restored, 10))
	require.Equal(t, draw(orig, 600), draw(restored, 600))
}

func TestLoadStateClearsSeeds(t *testing.T) {
	orig := New([]uint32{1, 2, 3})
	target := New([]uint32{99})
	require.Equal(t, []uint32{99}, target.Seeds())

	require.NoError(t, target.LoadState(orig.DumpState()))
	require.Empty(t, target.Seeds())
	require.Equal(t, []uint32{1, 2, 3}, orig.Seeds())

	// A rejected load keeps the seeds.
	require.Error(t, orig.LoadState(nil))
	require.Equal(t, []uint32{1, 2, 3}, orig.Seeds())
}

func TestDumpStateLayout(t *testing.T) {
	g := New([]uint32{4})
	draw(g, 6)

	state := g.DumpState()
	require.Equal(t, uint32(Size-6), state[0])
	require.Equal(t, g.results[:], state[1:1+Size])

	isaac := g.mixer.(*ISAAC)
	require.Equal(t, isaac.mem[:], state[1+Size:1+2*Size])
	require.Equal(t, []uint32{isaac.a, isaac.b, isaac.c}, state[1+2*Size:])
}

func TestLoadStateLengthMismatch(t *testing.T) {
	g := New([]uint32{1, 2, 3})
	before := g.DumpState()

	for _, n := range []int{0, 1, 515, 517} {
		err := g.LoadState(make([]uint32, n))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrLengthMismatch))

		var mismatch *LengthMismatchError
		require.True(t, errors.As(err, &mismatch))
		require.Equal(t, 516, mismatch.Expected)
		require.Equal(t, n, mismatch.Actual)

		require.Equal(t, before, g.DumpState(), "state changed after rejected load")
	}

	ref := New([]uint32{1, 2, 3})
	require.Equal(t, draw(ref, 10), draw(g, 10))
}

func TestStatelessMixerStateLen(t *testing.T) {
	g := New(nil, WithMixer(&countingMixer{}))
	require.Equal(t, 1+Size, g.StateLen())

	state := g.DumpState()
	require.Len(t, state, 1+Size)
	require.NoError(t, g.LoadState(state))
}

func TestLoadStateClampsCount(t *testing.T) {
	g := New([]uint32{1})
	state := g.DumpState()
	state[0] = 10_000

	require.NoError(t, g.LoadState(state))
	require.NotPanics(t, func() { draw(g, 300) })
}

func TestWithMixerNilIgnored(t *testing.T) {
	g := New([]uint32{1}, WithMixer(nil))
	_, ok := g.mixer.(*ISAAC)
	require.True(t, ok)
}
