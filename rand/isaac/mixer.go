package isaac

// Size is the number of words in one batch.
const Size = 256

// Mixer produces batches of pseudo-random words.
type Mixer interface {
	// Seed initializes all internal state from the seed words in batch and
	// overwrites batch with the first batch of output.
	Seed(batch *[Size]uint32)
	// Refill overwrites batch with the next batch of output.
	Refill(batch *[Size]uint32)
}

// StatefulMixer is a Mixer with internal state beyond the batch itself.
// Generators include that state in DumpState and LoadState.
type StatefulMixer interface {
	Mixer
	// StateLen is the fixed number of words AppendState emits.
	StateLen() int
	// AppendState appends the internal state to dst.
	AppendState(dst []uint32) []uint32
	// SetState restores state written by AppendState. len(src) equals
	// StateLen.
	SetState(src []uint32)
}

const golden = 0x9e3779b9

// ISAAC is the ISAAC batch function by Bob Jenkins (1996).
type ISAAC struct {
	mem     [Size]uint32
	a, b, c uint32
}

var _ StatefulMixer = (*ISAAC)(nil)

// Seed runs the ISAAC initialization using batch as the seed, then produces
// the first batch.
func (x *ISAAC) Seed(batch *[Size]uint32) {
	x.a, x.b, x.c = 0, 0, 0
	var s [8]uint32
	for i := range s {
		s[i] = golden
	}
	for i := 0; i < 4; i++ {
		scramble(&s)
	}

	// Two passes so every seed word affects every mem word.
	for pass := 0; pass < 2; pass++ {
		src := batch
		if pass == 1 {
			src = &x.mem
		}
		for i := 0; i < Size; i += 8 {
			for j := range s {
				s[j] += src[i+j]
			}
			scramble(&s)
			copy(x.mem[i:i+8], s[:])
		}
	}

	x.Refill(batch)
}

// Refill produces the next batch.
func (x *ISAAC) Refill(batch *[Size]uint32) {
	m := &x.mem
	x.c++
	a, b := x.a, x.b+x.c

	for i := 0; i < Size; i++ {
		v := m[i]
		switch i & 3 {
		case 0:
			a ^= a << 13
		case 1:
			a ^= a >> 6
		case 2:
			a ^= a << 2
		case 3:
			a ^= a >> 16
		}
		a += m[(i+Size/2)&(Size-1)]
		y := m[(v>>2)&(Size-1)] + a + b
		m[i] = y
		b = m[(y>>10)&(Size-1)] + v
		batch[i] = b
	}

	x.a, x.b = a, b
}

// StateLen returns Size+3.
func (x *ISAAC) StateLen() int { return Size + 3 }

// AppendState appends mem, a, b, c.
func (x *ISAAC) AppendState(dst []uint32) []uint32 {
	dst = append(dst, x.mem[:]...)
	return append(dst, x.a, x.b, x.c)
}

// SetState restores mem, a, b, c.
func (x *ISAAC) SetState(src []uint32) {
	copy(x.mem[:], src[:Size])
	x.a, x.b, x.c = src[Size], src[Size+1], src[Size+2]
}

func scramble(s *[8]uint32) {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b
	s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7] = a, b, c, d, e, f, g, h
}
