// Package isaac provides Generator, a deterministic 32-bit pseudo-random
// generator with explicit, serializable state.
//
// A Generator caches one batch of Size words produced by a Mixer and hands
// them out from the top of the batch down, refilling when the batch is
// exhausted. The default Mixer is Bob Jenkins' ISAAC.
//
// State layout used by DumpState and LoadState, in order:
//
//	word 0          remaining count of the current batch
//	words 1..256    current batch
//	words 257..     the mixer's own state (StatefulMixer), if any
//
// With the ISAAC mixer the mixer words are mem[0..255], a, b, c, giving
// StateLen() == 516.
package isaac
