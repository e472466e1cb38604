// Package samplebuf provides Buffer, a fixed-length circular buffer of
// float64 samples.
//
// A Buffer always holds exactly Len samples; there is no spare capacity and
// no push or pop. The logically oldest sample lives at physical index
// Offset, and logical index i maps to physical index (Offset+i) mod Len.
//
// Resize reshapes the buffer in place while preserving logical order.
// Shrinking keeps the most recent samples. Growing inserts new samples at
// the logical front, filled with the previous oldest value, so a shrink
// followed by a grow back to the original length does not restore the
// dropped samples.
package samplebuf
