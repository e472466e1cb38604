// Package vector provides Vector, a growable array of owned Value
// references.
//
// A Vector grows implicitly as elements are pushed (16 slots, then doubling)
// but shrinks only when Shrink is called, so a vector that rapidly grows and
// drains does not reallocate on every pop.
//
// Elements satisfy the Value interface: a permissive comparison (Equal), a
// strict comparison (Eql), a hash, and enumeration of the references the
// element itself holds. Vector implements Value, so vectors nest, and may
// contain themselves: comparisons and hashes that re-enter a vector already
// on the active stack terminate instead of recursing.
//
// Go's collector keeps every stored reference alive on its own; the
// enumeration hook (ForEachOwnedReference, Reachable) is for hosts that run
// their own mark or scan passes over a value graph.
package vector
