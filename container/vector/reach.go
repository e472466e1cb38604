package vector

// Reachable returns every distinct Value reachable from roots through
// ForEachOwnedReference, in depth-first discovery order, roots included.
// Values are distinguished with ==, so element types must be comparable.
func Reachable(roots ...Value) []Value {
	var out []Value
	seen := make(map[Value]struct{})

	var mark func(Value)
	mark = func(val Value) {
		if val == nil {
			return
		}
		if _, dup := seen[val]; dup {
			return
		}
		seen[val] = struct{}{}
		out = append(out, val)
		val.ForEachOwnedReference(mark)
	}

	for _, r := range roots {
		mark(r)
	}
	return out
}
