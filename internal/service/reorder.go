package service

// moveItem shifts the element at position from to position to, sliding
// everything between by one. Positions outside the slice leave it
// untouched; the returned bool reports whether anything moved.
func moveItem[T any](items []T, from, to int) ([]T, bool) {
	if from < 0 || to < 0 || from >= len(items) || to >= len(items) || from == to {
		return items, false
	}
	out := make([]T, 0, len(items))
	out = append(out, items...)
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, true
}
