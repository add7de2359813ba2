package textwidth

// contains reports whether r falls inside one of the table's ranges,
// returning 1 when found and 0 otherwise. The integer result composes
// arithmetically with the classifier (width = 1 + wide.contains(r)).
//
// The table must be sorted ascending and non-overlapping.
func (t Table) contains(r rune) int {
	if len(t) == 0 {
		return 0
	}
	lo, hi := 0, len(t)-1
	if r < t[0].Lo || r > t[hi].Hi {
		return 0
	}
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case r > t[mid].Hi:
			lo = mid + 1
		case r < t[mid].Lo:
			hi = mid - 1
		default:
			return 1
		}
	}
	return 0
}
