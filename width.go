package textwidth

// RuneWidth returns the display width of a single codepoint: 2 for wide
// characters (CJK ideographs, fullwidth forms) and the override set, 1 for
// normal characters, 0 for zero-width and non-printing characters.
func (m *Measurer) RuneWidth(r rune) int {
	if _, ok := overrideWide[r]; ok {
		return 2
	}
	w := m.wcwidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// wcwidth classifies r against the resolved version's tables. It returns -1
// for non-printing control characters; RuneWidth clamps that to 0 at the
// public boundary.
func (m *Measurer) wcwidth(r rune) int {
	if alwaysZeroWidth.contains(r) == 1 {
		return 0
	}
	if r < 0x20 || (r >= 0x7F && r < 0xA0) {
		return -1
	}
	version := m.resolveVersion()
	if m.tables.ZeroWidth(version).contains(r) == 1 {
		return 0
	}
	return 1 + m.tables.Wide(version).contains(r)
}
