package textwidth

import (
	"strings"
	"unicode/utf8"
)

// Align selects which side of a string Fit cuts from or pads on.
type Align int

const (
	// AlignLeft cuts characters from, or prepends padding to, the start.
	AlignLeft Align = iota
	// AlignRight cuts characters from, or appends padding to, the end.
	AlignRight
)

// Fit returns s adjusted to exactly width display columns. Strings wider
// than width lose characters from the cut side; strings narrower than width
// gain padChar on the pad side. Cutting and padding are each a single pass:
// the cut boundary is found by accumulating rune widths from the kept side,
// and the pad deficit is filled in one allocation.
//
// The result has width exactly width whenever padChar has display width 1
// (cutting a wide character mid-budget leaves a one-column deficit, which is
// padded). A padChar of width 2 may overshoot by one column; a padChar of
// width 0 cannot fill a deficit and leaves the string short.
func (m *Measurer) Fit(s string, width int, cut, pad Align, padChar rune) string {
	if width < 0 {
		width = 0
	}
	current := m.StringWidth(s)
	if current > width {
		s, current = m.cutToWidth(s, width, cut)
	}
	if current < width {
		s = m.padToWidth(s, width-current, pad, padChar)
	}
	return s
}

// Truncate cuts characters off the end of s until its width is at most
// width. Strings already within the budget are returned unchanged.
func (m *Measurer) Truncate(s string, width int) string {
	if m.StringWidth(s) <= width {
		return s
	}
	out, _ := m.cutToWidth(s, width, AlignRight)
	return out
}

// Pad extends s with padChar on the given side until its width reaches at
// least width.
func (m *Measurer) Pad(s string, width int, side Align, padChar rune) string {
	deficit := width - m.StringWidth(s)
	if deficit <= 0 {
		return s
	}
	return m.padToWidth(s, deficit, side, padChar)
}

// cutToWidth removes characters from the cut side until the remainder fits
// in width columns, returning the remainder and its width. Removing a wide
// character may leave the result one column under budget.
func (m *Measurer) cutToWidth(s string, width int, cut Align) (string, int) {
	if cut == AlignLeft {
		// Keep the longest suffix that fits.
		kept := 0
		for pos := len(s); pos > 0; {
			r, size := utf8.DecodeLastRuneInString(s[:pos])
			w := m.RuneWidth(r)
			if kept+w > width {
				return s[pos:], kept
			}
			kept += w
			pos -= size
		}
		return s, kept
	}
	// Keep the longest prefix that fits.
	kept := 0
	for pos, r := range s {
		w := m.RuneWidth(r)
		if kept+w > width {
			return s[:pos], kept
		}
		kept += w
	}
	return s, kept
}

// padToWidth adds padChar on the given side until at least deficit columns
// are filled. A zero-width padChar fills nothing.
func (m *Measurer) padToWidth(s string, deficit int, pad Align, padChar rune) string {
	padWidth := m.RuneWidth(padChar)
	if padWidth <= 0 {
		return s
	}
	count := (deficit + padWidth - 1) / padWidth
	padding := strings.Repeat(string(padChar), count)
	if pad == AlignLeft {
		return padding + s
	}
	return s + padding
}
