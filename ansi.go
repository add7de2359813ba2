package textwidth

import "strings"

// StringWidthANSI returns the display width of s with ANSI escape sequences
// removed; the sequences themselves contribute zero columns.
func (m *Measurer) StringWidthANSI(s string) int {
	return m.StringWidth(StripANSI(s))
}

// StripANSI removes ANSI escape sequences (CSI, OSC, DCS, APC, PM, and
// two-byte ESC sequences) from s, leaving only printable text.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = skipEscapeSequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

const esc = '\x1b'

// skipEscapeSequence advances past the escape sequence starting at s[i] and
// returns the index of the first byte after it. An unterminated sequence
// consumes the rest of the string.
func skipEscapeSequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// CSI: parameters and intermediates up to a final byte 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case 'P', '_', '^':
		// DCS, APC, PM: terminated by ST.
		for i++; i < len(s); i++ {
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')':
		// Charset designation: one more byte.
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		return i + 1
	}
}
