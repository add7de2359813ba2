package textwidth

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidRange reports a width request whose start offset exceeds its end
// offset. It is the only fatal condition in the package.
var ErrInvalidRange = errors.New("textwidth: invalid range")

// Encoding declares how a byte buffer should be interpreted when measuring
// its width.
type Encoding int

const (
	// EncodingUTF8 decodes the buffer as UTF-8, tolerating malformed
	// sequences with placeholder substitution.
	EncodingUTF8 Encoding = iota
	// EncodingNarrow treats every byte as one column. This is a legacy
	// simplification carried over for single-byte terminal encodings; it
	// performs no decoding.
	EncodingNarrow
	// EncodingWide treats every byte as one column, like EncodingNarrow.
	// Legacy placeholder for double-byte terminal encodings.
	EncodingWide
)

// StringWidth returns the total display width of s.
func (m *Measurer) StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += m.RuneWidth(r)
	}
	return w
}

// StringWidthRange returns the display width of s[start:end]. Offsets index
// bytes; offsets past the end of s are clamped and negative offsets are
// treated as zero. start > end fails with ErrInvalidRange.
func (m *Measurer) StringWidthRange(s string, start, end int) (int, error) {
	if s == "" {
		return 0, nil
	}
	start, end, err := clampRange(start, end, len(s))
	if err != nil {
		return 0, err
	}
	return m.StringWidth(s[start:end]), nil
}

// BytesWidth returns the display width of b under the declared encoding.
func (m *Measurer) BytesWidth(b []byte, enc Encoding) int {
	w, _ := m.BytesWidthRange(b, enc, 0, len(b))
	return w
}

// BytesWidthRange returns the display width of b[start:end] under the
// declared encoding. For EncodingUTF8 a fully valid slice is summed
// directly; on malformed input a recoverable warning is signalled and the
// byte-wise tolerant decoder takes over, so the returned width is
// best-effort rather than exact. Offset handling matches StringWidthRange.
func (m *Measurer) BytesWidthRange(b []byte, enc Encoding, start, end int) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	start, end, err := clampRange(start, end, len(b))
	if err != nil {
		return 0, err
	}
	if start == end {
		return 0, nil
	}

	if enc == EncodingNarrow || enc == EncodingWide {
		return end - start, nil
	}

	if utf8.Valid(b[start:end]) {
		return m.StringWidth(string(b[start:end])), nil
	}

	m.warnings.Warn(fmt.Sprintf("textwidth: malformed UTF-8 in bytes [%d:%d), width is approximate", start, end))
	w := 0
	for i := start; i < end; {
		var r rune
		r, i = decodeOne(b, i)
		w += m.RuneWidth(r)
	}
	return w, nil
}

// clampRange validates and clamps a [start, end) request against length.
func clampRange(start, end, length int) (int, int, error) {
	if start > end {
		return 0, 0, fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, start, end)
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start > end {
		start = end
	}
	return start, end, nil
}
