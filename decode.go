package textwidth

// decodeErrorRune substitutes for a malformed byte sequence.
const decodeErrorRune = '?'

// decodeOne decodes a single UTF-8 codepoint starting at pos, returning the
// codepoint and the position of the next one. On any malformed input
// (truncated sequence, bad continuation byte, overlong encoding) it returns
// decodeErrorRune and advances exactly one byte, so the caller always makes
// forward progress on corrupt buffers.
//
// Like the classifier it feeds, decodeOne does not reject surrogates or
// ordinals above U+10FFFF; those simply match no table and classify as
// normal width.
func decodeOne(b []byte, pos int) (rune, int) {
	b1 := b[pos]
	if b1&0x80 == 0 {
		return rune(b1), pos + 1
	}
	remaining := len(b) - pos

	switch {
	case b1&0xE0 == 0xC0:
		if remaining < 2 {
			return decodeErrorRune, pos + 1
		}
		b2 := b[pos+1]
		if b2&0xC0 != 0x80 {
			return decodeErrorRune, pos + 1
		}
		r := rune(b1&0x1F)<<6 | rune(b2&0x3F)
		if r < 0x80 {
			// overlong
			return decodeErrorRune, pos + 1
		}
		return r, pos + 2

	case b1&0xF0 == 0xE0:
		if remaining < 3 {
			return decodeErrorRune, pos + 1
		}
		b2, b3 := b[pos+1], b[pos+2]
		if b2&0xC0 != 0x80 || b3&0xC0 != 0x80 {
			return decodeErrorRune, pos + 1
		}
		r := rune(b1&0x0F)<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F)
		if r < 0x800 {
			return decodeErrorRune, pos + 1
		}
		return r, pos + 3

	case b1&0xF8 == 0xF0:
		if remaining < 4 {
			return decodeErrorRune, pos + 1
		}
		b2, b3, b4 := b[pos+1], b[pos+2], b[pos+3]
		if b2&0xC0 != 0x80 || b3&0xC0 != 0x80 || b4&0xC0 != 0x80 {
			return decodeErrorRune, pos + 1
		}
		r := rune(b1&0x07)<<18 | rune(b2&0x3F)<<12 | rune(b3&0x3F)<<6 | rune(b4&0x3F)
		if r < 0x10000 {
			return decodeErrorRune, pos + 1
		}
		return r, pos + 4
	}

	// Lone continuation byte or invalid lead byte.
	return decodeErrorRune, pos + 1
}
