// Package textwidth computes the terminal display width of Unicode text and
// fits strings to a fixed column count.
//
// Every codepoint occupies 0, 1, or 2 terminal cells: combining marks and
// format characters take none, East Asian wide characters and fullwidth
// forms take two, everything else takes one. The classification is driven by
// versioned Unicode range tables, so output can match terminals built
// against older Unicode releases.
//
// # Quick Start
//
//	textwidth.StringWidth("永A")              // 3
//	textwidth.RuneWidth('永')                 // 2
//	textwidth.Fit("AB", 5, textwidth.AlignLeft, textwidth.AlignRight, ' ')
//	                                          // "AB   "
//
// # Measurer
//
// The package-level functions use a shared default [Measurer]. Construct
// your own to pin a Unicode version or to capture recoverable warnings:
//
//	m := textwidth.New(
//	    textwidth.WithVersion("9.0.0"),
//	    textwidth.WithWarnings(textwidth.LogWarnings{}),
//	)
//	w := m.StringWidth(line)
//
// The default version is [VersionAuto]: the UNICODE_VERSION environment
// variable if set, otherwise the latest embedded table. Requests for
// untabulated versions degrade to the nearest tabulated one with a warning,
// never an error.
//
// # Byte Buffers
//
// [Measurer.BytesWidth] measures raw byte buffers tagged with an [Encoding].
// UTF-8 buffers with malformed sequences are still measured: each bad byte
// decodes to a placeholder, a warning is signalled through the configured
// [WarningProvider], and the best-effort width is returned.
//
// # ANSI Escapes
//
// [StripANSI] and [Measurer.StringWidthANSI] measure text that carries ANSI
// escape sequences, which occupy no columns.
//
// # Display Policy
//
// A small set of punctuation and symbols (typographic quotes, the ellipsis,
// the interpunct, the em dash, angle quotation marks, and the four plain
// arrows) is forced to width 2 regardless of its tabulated classification.
// This matches CJK-oriented terminal fonts that render these glyphs wide; it
// is a local display policy, not a Unicode correction.
//
// # Limits
//
// The unit of measurement is the codepoint. Grapheme cluster segmentation,
// Unicode normalization, and bidirectional layout are out of scope; emoji
// ZWJ sequences measure as the sum of their parts.
package textwidth
