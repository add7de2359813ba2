package textwidth

// defaultMeasurer backs the package-level functions. It resolves its version
// once, on first use, from the UNICODE_VERSION environment variable.
var defaultMeasurer = New()

// RuneWidth returns the display width of r using the default Measurer.
func RuneWidth(r rune) int {
	return defaultMeasurer.RuneWidth(r)
}

// StringWidth returns the display width of s using the default Measurer.
func StringWidth(s string) int {
	return defaultMeasurer.StringWidth(s)
}

// StringWidthRange returns the display width of s[start:end] using the
// default Measurer.
func StringWidthRange(s string, start, end int) (int, error) {
	return defaultMeasurer.StringWidthRange(s, start, end)
}

// BytesWidth returns the display width of b under the declared encoding
// using the default Measurer.
func BytesWidth(b []byte, enc Encoding) int {
	return defaultMeasurer.BytesWidth(b, enc)
}

// StringWidthANSI returns the display width of s with ANSI escape sequences
// removed, using the default Measurer.
func StringWidthANSI(s string) int {
	return defaultMeasurer.StringWidthANSI(s)
}

// Fit adjusts s to exactly width columns using the default Measurer.
func Fit(s string, width int, cut, pad Align, padChar rune) string {
	return defaultMeasurer.Fit(s, width, cut, pad, padChar)
}

// Truncate cuts s down to at most width columns using the default Measurer.
func Truncate(s string, width int) string {
	return defaultMeasurer.Truncate(s, width)
}

// Pad extends s to at least width columns using the default Measurer.
func Pad(s string, width int, side Align, padChar rune) string {
	return defaultMeasurer.Pad(s, width, side, padChar)
}
