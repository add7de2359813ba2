package textwidth

// This file holds the versioned Unicode range tables the classifier consults.
// The data is derived from the Unicode Character Database (EastAsianWidth.txt
// and DerivedGeneralCategory.txt) per version. Each version's table is built
// from the previous release plus the ranges that release added, merged into a
// single sorted, non-overlapping table at package init.

// Range is an inclusive block of codepoints sharing one width classification.
type Range struct {
	Lo rune
	Hi rune
}

// Table is an ascending, non-overlapping sequence of ranges, searchable via
// binary search.
type Table []Range

// TableProvider supplies the range tables for a given Unicode version.
// The default provider returns the embedded tables below; tests may inject
// small synthetic tables instead.
type TableProvider interface {
	// Versions returns the supported Unicode versions in ascending order.
	// The last entry is the latest.
	Versions() []string
	// Wide returns the East-Asian-wide table for a supported version.
	Wide(version string) Table
	// ZeroWidth returns the combining/non-spacing table for a supported version.
	ZeroWidth(version string) Table
}

// EmbeddedTables is the default TableProvider, backed by the static data in
// this file.
type EmbeddedTables struct{}

func (EmbeddedTables) Versions() []string { return unicodeVersions }

func (EmbeddedTables) Wide(version string) Table { return wideEastAsian[version] }

func (EmbeddedTables) ZeroWidth(version string) Table { return zeroWidth[version] }

// unicodeVersions lists the tabulated Unicode versions, ascending.
var unicodeVersions = []string{
	"4.1.0",
	"5.2.0",
	"8.0.0",
	"9.0.0",
	"12.1.0",
	"15.1.0",
}

// alwaysZeroWidth holds codepoints that occupy no columns regardless of
// Unicode version: NUL, the combining grapheme joiner, and the zero-width
// space/joiner and directional format characters.
var alwaysZeroWidth = Table{
	{0x0000, 0x0000},
	{0x034F, 0x034F},
	{0x200B, 0x200F},
	{0x2028, 0x202E},
	{0x2060, 0x2063},
}

// overrideWide forces specific punctuation and symbols to two columns
// regardless of the tabulated classification. This is a display policy for
// CJK-oriented terminal output, not a Unicode correction: typographic quotes,
// the ellipsis, the interpunct, the em dash, and the arrows render wide in
// the fonts this library targets.
var overrideWide = map[rune]struct{}{
	'‘': {}, // ‘
	'’': {}, // ’
	'“': {}, // “
	'”': {}, // ”
	'…': {}, // …
	'·': {}, // ·
	'—': {}, // —
	'《': {}, // 《
	'》': {}, // 》
	'↑': {}, // ↑
	'↓': {}, // ↓
	'←': {}, // ←
	'→': {}, // →
}

// mergeRanges combines a base table with additional ranges, returning a new
// sorted table with overlapping and adjacent ranges coalesced. Used to build
// each version's table from the previous release.
func mergeRanges(base Table, add ...Range) Table {
	merged := make(Table, 0, len(base)+len(add))
	merged = append(merged, base...)
	merged = append(merged, add...)
	for i := 1; i < len(merged); i++ {
		for j := i; j > 0 && merged[j].Lo < merged[j-1].Lo; j-- {
			merged[j], merged[j-1] = merged[j-1], merged[j]
		}
	}
	out := merged[:1]
	for _, r := range merged[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

var wideEastAsian = map[string]Table{
	"4.1.0":  wide410,
	"5.2.0":  wide520,
	"8.0.0":  wide800,
	"9.0.0":  wide900,
	"12.1.0": wide1210,
	"15.1.0": wide1510,
}

var zeroWidth = map[string]Table{
	"4.1.0":  zw410,
	"5.2.0":  zw520,
	"8.0.0":  zw800,
	"9.0.0":  zw900,
	"12.1.0": zw1210,
	"15.1.0": zw1510,
}

var wide410 = Table{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0x2FFB},
	{0x3000, 0x303E},
	{0x3041, 0x33FF},
	{0x3400, 0x4DB5},
	{0x4E00, 0x9FBB},
	{0xA000, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAD9},
	{0xFE10, 0xFE19},
	{0xFE30, 0xFE52},
	{0xFE54, 0xFE66},
	{0xFE68, 0xFE6B},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

var wide520 = mergeRanges(wide410,
	Range{0x4E00, 0x9FCB},
	Range{0xA960, 0xA97C},
)

var wide800 = mergeRanges(wide520,
	Range{0x4E00, 0x9FD5},
	Range{0x1B000, 0x1B001},
	Range{0x1F200, 0x1F202},
	Range{0x1F210, 0x1F23A},
	Range{0x1F240, 0x1F248},
	Range{0x1F250, 0x1F251},
)

// Unicode 9.0 reclassified emoji presentation characters as wide.
var wide900 = mergeRanges(wide800,
	Range{0x231A, 0x231B},
	Range{0x23E9, 0x23EC},
	Range{0x23F0, 0x23F0},
	Range{0x23F3, 0x23F3},
	Range{0x25FD, 0x25FE},
	Range{0x2614, 0x2615},
	Range{0x2648, 0x2653},
	Range{0x267F, 0x267F},
	Range{0x2693, 0x2693},
	Range{0x26A1, 0x26A1},
	Range{0x26AA, 0x26AB},
	Range{0x26BD, 0x26BE},
	Range{0x26C4, 0x26C5},
	Range{0x26CE, 0x26CE},
	Range{0x26D4, 0x26D4},
	Range{0x26EA, 0x26EA},
	Range{0x26F2, 0x26F3},
	Range{0x26F5, 0x26F5},
	Range{0x26FA, 0x26FA},
	Range{0x26FD, 0x26FD},
	Range{0x2705, 0x2705},
	Range{0x270A, 0x270B},
	Range{0x2728, 0x2728},
	Range{0x274C, 0x274C},
	Range{0x274E, 0x274E},
	Range{0x2753, 0x2755},
	Range{0x2757, 0x2757},
	Range{0x2795, 0x2797},
	Range{0x27B0, 0x27B0},
	Range{0x27BF, 0x27BF},
	Range{0x2B1B, 0x2B1C},
	Range{0x2B50, 0x2B50},
	Range{0x2B55, 0x2B55},
	Range{0x16FE0, 0x16FE0},
	Range{0x17000, 0x187EC},
	Range{0x18800, 0x18AF2},
	Range{0x1F004, 0x1F004},
	Range{0x1F0CF, 0x1F0CF},
	Range{0x1F18E, 0x1F18E},
	Range{0x1F191, 0x1F19A},
	Range{0x1F300, 0x1F320},
	Range{0x1F32D, 0x1F335},
	Range{0x1F337, 0x1F37C},
	Range{0x1F37E, 0x1F393},
	Range{0x1F3A0, 0x1F3CA},
	Range{0x1F3CF, 0x1F3D3},
	Range{0x1F3E0, 0x1F3F0},
	Range{0x1F3F4, 0x1F3F4},
	Range{0x1F3F8, 0x1F43E},
	Range{0x1F440, 0x1F440},
	Range{0x1F442, 0x1F4FC},
	Range{0x1F4FF, 0x1F53D},
	Range{0x1F54B, 0x1F54E},
	Range{0x1F550, 0x1F567},
	Range{0x1F57A, 0x1F57A},
	Range{0x1F595, 0x1F596},
	Range{0x1F5A4, 0x1F5A4},
	Range{0x1F5FB, 0x1F64F},
	Range{0x1F680, 0x1F6C5},
	Range{0x1F6CC, 0x1F6CC},
	Range{0x1F6D0, 0x1F6D2},
	Range{0x1F6EB, 0x1F6EC},
	Range{0x1F6F4, 0x1F6F6},
	Range{0x1F910, 0x1F91E},
	Range{0x1F920, 0x1F927},
	Range{0x1F930, 0x1F930},
	Range{0x1F933, 0x1F93E},
	Range{0x1F940, 0x1F94B},
	Range{0x1F950, 0x1F95E},
	Range{0x1F980, 0x1F991},
	Range{0x1F9C0, 0x1F9C0},
)

var wide1210 = mergeRanges(wide900,
	Range{0x4E00, 0x9FEF},
	Range{0x16FE1, 0x16FE3},
	Range{0x187ED, 0x187F7},
	Range{0x1B002, 0x1B11E},
	Range{0x1B150, 0x1B152},
	Range{0x1B164, 0x1B167},
	Range{0x1B170, 0x1B2FB},
	Range{0x1F6D5, 0x1F6D5},
	Range{0x1F6FA, 0x1F6FA},
	Range{0x1F7E0, 0x1F7EB},
	Range{0x1F90D, 0x1F971},
	Range{0x1F973, 0x1F976},
	Range{0x1F97A, 0x1F9A2},
	Range{0x1F9A5, 0x1F9AA},
	Range{0x1F9AE, 0x1F9CA},
	Range{0x1F9CD, 0x1F9FF},
	Range{0x1FA70, 0x1FA73},
	Range{0x1FA78, 0x1FA7A},
	Range{0x1FA80, 0x1FA82},
	Range{0x1FA90, 0x1FA95},
)

var wide1510 = mergeRanges(wide1210,
	Range{0x4E00, 0x9FFF},
	Range{0x1B155, 0x1B155},
	Range{0x1F6DC, 0x1F6DF},
	Range{0x1F7F0, 0x1F7F0},
	Range{0x1F90C, 0x1F90C},
	Range{0x1F972, 0x1F972},
	Range{0x1F977, 0x1F979},
	Range{0x1F9CB, 0x1F9CC},
	Range{0x1FA74, 0x1FA7C},
	Range{0x1FA83, 0x1FA88},
	Range{0x1FA96, 0x1FABD},
	Range{0x1FABF, 0x1FAC5},
	Range{0x1FACE, 0x1FADB},
	Range{0x1FAE0, 0x1FAE8},
	Range{0x1FAF0, 0x1FAF8},
	Range{0x31350, 0x323AF},
)

var zw410 = Table{
	{0x0300, 0x036F},
	{0x0483, 0x0486},
	{0x0488, 0x0489},
	{0x0591, 0x05B9},
	{0x05BB, 0x05BD},
	{0x05BF, 0x05BF},
	{0x05C1, 0x05C2},
	{0x05C4, 0x05C5},
	{0x05C7, 0x05C7},
	{0x0610, 0x0615},
	{0x064B, 0x065E},
	{0x0670, 0x0670},
	{0x06D6, 0x06DC},
	{0x06DE, 0x06E4},
	{0x06E7, 0x06E8},
	{0x06EA, 0x06ED},
	{0x0711, 0x0711},
	{0x0730, 0x074A},
	{0x07A6, 0x07B0},
	{0x0901, 0x0902},
	{0x093C, 0x093C},
	{0x0941, 0x0948},
	{0x094D, 0x094D},
	{0x0951, 0x0954},
	{0x0962, 0x0963},
	{0x0981, 0x0981},
	{0x09BC, 0x09BC},
	{0x09C1, 0x09C4},
	{0x09CD, 0x09CD},
	{0x09E2, 0x09E3},
	{0x0A01, 0x0A02},
	{0x0A3C, 0x0A3C},
	{0x0A41, 0x0A42},
	{0x0A47, 0x0A48},
	{0x0A4B, 0x0A4D},
	{0x0A70, 0x0A71},
	{0x0A81, 0x0A82},
	{0x0ABC, 0x0ABC},
	{0x0AC1, 0x0AC5},
	{0x0AC7, 0x0AC8},
	{0x0ACD, 0x0ACD},
	{0x0AE2, 0x0AE3},
	{0x0B01, 0x0B01},
	{0x0B3C, 0x0B3C},
	{0x0B3F, 0x0B3F},
	{0x0B41, 0x0B43},
	{0x0B4D, 0x0B4D},
	{0x0B56, 0x0B56},
	{0x0B82, 0x0B82},
	{0x0BC0, 0x0BC0},
	{0x0BCD, 0x0BCD},
	{0x0C3E, 0x0C40},
	{0x0C46, 0x0C48},
	{0x0C4A, 0x0C4D},
	{0x0C55, 0x0C56},
	{0x0CBC, 0x0CBC},
	{0x0CBF, 0x0CBF},
	{0x0CC6, 0x0CC6},
	{0x0CCC, 0x0CCD},
	{0x0D41, 0x0D43},
	{0x0D4D, 0x0D4D},
	{0x0DCA, 0x0DCA},
	{0x0DD2, 0x0DD4},
	{0x0DD6, 0x0DD6},
	{0x0E31, 0x0E31},
	{0x0E34, 0x0E3A},
	{0x0E47, 0x0E4E},
	{0x0EB1, 0x0EB1},
	{0x0EB4, 0x0EB9},
	{0x0EBB, 0x0EBC},
	{0x0EC8, 0x0ECD},
	{0x0F18, 0x0F19},
	{0x0F35, 0x0F35},
	{0x0F37, 0x0F37},
	{0x0F39, 0x0F39},
	{0x0F71, 0x0F7E},
	{0x0F80, 0x0F84},
	{0x0F86, 0x0F87},
	{0x0F90, 0x0F97},
	{0x0F99, 0x0FBC},
	{0x0FC6, 0x0FC6},
	{0x102D, 0x1030},
	{0x1032, 0x1032},
	{0x1036, 0x1037},
	{0x1039, 0x1039},
	{0x1058, 0x1059},
	{0x1160, 0x11FF},
	{0x135F, 0x135F},
	{0x1712, 0x1714},
	{0x1732, 0x1734},
	{0x1752, 0x1753},
	{0x1772, 0x1773},
	{0x17B4, 0x17B5},
	{0x17B7, 0x17BD},
	{0x17C6, 0x17C6},
	{0x17C9, 0x17D3},
	{0x17DD, 0x17DD},
	{0x180B, 0x180D},
	{0x18A9, 0x18A9},
	{0x1920, 0x1922},
	{0x1927, 0x1928},
	{0x1932, 0x1932},
	{0x1939, 0x193B},
	{0x1A17, 0x1A18},
	{0x1DC0, 0x1DC3},
	{0x20D0, 0x20EB},
	{0x302A, 0x302F},
	{0x3099, 0x309A},
	{0xA806, 0xA806},
	{0xA80B, 0xA80B},
	{0xA825, 0xA826},
	{0xFB1E, 0xFB1E},
	{0xFE00, 0xFE0F},
	{0xFE20, 0xFE23},
	{0x10A01, 0x10A03},
	{0x10A05, 0x10A06},
	{0x10A0C, 0x10A0F},
	{0x10A38, 0x10A3A},
	{0x10A3F, 0x10A3F},
	{0x1D167, 0x1D169},
	{0x1D173, 0x1D182},
	{0x1D185, 0x1D18B},
	{0x1D1AA, 0x1D1AD},
	{0x1D242, 0x1D244},
	{0xE0001, 0xE0001},
	{0xE0020, 0xE007F},
	{0xE0100, 0xE01EF},
}

var zw520 = mergeRanges(zw410,
	Range{0x0816, 0x0819},
	Range{0x081B, 0x0823},
	Range{0x0825, 0x0827},
	Range{0x0829, 0x082D},
	Range{0x0900, 0x0900},
	Range{0x0955, 0x0955},
	Range{0x1B00, 0x1B03},
	Range{0x1B34, 0x1B34},
	Range{0x1B36, 0x1B3A},
	Range{0x1B3C, 0x1B3C},
	Range{0x1B42, 0x1B42},
	Range{0x1B6B, 0x1B73},
	Range{0x1DC4, 0x1DE6},
	Range{0x1DFE, 0x1DFF},
	Range{0x20EC, 0x20F0},
	Range{0xA66F, 0xA672},
	Range{0xA8E0, 0xA8F1},
	Range{0xA926, 0xA92D},
	Range{0xA947, 0xA951},
	Range{0xAA29, 0xAA2E},
)

var zw800 = mergeRanges(zw520,
	Range{0x0C00, 0x0C00},
	Range{0x0C81, 0x0C81},
	Range{0x0D01, 0x0D01},
	Range{0x1AB0, 0x1ABE},
	Range{0x1CF8, 0x1CF9},
	Range{0x1DE7, 0x1DF5},
	Range{0xA69E, 0xA69F},
	Range{0xFE24, 0xFE2F},
	Range{0x11300, 0x11301},
	Range{0x1DA00, 0x1DA36},
	Range{0x1DA3B, 0x1DA6C},
)

var zw900 = mergeRanges(zw800,
	Range{0x08D4, 0x08E2},
	Range{0x1E000, 0x1E006},
	Range{0x1E008, 0x1E018},
	Range{0x1E01B, 0x1E021},
	Range{0x1E023, 0x1E024},
	Range{0x1E026, 0x1E02A},
	Range{0x1E944, 0x1E94A},
)

var zw1210 = mergeRanges(zw900,
	Range{0x07FD, 0x07FD},
	Range{0x08D3, 0x08D3},
	Range{0x09FE, 0x09FE},
	Range{0x0AFA, 0x0AFF},
	Range{0x0EBA, 0x0EBA},
	Range{0x16F4F, 0x16F4F},
	Range{0x1E130, 0x1E136},
	Range{0x1E2EC, 0x1E2EF},
)

var zw1510 = mergeRanges(zw1210,
	Range{0x0890, 0x0891},
	Range{0x0898, 0x089F},
	Range{0x0C3C, 0x0C3C},
	Range{0x10EFD, 0x10EFF},
	Range{0x11241, 0x11241},
	Range{0x1E08F, 0x1E08F},
	Range{0x1E4EC, 0x1E4EF},
)
