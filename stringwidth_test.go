package textwidth

import (
	"errors"
	"testing"
)

func TestStringWidthRange(t *testing.T) {
	m := newTestMeasurer()

	// "永A永" is 3+1+3 = 7 bytes: 永 [0:3], A [3:4], 永 [4:7].
	s := "永A永"

	tests := []struct {
		name       string
		start, end int
		expected   int
	}{
		{name: "full", start: 0, end: 7, expected: 5},
		{name: "first rune", start: 0, end: 3, expected: 2},
		{name: "middle", start: 3, end: 4, expected: 1},
		{name: "empty range", start: 4, end: 4, expected: 0},
		{name: "end clamped", start: 4, end: 100, expected: 2},
		{name: "negative start clamped", start: -2, end: 3, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.StringWidthRange(s, tt.start, tt.end)
			if err != nil {
				t.Fatalf("StringWidthRange(%q, %d, %d) error: %v", s, tt.start, tt.end, err)
			}
			if got != tt.expected {
				t.Errorf("StringWidthRange(%q, %d, %d) = %d, want %d", s, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestStringWidthRangeInvalid(t *testing.T) {
	m := newTestMeasurer()

	_, err := m.StringWidthRange("hello", 3, 1)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("StringWidthRange with start > end returned %v, want ErrInvalidRange", err)
	}

	// Empty input wins over range validation.
	got, err := m.StringWidthRange("", 3, 1)
	if err != nil || got != 0 {
		t.Errorf("StringWidthRange(\"\", 3, 1) = (%d, %v), want (0, nil)", got, err)
	}
}

func TestBytesWidth(t *testing.T) {
	m := newTestMeasurer()

	tests := []struct {
		name     string
		input    []byte
		enc      Encoding
		expected int
	}{
		{name: "utf8 ascii", input: []byte("Hello"), enc: EncodingUTF8, expected: 5},
		{name: "utf8 wide", input: []byte("永A"), enc: EncodingUTF8, expected: 3},
		{name: "utf8 empty", input: nil, enc: EncodingUTF8, expected: 0},
		{name: "narrow is byte count", input: []byte("永A"), enc: EncodingNarrow, expected: 4},
		{name: "wide is byte count", input: []byte("永A"), enc: EncodingWide, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.BytesWidth(tt.input, tt.enc)
			if got != tt.expected {
				t.Errorf("BytesWidth(%q, %v) = %d, want %d", tt.input, tt.enc, got, tt.expected)
			}
		})
	}
}

func TestBytesWidthMalformed(t *testing.T) {
	warnings := &CollectWarnings{}
	m := newTestMeasurer(WithWarnings(warnings))

	// 'A', overlong NUL (two placeholder bytes), 'B'
	b := []byte{'A', 0xC0, 0x80, 'B'}
	got := m.BytesWidth(b, EncodingUTF8)
	if got != 4 {
		t.Errorf("BytesWidth(%v) = %d, want 4", b, got)
	}
	if len(warnings.Messages) != 1 {
		t.Errorf("expected 1 warning, got %v", warnings.Messages)
	}

	// Valid input must not warn.
	warnings.Messages = nil
	m.BytesWidth([]byte("中文"), EncodingUTF8)
	if len(warnings.Messages) != 0 {
		t.Errorf("valid input produced warnings: %v", warnings.Messages)
	}
}

func TestBytesWidthRangeInvalid(t *testing.T) {
	m := newTestMeasurer()

	_, err := m.BytesWidthRange([]byte("hello"), EncodingUTF8, 3, 1)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("BytesWidthRange with start > end returned %v, want ErrInvalidRange", err)
	}
}

func TestBytesWidthRangeFallbackStraddle(t *testing.T) {
	warnings := &CollectWarnings{}
	m := newTestMeasurer(WithWarnings(warnings))

	// A malformed prefix forces the byte-wise decoder; the trailing 中
	// starts inside the range and completes past no boundary.
	b := append([]byte{0x80}, []byte("中")...)
	got, err := m.BytesWidthRange(b, EncodingUTF8, 0, len(b))
	if err != nil {
		t.Fatalf("BytesWidthRange error: %v", err)
	}
	if got != 3 { // placeholder '?' + wide 中
		t.Errorf("BytesWidthRange(%v) = %d, want 3", b, got)
	}
}
