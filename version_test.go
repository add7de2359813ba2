package textwidth

import (
	"testing"
)

func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		env       string // value for UNICODE_VERSION, "" means unset
		expected  string
		warns     int
	}{
		{name: "latest", requested: "latest", expected: "15.1.0"},
		{name: "exact", requested: "9.0.0", expected: "9.0.0"},
		{name: "exact earliest", requested: "4.1.0", expected: "4.1.0"},
		{name: "exact last", requested: "15.1.0", expected: "15.1.0"},
		{name: "auto unset env", requested: "auto", expected: "15.1.0"},
		{name: "auto from env", requested: "auto", env: "9.0.0", expected: "9.0.0"},
		{name: "auto env latest", requested: "auto", env: "latest", expected: "15.1.0"},
		{name: "auto env auto terminates", requested: "auto", env: "auto", expected: "15.1.0"},
		{name: "auto env garbage", requested: "auto", env: "not-a-version", expected: "15.1.0", warns: 1},
		{name: "garbage", requested: "not-a-version", expected: "15.1.0", warns: 1},
		{name: "empty", requested: "", expected: "15.1.0", warns: 1},
		{name: "trailing dot", requested: "9.", expected: "15.1.0", warns: 1},
		{name: "below earliest", requested: "1.0", expected: "4.1.0", warns: 1},
		{name: "prefix of earliest clamps", requested: "4.1", expected: "4.1.0", warns: 1},
		{name: "prefix match", requested: "9", expected: "9.0.0"},
		{name: "prefix match longer", requested: "12.1", expected: "12.1.0"},
		{name: "between releases", requested: "10.0", expected: "9.0.0"},
		{name: "between releases low", requested: "6.0", expected: "5.2.0"},
		{name: "beyond latest", requested: "99.0", expected: "15.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := func(key string) (string, bool) {
				if key == EnvUnicodeVersion && tt.env != "" {
					return tt.env, true
				}
				return "", false
			}
			warnings := &CollectWarnings{}
			got := resolveVersion(tt.requested, unicodeVersions, environ, warnings)
			if got != tt.expected {
				t.Errorf("resolveVersion(%q) = %q, want %q", tt.requested, got, tt.expected)
			}
			if len(warnings.Messages) != tt.warns {
				t.Errorf("resolveVersion(%q) emitted %d warnings (%v), want %d",
					tt.requested, len(warnings.Messages), warnings.Messages, tt.warns)
			}
		})
	}
}

// Resolution must be total: any input resolves to a tabulated version.
func TestResolveVersionTotal(t *testing.T) {
	inputs := []string{"auto", "latest", "", "garbage", "9", "9.0", "9.0.0", "9.0.0.0",
		"0", "-1", "99", "4.1.0", "15.1.0", "1.2.3.4.5", "..", "a.b"}

	for _, in := range inputs {
		got := resolveVersion(in, unicodeVersions, noEnv, NoopWarnings{})
		found := false
		for _, v := range unicodeVersions {
			if v == got {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("resolveVersion(%q) = %q, not a tabulated version", in, got)
		}
	}
}

func TestMeasurerUnicodeVersion(t *testing.T) {
	m := newTestMeasurer(WithVersion("8.0.0"))
	if got := m.UnicodeVersion(); got != "8.0.0" {
		t.Errorf("UnicodeVersion() = %q, want %q", got, "8.0.0")
	}

	// auto with an injected environment
	m = New(WithEnviron(func(key string) (string, bool) {
		return "5.2.0", key == EnvUnicodeVersion
	}))
	if got := m.UnicodeVersion(); got != "5.2.0" {
		t.Errorf("UnicodeVersion() = %q, want %q", got, "5.2.0")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b     []int
		expected int
	}{
		{[]int{9}, []int{9, 0, 0}, -1},
		{[]int{9, 0, 0}, []int{9}, 1},
		{[]int{9, 0}, []int{9, 0}, 0},
		{[]int{8, 9}, []int{9, 0}, -1},
		{[]int{10, 0}, []int{9, 9, 9}, 1},
	}

	for _, tt := range tests {
		if got := compareVersions(tt.a, tt.b); got != tt.expected {
			t.Errorf("compareVersions(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
