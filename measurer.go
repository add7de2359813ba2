package textwidth

import (
	"os"
	"sync"
)

// Measurer computes display widths against one resolved Unicode version.
// The zero value is not usable; construct with New. A Measurer is immutable
// after construction and safe for concurrent use.
type Measurer struct {
	version  string
	tables   TableProvider
	warnings WarningProvider
	environ  func(string) (string, bool)

	resolveOnce sync.Once
	resolved    string
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithVersion sets the requested Unicode version. Accepts a tabulated
// version ("9.0.0"), a partial version ("9.0"), VersionLatest, or
// VersionAuto (the default).
func WithVersion(version string) Option {
	return func(m *Measurer) {
		m.version = version
	}
}

// WithTables sets the range table provider. The default is EmbeddedTables.
func WithTables(p TableProvider) Option {
	return func(m *Measurer) {
		m.tables = p
	}
}

// WithWarnings sets the handler for recoverable-warning signals. The default
// is NoopWarnings.
func WithWarnings(p WarningProvider) Option {
	return func(m *Measurer) {
		m.warnings = p
	}
}

// WithEnviron sets the lookup used for the UNICODE_VERSION override under
// VersionAuto. The default is os.LookupEnv.
func WithEnviron(lookup func(key string) (string, bool)) Option {
	return func(m *Measurer) {
		m.environ = lookup
	}
}

// New creates a Measurer. Without options it resolves the version from the
// UNICODE_VERSION environment variable, falling back to the latest embedded
// table, and stays silent on recoverable warnings.
func New(opts ...Option) *Measurer {
	m := &Measurer{
		version:  VersionAuto,
		tables:   EmbeddedTables{},
		warnings: NoopWarnings{},
		environ:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// UnicodeVersion returns the tabulated version this Measurer resolved to.
func (m *Measurer) UnicodeVersion() string {
	return m.resolveVersion()
}

// resolveVersion resolves the requested version once, on first use, and
// caches the result for the Measurer's lifetime.
func (m *Measurer) resolveVersion() string {
	m.resolveOnce.Do(func() {
		m.resolved = resolveVersion(m.version, m.tables.Versions(), m.environ, m.warnings)
	})
	return m.resolved
}
