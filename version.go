package textwidth

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// VersionAuto resolves through the UNICODE_VERSION environment lookup,
	// falling back to the latest tabulated version.
	VersionAuto = "auto"
	// VersionLatest resolves to the highest tabulated version.
	VersionLatest = "latest"

	// EnvUnicodeVersion is the environment variable consulted when the
	// requested version is VersionAuto.
	EnvUnicodeVersion = "UNICODE_VERSION"
)

// resolveVersion maps a requested Unicode version onto one of the tabulated
// versions. It is total: any input, including garbage, resolves to a member
// of versions. Unresolvable requests degrade to the nearest tabulated
// version with a recoverable warning rather than an error, because a caller
// asking for an untabulated version should still get a width.
//
// Resolution order: "auto" reads the environment override ("auto" there
// terminates at "latest"); "latest" and exact matches return directly;
// otherwise the request is parsed as a dotted integer tuple and matched
// against the list. A request at or below the earliest version clamps to the
// earliest. A request between releases resolves to the release it would have
// been built against (the highest tabulated version not above it), except
// that a request which is a tuple-prefix of the next release resolves
// forward to that release, so "9" finds "9.0.0".
func resolveVersion(requested string, versions []string, environ func(string) (string, bool), warnings WarningProvider) string {
	latest := versions[len(versions)-1]

	if requested == VersionAuto {
		if v, ok := environ(EnvUnicodeVersion); ok {
			requested = v
		} else {
			requested = VersionLatest
		}
		if requested == VersionAuto {
			requested = VersionLatest
		}
	}
	if requested == VersionLatest {
		return latest
	}
	for _, v := range versions {
		if v == requested {
			return v
		}
	}

	req, err := parseVersion(requested)
	if err != nil {
		warnings.Warn(fmt.Sprintf("textwidth: invalid Unicode version %q, using latest (%s)", requested, latest))
		return latest
	}
	earliest, _ := parseVersion(versions[0])
	if compareVersions(req, earliest) <= 0 {
		warnings.Warn(fmt.Sprintf("textwidth: Unicode version %q predates the earliest table, using %s", requested, versions[0]))
		return versions[0]
	}
	for i, v := range versions {
		if i+1 == len(versions) {
			return latest
		}
		next, _ := parseVersion(versions[i+1])
		if isVersionPrefix(req, next) {
			return versions[i+1]
		}
		if compareVersions(next, req) > 0 {
			return v
		}
	}
	return latest
}

// parseVersion parses a dotted integer version string ("9.0") into its
// numeric components.
func parseVersion(s string) ([]int, error) {
	parts := strings.Split(s, ".")
	tuple := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("textwidth: parse version %q: %w", s, err)
		}
		tuple[i] = n
	}
	return tuple, nil
}

// compareVersions orders version tuples like Python tuples: element-wise,
// with a tuple that is a strict prefix of another sorting first.
func compareVersions(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// isVersionPrefix reports whether req matches the leading components of next.
func isVersionPrefix(req, next []int) bool {
	if len(req) > len(next) {
		return false
	}
	for i := range req {
		if req[i] != next[i] {
			return false
		}
	}
	return true
}
