// Package formatversion compares document format versions. The cutoff between
// the legacy item schema and the Holiday Creator Features schema is a semantic
// version comparison, never a string comparison.
package formatversion

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// Stable is the default format version for documents that need no
	// experimental toggle.
	Stable = "1.16.1"
	// Experimental is the first format version of the component based item
	// schema. Worlds must enable Holiday Creator Features to load it.
	Experimental = "1.16.100"
)

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(a, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, fmt.Errorf("parsing format version %q: %w", a, err)
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, fmt.Errorf("parsing format version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// IsLegacy reports whether v predates the component based item schema, i.e.
// v < 1.16.100. Legacy items need a separate resource pack item stub.
func IsLegacy(v string) (bool, error) {
	cmp, err := Compare(v, Experimental)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

// Warning returns the advisory printed when v requires an experimental world
// toggle. ok is false for versions that load without one.
func Warning(v string) (msg string, ok bool) {
	legacy, err := IsLegacy(v)
	if err != nil || legacy {
		return "", false
	}
	return fmt.Sprintf("format version %s requires the experimental \"Holiday Creator Features\" toggle in your world settings", v), true
}

// Parse strips a leading "v" and parses the version string.
func Parse(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	return semver.NewVersion(v)
}
