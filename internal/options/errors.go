package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformed reports an option value that cannot be used, such as a
// non-numeric protection value or an unknown item type.
var ErrMalformed = errors.New("malformed option")

func malformed(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, field, fmt.Sprintf(format, args...))
}

// plainName rejects names that would break the single line a name takes
// in a language file.
func plainName(name string) error {
	if strings.ContainsFunc(name, unicode.IsControl) {
		return malformed("name", "%q contains control characters", name)
	}
	return nil
}

// ParseInt strictly parses s as a base 10 integer. Blank input means the
// field is absent and yields nil.
func ParseInt(field, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, malformed(field, "%q is not an integer", s)
	}
	return &n, nil
}

// ParseFloat strictly parses s as a float. Blank input yields nil.
func ParseFloat(field, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, malformed(field, "%q is not a number", s)
	}
	return &f, nil
}

// String returns a pointer to s, or nil when s is blank.
func String(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
