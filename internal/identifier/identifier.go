// Package identifier turns display names into namespaced content identifiers
// and pack folder names, and mints the UUIDs used by pack manifests.
package identifier

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// NormalizeSlug lowercases name, replaces whitespace runs with "_" and drops
// every character outside [a-zA-Z0-9_-]. An empty name yields an empty slug.
func NormalizeSlug(name string) string {
	return strings.ToLower(NormalizePathName(name))
}

// NormalizePathName applies the slug character rules but keeps the case.
// It is used for pack folder names such as "My_Addon_BehaviorPack".
func NormalizePathName(name string) string {
	s := whitespace.ReplaceAllString(name, "_")
	return disallowed.ReplaceAllString(s, "")
}

// MakeID returns "namespace:slug". An empty namespace falls back to
// defaultNamespace.
func MakeID(name, namespace, defaultNamespace string) string {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return namespace + ":" + NormalizeSlug(name)
}

// NewUUID returns a random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// NameUUID returns a deterministic (version 5) UUID for name. namespace is
// used as is when it is a UUID; any other string is first hashed into one
// under the DNS namespace. An empty namespace uses the URL namespace.
func NameUUID(name, namespace string) string {
	ns := uuid.NameSpaceURL
	if namespace != "" {
		if parsed, err := uuid.Parse(namespace); err == nil {
			ns = parsed
		} else {
			ns = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(namespace))
		}
	}
	return uuid.NewSHA1(ns, []byte(name)).String()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
