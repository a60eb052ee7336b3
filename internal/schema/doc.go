// Package schema validates generated add-on documents (pack manifests, items,
// recipes and attachables) against JSON schemas embedded in the binary.
package schema
