// Package cli defines the Cobra command tree for the mbu CLI. Most files in
// this package register one top-level command (new, add, list, copy, etc.)
// with the root command. Command implementations delegate to internal
// packages for the work and only handle flag parsing, output formatting and
// prompting.
package cli
