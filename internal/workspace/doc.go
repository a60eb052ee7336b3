// Package workspace resolves the project a command operates on: the
// behavior and resource pack directories found under a root, the optional
// .mbu/project.yaml settings, and the game folders packs are copied into.
//
// A Context is resolved once per command and passed down explicitly.
package workspace
