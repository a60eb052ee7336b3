// Package platform provides the cross-platform directory operations used to
// install packs: recursive copies and directory links. On Unix systems links
// are native symlinks. On Windows a symlink needs developer mode, so linking
// falls back to a copy with a .target sidecar that records the source.
package platform
