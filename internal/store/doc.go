// Package store indexes the item and recipe documents of a project.
//
// Every query re-reads the pack folders; nothing is cached between calls.
// Files that cannot be decoded are skipped and reported as warnings so one
// broken document never hides the rest of the project.
package store
