// Package options holds the typed option records consumed by the generators.
//
// Raw records (Item, Recipe, Project) come from prompts, flags or saved
// parameter files. Optional fields are pointers so an absent value and a
// present zero value stay distinguishable. Each raw record is resolved exactly
// once into an immutable Resolved* record with every fallback applied.
package options
