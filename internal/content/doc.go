// Package content adds items and recipes to an existing project.
//
// Each flow resolves its options once, generates the documents, writes them
// into the discovered packs and saves the options next to the project so the
// same content can be regenerated later. Files written before a failure are
// kept.
package content
