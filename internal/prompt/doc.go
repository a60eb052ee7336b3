// Package prompt collects item, recipe and project options through
// interactive forms.
//
// Forms talk to the terminal through the Asker interface. Survey is the
// terminal implementation; tests script the answers instead. Interrupting a
// form returns ErrCancelled.
package prompt
