// internal/solver/errors.go
//
// Sentinel errors for the solver core.

package solver

import "errors"

var (
	// ErrEmptyVocabulary is returned when the guess or answer list is
	// empty at construction time. Fatal: a search cannot start.
	ErrEmptyVocabulary = errors.New("solver: empty vocabulary")

	// ErrSearchExhausted is returned when a configured depth or node
	// budget is reached before a solution is found. Recoverable: the
	// accompanying Result carries the best partial progress.
	ErrSearchExhausted = errors.New("solver: search budget exhausted")
)
