// internal/runs/run.go
//
// Solve-run model: one invocation of the search engine, the request
// parameters that shaped it, and its outcome.

package runs

import (
	"strings"
	"time"

	"github.com/absurdle/go-solver/internal/solver"
)

// Run statuses.
const (
	StatusSolved    = "solved"
	StatusExhausted = "exhausted"
	StatusCancelled = "cancelled"
)

// Run holds one solve request and its outcome. Live objects sit in the
// in-memory store for retrieval by ID; a summary row is mirrored to the
// solve_runs table for history.
type Run struct {
	ID          string        `json:"id"`
	Status      string        `json:"status"`
	AnswerCount int           `json:"answerCount"`
	GuessCount  int           `json:"guessCount"`
	WordLength  int           `json:"wordLength"`
	TieBreak    string        `json:"tieBreak"`
	Result      solver.Result `json:"result"`
	StartedAt   time.Time     `json:"startedAt"`
	FinishedAt  time.Time     `json:"finishedAt"`
	ElapsedMs   int64         `json:"elapsedMs"`
}

// StatusOf maps a search outcome to a run status.
func StatusOf(res solver.Result) string {
	switch {
	case res.Solved():
		return StatusSolved
	case res.Cancelled:
		return StatusCancelled
	default:
		return StatusExhausted
	}
}

// PathString renders the first solution's guess sequence for storage,
// or "" when the run did not solve.
func (r *Run) PathString() string {
	if !r.Result.Solved() {
		return ""
	}
	return strings.Join(r.Result.Solutions[0].Guesses, " ")
}
