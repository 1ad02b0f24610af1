// internal/solver/search.go
//
// Search engine: finds a minimal-length sequence of guesses that forces
// the adversarial oracle's surviving set down to exactly one word.
//
// Strategy:
//   - Breadth-first over depth (iterative deepening): every state at
//     depth d is expanded before any state at depth d+1, so the first
//     depth that yields a singleton is provably minimal.
//   - States are surviving sets, not histories: two guess sequences that
//     arrive at the same surviving set are equivalent for all future
//     purposes. A visited table keyed by set content prunes re-exploration.
//   - Within a depth, expansion of frontier states runs on a bounded
//     errgroup; the oracle is pure, so the only shared mutable state is
//     the visited table (insert-if-absent under a lock).
//   - Children are ordered best-first (smallest resulting set first) but
//     never discarded, so optimality is preserved.
//
// A search accepts a context for cancellation and explicit MaxDepth /
// MaxNodes budgets. Cancellation is a normal outcome carrying partial
// progress; an exhausted budget returns ErrSearchExhausted alongside the
// partial Result.

package solver

import (
	"context"
	"encoding/binary"
	"runtime"
	"sort"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// Exhaustiveness controls whether the search stops at the first
// minimal-length solution or enumerates all of them.
type Exhaustiveness int

const (
	// FirstOptimal returns as soon as one minimal-length solution is
	// confirmed. The default.
	FirstOptimal Exhaustiveness = iota

	// AllOptimal keeps expanding the winning depth and returns every
	// minimal-length solution found over the deduplicated state space.
	AllOptimal
)

// Config holds the engine's explicit resource bounds and strategy knobs.
// Zero values select the documented defaults.
type Config struct {
	MaxDepth       int // maximum guess-sequence length; 0 = answer-set size
	MaxNodes       int // maximum oracle transitions recorded; 0 = unbounded
	Parallelism    int // concurrent frontier expansions; 0 = NumCPU
	TieBreak       TieBreak
	Exhaustiveness Exhaustiveness

	// Progress, if set, is called once after each fully explored depth.
	Progress func(DepthStats)
}

// DepthStats describes one completed search depth.
type DepthStats struct {
	Depth         int // the depth just completed
	Frontier      int // deduplicated states entering the next depth
	NodesExpanded int // cumulative oracle transitions recorded
	BestSize      int // smallest surviving-set size seen so far
}

// Solution is a winning guess sequence plus diagnostics: the pattern the
// oracle answered at each step and the surviving-set size after it.
type Solution struct {
	Guesses       []string  `json:"guesses"`
	Patterns      []Pattern `json:"patterns"`
	SurvivorSizes []int     `json:"survivorSizes"`
	Survivor      string    `json:"survivor"` // the word left standing
}

// Result carries the outcome of a search run. Solutions is non-empty iff
// the game was solved; otherwise Depth, NodesExpanded and BestSize
// describe the partial progress made before cancellation or exhaustion.
type Result struct {
	Solutions     []Solution `json:"solutions,omitempty"`
	Depth         int        `json:"depth"`
	NodesExpanded int        `json:"nodesExpanded"`
	BestSize      int        `json:"bestSize"`
	Cancelled     bool       `json:"cancelled"`
}

// Solved reports whether a winning sequence was found.
func (r Result) Solved() bool { return len(r.Solutions) > 0 }

// Engine explores guess sequences against the partition oracle.
type Engine struct {
	vocab  *Vocabulary
	oracle *Oracle
	cfg    Config
}

// NewEngine builds a search engine over the vocabulary. Returns
// ErrEmptyVocabulary if the vocabulary has no guesses or no answers.
func NewEngine(v *Vocabulary, cfg Config) (*Engine, error) {
	if v == nil || v.GuessCount() == 0 || v.AnswerCount() == 0 {
		return nil, ErrEmptyVocabulary
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = v.AnswerCount()
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	return &Engine{vocab: v, oracle: NewOracle(v, cfg.TieBreak), cfg: cfg}, nil
}

// node is one search state: the surviving answer set plus the guess
// indices that reached it. Each node owns its slices outright; nothing
// is shared or mutated across expansion goroutines.
type node struct {
	survivors []int
	path      []int
}

// child is one oracle transition out of a node.
type child struct {
	guess     int
	pattern   Pattern
	survivors []int
}

// visitedSet memoizes surviving sets already scheduled for expansion,
// keyed by content. Add has insert-if-absent semantics under a single
// lock; values for the same key are always equal, so duplicate
// computation elsewhere is idempotent.
type visitedSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{seen: make(map[string]struct{})}
}

// Add records key and reports whether it was absent.
func (s *visitedSet) Add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// stateKey builds a content key for a surviving set: a bitset over
// answer indices, serialized. Index order does not matter, so equivalent
// sets reached through different guess orders collapse to one key.
func stateKey(survivors []int, universe int) string {
	b := bitset.New(uint(universe))
	for _, idx := range survivors {
		b.Set(uint(idx))
	}
	words := b.Bytes()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

// Search runs the engine to completion, cancellation, or budget
// exhaustion.
//
// Returns:
//   - (Result with Solutions, nil) when solved; Depth is the minimal
//     sequence length.
//   - (partial Result with Cancelled=true, nil) when ctx is cancelled.
//   - (partial Result, ErrSearchExhausted) when MaxDepth or MaxNodes is
//     reached first.
func (e *Engine) Search(ctx context.Context) (Result, error) {
	initial := make([]int, e.vocab.AnswerCount())
	for i := range initial {
		initial[i] = i
	}

	res := Result{BestSize: len(initial)}

	// Trivially solved: nothing to guess.
	if len(initial) == 1 {
		res.BestSize = 1
		res.Solutions = []Solution{{Survivor: e.vocab.AnswerString(0)}}
		return res, nil
	}

	visited := newVisitedSet()
	visited.Add(stateKey(initial, len(initial)))
	frontier := []node{{survivors: initial}}

	for depth := 1; depth <= e.cfg.MaxDepth; depth++ {
		// Parallel map: expand every frontier state independently.
		expansions := make([][]child, len(frontier))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.cfg.Parallelism)
		for i := range frontier {
			i := i
			g.Go(func() error {
				children, err := e.expand(gctx, frontier[i].survivors)
				if err != nil {
					return err
				}
				expansions[i] = children
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			// Cancellation is a normal early-termination outcome.
			res.Depth = depth - 1
			res.Cancelled = true
			return res, nil
		}

		// Sequential reduce in frontier order keeps results deterministic
		// regardless of goroutine scheduling.
		next := make([]node, 0, len(frontier))
		for i, children := range expansions {
			parent := frontier[i]
			for _, ch := range children {
				res.NodesExpanded++
				if len(ch.survivors) < res.BestSize {
					res.BestSize = len(ch.survivors)
				}
				if len(ch.survivors) == 1 {
					res.Solutions = append(res.Solutions, e.buildSolution(parent.path, ch.guess))
					if e.cfg.Exhaustiveness == FirstOptimal {
						res.Depth = depth
						return res, nil
					}
					continue
				}
				if len(res.Solutions) > 0 {
					// Depth already won; keep scanning for more
					// minimal-length solutions only.
					continue
				}
				if visited.Add(stateKey(ch.survivors, len(initial))) {
					path := make([]int, 0, len(parent.path)+1)
					path = append(path, parent.path...)
					path = append(path, ch.guess)
					next = append(next, node{survivors: ch.survivors, path: path})
				}
			}
			if len(res.Solutions) == 0 && e.cfg.MaxNodes > 0 && res.NodesExpanded >= e.cfg.MaxNodes {
				res.Depth = depth
				return res, ErrSearchExhausted
			}
		}

		if len(res.Solutions) > 0 {
			res.Depth = depth
			return res, nil
		}

		if e.cfg.Progress != nil {
			e.cfg.Progress(DepthStats{
				Depth:         depth,
				Frontier:      len(next),
				NodesExpanded: res.NodesExpanded,
				BestSize:      res.BestSize,
			})
		}

		if len(next) == 0 {
			// Every reachable state is already explored and none won.
			res.Depth = depth
			return res, ErrSearchExhausted
		}
		frontier = next
	}

	res.Depth = e.cfg.MaxDepth
	return res, ErrSearchExhausted
}

// expand applies every vocabulary guess to one surviving set and returns
// the transitions ordered best-first: smallest resulting set first, guess
// index as the deterministic tie-breaker.
//
// Guesses that fail to split the set reproduce the parent state, which is
// already memoized, so they are dropped here without losing completeness.
func (e *Engine) expand(ctx context.Context, survivors []int) ([]child, error) {
	children := make([]child, 0, e.vocab.GuessCount())
	for gi := 0; gi < e.vocab.GuessCount(); gi++ {
		if gi&127 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		surv, pat := e.oracle.Reduce(survivors, e.vocab.Guess(gi))
		if len(surv) == len(survivors) {
			continue
		}
		children = append(children, child{guess: gi, pattern: pat, survivors: surv})
	}
	sort.Slice(children, func(a, b int) bool {
		if len(children[a].survivors) != len(children[b].survivors) {
			return len(children[a].survivors) < len(children[b].survivors)
		}
		return children[a].guess < children[b].guess
	})
	return children, nil
}

// buildSolution replays a guess path from the full answer set to recover
// the pattern and surviving-set size at each step.
func (e *Engine) buildSolution(path []int, final int) Solution {
	guesses := make([]int, 0, len(path)+1)
	guesses = append(guesses, path...)
	guesses = append(guesses, final)

	survivors := make([]int, e.vocab.AnswerCount())
	for i := range survivors {
		survivors[i] = i
	}

	sol := Solution{
		Guesses:       make([]string, 0, len(guesses)),
		Patterns:      make([]Pattern, 0, len(guesses)),
		SurvivorSizes: make([]int, 0, len(guesses)),
	}
	for _, gi := range guesses {
		var pat Pattern
		survivors, pat = e.oracle.Reduce(survivors, e.vocab.Guess(gi))
		sol.Guesses = append(sol.Guesses, e.vocab.GuessString(gi))
		sol.Patterns = append(sol.Patterns, pat)
		sol.SurvivorSizes = append(sol.SurvivorSizes, len(survivors))
	}
	sol.Survivor = e.vocab.AnswerString(survivors[0])
	return sol
}
