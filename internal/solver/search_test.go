package solver

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteMinDepth finds the minimal winning sequence length by plain
// sequential BFS, independent of the engine's parallel machinery.
func bruteMinDepth(t *testing.T, v *Vocabulary) int {
	t.Helper()
	o := NewOracle(v, TieSmallestPattern)

	start := allAnswers(v)
	if len(start) == 1 {
		return 0
	}
	seen := map[string]bool{fmt.Sprint(start): true}
	frontier := [][]int{start}
	for depth := 1; depth <= v.AnswerCount(); depth++ {
		var next [][]int
		for _, surv := range frontier {
			for gi := 0; gi < v.GuessCount(); gi++ {
				ns, _ := o.Reduce(surv, v.Guess(gi))
				if len(ns) == 1 {
					return depth
				}
				k := fmt.Sprint(ns)
				if !seen[k] {
					seen[k] = true
					next = append(next, ns)
				}
			}
		}
		frontier = next
	}
	t.Fatalf("no solution within %d guesses", v.AnswerCount())
	return -1
}

func verifySolution(t *testing.T, v *Vocabulary, cfg Config, sol Solution) {
	t.Helper()
	o := NewOracle(v, cfg.TieBreak)
	codec := v.Codec()

	survivors := allAnswers(v)
	for i, raw := range sol.Guesses {
		guess, err := codec.Encode(raw)
		require.NoError(t, err)
		var pat Pattern
		survivors, pat = o.Reduce(survivors, guess)
		assert.Equal(t, sol.Patterns[i], pat)
		assert.Equal(t, sol.SurvivorSizes[i], len(survivors))
	}
	require.Len(t, survivors, 1)
	assert.Equal(t, sol.Survivor, v.AnswerString(survivors[0]))
}

// Exhaustive agreement check on a tiny universe: every possible answer
// set over a 3-letter vocabulary must get the brute-force minimal depth.
func TestSearchOptimalOnAllAnswerSets(t *testing.T) {
	universe := []string{"aaa", "aab", "abb", "bbb", "bba", "baa", "aba", "bab"}

	for mask := 1; mask < 1<<len(universe); mask++ {
		var answers []string
		for i, w := range universe {
			if mask&(1<<i) != 0 {
				answers = append(answers, w)
			}
		}

		v := testVocab(t, universe, answers)
		eng, err := NewEngine(v, Config{Parallelism: 2})
		require.NoError(t, err)

		res, err := eng.Search(context.Background())
		require.NoError(t, err, "answers %v", answers)
		require.True(t, res.Solved(), "answers %v", answers)

		want := bruteMinDepth(t, v)
		assert.Equal(t, want, res.Depth, "answers %v", answers)
		require.Len(t, res.Solutions, 1)
		assert.Len(t, res.Solutions[0].Guesses, want)
		if want > 0 {
			verifySolution(t, v, Config{}, res.Solutions[0])
		}
	}
}

func TestSearchEndToEndAbideSpeed(t *testing.T) {
	v := testVocab(t, []string{"abide", "speed", "ropes"}, []string{"abide", "speed"})
	eng, err := NewEngine(v, Config{})
	require.NoError(t, err)

	res, err := eng.Search(context.Background())
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, 1, res.Depth)
	assert.Equal(t, 1, res.BestSize)

	sol := res.Solutions[0]
	require.Len(t, sol.Guesses, 1)
	assert.Equal(t, []int{1}, sol.SurvivorSizes)
	verifySolution(t, v, Config{}, sol)
}

func TestSearchTrivialSingleton(t *testing.T) {
	v := testVocab(t, []string{"abide", "speed"}, []string{"abide"})
	eng, err := NewEngine(v, Config{})
	require.NoError(t, err)

	res, err := eng.Search(context.Background())
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, 0, res.Depth)
	assert.Empty(t, res.Solutions[0].Guesses)
	assert.Equal(t, "abide", res.Solutions[0].Survivor)
}

// Four answers with disjoint letters: every guess eliminates at most one
// word, so the minimal sequence has length 3.
func disjointVocab(t *testing.T) *Vocabulary {
	words := []string{"aa", "bb", "cc", "dd"}
	return testVocab(t, words, words)
}

func TestSearchDisjointLettersDepth(t *testing.T) {
	v := disjointVocab(t)
	eng, err := NewEngine(v, Config{})
	require.NoError(t, err)

	res, err := eng.Search(context.Background())
	require.NoError(t, err)
	require.True(t, res.Solved())
	assert.Equal(t, 3, res.Depth)
	assert.Equal(t, bruteMinDepth(t, v), res.Depth)
	verifySolution(t, v, Config{}, res.Solutions[0])
}

func TestSearchMaxDepthExhausted(t *testing.T) {
	v := disjointVocab(t)
	eng, err := NewEngine(v, Config{MaxDepth: 1})
	require.NoError(t, err)

	res, err := eng.Search(context.Background())
	assert.ErrorIs(t, err, ErrSearchExhausted)
	assert.False(t, res.Solved())
	assert.Equal(t, 1, res.Depth)
	// Partial progress: depth 1 shrinks four survivors to three.
	assert.Equal(t, 3, res.BestSize)
	assert.Greater(t, res.NodesExpanded, 0)
}

func TestSearchMaxNodesExhausted(t *testing.T) {
	v := disjointVocab(t)
	eng, err := NewEngine(v, Config{MaxNodes: 1})
	require.NoError(t, err)

	res, err := eng.Search(context.Background())
	assert.ErrorIs(t, err, ErrSearchExhausted)
	assert.False(t, res.Solved())
	assert.GreaterOrEqual(t, res.NodesExpanded, 1)
}

func TestSearchCancelled(t *testing.T) {
	v := disjointVocab(t)
	eng, err := NewEngine(v, Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := eng.Search(ctx)
	require.NoError(t, err) // cancellation is not an error
	assert.True(t, res.Cancelled)
	assert.False(t, res.Solved())
	assert.Equal(t, 0, res.Depth)
}

func TestSearchAllOptimal(t *testing.T) {
	// Three guesses each split {ab, cd} immediately; AllOptimal must
	// report every minimal-length solution, FirstOptimal exactly one.
	guesses := []string{"ab", "cd", "ax"}
	answers := []string{"ab", "cd"}

	v := testVocab(t, guesses, answers)
	eng, err := NewEngine(v, Config{Exhaustiveness: AllOptimal})
	require.NoError(t, err)
	res, err := eng.Search(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth)
	require.Len(t, res.Solutions, 3)
	for _, sol := range res.Solutions {
		verifySolution(t, v, Config{}, sol)
	}

	first, err := NewEngine(v, Config{})
	require.NoError(t, err)
	res, err = first.Search(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Solutions, 1)
}

func TestSearchDeterministicUnderParallelism(t *testing.T) {
	universe := []string{"aaa", "aab", "abb", "bbb", "bba", "baa", "aba", "bab", "abc", "cab"}
	v := testVocab(t, universe, universe)

	var results []Result
	for _, par := range []int{1, 4} {
		eng, err := NewEngine(v, Config{Parallelism: par})
		require.NoError(t, err)
		res, err := eng.Search(context.Background())
		require.NoError(t, err)
		results = append(results, res)
	}
	assert.Equal(t, results[0], results[1])
}

func TestSearchProgressCallback(t *testing.T) {
	v := disjointVocab(t)
	var depths []int
	eng, err := NewEngine(v, Config{Progress: func(s DepthStats) {
		depths = append(depths, s.Depth)
		assert.Greater(t, s.Frontier, 0)
	}})
	require.NoError(t, err)

	_, err = eng.Search(context.Background())
	require.NoError(t, err)
	// Depth 3 wins, so only depths 1 and 2 complete without a solution.
	assert.Equal(t, []int{1, 2}, depths)
}

func TestNewEngineEmptyVocabulary(t *testing.T) {
	_, err := NewEngine(nil, Config{})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
