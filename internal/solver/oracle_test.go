package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocab(t *testing.T, guesses, answers []string) *Vocabulary {
	t.Helper()
	v, err := NewVocabulary(guesses, answers)
	require.NoError(t, err)
	return v
}

func allAnswers(v *Vocabulary) []int {
	out := make([]int, v.AnswerCount())
	for i := range out {
		out[i] = i
	}
	return out
}

// Reduce must agree with a brute-force pass over the full partition:
// strictly largest group, smallest pattern among ties, original order.
func TestReduceMatchesBruteForcePartition(t *testing.T) {
	answers := []string{"aaaa", "aaab", "aabb", "abbb", "bbbb", "abab", "baba", "abba"}
	v := testVocab(t, answers, answers)
	o := NewOracle(v, TieSmallestPattern)
	survivors := allAnswers(v)

	for gi := 0; gi < v.GuessCount(); gi++ {
		guess := v.Guess(gi)
		groups := o.Partition(survivors, guess)

		wantSize := 0
		wantPattern := Pattern(-1)
		for p, g := range groups {
			if len(g) > wantSize || (len(g) == wantSize && p < wantPattern) {
				wantSize = len(g)
				wantPattern = p
			}
		}

		got, pat := o.Reduce(survivors, guess)
		assert.Equal(t, wantPattern, pat, "guess %s", v.GuessString(gi))
		assert.Equal(t, groups[wantPattern], got, "guess %s", v.GuessString(gi))
		assert.GreaterOrEqual(t, wantSize*len(groups), len(survivors),
			"largest group must be at least ceil(n/groups)")
	}
}

func TestReduceMonotonic(t *testing.T) {
	answers := []string{"abide", "speed", "ropes", "crane", "caper", "eerie"}
	v := testVocab(t, answers, answers)
	o := NewOracle(v, TieSmallestPattern)
	survivors := allAnswers(v)

	for gi := 0; gi < v.GuessCount(); gi++ {
		got, _ := o.Reduce(survivors, v.Guess(gi))
		assert.LessOrEqual(t, len(got), len(survivors))
		assert.NotEmpty(t, got)
	}

	// A guess no survivor shares a letter with leaves the set whole.
	whole := testVocab(t, []string{"zzzzz"}, []string{"abide", "crane"})
	ow := NewOracle(whole, TieSmallestPattern)
	got, pat := ow.Reduce([]int{0, 1}, whole.Guess(0))
	assert.Equal(t, []int{0, 1}, got)
	assert.Equal(t, Pattern(0), pat)
}

func TestReduceSingletonIdempotent(t *testing.T) {
	v := testVocab(t, []string{"abide", "speed", "ropes"}, []string{"abide"})
	o := NewOracle(v, TieSmallestPattern)

	for gi := 0; gi < v.GuessCount(); gi++ {
		got, _ := o.Reduce([]int{0}, v.Guess(gi))
		assert.Equal(t, []int{0}, got)
	}
}

func TestReduceTieBreakRules(t *testing.T) {
	// Both answers produce singleton groups against the guess "ab":
	// score(ab, ab) = 8 (all hit), score(ab, ba) = 4 (two presents).
	v := testVocab(t, []string{"ab"}, []string{"ab", "ba"})

	smallest := NewOracle(v, TieSmallestPattern)
	got, pat := smallest.Reduce([]int{0, 1}, v.Guess(0))
	assert.Equal(t, Pattern(4), pat)
	assert.Equal(t, []int{1}, got)

	firstSeen := NewOracle(v, TieFirstSeen)
	got, pat = firstSeen.Reduce([]int{0, 1}, v.Guess(0))
	assert.Equal(t, Pattern(8), pat)
	assert.Equal(t, []int{0}, got)
}

// End-to-end scenario with concrete numeric pattern values.
func TestReduceAbideSpeedScenario(t *testing.T) {
	v := testVocab(t, []string{"abide", "speed", "ropes"}, []string{"abide", "speed"})
	o := NewOracle(v, TieSmallestPattern)

	// Guessing "speed": abide scores 90, speed scores 242. Both groups
	// are singletons; smallest pattern wins, so the oracle keeps "abide".
	speedIdx := -1
	for gi := 0; gi < v.GuessCount(); gi++ {
		if v.GuessString(gi) == "speed" {
			speedIdx = gi
		}
	}
	require.NotEqual(t, -1, speedIdx)

	got, pat := o.Reduce(allAnswers(v), v.Guess(speedIdx))
	assert.Equal(t, Pattern(90), pat)
	require.Len(t, got, 1)
	assert.Equal(t, "abide", v.AnswerString(got[0]))
}

func TestReduceOrderPreserved(t *testing.T) {
	// All four answers score pattern 0 against "zzzz" except none do:
	// use a guess that splits into one group of three, preserving order.
	answers := []string{"aaaa", "bbbb", "cccc", "dddd"}
	v := testVocab(t, answers, answers)
	o := NewOracle(v, TieSmallestPattern)

	got, pat := o.Reduce(allAnswers(v), v.Guess(0)) // guess "aaaa"
	assert.Equal(t, Pattern(0), pat)
	assert.Equal(t, []int{1, 2, 3}, got)
}
