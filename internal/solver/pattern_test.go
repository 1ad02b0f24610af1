package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWord(t *testing.T, raw string) Word {
	t.Helper()
	w, err := NewCodec(len(raw)).Encode(raw)
	require.NoError(t, err)
	return w
}

func TestScoreKnownPatterns(t *testing.T) {
	tests := []struct {
		test   string
		target string
		want   Pattern
		format string
	}{
		// The worked repeated-letter check: one present for 'e' (second
		// 'e' finds no unconsumed occurrence) and one for 'd'.
		{test: "speed", target: "abide", want: 90, format: "..y.y"},
		{test: "abide", target: "abide", want: 242, format: "ggggg"},
		{test: "crane", target: "caper", want: 95, format: "gyy.y"},
		// Only the positional 'e' matches; the target has a single 'e'.
		{test: "eeeee", target: "abide", want: 162, format: "....g"},
		{test: "ropes", target: "abide", want: 27, format: "...y."},
	}
	for _, tt := range tests {
		t.Run(tt.test+"_vs_"+tt.target, func(t *testing.T) {
			p := Score(mustWord(t, tt.test), mustWord(t, tt.target))
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.format, p.Format(len(tt.test)))
		})
	}
}

func TestScoreSelfIsAllHit(t *testing.T) {
	for _, raw := range []string{"abide", "speed", "eerie", "zzzzz"} {
		w := mustWord(t, raw)
		assert.Equal(t, AllHitPattern(5), Score(w, w), raw)
	}
	assert.Equal(t, Pattern(242), AllHitPattern(5))
	assert.Equal(t, Pattern(26), AllHitPattern(3))
}

// With no repeated letters on either side, the number of non-miss marks
// equals the size of the letter-set intersection.
func TestScoreDistinctLettersMatchesSetIntersection(t *testing.T) {
	words := []string{"crane", "slimy", "ghost", "bawdy", "nacre", "brick"}
	for _, a := range words {
		for _, b := range words {
			p := Score(mustWord(t, a), mustWord(t, b))
			nonMiss := 0
			for _, m := range p.Marks(5) {
				if m != MarkMiss {
					nonMiss++
				}
			}
			intersection := 0
			for _, ch := range a {
				if strings.ContainsRune(b, ch) {
					intersection++
				}
			}
			assert.Equal(t, intersection, nonMiss, "%s vs %s", a, b)
		}
	}
}

// For any letter, hit+present marks assigned to it in the test word never
// exceed that letter's count in the target.
func TestScoreRepeatedLetterConservation(t *testing.T) {
	words := []string{"speed", "abide", "eerie", "geese", "llama", "added", "melee"}
	for _, a := range words {
		for _, b := range words {
			test, target := mustWord(t, a), mustWord(t, b)
			marks := Score(test, target).Marks(5)

			var matched, have [alphabetSize]int
			for i, m := range marks {
				if m != MarkMiss {
					matched[test[i]]++
				}
			}
			for _, s := range target {
				have[s]++
			}
			for v := 0; v < alphabetSize; v++ {
				assert.LessOrEqual(t, matched[v], have[v], "%s vs %s letter %c", a, b, 'a'+v)
			}
		}
	}
}

func TestPatternMarksDigitOrder(t *testing.T) {
	// Position 0 is the least significant base-3 digit.
	assert.Equal(t, []Mark{MarkMiss, MarkMiss, MarkPresent, MarkMiss, MarkPresent}, Pattern(90).Marks(5))
	assert.Equal(t, []Mark{MarkHit, MarkMiss, MarkMiss, MarkMiss, MarkMiss}, Pattern(2).Marks(5))
	assert.Equal(t, []Mark{MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkHit}, Pattern(162).Marks(5))
	assert.Equal(t, 243, PatternCount(5))
}
