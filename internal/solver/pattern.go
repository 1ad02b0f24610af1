// internal/solver/pattern.go
//
// Feedback-pattern computation between a guess and a candidate word.
// Implements the classic two-pass scoring algorithm:
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) target letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter, left to right: if there is remaining
//     count for that letter, mark Present and decrement the count;
//     otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both words: the
// number of Hit+Present marks for any letter never exceeds that letter's
// count in the target.
//
// Patterns are canonically encoded as a single integer in [0, 3^L):
// sum(mark[i] * 3^i), with position 0 the least significant digit.

package solver

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	MarkMiss    Mark = 0 // letter does not exist in the remaining target
	MarkPresent Mark = 1 // letter exists in the target but elsewhere
	MarkHit     Mark = 2 // letter is correct and in the correct position
)

// String reports the conventional name for the mark.
func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// Pattern is the base-3 integer encoding of a feedback sequence. It is
// the primary key used when grouping candidates by guess outcome.
type Pattern int

// PatternCount returns the number of distinct patterns for a word
// length: 3^length.
func PatternCount(length int) int {
	n := 1
	for i := 0; i < length; i++ {
		n *= 3
	}
	return n
}

// AllHitPattern returns the all-green pattern for a word length,
// 3^length - 1.
func AllHitPattern(length int) Pattern {
	return Pattern(PatternCount(length) - 1)
}

// Marks decodes p back into its per-position marks.
func (p Pattern) Marks(length int) []Mark {
	out := make([]Mark, length)
	v := int(p)
	for i := 0; i < length; i++ {
		out[i] = Mark(v % 3)
		v /= 3
	}
	return out
}

// Format renders p as one character per position: '.' miss, 'y' present,
// 'g' hit.
func (p Pattern) Format(length int) string {
	b := make([]byte, length)
	for i, m := range p.Marks(length) {
		switch m {
		case MarkHit:
			b[i] = 'g'
		case MarkPresent:
			b[i] = 'y'
		default:
			b[i] = '.'
		}
	}
	return string(b)
}

// Score computes the feedback pattern for test scored against target.
// Both words must have the same length (guaranteed for words produced by
// one Codec). Total function: no failure case.
func Score(test, target Word) Pattern {
	n := len(test)

	var stack [8]Mark
	var marks []Mark
	if n <= len(stack) {
		marks = stack[:n]
	} else {
		marks = make([]Mark, n)
	}

	// Letter frequency for the non-hit target positions.
	var counts [alphabetSize]int

	// First pass: hits, and counts of the unconsumed target letters.
	for i := 0; i < n; i++ {
		if test[i] == target[i] {
			marks[i] = MarkHit
		} else {
			marks[i] = MarkMiss
			counts[target[i]]++
		}
	}

	// Second pass: resolve presents left to right, consuming exactly one
	// target occurrence per match so no target letter is counted twice.
	// Encode base-3 as we go; position 0 is the least significant digit.
	p := Pattern(0)
	weight := 1
	for i := 0; i < n; i++ {
		if marks[i] != MarkHit && counts[test[i]] > 0 {
			marks[i] = MarkPresent
			counts[test[i]]--
		}
		p += Pattern(int(marks[i]) * weight)
		weight *= 3
	}
	return p
}
