// internal/solver/oracle.go
//
// Partition oracle: the adversarial step of the game. The oracle never
// commits to a hidden word; after every guess it answers with whichever
// feedback pattern keeps the largest subset of the surviving candidates
// alive.
//
// Surviving sets are represented as ordered slices of indices into the
// vocabulary's answer list. Reduce is a pure function over its inputs and
// is safe to call concurrently.

package solver

// TieBreak selects among pattern groups of equal maximal size. The rule
// is fixed per session because it affects determinism and test
// reproducibility.
type TieBreak int

const (
	// TieSmallestPattern picks the tied group with the smallest encoded
	// pattern value. The default.
	TieSmallestPattern TieBreak = iota

	// TieFirstSeen picks the tied group whose pattern was produced
	// earliest in survivor order.
	TieFirstSeen
)

// String reports the configuration name of the tie-break rule.
func (t TieBreak) String() string {
	if t == TieFirstSeen {
		return "first-seen"
	}
	return "smallest-pattern-value"
}

// Oracle partitions surviving candidate sets by guess outcome.
type Oracle struct {
	answers  []Word
	tieBreak TieBreak
}

// NewOracle builds an oracle over the vocabulary's answer set.
func NewOracle(v *Vocabulary, tb TieBreak) *Oracle {
	return &Oracle{answers: v.answers, tieBreak: tb}
}

// Partition groups survivors (answer indices) by the pattern each would
// produce for guess. Relative survivor order is preserved within each
// group.
func (o *Oracle) Partition(survivors []int, guess Word) map[Pattern][]int {
	groups := make(map[Pattern][]int)
	for _, idx := range survivors {
		p := Score(guess, o.answers[idx])
		groups[p] = append(groups[p], idx)
	}
	return groups
}

// Reduce applies the adversarial transition: it partitions survivors by
// pattern and returns the largest group together with that group's
// pattern, in the survivors' original relative order. Ties go to the
// configured rule.
//
// survivors must be non-empty. A singleton set is returned unchanged
// regardless of guess: the game is already won.
func (o *Oracle) Reduce(survivors []int, guess Word) ([]int, Pattern) {
	groups := make(map[Pattern][]int)
	order := make([]Pattern, 0, 8)
	for _, idx := range survivors {
		p := Score(guess, o.answers[idx])
		g, ok := groups[p]
		if !ok {
			order = append(order, p)
		}
		groups[p] = append(g, idx)
	}

	best := order[0]
	for _, p := range order[1:] {
		switch {
		case len(groups[p]) > len(groups[best]):
			best = p
		case len(groups[p]) == len(groups[best]) && o.tieBreak == TieSmallestPattern && p < best:
			best = p
			// TieFirstSeen: order already reflects first appearance, so
			// the earlier group stands.
		}
	}
	return groups[best], best
}
