// internal/solver/vocab.go
//
// Vocabulary: the immutable word universe for a solver session.
// Two ordered collections of Words:
//   - the guess set: every word legally playable,
//   - the answer set: every word eligible to survive as the oracle's target.
//
// Answers are always contained in the guess set; any answer missing from
// the supplied guess list is appended to it. Loaded once, never mutated.

package solver

// Vocabulary holds validated, canonicalized word lists. Construct with
// NewVocabulary; pass by pointer into the Engine.
type Vocabulary struct {
	codec     Codec
	guesses   []Word
	guessRaw  []string
	answers   []Word
	answerRaw []string
}

// NewVocabulary validates both raw lists and builds the session
// vocabulary. Word length is taken from the first answer; every word in
// both lists must match it. Duplicates are dropped, keeping the first
// occurrence, so list order is preserved.
//
// Returns ErrEmptyVocabulary if either list is empty, or the
// *InvalidWordError for the first malformed word.
func NewVocabulary(guessRaws, answerRaws []string) (*Vocabulary, error) {
	if len(guessRaws) == 0 || len(answerRaws) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{codec: NewCodec(len(answerRaws[0]))}

	guessSeen := make(map[string]struct{}, len(guessRaws)+len(answerRaws))
	addGuess := func(raw string) error {
		w, err := v.codec.Encode(raw)
		if err != nil {
			return err
		}
		canon := v.codec.Decode(w)
		if _, ok := guessSeen[canon]; ok {
			return nil
		}
		guessSeen[canon] = struct{}{}
		v.guesses = append(v.guesses, w)
		v.guessRaw = append(v.guessRaw, canon)
		return nil
	}

	for _, raw := range guessRaws {
		if err := addGuess(raw); err != nil {
			return nil, err
		}
	}

	answerSeen := make(map[string]struct{}, len(answerRaws))
	for _, raw := range answerRaws {
		w, err := v.codec.Encode(raw)
		if err != nil {
			return nil, err
		}
		canon := v.codec.Decode(w)
		if _, ok := answerSeen[canon]; ok {
			continue
		}
		answerSeen[canon] = struct{}{}
		v.answers = append(v.answers, w)
		v.answerRaw = append(v.answerRaw, canon)
		// Every answer must be playable.
		if err := addGuess(canon); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Length returns the fixed word length of this vocabulary.
func (v *Vocabulary) Length() int { return v.codec.Length() }

// Codec returns the codec that produced this vocabulary's words.
func (v *Vocabulary) Codec() Codec { return v.codec }

// GuessCount returns the number of playable words.
func (v *Vocabulary) GuessCount() int { return len(v.guesses) }

// AnswerCount returns the number of answer words.
func (v *Vocabulary) AnswerCount() int { return len(v.answers) }

// Guess returns the i-th playable word.
func (v *Vocabulary) Guess(i int) Word { return v.guesses[i] }

// GuessString returns the i-th playable word as text.
func (v *Vocabulary) GuessString(i int) string { return v.guessRaw[i] }

// Answer returns the i-th answer word.
func (v *Vocabulary) Answer(i int) Word { return v.answers[i] }

// AnswerString returns the i-th answer word as text.
func (v *Vocabulary) AnswerString(i int) string { return v.answerRaw[i] }

// AnswerStrings returns a copy of the answer list as text, in order.
func (v *Vocabulary) AnswerStrings() []string {
	out := make([]string, len(v.answerRaw))
	copy(out, v.answerRaw)
	return out
}
