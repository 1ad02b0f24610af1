// internal/solver/word.go
//
// Word codec: converts raw strings to fixed-length symbol arrays for
// fast comparison. Letters map to small integers (a=0..z=25).
//
// Encoding is case-insensitive on input and canonicalizes to lowercase.
// Decode is a total, lossless inverse of Encode.

package solver

import "fmt"

// alphabetSize is the symbol universe: lowercase ASCII letters.
const alphabetSize = 26

// Word is an ordered sequence of letter indices (0..25). Words are
// immutable once constructed; two words are equal iff their symbol
// sequences are equal.
type Word []uint8

// String renders the word as lowercase text.
func (w Word) String() string {
	b := make([]byte, len(w))
	for i, s := range w {
		b[i] = 'a' + s
	}
	return string(b)
}

// Equal reports whether two words have identical symbol sequences.
func (w Word) Equal(o Word) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}
	return true
}

// InvalidWordError reports a raw word that failed length or alphabet
// validation during encoding. Malformed vocabulary is a configuration
// error; callers surface this at load time and abort.
type InvalidWordError struct {
	Raw    string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Raw, e.Reason)
}

// Codec converts raw words to Words of one fixed length.
type Codec struct {
	length int
}

// NewCodec returns a codec for words of the given length.
func NewCodec(length int) Codec { return Codec{length: length} }

// Length returns the word length this codec accepts.
func (c Codec) Length() int { return c.length }

// Encode validates raw and converts it to a Word. It fails with
// *InvalidWordError if the length differs from the codec's or a
// character falls outside a-z (either case).
func (c Codec) Encode(raw string) (Word, error) {
	if len(raw) != c.length {
		return nil, &InvalidWordError{
			Raw:    raw,
			Reason: fmt.Sprintf("length %d, want %d", len(raw), c.length),
		}
	}
	w := make(Word, c.length)
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			w[i] = ch - 'a'
		case ch >= 'A' && ch <= 'Z':
			w[i] = ch - 'A'
		default:
			return nil, &InvalidWordError{
				Raw:    raw,
				Reason: fmt.Sprintf("character %q outside a-z", ch),
			}
		}
	}
	return w, nil
}

// Decode converts a Word back to its lowercase text form.
func (c Codec) Decode(w Word) string { return w.String() }
