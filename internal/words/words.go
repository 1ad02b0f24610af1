// internal/words/words.go
//
// Word-list loading for the solver server.
//
// Responsibilities:
//   - Load the answer list and allowed guess list from environment-provided
//     files or fall back to embedded defaults.
//   - Preserve list order (the solver's vocabulary and tie-breaking are
//     order-sensitive) while keeping lookup sets for quick validation.
//   - Supply utility functions like IsAllowed, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": words eligible to be the oracle's surviving target.
//   - "allowed": legally playable guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set, fall back to the embedded defaults in assets.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//   WORD_LENGTH=5
//
// Constraints:
//   • Words must be exactly WORD_LENGTH alphabetic letters (a–z).
//   • Lists are normalized to lowercase; other lines are skipped.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/absurdle/go-solver/assets"
)

const defaultLength = 5

var (
	initOnce   sync.Once
	length     int
	answers    []string            // ordered answer list
	allowed    []string            // ordered guess list (superset of answers)
	allowedSet map[string]struct{} // answers ∪ guesses
	answersSet map[string]struct{} // answers only
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		length = defaultLength
		if v := os.Getenv("WORD_LENGTH"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				length = n
			}
		}

		var ansList, allowList []string

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = ReadFile(answersPath, length)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = ReadFile(allowedPath, length)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = ReadFile(allowedPath, length)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: fallback to embedded defaults
		default:
			var err error
			ansList, err = assets.AnswersList()
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = assets.AllowedList()
			if err != nil {
				initialErr = err
				return
			}
			ansList = keepValid(ansList, length)
			allowList = keepValid(allowList, length)
		}

		answers = ansList
		answersSet = toSet(ansList)

		// Allowed keeps file order, then any answers missing from it.
		allowedSet = toSet(allowList)
		allowed = append([]string{}, allowList...)
		for _, w := range ansList {
			if _, ok := allowedSet[w]; !ok {
				allowedSet[w] = struct{}{}
				allowed = append(allowed, w)
			}
		}

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
		}
	})
	return initialErr
}

// ReadFile loads one word per line from a file, lowercases, trims, and
// keeps only valid alphabetic words of the wanted length, in file order.
func ReadFile(path string, wantLen int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == wantLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters an already-loaded list down to valid words of the
// wanted length.
func keepValid(list []string, wantLen int) []string {
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == wantLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Length returns the configured word length.
func Length() int {
	return length
}

// Answers returns the ordered answer list.
func Answers() []string {
	return answers
}

// Allowed returns the ordered guess list (answers included).
func Allowed() []string {
	return allowed
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowed)
}
