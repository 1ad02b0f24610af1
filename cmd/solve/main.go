// cmd/solve/main.go
//
// Command-line front end for the solver. Runs one search against the
// embedded word lists (or lists supplied by flag) and prints the minimal
// guess sequences found.
//
// Examples:
//   solve
//   solve --tie-break first-seen --all-optimal
//   solve --answers-file words/answers.txt --allowed-file words/allowed.txt
//   solve --answers abide,speed,crane --timeout 30s --json

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/absurdle/go-solver/assets"
	"github.com/absurdle/go-solver/internal/solver"
	"github.com/absurdle/go-solver/internal/words"
)

type options struct {
	answersFile string
	allowedFile string
	answers     []string
	wordLength  int
	maxDepth    int
	maxNodes    int
	parallelism int
	tieBreak    string
	allOptimal  bool
	timeout     time.Duration
	jsonOut     bool
	quiet       bool
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var opts options
	root := &cobra.Command{
		Use:   "solve",
		Short: "Find shortest guess sequences against the adversarial word oracle",
		Long: "solve searches for the shortest sequence of guesses guaranteed to corner\n" +
			"an adversarial oracle that always keeps the largest group of candidate\n" +
			"answers alive.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	fl := root.Flags()
	fl.StringVar(&opts.answersFile, "answers-file", "", "file with one answer word per line (default: embedded list)")
	fl.StringVar(&opts.allowedFile, "allowed-file", "", "file with one allowed guess per line (default: embedded list)")
	fl.StringSliceVar(&opts.answers, "answers", nil, "restrict the answer set to these words")
	fl.IntVar(&opts.wordLength, "word-length", 5, "word length used when reading list files")
	fl.IntVar(&opts.maxDepth, "max-depth", 0, "maximum guess-sequence length (0 = answer-set size)")
	fl.IntVar(&opts.maxNodes, "max-nodes", 0, "node expansion budget (0 = unbounded)")
	fl.IntVar(&opts.parallelism, "parallelism", 0, "concurrent state expansions (0 = NumCPU)")
	fl.StringVar(&opts.tieBreak, "tie-break", "smallest-pattern-value", `oracle tie-break: "smallest-pattern-value" or "first-seen"`)
	fl.BoolVar(&opts.allOptimal, "all-optimal", false, "collect every minimal-length sequence, not just the first")
	fl.DurationVar(&opts.timeout, "timeout", 0, "give up after this long (0 = no limit)")
	fl.BoolVar(&opts.jsonOut, "json", false, "emit the full result as JSON")
	fl.BoolVar(&opts.quiet, "quiet", false, "suppress the progress spinner")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	guesses, answers, err := loadLists(opts)
	if err != nil {
		return err
	}
	if len(opts.answers) > 0 {
		answers, err = restrictAnswers(answers, opts.answers)
		if err != nil {
			return err
		}
	}

	vocab, err := solver.NewVocabulary(guesses, answers)
	if err != nil {
		return err
	}

	tb, err := parseTieBreak(opts.tieBreak)
	if err != nil {
		return err
	}

	cfg := solver.Config{
		MaxDepth:    opts.maxDepth,
		MaxNodes:    opts.maxNodes,
		Parallelism: opts.parallelism,
		TieBreak:    tb,
	}
	if opts.allOptimal {
		cfg.Exhaustiveness = solver.AllOptimal
	}

	var bar *progressbar.ProgressBar
	if !opts.quiet && !opts.jsonOut {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetDescription("searching"),
		)
		cfg.Progress = func(st solver.DepthStats) {
			bar.Describe(fmt.Sprintf("depth %d done, frontier %d, nodes %d, best %d",
				st.Depth, st.Frontier, st.NodesExpanded, st.BestSize))
			_ = bar.Add(1)
		}
	}

	engine, err := solver.NewEngine(vocab, cfg)
	if err != nil {
		return err
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	started := time.Now()
	res, err := engine.Search(ctx)
	elapsed := time.Since(started)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil && !errors.Is(err, solver.ErrSearchExhausted) {
		return err
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(vocab, res, elapsed, errors.Is(err, solver.ErrSearchExhausted))
	if !res.Solved() {
		os.Exit(2)
	}
	return nil
}

// loadLists resolves the guess and answer lists from flags or embedded assets.
func loadLists(opts options) (guesses, answers []string, err error) {
	switch {
	case opts.answersFile != "" && opts.allowedFile != "":
		answers, err = words.ReadFile(opts.answersFile, opts.wordLength)
		if err != nil {
			return nil, nil, err
		}
		guesses, err = words.ReadFile(opts.allowedFile, opts.wordLength)
		if err != nil {
			return nil, nil, err
		}
	case opts.allowedFile != "":
		guesses, err = words.ReadFile(opts.allowedFile, opts.wordLength)
		if err != nil {
			return nil, nil, err
		}
		answers = guesses
	case opts.answersFile != "":
		answers, err = words.ReadFile(opts.answersFile, opts.wordLength)
		if err != nil {
			return nil, nil, err
		}
		guesses = answers
	default:
		answers, err = assets.AnswersList()
		if err != nil {
			return nil, nil, err
		}
		guesses, err = assets.AllowedList()
		if err != nil {
			return nil, nil, err
		}
	}
	if len(answers) == 0 {
		return nil, nil, errors.New("answer list is empty")
	}
	return guesses, answers, nil
}

// restrictAnswers keeps only the requested subset, verifying membership.
func restrictAnswers(full, want []string) ([]string, error) {
	known := make(map[string]struct{}, len(full))
	for _, w := range full {
		known[w] = struct{}{}
	}
	out := make([]string, 0, len(want))
	for _, raw := range want {
		w := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := known[w]; !ok {
			return nil, fmt.Errorf("unknown answer word: %s", w)
		}
		out = append(out, w)
	}
	return out, nil
}

func parseTieBreak(s string) (solver.TieBreak, error) {
	switch s {
	case "", "smallest-pattern-value":
		return solver.TieSmallestPattern, nil
	case "first-seen":
		return solver.TieFirstSeen, nil
	default:
		return 0, fmt.Errorf("unknown tie-break: %s", s)
	}
}

// printResult renders solutions (or the failure summary) for terminals.
func printResult(v *solver.Vocabulary, res solver.Result, elapsed time.Duration, exhausted bool) {
	switch {
	case res.Solved():
		fmt.Printf("solved in %d guesses (%d nodes, %s)\n",
			res.Depth, res.NodesExpanded, elapsed.Round(time.Millisecond))
		for i, sol := range res.Solutions {
			fmt.Printf("  #%d:", i+1)
			for j, g := range sol.Guesses {
				fmt.Printf(" %s[%s]", g, sol.Patterns[j].Format(v.Length()))
			}
			fmt.Printf(" -> %s\n", sol.Survivor)
		}
	case res.Cancelled:
		fmt.Printf("cancelled at depth %d (%d nodes, best surviving set %d, %s)\n",
			res.Depth, res.NodesExpanded, res.BestSize, elapsed.Round(time.Millisecond))
	case exhausted:
		fmt.Printf("exhausted at depth %d (%d nodes, best surviving set %d, %s)\n",
			res.Depth, res.NodesExpanded, res.BestSize, elapsed.Round(time.Millisecond))
	}
}
