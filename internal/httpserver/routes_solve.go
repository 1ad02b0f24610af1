// internal/httpserver/routes_solve.go
//
// HTTP routes for running the adversarial solver.
// Exposes three endpoints:
//   - POST /solve        → run a search over the (optionally restricted) answer set
//   - GET  /solve/{id}   → fetch a finished run by ID (full result, in-memory)
//   - GET  /runs/mine    → list the caller's recent runs (requires auth)
//
// Solves run synchronously on the request; the request context bounds the
// search, optionally tightened by a per-request timeout. Finished runs are
// kept in the in-memory store for retrieval and mirrored as summary rows
// to SQLite for history.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/absurdle/go-solver/internal/runs"
	"github.com/absurdle/go-solver/internal/solver"
	"github.com/absurdle/go-solver/internal/store"
	"github.com/absurdle/go-solver/internal/words"
)

// solveServer wraps dependencies for the solve endpoints.
type solveServer struct {
	srv  *Server
	runs *runs.Store
}

// mountSolve registers the solve routes on r (optional-auth router).
func (s *Server) mountSolve(r chi.Router) {
	ss := &solveServer{srv: s, runs: runs.NewStore(s.db)}
	r.Post("/solve", ss.handleSolve)
	r.Get("/solve/{id}", ss.handleGetRun)
	r.With(s.requireAuth()).Get("/runs/mine", ss.handleMyRuns)
}

// -----------------------------------------------------------------------------
// POST /solve

// solveReq is the request payload for /solve.
// All fields are optional; zero values select the documented defaults.
type solveReq struct {
	// Answers restricts the candidate answer set. Every entry must be a
	// known answer word. Empty means the full answer list.
	Answers []string `json:"answers"`

	MaxDepth    int    `json:"maxDepth"`
	MaxNodes    int    `json:"maxNodes"`
	Parallelism int    `json:"parallelism"`
	TieBreak    string `json:"tieBreak"`   // "smallest-pattern-value" (default) | "first-seen"
	AllOptimal  bool   `json:"allOptimal"` // collect every minimal-length sequence
	TimeoutMs   int    `json:"timeoutMs"`  // 0 = no extra deadline beyond the request
}

// handleSolve validates the request, runs the search engine, records the
// run, and returns it.
func (s *solveServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	var p solveReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
			return
		}
	}

	tb, err := parseTieBreak(p.TieBreak)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	answerList := words.Answers()
	if len(p.Answers) > 0 {
		answerList = make([]string, 0, len(p.Answers))
		for _, raw := range p.Answers {
			word := strings.ToLower(strings.TrimSpace(raw))
			if !words.IsAnswer(word) {
				http.Error(w, `{"error":"unknown answer word: `+word+`"}`, http.StatusBadRequest)
				return
			}
			answerList = append(answerList, word)
		}
	}

	vocab, err := solver.NewVocabulary(words.Allowed(), answerList)
	if err != nil {
		var iw *solver.InvalidWordError
		if errors.As(err, &iw) || errors.Is(err, solver.ErrEmptyVocabulary) {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}

	cfg := solver.Config{
		MaxDepth:    p.MaxDepth,
		MaxNodes:    p.MaxNodes,
		Parallelism: p.Parallelism,
		TieBreak:    tb,
	}
	if p.AllOptimal {
		cfg.Exhaustiveness = solver.AllOptimal
	}

	engine, err := solver.NewEngine(vocab, cfg)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if p.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	started := time.Now()
	res, err := engine.Search(ctx)
	elapsed := time.Since(started)
	if err != nil && !errors.Is(err, solver.ErrSearchExhausted) {
		log.Error().Err(err).Msg("solve failed")
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}

	run := &runs.Run{
		ID:          genID(),
		Status:      runs.StatusOf(res),
		AnswerCount: vocab.AnswerCount(),
		GuessCount:  vocab.GuessCount(),
		WordLength:  vocab.Length(),
		TieBreak:    tb.String(),
		Result:      res,
		StartedAt:   started,
		FinishedAt:  started.Add(elapsed),
		ElapsedMs:   elapsed.Milliseconds(),
	}
	if err := s.srv.store.Save(ctx, run); err != nil {
		log.Warn().Err(err).Str("run", run.ID).Msg("save run")
	}

	// Persist a summary row and bump stats. Best effort; the response is
	// served either way.
	userID := ""
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		userID = me.ID
	}
	anonID := ""
	if userID == "" {
		anonID = s.srv.ensureAnonID(w, r)
	}
	if err := s.runs.Insert(r.Context(), run, userID, anonID); err != nil {
		log.Warn().Err(err).Str("run", run.ID).Msg("insert run row")
	}
	if userID != "" {
		s.bumpUserStats(r, userID, run.Status == runs.StatusSolved)
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(run)
}

// bumpUserStats updates runs_started/runs_solved inside a transaction.
func (s *solveServer) bumpUserStats(r *http.Request, userID string, solved bool) {
	tx, err := s.srv.db.BeginTx(r.Context(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin stats tx")
		return
	}
	if err := s.srv.bumpStats(tx, userID, solved); err != nil {
		_ = tx.Rollback()
		log.Warn().Err(err).Msg("bump stats")
		return
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit stats tx")
	}
}

// -----------------------------------------------------------------------------
// GET /solve/{id}

// handleGetRun returns the full stored run, including every solution.
func (s *solveServer) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.srv.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(run)
}

// -----------------------------------------------------------------------------
// GET /runs/mine

// handleMyRuns lists the authenticated user's recent run summaries.
func (s *solveServer) handleMyRuns(w http.ResponseWriter, r *http.Request) {
	me, _ := r.Context().Value(ctxUserKey{}).(*authUser)
	if me == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	rows, err := s.runs.RecentByUser(r.Context(), me.ID, 0)
	if err != nil {
		log.Warn().Err(err).Msg("list runs")
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"runs": rows})
}

// parseTieBreak maps the wire name to a TieBreak value.
func parseTieBreak(s string) (solver.TieBreak, error) {
	switch s {
	case "", "smallest-pattern-value":
		return solver.TieSmallestPattern, nil
	case "first-seen":
		return solver.TieFirstSeen, nil
	default:
		return 0, errors.New("unknown tieBreak: " + s)
	}
}
