// internal/httpserver/server.go
//
// HTTP wiring for read-only puzzle delivery.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type).
//   - Public endpoints: "/", "/health".
//   - Puzzle endpoints: GET /puzzles/random, GET /puzzles/{id}, GET /daily.
//   - Verification endpoint: POST /verify.
//   - Diagnostics: GET /debug/words.
//
// Notes:
//   - There is no gameplay here: no sessions, no guesses, no accounts. The
//     service hands out puzzle records generated elsewhere and checks
//     ladders it is given.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordladder/internal/daily"
	"github.com/robalobadob/wordladder/internal/graph"
	"github.com/robalobadob/wordladder/internal/puzzle"
	"github.com/robalobadob/wordladder/internal/store"
)

// Server bundles router, puzzle store, and the graph used for verification.
type Server struct {
	r         *chi.Mux
	store     store.Store
	graph     *graph.WordGraph
	bands     puzzle.Bands
	dailySalt string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, g *graph.WordGraph, bands puzzle.Bands, dailySalt string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, graph: g, bands: bands, dailySalt: dailySalt}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordladder","endpoints":["/health","/puzzles/random","/puzzles/{id}","/daily","POST /verify"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Puzzle delivery
	s.r.Get("/puzzles/random", s.handleRandom)
	s.r.Get("/puzzles/{id}", s.handleByID)
	s.r.Get("/daily", s.handleDaily)

	// Ladder verification
	s.r.Post("/verify", s.handleVerify)

	// Debug: graph size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"nodes": s.graph.NodeCount(),
			"edges": s.graph.EdgeCount(),
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("serving puzzles")
	return http.ListenAndServe(addr, s.r)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.r }

/* ------------------------------ handlers ------------------------------- */

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty != "" {
		if _, ok := s.bands.ByLabel(difficulty); !ok {
			writeErr(w, http.StatusBadRequest, "unknown difficulty: "+difficulty)
			return
		}
	}
	p, err := s.store.Random(r.Context(), difficulty)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "no puzzles available")
			return
		}
		s.internalErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

func (s *Server) handleByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "puzzle not found")
			return
		}
		s.internalErr(w, r, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// handleDaily picks the deterministic puzzle of the day from the stored set.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.All(r.Context())
	if err != nil {
		s.internalErr(w, r, err)
		return
	}
	if len(all) == 0 {
		writeErr(w, http.StatusNotFound, "no puzzles available")
		return
	}
	now := time.Now()
	idx := daily.PuzzleIndex(now, s.dailySalt, len(all))
	_ = json.NewEncoder(w).Encode(map[string]any{
		"date":   daily.DateKey(now),
		"puzzle": all[idx],
	})
}

// verifyRequest accepts either the comma-separated CLI syntax or an
// explicit word array.
type verifyRequest struct {
	Sequence string   `json:"sequence"`
	Words    []string `json:"words"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	seq := req.Words
	if len(seq) == 0 {
		seq = puzzle.ParseSequence(req.Sequence)
	}
	res := puzzle.Verify(s.graph, s.bands, seq)
	_ = json.NewEncoder(w).Encode(res)
}

/* ------------------------------ helpers -------------------------------- */

func (s *Server) internalErr(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg("handler failed")
	writeErr(w, http.StatusInternalServerError, "internal error")
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// jsonContentType defaults responses to JSON.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
