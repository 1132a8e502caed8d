package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/corentings/chess/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/chesscoach/internal/store"
)

// maxPGNBytes bounds the request body. A single annotated game is a
// few kilobytes; anything near this limit is not a chess game.
const maxPGNBytes = 1 << 20

// AnalyzeFunc runs the analysis pipeline over one parsed game and
// returns the blunders it recorded under the given source id.
type AnalyzeFunc func(ctx context.Context, game *chess.Game, source string) ([]store.BlunderRecord, error)

// Server exposes game analysis over HTTP.
type Server struct {
	server    *http.Server
	repo      store.BlunderRepo
	analyze   AnalyzeFunc
	collector *Collector
}

// New creates the HTTP server.
func New(addr string, repo store.BlunderRepo, analyze AnalyzeFunc) *Server {
	s := &Server{
		repo:      repo,
		analyze:   analyze,
		collector: NewCollector(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /blunders", s.handleBlunders)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := PrometheusMiddleware(s.collector)(mux)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		// Analyses run for minutes at engine depth; the write timeout
		// must outlast them.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the server's root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Chess Coach API!",
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// analyzeResponse is the POST /analyze payload.
type analyzeResponse struct {
	Source   string          `json:"source"`
	Analysis []blunderRecord `json:"analysis"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPGNBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	pgn := strings.TrimSpace(string(body))
	if pgn == "" {
		writeError(w, http.StatusBadRequest, "the PGN body is empty")
		return
	}

	opt, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid PGN: %v", err))
		return
	}
	game := chess.NewGame(opt)

	source := uuid.NewString()
	start := time.Now()

	records, err := s.analyze(r.Context(), game, source)
	s.collector.RecordAnalysis(err == nil, len(records), time.Since(start).Seconds())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %v", err))
		return
	}

	resp := analyzeResponse{Source: source, Analysis: make([]blunderRecord, 0, len(records))}
	for i := range records {
		resp.Analysis = append(resp.Analysis, toBlunderJSON(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlunders(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		writeError(w, http.StatusBadRequest, "the source query parameter is required")
		return
	}

	records, err := s.repo.BySource(r.Context(), source)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("query failed: %v", err))
		return
	}

	out := make([]blunderRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toBlunderJSON(rec))
	}
	writeJSON(w, http.StatusOK, map[string][]blunderRecord{"blunders": out})
}

// blunderRecord is the wire form of a stored blunder.
type blunderRecord struct {
	MoveNumber  int    `json:"move_number"`
	PlayerColor string `json:"player_color"`
	MoveSAN     string `json:"move_san"`
	PositionFEN string `json:"position_fen"`
	EvalDrop    int    `json:"eval_drop"`
	BestMoveSAN string `json:"best_move_san"`
	Motif       string `json:"motif"`
	Severity    string `json:"severity"`
	Explanation string `json:"explanation"`
}

func toBlunderJSON(rec *store.BlunderRecord) blunderRecord {
	return blunderRecord{
		MoveNumber:  rec.MoveNumber,
		PlayerColor: rec.PlayerColor,
		MoveSAN:     rec.MoveSAN,
		PositionFEN: rec.PositionFEN,
		EvalDrop:    rec.EvalDrop,
		BestMoveSAN: rec.BestMoveSAN,
		Motif:       rec.Motif,
		Severity:    rec.Severity,
		Explanation: rec.Explanation,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
