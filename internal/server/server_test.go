package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corentings/chess/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chesscoach/internal/store"
)

type fakeRepo struct {
	records []*store.BlunderRecord
	err     error
}

func (r *fakeRepo) Save(_ context.Context, rec *store.BlunderRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeRepo) BySource(_ context.Context, source string) ([]*store.BlunderRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*store.BlunderRecord
	for _, rec := range r.records {
		if rec.Source == source {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteBySource(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func stubAnalyze(records []store.BlunderRecord, err error) AnalyzeFunc {
	return func(_ context.Context, _ *chess.Game, source string) ([]store.BlunderRecord, error) {
		for i := range records {
			records[i].Source = source
		}
		return records, err
	}
}

const testPGN = "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0"

func TestHandleRoot(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, nil))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Chess Coach")
}

func TestHandleHealthz(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, nil))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	found := []store.BlunderRecord{{
		MoveNumber:  3,
		PlayerColor: "Black",
		MoveSAN:     "Nf6",
		EvalDrop:    29970,
		BestMoveSAN: "d6",
		Motif:       "HangingPiece",
		Severity:    "Blunder",
		Explanation: "Nf6 allows Qxf7 mate.",
	}}
	s := New(":0", &fakeRepo{}, stubAnalyze(found, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(testPGN))
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Source   string `json:"source"`
		Analysis []struct {
			MoveSAN  string `json:"move_san"`
			Severity string `json:"severity"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Source)
	require.Len(t, resp.Analysis, 1)
	assert.Equal(t, "Nf6", resp.Analysis[0].MoveSAN)
	assert.Equal(t, "Blunder", resp.Analysis[0].Severity)
}

func TestHandleAnalyzeEmptyBody(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("  \n"))
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeFailure(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, errors.New("engine unavailable")))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(testPGN))
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis failed")
}

func TestHandleBlunders(t *testing.T) {
	repo := &fakeRepo{records: []*store.BlunderRecord{
		{Source: "abc", MoveSAN: "Nf6", Severity: "Blunder"},
		{Source: "other", MoveSAN: "Qd1", Severity: "MissedMate"},
	}}
	s := New(":0", repo, stubAnalyze(nil, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blunders?source=abc", nil)
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Blunders []struct {
			MoveSAN string `json:"move_san"`
		} `json:"blunders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Blunders, 1)
	assert.Equal(t, "Nf6", resp.Blunders[0].MoveSAN)
}

func TestHandleBlundersMissingSource(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, nil))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blunders", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(":0", &fakeRepo{}, stubAnalyze(nil, nil))

	// Drive one request through the middleware so counters exist.
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chesscoach_http_requests_total")
}
