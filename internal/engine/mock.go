package engine

import (
	"context"
	"fmt"
	"sync"
)

// MockEvaluator is a deterministic Evaluator for testing. Evaluations
// are keyed by FEN and every request is recorded.
type MockEvaluator struct {
	mu    sync.Mutex
	evals map[string]*Evaluation
	Calls []string
	// Err, if set, is returned by every Evaluate call.
	Err error
}

// NewMockEvaluator creates an empty MockEvaluator.
func NewMockEvaluator() *MockEvaluator {
	return &MockEvaluator{evals: make(map[string]*Evaluation)}
}

// Set registers the evaluation returned for the given FEN.
func (m *MockEvaluator) Set(fen string, eval *Evaluation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evals[fen] = eval
}

// SetCP registers a plain centipawn evaluation for the given FEN.
func (m *MockEvaluator) SetCP(fen string, cp int, bestLine ...string) {
	m.Set(fen, &Evaluation{Score: Score{CP: cp}, BestLine: bestLine})
}

// SetMate registers a forced-mate evaluation for the given FEN.
func (m *MockEvaluator) SetMate(fen string, mateIn int, bestLine ...string) {
	m.Set(fen, &Evaluation{Score: Score{MateIn: mateIn, IsMate: true}, BestLine: bestLine})
}

func (m *MockEvaluator) Evaluate(_ context.Context, fen string) (*Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fen)

	if m.Err != nil {
		return nil, m.Err
	}
	if eval, ok := m.evals[fen]; ok {
		return eval, nil
	}
	return nil, fmt.Errorf("no evaluation registered for %q", fen)
}

func (m *MockEvaluator) Close() error {
	return nil
}
