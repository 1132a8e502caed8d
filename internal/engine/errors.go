package engine

import "fmt"

// ErrEngineUnavailable indicates the UCI engine process could not be
// started or stopped responding. Analysis of the game aborts; there is
// no meaningful fallback evaluation.
type ErrEngineUnavailable struct {
	Path string
	Err  error
}

func (e *ErrEngineUnavailable) Error() string {
	return fmt.Sprintf("engine unavailable at %s: %v", e.Path, e.Err)
}

func (e *ErrEngineUnavailable) Unwrap() error {
	return e.Err
}
