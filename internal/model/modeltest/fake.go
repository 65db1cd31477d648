// Package modeltest provides an in-memory interpreter for tests.
package modeltest

import (
	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/model"
)

// Interpreter returns fixed scores and records what it was given.
type Interpreter struct {
	Scores  model.ScoreArray
	Err     error
	Outputs int

	Inputs [][]byte
	Closed bool
}

// New returns an interpreter that always answers with scores.
func New(scores ...byte) *Interpreter {
	return &Interpreter{Scores: scores, Outputs: len(scores)}
}

// Run records a copy of input and returns the configured scores.
func (f *Interpreter) Run(input []byte) (model.ScoreArray, error) {
	if f.Closed {
		return nil, errors.New("interpreter closed")
	}
	in := make([]byte, len(input))
	copy(in, input)
	f.Inputs = append(f.Inputs, in)
	if f.Err != nil {
		return nil, f.Err
	}
	out := make(model.ScoreArray, len(f.Scores))
	copy(out, f.Scores)
	return out, nil
}

// OutputSize returns Outputs.
func (f *Interpreter) OutputSize() int {
	return f.Outputs
}

// Close marks the interpreter closed.
func (f *Interpreter) Close() error {
	f.Closed = true
	return nil
}

// Loader hands out Interp, or fails with Err.
type Loader struct {
	Interp *Interpreter
	Err    error
	Paths  []string
}

// Load records path and returns the configured interpreter.
func (l *Loader) Load(path string) (model.Interpreter, error) {
	l.Paths = append(l.Paths, path)
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Interp, nil
}
