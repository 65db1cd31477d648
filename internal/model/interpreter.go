package model

import (
	"github.com/pkg/errors"
)

// Interpreter evaluates a loaded model. Implementations wrap an inference
// engine; nothing in this module performs inference itself.
type Interpreter interface {
	// Run evaluates input and returns one score per output class.
	Run(input []byte) (ScoreArray, error)
	// OutputSize is the number of scores Run returns.
	OutputSize() int
	// Close releases the engine resources.
	Close() error
}

// Loader opens a model artifact.
type Loader interface {
	Load(path string) (Interpreter, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (Interpreter, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (Interpreter, error) {
	return f(path)
}

// CheckShape reports whether the interpreter's output lines up with labels.
func CheckShape(interp Interpreter, labels LabelSet) error {
	if n := interp.OutputSize(); n != len(labels) {
		return errors.Wrapf(ErrShapeMismatch, "model outputs %d scores, %d labels loaded", n, len(labels))
	}
	return nil
}

// Invoke runs the interpreter and checks one score came back per label.
func Invoke(interp Interpreter, labels LabelSet, input []byte) (ScoreArray, error) {
	scores, err := interp.Run(input)
	if err != nil {
		if errors.Is(err, ErrShapeMismatch) || errors.Is(err, ErrInference) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrInference, "%v", err)
	}
	if len(scores) != len(labels) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d scores for %d labels", len(scores), len(labels))
	}
	return scores, nil
}
