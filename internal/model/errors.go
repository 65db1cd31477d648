package model

import "github.com/pkg/errors"

var (
	// ErrResourceLoad is returned when the model or label file is missing or
	// unreadable.
	ErrResourceLoad = errors.New("resource load failure")

	// ErrShapeMismatch is returned when the number of scores differs from the
	// number of labels.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInference is returned when the engine fails to evaluate the model.
	ErrInference = errors.New("inference failed")
)
