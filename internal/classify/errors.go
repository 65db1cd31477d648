package classify

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/model"
	"github.com/Brownie44l1/moodscan/internal/preprocess"
	"github.com/Brownie44l1/moodscan/internal/presenter"
)

// Stage names the step of a classification request that failed.
type Stage string

const (
	StageLoad       Stage = "load"
	StageDecode     Stage = "decode"
	StagePreprocess Stage = "preprocess"
	StageInference  Stage = "inference"
	StageSelect     Stage = "select"
	StagePresent    Stage = "present"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindResourceLoad
	KindShapeMismatch
	KindBufferOverflow
	KindImageDecode
	KindInference
	KindRankOutOfRange
	KindInvalidGeometry
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindResourceLoad:    "resource load failure",
	KindShapeMismatch:   "shape mismatch",
	KindBufferOverflow:  "buffer overflow",
	KindImageDecode:     "image decode failure",
	KindInference:       "inference failure",
	KindRankOutOfRange:  "rank out of range",
	KindInvalidGeometry: "invalid geometry",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Error is the single error a classification request surfaces.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind maps the wrapped error onto the failure taxonomy.
func (e *Error) Kind() Kind {
	switch {
	case errors.Is(e.Err, model.ErrResourceLoad):
		return KindResourceLoad
	case errors.Is(e.Err, model.ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(e.Err, preprocess.ErrBufferOverflow):
		return KindBufferOverflow
	case errors.Is(e.Err, preprocess.ErrImageDecode):
		return KindImageDecode
	case errors.Is(e.Err, model.ErrInference):
		return KindInference
	case errors.Is(e.Err, presenter.ErrRankOutOfRange):
		return KindRankOutOfRange
	case errors.Is(e.Err, preprocess.ErrInvalidGeometry):
		return KindInvalidGeometry
	}
	return KindUnknown
}

func fail(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}

var errNilImage = errors.Wrap(preprocess.ErrImageDecode, "nil image")

var errClosed = errors.Wrap(model.ErrResourceLoad, "classifier is closed")
