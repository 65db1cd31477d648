// Package onnx runs quantized classifiers through ONNX Runtime.
package onnx

import (
	"os"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/Brownie44l1/moodscan/internal/log"
	"github.com/Brownie44l1/moodscan/internal/model"
)

// Options configures the ONNX Runtime session.
type Options struct {
	// SharedLibraryPath points at libonnxruntime. Empty uses the engine default.
	SharedLibraryPath string
	// InputName and OutputName are the graph tensor names.
	InputName  string
	OutputName string
	// Classes is the number of scores the model emits.
	Classes int
	// Threads caps intra-op parallelism. Zero leaves the engine default.
	Threads int
}

// Loader opens .onnx models.
type Loader struct {
	Options Options
}

// NewLoader returns a loader for a model with the given number of classes.
func NewLoader(classes int, opts Options) *Loader {
	if opts.InputName == "" {
		opts.InputName = "input"
	}
	if opts.OutputName == "" {
		opts.OutputName = "output"
	}
	opts.Classes = classes
	return &Loader{Options: opts}
}

// Session owns the ONNX session and its bound tensors.
type Session struct {
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[uint8]
	outputTensor *ort.Tensor[uint8]
}

// Load initializes the runtime and binds uint8 tensors of shape
// [1, 224, 224, 3] and [1, Classes].
func (l *Loader) Load(modelPath string) (model.Interpreter, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, errors.Wrapf(model.ErrResourceLoad, "model %s: %v", modelPath, err)
	}
	if l.Options.Classes <= 0 {
		return nil, errors.Wrapf(model.ErrShapeMismatch, "onnx model needs a positive class count, got %d", l.Options.Classes)
	}

	if l.Options.SharedLibraryPath != "" {
		ort.SetSharedLibraryPath(l.Options.SharedLibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, errors.Wrapf(model.ErrResourceLoad, "initialize ONNX environment: %v", err)
	}

	s, err := newSession(modelPath, l.Options)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, err
	}
	log.Printf("onnx: loaded %s (%d classes)", modelPath, l.Options.Classes)
	return s, nil
}

func newSession(modelPath string, opts Options) (*Session, error) {
	inputShape := ort.NewShape(1, model.InputHeight, model.InputWidth, model.InputChannels)
	outputShape := ort.NewShape(1, int64(opts.Classes))

	inputTensor, err := ort.NewEmptyTensor[uint8](inputShape)
	if err != nil {
		return nil, errors.Wrapf(model.ErrResourceLoad, "create input tensor: %v", err)
	}

	outputTensor, err := ort.NewEmptyTensor[uint8](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, errors.Wrapf(model.ErrResourceLoad, "create output tensor: %v", err)
	}

	var sessionOptions *ort.SessionOptions
	if opts.Threads > 0 {
		sessionOptions, err = ort.NewSessionOptions()
		if err != nil {
			inputTensor.Destroy()
			outputTensor.Destroy()
			return nil, errors.Wrapf(model.ErrResourceLoad, "create session options: %v", err)
		}
		defer sessionOptions.Destroy()
		if err := sessionOptions.SetIntraOpNumThreads(opts.Threads); err != nil {
			inputTensor.Destroy()
			outputTensor.Destroy()
			return nil, errors.Wrapf(model.ErrResourceLoad, "set threads: %v", err)
		}
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{opts.InputName}, []string{opts.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		sessionOptions)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, errors.Wrapf(model.ErrResourceLoad, "create ONNX session: %v", err)
	}

	return &Session{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Run copies input into the bound tensor and evaluates the graph.
func (s *Session) Run(input []byte) (model.ScoreArray, error) {
	data := s.inputTensor.GetData()
	if len(input) != len(data) {
		return nil, errors.Wrapf(model.ErrShapeMismatch, "input is %d bytes, model wants %d", len(input), len(data))
	}
	copy(data, input)

	if err := s.session.Run(); err != nil {
		return nil, errors.Wrapf(model.ErrInference, "onnx: %v", err)
	}

	out := s.outputTensor.GetData()
	scores := make(model.ScoreArray, len(out))
	copy(scores, out)
	return scores, nil
}

// OutputSize returns the number of classes.
func (s *Session) OutputSize() int {
	return len(s.outputTensor.GetData())
}

// Close destroys the session, its tensors and the runtime environment.
func (s *Session) Close() error {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
		s.inputTensor = nil
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
		s.outputTensor = nil
	}
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
	return ort.DestroyEnvironment()
}
