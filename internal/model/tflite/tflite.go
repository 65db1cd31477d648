// Package tflite runs quantized TensorFlow Lite classifiers.
package tflite

import (
	"os"

	"github.com/mattn/go-tflite"
	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/log"
	"github.com/Brownie44l1/moodscan/internal/model"
)

// Loader opens .tflite models.
type Loader struct {
	// Threads is the interpreter thread count. Zero means one.
	Threads int
}

// Interpreter wraps a TFLite interpreter with a uint8 input and output.
type Interpreter struct {
	model       *tflite.Model
	options     *tflite.InterpreterOptions
	interpreter *tflite.Interpreter
	outputSize  int
}

// Load reads the model, allocates tensors and checks the input is a
// 224x224x3 uint8 image and the output a uint8 score vector.
func (l *Loader) Load(path string) (model.Interpreter, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(model.ErrResourceLoad, "model %s: %v", path, err)
	}

	m := tflite.NewModelFromFile(path)
	if m == nil {
		return nil, errors.Wrapf(model.ErrResourceLoad, "cannot load model %s", path)
	}

	threads := l.Threads
	if threads <= 0 {
		threads = 1
	}
	options := tflite.NewInterpreterOptions()
	options.SetNumThread(threads)
	options.SetErrorReporter(func(msg string, _ interface{}) {
		log.Printf("tflite: %s", msg)
	}, nil)

	it := &Interpreter{model: m, options: options}
	it.interpreter = tflite.NewInterpreter(m, options)
	if it.interpreter == nil {
		it.Close()
		return nil, errors.Wrap(model.ErrResourceLoad, "cannot create interpreter")
	}
	if status := it.interpreter.AllocateTensors(); status != tflite.OK {
		it.Close()
		return nil, errors.Wrapf(model.ErrResourceLoad, "allocate tensors: status %v", status)
	}

	if err := it.checkTensors(); err != nil {
		it.Close()
		return nil, err
	}
	log.Printf("tflite: loaded %s (%d classes, %d threads)", path, it.outputSize, threads)
	return it, nil
}

func (it *Interpreter) checkTensors() error {
	input := it.interpreter.GetInputTensor(0)
	if input == nil {
		return errors.Wrap(model.ErrShapeMismatch, "model has no input tensor")
	}
	if input.Type() != tflite.UInt8 {
		return errors.Wrapf(model.ErrShapeMismatch, "input tensor type %v, want uint8", input.Type())
	}
	if n := input.ByteSize(); n != model.InputSize {
		return errors.Wrapf(model.ErrShapeMismatch, "input tensor is %d bytes, want %d", n, model.InputSize)
	}

	output := it.interpreter.GetOutputTensor(0)
	if output == nil {
		return errors.Wrap(model.ErrShapeMismatch, "model has no output tensor")
	}
	if output.Type() != tflite.UInt8 {
		return errors.Wrapf(model.ErrShapeMismatch, "output tensor type %v, want uint8", output.Type())
	}
	it.outputSize = output.Dim(output.NumDims() - 1)
	return nil
}

// Run copies input into the input tensor, invokes the graph and reads back
// one byte per class.
func (it *Interpreter) Run(input []byte) (model.ScoreArray, error) {
	if len(input) != model.InputSize {
		return nil, errors.Wrapf(model.ErrShapeMismatch, "input is %d bytes, model wants %d", len(input), model.InputSize)
	}

	if status := it.interpreter.GetInputTensor(0).CopyFromBuffer(input); status != tflite.OK {
		return nil, errors.Wrapf(model.ErrInference, "copy input: status %v", status)
	}
	if status := it.interpreter.Invoke(); status != tflite.OK {
		return nil, errors.Wrapf(model.ErrInference, "invoke: status %v", status)
	}

	scores := make(model.ScoreArray, it.outputSize)
	if it.outputSize == 0 {
		return scores, nil
	}
	if status := it.interpreter.GetOutputTensor(0).CopyToBuffer(&scores[0]); status != tflite.OK {
		return nil, errors.Wrapf(model.ErrInference, "copy output: status %v", status)
	}
	return scores, nil
}

// OutputSize returns the number of classes.
func (it *Interpreter) OutputSize() int {
	return it.outputSize
}

// Close frees the interpreter, options and model.
func (it *Interpreter) Close() error {
	if it.interpreter != nil {
		it.interpreter.Delete()
		it.interpreter = nil
	}
	if it.options != nil {
		it.options.Delete()
		it.options = nil
	}
	if it.model != nil {
		it.model.Delete()
		it.model = nil
	}
	return nil
}
