package model_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/moodscan/internal/model"
	"github.com/Brownie44l1/moodscan/internal/model/modeltest"
)

func TestInvoke(t *testing.T) {
	interp := modeltest.New(1, 2, 3)
	labels := model.LabelSet{"a", "b", "c"}

	scores, err := model.Invoke(interp, labels, []byte{9, 9})
	require.NoError(t, err)
	assert.Equal(t, model.ScoreArray{1, 2, 3}, scores)
	require.Len(t, interp.Inputs, 1)
	assert.Equal(t, []byte{9, 9}, interp.Inputs[0])
}

func TestInvokeShapeMismatch(t *testing.T) {
	_, err := model.Invoke(modeltest.New(1, 2), model.LabelSet{"a", "b", "c"}, nil)
	assert.ErrorIs(t, err, model.ErrShapeMismatch)
}

func TestInvokeEngineError(t *testing.T) {
	interp := modeltest.New(1)
	interp.Err = errors.New("boom")

	_, err := model.Invoke(interp, model.LabelSet{"a"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInference)
	assert.Contains(t, err.Error(), "boom")
}

func TestCheckShape(t *testing.T) {
	assert.NoError(t, model.CheckShape(modeltest.New(1, 2), model.LabelSet{"a", "b"}))
	assert.ErrorIs(t, model.CheckShape(modeltest.New(1), model.LabelSet{"a", "b"}), model.ErrShapeMismatch)
}

func TestLoaderFunc(t *testing.T) {
	want := modeltest.New(4)
	var loader model.Loader = model.LoaderFunc(func(path string) (model.Interpreter, error) {
		assert.Equal(t, "m.tflite", path)
		return want, nil
	})
	got, err := loader.Load("m.tflite")
	require.NoError(t, err)
	assert.Same(t, want, got)
}
