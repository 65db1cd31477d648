package onnx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/moodscan/internal/model"
)

func TestNewLoaderDefaults(t *testing.T) {
	l := NewLoader(7, Options{})
	assert.Equal(t, "input", l.Options.InputName)
	assert.Equal(t, "output", l.Options.OutputName)
	assert.Equal(t, 7, l.Options.Classes)
}

func TestLoadMissingModel(t *testing.T) {
	_, err := NewLoader(3, Options{}).Load(filepath.Join(t.TempDir(), "missing.onnx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResourceLoad)
}
