package tflite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/moodscan/internal/model"
)

func TestLoadMissingModel(t *testing.T) {
	l := &Loader{Threads: 2}
	_, err := l.Load(filepath.Join(t.TempDir(), "emotions.tflite"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResourceLoad)
}
