package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/moodscan/internal/model"
)

var ranked = model.RankedResult{
	{Label: "happy", Confidence: 1.0},
	{Label: "sad", Confidence: model.Confidence(128)},
	{Label: "calm", Confidence: 0.2},
}

func TestFormatResult(t *testing.T) {
	msg, err := FormatResult(ranked, 0)
	require.NoError(t, err)
	assert.Equal(t, "You seem happy with probability of 100%", msg)

	msg, err = FormatResult(ranked, 1)
	require.NoError(t, err)
	assert.Equal(t, "You seem sad with probability of 50%", msg)
}

func TestFormatResultOutOfRange(t *testing.T) {
	for _, rank := range []int{-1, 3} {
		_, err := FormatResult(ranked, rank)
		assert.ErrorIs(t, err, ErrRankOutOfRange)
	}

	_, err := FormatResult(model.RankedResult{}, 0)
	assert.ErrorIs(t, err, ErrRankOutOfRange)
}

func TestFormatConfidence(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0%"},
		{0.004, "0%"},
		{0.125, "13%"},
		{0.502, "50%"},
		{0.995, "100%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatConfidence(tt.in), "%v", tt.in)
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, []string{"happy: 100%", "sad: 50%", "calm: 20%"}, Summary(ranked))
	assert.Empty(t, Summary(nil))
}
