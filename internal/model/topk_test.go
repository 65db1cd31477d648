package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTopK(t *testing.T) {
	labels := LabelSet{"calm", "happy", "sad"}
	scores := ScoreArray{51, 255, 128}

	ranked, err := SelectTopK(labels, scores, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "happy", ranked[0].Label)
	assert.InDelta(t, 1.0, ranked[0].Confidence, 1e-6)
	assert.Equal(t, "sad", ranked[1].Label)
	assert.InDelta(t, 0.502, ranked[1].Confidence, 1e-3)
}

func TestSelectTopKFewerLabelsThanK(t *testing.T) {
	ranked, err := SelectTopK(LabelSet{"angry", "neutral"}, ScoreArray{10, 200}, 3)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"neutral", "angry"}, ranked.Labels())
}

func TestSelectTopKEmpty(t *testing.T) {
	ranked, err := SelectTopK(LabelSet{}, ScoreArray{}, 3)
	require.NoError(t, err)
	assert.Empty(t, ranked)

	ranked, err = SelectTopK(nil, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestSelectTopKNonPositiveK(t *testing.T) {
	for _, k := range []int{0, -1} {
		ranked, err := SelectTopK(LabelSet{"a", "b"}, ScoreArray{1, 2}, k)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	}
}

func TestSelectTopKShapeMismatch(t *testing.T) {
	_, err := SelectTopK(LabelSet{"a", "b", "c"}, ScoreArray{1, 2}, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = SelectTopK(LabelSet{"a"}, ScoreArray{1, 2}, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSelectTopKTies(t *testing.T) {
	ranked, err := SelectTopK(LabelSet{"a", "b", "c", "d"}, ScoreArray{9, 200, 200, 3}, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	got := ranked.Labels()
	sort.Strings(got)
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestSelectTopKProperties(t *testing.T) {
	// Deterministic pseudo-random inputs across a range of sizes.
	seed := uint32(7)
	next := func() byte {
		seed = seed*1664525 + 1013904223
		return byte(seed >> 24)
	}

	for n := 0; n <= 40; n += 5 {
		labels := make(LabelSet, n)
		scores := make(ScoreArray, n)
		for i := range labels {
			labels[i] = string(rune('A' + i%26))
			scores[i] = next()
		}

		for _, k := range []int{1, 3, 7, 50} {
			ranked, err := SelectTopK(labels, scores, k)
			require.NoError(t, err)

			want := k
			if n < want {
				want = n
			}
			require.Len(t, ranked, want, "n=%d k=%d", n, k)

			for i, p := range ranked {
				assert.GreaterOrEqual(t, p.Confidence, float32(0))
				assert.LessOrEqual(t, p.Confidence, float32(1))
				if i > 0 {
					assert.GreaterOrEqual(t, ranked[i-1].Confidence, p.Confidence)
				}
			}

			if want > 0 {
				sorted := append(ScoreArray(nil), scores...)
				sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
				assert.Equal(t, Confidence(sorted[0]), ranked[0].Confidence)
				assert.Equal(t, Confidence(sorted[want-1]), ranked[want-1].Confidence)
			}
		}
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, float32(0), Confidence(0))
	assert.Equal(t, float32(1), Confidence(255))
	assert.InDelta(t, 0.2, Confidence(51), 1e-6)
}
