package model

import (
	"container/heap"

	"github.com/pkg/errors"
)

// predictionHeap is a min-heap on confidence.
type predictionHeap []Prediction

func (h predictionHeap) Len() int           { return len(h) }
func (h predictionHeap) Less(i, j int) bool { return h[i].Confidence < h[j].Confidence }
func (h predictionHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *predictionHeap) Push(x interface{}) {
	*h = append(*h, x.(Prediction))
}

func (h *predictionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// SelectTopK returns the k highest scoring labels, best first.
//
// Scores are pushed in label order into a min-heap bounded to k entries; the
// smallest is evicted whenever the heap grows past k. Draining the heap gives
// ascending order, which is then reversed.
func SelectTopK(labels LabelSet, scores ScoreArray, k int) (RankedResult, error) {
	if len(labels) != len(scores) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d labels, %d scores", len(labels), len(scores))
	}
	if k <= 0 || len(labels) == 0 {
		return RankedResult{}, nil
	}

	capacity := k
	if len(labels) < capacity {
		capacity = len(labels)
	}
	h := make(predictionHeap, 0, capacity+1)
	for i, label := range labels {
		heap.Push(&h, Prediction{Label: label, Confidence: Confidence(scores[i])})
		if h.Len() > k {
			heap.Pop(&h)
		}
	}

	ranked := make(RankedResult, h.Len())
	for i := len(ranked) - 1; i >= 0; i-- {
		ranked[i] = heap.Pop(&h).(Prediction)
	}
	return ranked, nil
}
