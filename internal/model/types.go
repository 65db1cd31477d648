package model

// InputWidth, InputHeight and InputChannels describe the pixel buffer the
// bundled emotion model expects.
const (
	InputWidth    = 224
	InputHeight   = 224
	InputChannels = 3

	// InputSize is the byte length of one model input.
	InputSize = InputWidth * InputHeight * InputChannels
)

// LabelSet is the ordered list of class names. A label's index is the index
// of its score in the model output.
type LabelSet []string

// Len returns the number of labels.
func (l LabelSet) Len() int {
	return len(l)
}

// Clone returns a copy so callers can't mutate a loaded set.
func (l LabelSet) Clone() LabelSet {
	out := make(LabelSet, len(l))
	copy(out, l)
	return out
}

// ScoreArray holds one quantized confidence byte per label.
type ScoreArray []byte

// Confidence maps a raw output byte onto [0, 1].
func Confidence(b byte) float32 {
	return float32(b) / 255.0
}

// Prediction is a single label with its confidence.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float32 `json:"confidence"`
}

// RankedResult is sorted by descending confidence. Order among equal
// confidences is not stable.
type RankedResult []Prediction

// Labels returns the labels in rank order.
func (r RankedResult) Labels() []string {
	out := make([]string, len(r))
	for i, p := range r {
		out[i] = p.Label
	}
	return out
}
