// Package classify runs one photo through the mood classifier: decode,
// resize, pack, infer, rank and format.
package classify

import (
	"image"
	"sync"
	"time"

	"github.com/nfnt/resize"

	"github.com/Brownie44l1/moodscan/internal/log"
	"github.com/Brownie44l1/moodscan/internal/model"
	"github.com/Brownie44l1/moodscan/internal/preprocess"
	"github.com/Brownie44l1/moodscan/internal/presenter"
)

// Config describes the model and how results are ranked and shown.
type Config struct {
	ModelPath  string
	LabelsPath string
	// TopK is how many labels to keep.
	TopK int
	// DisplayRank is the ranked entry rendered in the message. 0 is the best.
	DisplayRank   int
	Interpolation resize.InterpolationFunction
}

// Result is the outcome of one request.
type Result struct {
	Ranked  model.RankedResult
	Message string
	Timings Timings
}

// Timings records how long each stage took.
type Timings struct {
	Decode     time.Duration
	Preprocess time.Duration
	Inference  time.Duration
	Select     time.Duration
}

// Classifier holds a loaded model and label set. Calls are serialized
// because the pixel buffer is reused.
type Classifier struct {
	mu     sync.Mutex
	cfg    Config
	labels model.LabelSet
	interp model.Interpreter
	prep   *preprocess.Preprocessor
}

// New loads labels and the model. Any failure aborts construction and
// releases what was already loaded.
func New(cfg Config, loader model.Loader) (*Classifier, error) {
	labels, err := model.LoadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, fail(StageLoad, err)
	}
	log.Printf("Loaded %d labels from %s", len(labels), cfg.LabelsPath)

	prep, err := preprocess.New(model.InputWidth, model.InputHeight, model.InputChannels, cfg.Interpolation)
	if err != nil {
		return nil, fail(StageLoad, err)
	}

	log.Printf("Loading model from: %s", cfg.ModelPath)
	interp, err := loader.Load(cfg.ModelPath)
	if err != nil {
		return nil, fail(StageLoad, err)
	}
	if err := model.CheckShape(interp, labels); err != nil {
		interp.Close()
		return nil, fail(StageLoad, err)
	}

	return &Classifier{
		cfg:    cfg,
		labels: labels,
		interp: interp,
		prep:   prep,
	}, nil
}

// Labels returns a copy of the loaded label set.
func (c *Classifier) Labels() model.LabelSet {
	return c.labels.Clone()
}

// Classify decodes the image at ref (a path or file:// URI) and classifies it.
func (c *Classifier) Classify(ref string) (*Result, error) {
	start := time.Now()
	img, err := preprocess.Open(ref)
	if err != nil {
		return nil, fail(StageDecode, err)
	}
	decoded := time.Since(start)
	log.Printf("Decoded %s: %dx%d", ref, img.Bounds().Dx(), img.Bounds().Dy())

	res, err := c.ClassifyImage(img)
	if err != nil {
		return nil, err
	}
	res.Timings.Decode = decoded
	return res, nil
}

// ClassifyImage classifies an already decoded image.
func (c *Classifier) ClassifyImage(img image.Image) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interp == nil {
		return nil, fail(StageLoad, errClosed)
	}
	if img == nil {
		return nil, fail(StageDecode, errNilImage)
	}

	var res Result
	start := time.Now()
	buf, err := c.prep.Process(img)
	if err != nil {
		return nil, fail(StagePreprocess, err)
	}
	res.Timings.Preprocess = time.Since(start)

	start = time.Now()
	scores, err := model.Invoke(c.interp, c.labels, buf.Bytes())
	if err != nil {
		return nil, fail(StageInference, err)
	}
	res.Timings.Inference = time.Since(start)

	start = time.Now()
	res.Ranked, err = model.SelectTopK(c.labels, scores, c.cfg.TopK)
	if err != nil {
		return nil, fail(StageSelect, err)
	}
	res.Timings.Select = time.Since(start)

	res.Message, err = presenter.FormatResult(res.Ranked, c.cfg.DisplayRank)
	if err != nil {
		return nil, fail(StagePresent, err)
	}
	log.Printf("Classified in %v: %v", res.Timings.Preprocess+res.Timings.Inference+res.Timings.Select, res.Ranked.Labels())
	return &res, nil
}

// Close releases the model.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interp == nil {
		return nil
	}
	err := c.interp.Close()
	c.interp = nil
	return err
}
