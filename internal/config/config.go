// Package config resolves moodscan settings from flags and environment.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/preprocess"
)

// Defaults.
const (
	DefaultModelPath  = "models/emotions.tflite"
	DefaultLabelsPath = "models/labels.txt"
	DefaultTopK       = 3
	// DefaultDisplayRank shows the second-best label. That is what the
	// mobile app displayed; product has not confirmed whether rank 0 was
	// intended.
	DefaultDisplayRank = 1
	DefaultResample    = "nearest"
	DefaultThreads     = 1
)

// Backend names.
const (
	BackendTFLite = "tflite"
	BackendONNX   = "onnx"
)

// Config holds everything a run needs.
type Config struct {
	ModelPath   string
	LabelsPath  string
	Backend     string
	Image       string
	TopK        int
	DisplayRank int
	Resample    string
	Threads     int
	ORTLibrary  string
	LogFile     string
	Verbose     bool
}

// Load builds a Config from args, falling back to environment variables and
// then to defaults.
func Load(name string, args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.ModelPath, "model", Env("MOODSCAN_MODEL", DefaultModelPath), "Path to the .tflite or .onnx model")
	fs.StringVar(&cfg.LabelsPath, "labels", Env("MOODSCAN_LABELS", DefaultLabelsPath), "Path to the label file, one label per line")
	fs.StringVar(&cfg.Backend, "backend", Env("MOODSCAN_BACKEND", ""), "Inference backend: tflite or onnx (default: from model extension)")
	fs.StringVar(&cfg.Image, "image", Env("MOODSCAN_IMAGE", ""), "Image path or file:// URI to classify")
	fs.IntVar(&cfg.TopK, "top", EnvInt("MOODSCAN_TOP_K", DefaultTopK), "Number of top labels to keep")
	fs.IntVar(&cfg.DisplayRank, "rank", EnvInt("MOODSCAN_DISPLAY_RANK", DefaultDisplayRank), "Which ranked label to display (0 is the best)")
	fs.StringVar(&cfg.Resample, "resample", Env("MOODSCAN_RESAMPLE", DefaultResample), "Resize interpolation: nearest, bilinear, bicubic, lanczos3")
	fs.IntVar(&cfg.Threads, "threads", EnvInt("MOODSCAN_THREADS", DefaultThreads), "Inference threads")
	fs.StringVar(&cfg.ORTLibrary, "ort-lib", Env("ONNXRUNTIME_SHARED_LIBRARY_PATH", ""), "Path to the onnxruntime shared library")
	fs.StringVar(&cfg.LogFile, "log-file", Env("MOODSCAN_LOG_FILE", ""), "Write logs to this rotated file instead of stderr")
	fs.BoolVar(&cfg.Verbose, "v", EnvBool("MOODSCAN_VERBOSE", false), "Print every ranked label")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Image == "" && fs.NArg() > 0 {
		cfg.Image = fs.Arg(0)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFor(cfg.ModelPath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable together.
func (c *Config) Validate() error {
	switch {
	case c.ModelPath == "":
		return errors.New("model path is required")
	case c.LabelsPath == "":
		return errors.New("labels path is required")
	case c.Image == "":
		return errors.New("image is required")
	case c.TopK < 1:
		return errors.Errorf("top must be at least 1, got %d", c.TopK)
	case c.DisplayRank < 0:
		return errors.Errorf("rank must not be negative, got %d", c.DisplayRank)
	case c.DisplayRank >= c.TopK:
		return errors.Errorf("rank %d is outside the top %d", c.DisplayRank, c.TopK)
	case c.Backend != BackendTFLite && c.Backend != BackendONNX:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if _, err := preprocess.ParseResampler(c.Resample); err != nil {
		return err
	}
	return nil
}

// BackendFor picks a backend from the model file extension.
func BackendFor(modelPath string) string {
	if strings.EqualFold(filepath.Ext(modelPath), ".onnx") {
		return BackendONNX
	}
	return BackendTFLite
}

// Env returns the value of key, or def when it is unset or empty.
func Env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt returns key parsed as an int, or def.
func EnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// EnvBool returns key parsed as a bool, or def.
func EnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
