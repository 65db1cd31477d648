package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/classify"
	"github.com/Brownie44l1/moodscan/internal/config"
	"github.com/Brownie44l1/moodscan/internal/log"
	"github.com/Brownie44l1/moodscan/internal/model"
	"github.com/Brownie44l1/moodscan/internal/model/onnx"
	"github.com/Brownie44l1/moodscan/internal/model/tflite"
	"github.com/Brownie44l1/moodscan/internal/preprocess"
	"github.com/Brownie44l1/moodscan/internal/presenter"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: moodscan -model models/emotions.tflite -labels models/labels.txt -image face.jpg")
		os.Exit(2)
	}

	log.ToFile(cfg.LogFile)
	defer log.Close()

	if err := run(cfg); err != nil {
		log.Fatalf("Classification failed: %v", err)
	}
}

func run(cfg *config.Config) error {
	resampler, _ := preprocess.ParseResampler(cfg.Resample)

	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}

	c, err := classify.New(classify.Config{
		ModelPath:     cfg.ModelPath,
		LabelsPath:    cfg.LabelsPath,
		TopK:          cfg.TopK,
		DisplayRank:   cfg.DisplayRank,
		Interpolation: resampler,
	}, loader)
	if err != nil {
		return err
	}
	defer c.Close()

	log.Printf("Backend: %s, labels: %v", cfg.Backend, c.Labels())

	res, err := c.Classify(cfg.Image)
	if err != nil {
		return err
	}

	fmt.Println(res.Message)
	if cfg.Verbose {
		for i, line := range presenter.Summary(res.Ranked) {
			fmt.Printf("  %d. %s\n", i, line)
		}
		t := res.Timings
		fmt.Printf("  decode %v, preprocess %v, inference %v, select %v\n", t.Decode, t.Preprocess, t.Inference, t.Select)
	}
	return nil
}

func newLoader(cfg *config.Config) (model.Loader, error) {
	switch cfg.Backend {
	case config.BackendONNX:
		// The output tensor is bound up front, so the class count comes
		// from the label file.
		labels, err := model.LoadLabels(cfg.LabelsPath)
		if err != nil {
			return nil, &classify.Error{Stage: classify.StageLoad, Err: err}
		}
		return onnx.NewLoader(labels.Len(), onnx.Options{
			SharedLibraryPath: cfg.ORTLibrary,
			Threads:           cfg.Threads,
		}), nil
	default:
		return &tflite.Loader{Threads: cfg.Threads}, nil
	}
}
