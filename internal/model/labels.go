package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadLabels reads a label file with one label per line.
func LoadLabels(path string) (LabelSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceLoad, "open labels %s: %v", path, err)
	}
	defer f.Close()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, errors.Wrapf(err, "labels %s", path)
	}
	return labels, nil
}

// ReadLabels parses labels from r. Line order defines the label index, so
// blank lines in the middle are kept; trailing blank lines are dropped.
func ReadLabels(r io.Reader) (LabelSet, error) {
	var labels LabelSet
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		labels = append(labels, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrResourceLoad, "read labels: %v", err)
	}

	for len(labels) > 0 && strings.TrimSpace(labels[len(labels)-1]) == "" {
		labels = labels[:len(labels)-1]
	}
	if len(labels) == 0 {
		return nil, errors.Wrap(ErrResourceLoad, "no labels found")
	}
	return labels, nil
}
