// Package presenter renders classification results as user-facing text.
package presenter

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/Brownie44l1/moodscan/internal/model"
)

// ErrRankOutOfRange is returned when the requested rank has no entry.
var ErrRankOutOfRange = errors.New("rank out of range")

// FormatConfidence renders c as a whole percentage, rounding half away from
// zero.
func FormatConfidence(c float32) string {
	return fmt.Sprintf("%.0f%%", math.Round(float64(c)*100))
}

// FormatResult renders the entry at rank.
func FormatResult(ranked model.RankedResult, rank int) (string, error) {
	if rank < 0 || rank >= len(ranked) {
		return "", errors.Wrapf(ErrRankOutOfRange, "rank %d of %d results", rank, len(ranked))
	}
	p := ranked[rank]
	return fmt.Sprintf("You seem %s with probability of %s", p.Label, FormatConfidence(p.Confidence)), nil
}

// Summary renders every ranked entry as "label: pct".
func Summary(ranked model.RankedResult) []string {
	lines := make([]string, len(ranked))
	for i, p := range ranked {
		lines[i] = fmt.Sprintf("%s: %s", p.Label, FormatConfidence(p.Confidence))
	}
	return lines
}
