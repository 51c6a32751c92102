package eli5

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// epsilon is the tolerance below which a weight is treated as zero.
const epsilon = 1e-8

// An InvalidSpanError reports a span range that does not satisfy
// 0 <= Start <= End <= document length. Malformed ranges are rejected
// outright: clamping them would misattribute contribution weight.
type InvalidSpanError struct {
	Feature string
	Start   int
	End     int
	DocLen  int
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("eli5: invalid span [%d, %d) for feature %q in document of length %d",
		e.Start, e.End, e.Feature, e.DocLen)
}

// aggregateSpanWeights reduces the weighted spans to one summed weight
// per document position. Overlapping spans add up; a feature contributes
// once per covered position per range.
func aggregateSpanWeights(docLen int, spans []WeightedSpan) ([]float64, error) {
	weights := make([]float64, docLen)
	for _, span := range spans {
		for _, r := range span.Ranges {
			if r.Start < 0 || r.Start > r.End || r.End > docLen {
				return nil, &InvalidSpanError{
					Feature: span.Feature,
					Start:   r.Start,
					End:     r.End,
					DocLen:  docLen,
				}
			}
			floats.AddConst(span.Weight, weights[r.Start:r.End])
		}
	}
	return weights, nil
}

// weightRange returns the normalization denominator for color mapping:
// the largest absolute weight across the aggregated character weights and
// any non-negligible not-found feature weights. Zero is a valid result
// when every contribution is negligible; the color mapping handles it.
func weightRange(charWeights []float64, notFound map[string]float64) float64 {
	r := 0.0
	if len(charWeights) > 0 {
		r = floats.Norm(charWeights, math.Inf(1))
	}
	for _, w := range notFound {
		if abs := math.Abs(w); abs > epsilon && abs > r {
			r = abs
		}
	}
	return r
}
