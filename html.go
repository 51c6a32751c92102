package eli5

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strings"
)

// RenderWeightedSpans renders the document with per-character highlights
// derived from the weighted spans. Features whose location is unknown
// are rendered first as a space-joined block, followed by a single space
// and then the document itself. Returns an *InvalidSpanError if any span
// range is malformed.
func RenderWeightedSpans(ws WeightedSpans) (string, error) {
	docRunes := []rune(ws.Document)
	charWeights, err := aggregateSpanWeights(len(docRunes), ws.Spans)
	if err != nil {
		return "", err
	}

	notFound := sortedNotFound(ws.NotFound)
	r := weightRange(charWeights, ws.NotFound)

	var b strings.Builder
	if len(notFound) > 0 {
		for i, nf := range notFound {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(colorize(nf.feature, nf.weight, r))
		}
		b.WriteByte(' ')
	}
	for i, c := range docRunes {
		b.WriteString(colorize(string(c), charWeights[i], r))
	}
	return b.String(), nil
}

type notFoundWeight struct {
	feature string
	weight  float64
}

// sortedNotFound filters out negligible not-found weights and orders the
// rest by feature id so output is deterministic.
func sortedNotFound(notFound map[string]float64) []notFoundWeight {
	var out []notFoundWeight
	for feature, weight := range notFound {
		if math.Abs(weight) >= epsilon {
			out = append(out, notFoundWeight{feature, weight})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].feature < out[j].feature })
	return out
}

// colorize wraps an escaped token in a span styled from its weight.
// Negligible weights get opacity only; a background color there would
// just add visual noise.
func colorize(token string, weight, weightRange float64) string {
	token = htmlEscape(token)
	if math.Abs(weight) < epsilon {
		return fmt.Sprintf(`<span style="opacity: %s">%s</span>`,
			weightOpacity(weight, weightRange), token)
	}
	return fmt.Sprintf(`<span style="background-color: %s; opacity: %s" title="%.3f">%s</span>`,
		weightColor(weight, weightRange, vividLightness),
		weightOpacity(weight, weightRange),
		weight, token)
}

// htmlEscape escapes &, <, >, " and '. Every literal on a text-producing
// path goes through it, feature ids and tooltip text included.
func htmlEscape(text string) string {
	return html.EscapeString(text)
}
