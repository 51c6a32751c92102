package eli5

import (
	"math"
	"strings"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// previewSeparator joins the surviving sentences of a trimmed document.
const previewSeparator = " … "

// TrimInactiveSentences shortens a long document before rendering by
// dropping every sentence that carries no active feature weight. Span
// ranges are remapped into the trimmed coordinate space; a range may be
// split where its sentence's neighbors were dropped. Not-found weights
// pass through unchanged and never keep a sentence alive.
//
// The input is returned as-is when the document does not split into more
// than one sentence, when every sentence is active, or when none is.
func TrimInactiveSentences(ws WeightedSpans) (WeightedSpans, error) {
	docRunes := []rune(ws.Document)
	charWeights, err := aggregateSpanWeights(len(docRunes), ws.Spans)
	if err != nil {
		return WeightedSpans{}, err
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return WeightedSpans{}, err
	}
	sents := tokenizer.Tokenize(ws.Document)
	if len(sents) < 2 {
		return ws, nil
	}

	// Sentence offsets are bytes; spans and weights count runes.
	byteToRune := make(map[int]int, len(ws.Document)+1)
	ri := 0
	for bi := range ws.Document {
		byteToRune[bi] = ri
		ri++
	}
	byteToRune[len(ws.Document)] = ri

	// Each interval runs to the start of the next sentence so that
	// inter-sentence whitespace is never orphaned.
	type interval struct{ start, end int }
	intervals := make([]interval, len(sents))
	for i, s := range sents {
		start := byteToRune[s.Start]
		if i == 0 {
			start = 0
		}
		end := len(docRunes)
		if i+1 < len(sents) {
			end = byteToRune[sents[i+1].Start]
		}
		intervals[i] = interval{start: start, end: end}
	}

	var kept []interval
	for _, iv := range intervals {
		for i := iv.start; i < iv.end; i++ {
			if math.Abs(charWeights[i]) >= epsilon {
				kept = append(kept, iv)
				break
			}
		}
	}
	if len(kept) == 0 || len(kept) == len(intervals) {
		return ws, nil
	}

	sepLen := len([]rune(previewSeparator))
	var b strings.Builder
	newStart := make([]int, len(kept))
	cursor := 0
	for i, iv := range kept {
		if i > 0 {
			b.WriteString(previewSeparator)
			cursor += sepLen
		}
		newStart[i] = cursor
		b.WriteString(string(docRunes[iv.start:iv.end]))
		cursor += iv.end - iv.start
	}

	trimmed := WeightedSpans{Document: b.String(), NotFound: ws.NotFound}
	for _, span := range ws.Spans {
		var ranges []SpanRange
		for _, r := range span.Ranges {
			for i, iv := range kept {
				start := max(r.Start, iv.start)
				end := min(r.End, iv.end)
				if start < end {
					off := newStart[i] - iv.start
					ranges = append(ranges, SpanRange{Start: start + off, End: end + off})
				}
			}
		}
		if len(ranges) > 0 {
			trimmed.Spans = append(trimmed.Spans, WeightedSpan{
				Feature: span.Feature,
				Ranges:  ranges,
				Weight:  span.Weight,
			})
		}
	}
	return trimmed, nil
}
