package eli5

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// FormatFeature renders one feature name as escaped, space-visualized
// markup colored from its weight. weightRange is the largest absolute
// weight of the list the feature appears in, not the document's range.
//
// A CandidateList shows only its most probable candidate inline; the
// remaining candidates go into the tooltip of a trailing ellipsis.
func FormatFeature(f Feature, weight, weightRange float64) string {
	switch f := f.(type) {
	case SingleFeature:
		return formatSingleFeature(f.Name, weight, weightRange)
	case CandidateList:
		return formatCandidateList(f, weight, weightRange)
	}
	return ""
}

// featureWeightRange returns the normalization range for one feature
// list: the largest absolute weight in it, or 0 for an empty list.
func featureWeightRange(fws []FeatureWeight) float64 {
	r := 0.0
	for _, fw := range fws {
		if abs := math.Abs(fw.Weight); abs > r {
			r = abs
		}
	}
	return r
}

// targetWeightRange returns the normalization range across both weight
// lists of one target table.
func targetWeightRange(tw *TargetWeights) float64 {
	if tw == nil {
		return 0
	}
	r := featureWeightRange(tw.Pos)
	if neg := featureWeightRange(tw.Neg); neg > r {
		r = neg
	}
	return r
}

func formatCandidateList(list CandidateList, weight, weightRange float64) string {
	if len(list.Candidates) == 0 {
		return ""
	}
	first, rest := list.Candidates[0], list.Candidates[1:]
	out := formatSigned(first, func(name string) string {
		return formatSingleFeature(name, weight, weightRange)
	})
	if len(rest) > 0 {
		titles := make([]string, len(rest))
		for i, c := range rest {
			titles[i] = htmlEscape(formatSigned(c, nil))
		}
		out += fmt.Sprintf(` <span title="%s">&hellip;</span>`, strings.Join(titles, "\n"))
	}
	return out
}

// formatSigned prefixes a (-) marker for negative-sign candidates. The
// prefix stays outside whatever markup the formatter wraps the name in.
func formatSigned(c Candidate, formatter func(string) string) string {
	prefix := ""
	if c.Sign < 0 {
		prefix = "(-)"
	}
	name := c.Name
	if formatter != nil {
		name = formatter(name)
	}
	return prefix + name
}

func formatSingleFeature(name string, weight, weightRange float64) string {
	visualized := replaceSpaces(htmlEscape(name), func(n int, side spaceSide) string {
		return spacerSpan(n, side, weight)
	})
	return fmt.Sprintf(`<span style="background-color: %s">%s</span>`,
		weightColor(weight, weightRange, vividLightness), visualized)
}

// spacerSpan renders a run of n literal spaces as fixed-width glyphs in
// their own colored span, so leading, trailing and repeated spaces in
// feature names stay visible. Margins are dropped on the outer side of
// leading and trailing runs.
func spacerSpan(n int, side spaceSide, weight float64) string {
	const m = "0.1em"
	right, left := m, m
	switch side {
	case sideLeading:
		left = "0"
	case sideTrailing:
		right = "0"
	}
	title := "A space symbol"
	if n > 1 {
		title = fmt.Sprintf("%d space symbols", n)
	}
	return fmt.Sprintf(`<span style="background-color: hsl(%d, 80%%, 70%%); margin: 0 %s 0 %s" title="%s">%s</span>`,
		hue(weight), right, left, title, strings.Repeat("&emsp;", n))
}

type spaceSide int

const (
	sideLeading spaceSide = iota
	sideTrailing
	sideMiddle
)

var spaceRun = regexp.MustCompile(" +")

// replaceSpaces substitutes every maximal run of space characters via
// replacer, telling it where in the text the run sits. A run spanning
// the whole text counts as leading.
func replaceSpaces(s string, replacer func(n int, side spaceSide) string) string {
	matches := spaceRun.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		side := sideMiddle
		switch {
		case m[0] == 0:
			side = sideLeading
		case m[1] == len(s):
			side = sideTrailing
		}
		b.WriteString(replacer(m[1]-m[0], side))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
