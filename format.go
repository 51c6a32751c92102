package eli5

import (
	"fmt"
	"strings"
)

// A Field names one renderable part of an Explanation. Rendering copies
// only the requested fields into a fresh projection, so the caller's
// Explanation is never mutated.
type Field int

const (
	FieldEstimator Field = iota
	FieldError
	FieldMethod
	FieldDescription
	FieldTargets
	FieldFeatureImportances
)

// AllFields lists every renderable field, in render order.
var AllFields = []Field{
	FieldEstimator,
	FieldError,
	FieldMethod,
	FieldDescription,
	FieldTargets,
	FieldFeatureImportances,
}

// A FormatOpt represents a setting that changes how FormatAsHTML renders
// an explanation.
//
// For example, it might suppress the shared style block:
//
//	html, err := eli5.FormatAsHTML(expl, eli5.WithStyles(false))
type FormatOpt func(cfg *formatConfig)

type formatConfig struct {
	fields        map[Field]bool
	forceWeights  bool
	includeStyles bool
}

// WithFields restricts rendering to the given fields. The default is
// AllFields.
func WithFields(fields ...Field) FormatOpt {
	return func(cfg *formatConfig) {
		cfg.fields = make(map[Field]bool, len(fields))
		for _, f := range fields {
			cfg.fields[f] = true
		}
	}
}

// WithForceWeights controls whether a target's weight table is rendered
// even when the target also carries an inline highlighted document. The
// default is true.
func WithForceWeights(force bool) FormatOpt {
	return func(cfg *formatConfig) {
		cfg.forceWeights = force
	}
}

// WithStyles controls whether the shared <style> block is included in
// the output. Pass false and render FormatHTMLStyles once per page when
// embedding several explanations. The default is true.
func WithStyles(include bool) FormatOpt {
	return func(cfg *formatConfig) {
		cfg.includeStyles = include
	}
}

// FormatAsHTML renders an explanation as a single HTML-safe string.
// Most styles are inline; the rest come from a shared <style> block that
// WithStyles(false) omits.
func FormatAsHTML(expl Explanation, opts ...FormatOpt) (string, error) {
	cfg := formatConfig{
		fields:        fieldSet(AllFields),
		forceWeights:  true,
		includeStyles: true,
	}
	for _, applyOpt := range opts {
		applyOpt(&cfg)
	}
	shown := project(expl, cfg.fields)

	var b strings.Builder
	if cfg.includeStyles {
		b.WriteString(FormatHTMLStyles())
	}
	if shown.Estimator != "" {
		fmt.Fprintf(&b, "<p><b>%s</b></p>", htmlEscape(shown.Estimator))
	}
	if shown.Error != "" {
		fmt.Fprintf(&b, `<p style="color: red;">%s</p>`, htmlEscape(shown.Error))
	}
	if shown.Method != "" {
		fmt.Fprintf(&b, "<p>Explained as: %s</p>", htmlEscape(shown.Method))
	}
	if shown.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", htmlEscape(shown.Description))
	}
	for _, target := range shown.Targets {
		if err := writeTarget(&b, target, cfg.forceWeights); err != nil {
			return "", err
		}
	}
	if len(shown.FeatureImportances) > 0 {
		writeWeightTable(&b, shown.FeatureImportances,
			featureWeightRange(shown.FeatureImportances))
	}
	return b.String(), nil
}

// FormatHTMLStyles returns just the shared <style> block, for use with
// FormatAsHTML(expl, WithStyles(false)).
func FormatHTMLStyles() string {
	return `<style>
  table.eli5-weights tr:hover {
    filter: brightness(85%);
  }
</style>`
}

func fieldSet(fields []Field) map[Field]bool {
	set := make(map[Field]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// project copies only the requested fields into a fresh Explanation.
// Unrequested fields stay zero; the input is read, never written.
func project(expl Explanation, fields map[Field]bool) Explanation {
	var out Explanation
	if fields[FieldEstimator] {
		out.Estimator = expl.Estimator
	}
	if fields[FieldError] {
		out.Error = expl.Error
	}
	if fields[FieldMethod] {
		out.Method = expl.Method
	}
	if fields[FieldDescription] {
		out.Description = expl.Description
	}
	if fields[FieldTargets] {
		out.Targets = expl.Targets
	}
	if fields[FieldFeatureImportances] {
		out.FeatureImportances = expl.FeatureImportances
	}
	return out
}

func writeTarget(b *strings.Builder, target TargetExplanation, forceWeights bool) error {
	header := "y=" + target.Target
	var meta []string
	if target.Proba != nil {
		meta = append(meta, fmt.Sprintf("probability=%.3f", *target.Proba))
	}
	if target.Score != nil {
		meta = append(meta, fmt.Sprintf("score=%.3f", *target.Score))
	}
	if len(meta) > 0 {
		header += " (" + strings.Join(meta, ", ") + ")"
	}
	fmt.Fprintf(b, "<p><b>%s</b></p>", htmlEscape(header))

	if target.WeightedSpans != nil {
		doc, err := RenderWeightedSpans(*target.WeightedSpans)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "<p>%s</p>", doc)
	}
	if target.Weights != nil && (forceWeights || target.WeightedSpans == nil) {
		rows := make([]FeatureWeight, 0, len(target.Weights.Pos)+len(target.Weights.Neg))
		rows = append(rows, target.Weights.Pos...)
		rows = append(rows, target.Weights.Neg...)
		writeWeightTable(b, rows, targetWeightRange(target.Weights))
	}
	return nil
}

// writeWeightTable emits a minimal two-column table: the weight to three
// decimals and the formatted feature, each row shaded with the dim color
// variant scaled against the list's own weight range.
func writeWeightTable(b *strings.Builder, rows []FeatureWeight, weightRange float64) {
	b.WriteString(`<table class="eli5-weights" style="border-collapse: collapse; border: none;">`)
	for _, row := range rows {
		fmt.Fprintf(b,
			`<tr style="border: none; background-color: %s;">`+
				`<td style="padding: 0 1em 0 0.5em; text-align: right; border: none;">%+.3f</td>`+
				`<td style="padding: 0 0.5em 0 0.5em; text-align: left; border: none;">%s</td>`+
				`</tr>`,
			weightColor(row.Weight, weightRange, dimLightness),
			row.Weight,
			FormatFeature(row.Feature, row.Weight, weightRange))
	}
	b.WriteString(`</table>`)
}
