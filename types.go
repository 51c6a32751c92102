package eli5

// A SpanRange is a half-open [Start, End) range of document positions.
// Positions count characters (runes), not bytes.
type SpanRange struct {
	Start int
	End   int
}

// A WeightedSpan ties one feature's signed contribution weight to the
// document positions it covers. A single feature may contribute through
// several disjoint ranges.
type WeightedSpan struct {
	Feature string      // The feature's identifier.
	Ranges  []SpanRange // Covered positions, relative to Document.
	Weight  float64     // Signed contribution weight.
}

// WeightedSpans holds everything needed to highlight one document:
// the text itself, the located feature contributions, and the weights of
// features whose location in the document is unknown.
type WeightedSpans struct {
	Document string
	Spans    []WeightedSpan
	NotFound map[string]float64 // feature id -> weight, location unknown
}

// A Feature identifies one model feature for display. It is either a
// SingleFeature or a CandidateList; the distinction is decided when the
// explanation is built, never inferred from runtime shape.
type Feature interface {
	feature()
}

// A SingleFeature is a plain, unambiguous feature name.
type SingleFeature struct {
	Name string
}

func (SingleFeature) feature() {}

// A Candidate is one possible source name of an ambiguous feature.
type Candidate struct {
	Name string
	Sign int // +1 or -1; a negative sign flips the displayed polarity
}

// A CandidateList is an ambiguous feature reconstructed from colliding
// hash buckets. The first candidate is the most probable; the rest are
// shown only in a tooltip.
type CandidateList struct {
	Candidates []Candidate
}

func (CandidateList) feature() {}

// A FeatureWeight is one row of a feature-importance or target-weights
// list.
type FeatureWeight struct {
	Feature Feature
	Weight  float64
}

// TargetWeights holds the positive and negative feature weights of one
// explained target, in the order the upstream explainer produced them.
type TargetWeights struct {
	Pos []FeatureWeight
	Neg []FeatureWeight
}

// A TargetExplanation describes the explanation for a single target
// (class or output) of the estimator. Proba and Score are optional.
type TargetExplanation struct {
	Target        string
	Weights       *TargetWeights
	WeightedSpans *WeightedSpans
	Proba         *float64
	Score         *float64
}

// An Explanation is the renderable result of explaining an estimator or
// a single prediction. Every field is optional; rendering is gated per
// field and absent fields produce no output.
type Explanation struct {
	Estimator   string
	Method      string
	Description string
	Error       string
	Targets     []TargetExplanation

	FeatureImportances []FeatureWeight
}
