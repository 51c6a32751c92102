package eli5

import (
	"strings"
	"testing"
)

func TestFormatSingleFeature(t *testing.T) {
	got := FormatFeature(SingleFeature{Name: "good"}, 1.0, 1.0)
	expected := `<span style="background-color: hsl(120, 100.00%, 60.00%)">good</span>`
	if got != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestFormatFeatureEscapes(t *testing.T) {
	got := FormatFeature(SingleFeature{Name: `<b>&"'`}, -1.0, 1.0)
	if strings.Contains(got, "<b>") {
		t.Errorf("feature name leaked unescaped markup:\n%s", got)
	}
	for _, escaped := range []string{"&lt;b&gt;", "&amp;", "&#34;", "&#39;"} {
		if !strings.Contains(got, escaped) {
			t.Errorf("expected %q in output:\n%s", escaped, got)
		}
	}
}

func TestFormatFeatureSpaceRuns(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		expected string
		desc     string
	}{
		{
			name:   "a b",
			weight: -1.0,
			expected: `<span style="background-color: hsl(0, 100.00%, 60.00%)">` +
				`a<span style="background-color: hsl(0, 80%, 70%); margin: 0 0.1em 0 0.1em" title="A space symbol">&emsp;</span>b` +
				`</span>`,
			desc: "Single middle space keeps both margins",
		},
		{
			name:   "   x",
			weight: 1.0,
			expected: `<span style="background-color: hsl(120, 100.00%, 60.00%)">` +
				`<span style="background-color: hsl(120, 80%, 70%); margin: 0 0.1em 0 0" title="3 space symbols">&emsp;&emsp;&emsp;</span>x` +
				`</span>`,
			desc: "Leading run drops the left margin",
		},
		{
			name:   "x  ",
			weight: 1.0,
			expected: `<span style="background-color: hsl(120, 100.00%, 60.00%)">` +
				`x<span style="background-color: hsl(120, 80%, 70%); margin: 0 0 0 0.1em" title="2 space symbols">&emsp;&emsp;</span>` +
				`</span>`,
			desc: "Trailing run drops the right margin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := FormatFeature(SingleFeature{Name: tt.name}, tt.weight, 1.0)
			if got != tt.expected {
				t.Errorf("got:\n%s\nexpected:\n%s", got, tt.expected)
			}
		})
	}
}

func TestFormatCandidateList(t *testing.T) {
	t.Run("Single candidate has no ellipsis", func(t *testing.T) {
		f := CandidateList{Candidates: []Candidate{{Name: "tok", Sign: 1}}}
		got := FormatFeature(f, 1.0, 1.0)
		if strings.Contains(got, "&hellip;") {
			t.Errorf("unexpected ellipsis:\n%s", got)
		}
		if !strings.Contains(got, ">tok</span>") {
			t.Errorf("first candidate not rendered:\n%s", got)
		}
	})

	t.Run("Remaining candidates go to the tooltip", func(t *testing.T) {
		f := CandidateList{Candidates: []Candidate{
			{Name: "one", Sign: 1},
			{Name: "two", Sign: -1},
			{Name: "three", Sign: 1},
		}}
		got := FormatFeature(f, 1.0, 1.0)
		if !strings.HasSuffix(got, ` <span title="(-)two`+"\n"+`three">&hellip;</span>`) {
			t.Errorf("tooltip should list the remaining candidates newline-joined:\n%s", got)
		}
		if !strings.Contains(got, ">one</span>") {
			t.Errorf("first candidate not rendered inline:\n%s", got)
		}
	})

	t.Run("Negative sign on the first candidate", func(t *testing.T) {
		f := CandidateList{Candidates: []Candidate{{Name: "one", Sign: -1}}}
		got := FormatFeature(f, 1.0, 1.0)
		if !strings.HasPrefix(got, "(-)<span") {
			t.Errorf("expected a leading (-) marker:\n%s", got)
		}
	})

	t.Run("Tooltip candidates are escaped", func(t *testing.T) {
		f := CandidateList{Candidates: []Candidate{
			{Name: "one", Sign: 1},
			{Name: "<script>", Sign: 1},
		}}
		got := FormatFeature(f, 1.0, 1.0)
		if strings.Contains(got, "<script>") {
			t.Errorf("tooltip leaked unescaped markup:\n%s", got)
		}
	})

	t.Run("Empty candidate list renders nothing", func(t *testing.T) {
		if got := FormatFeature(CandidateList{}, 1.0, 1.0); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestFeatureWeightRange(t *testing.T) {
	tests := []struct {
		fws      []FeatureWeight
		expected float64
		desc     string
	}{
		{nil, 0, "Empty list"},
		{[]FeatureWeight{{SingleFeature{"a"}, 0.5}, {SingleFeature{"b"}, -2.0}}, 2.0, "Max absolute weight"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := featureWeightRange(tt.fws); got != tt.expected {
				t.Errorf("featureWeightRange = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTargetWeightRange(t *testing.T) {
	tw := &TargetWeights{
		Pos: []FeatureWeight{{SingleFeature{"a"}, 1.0}},
		Neg: []FeatureWeight{{SingleFeature{"b"}, -3.0}},
	}
	if got := targetWeightRange(tw); got != 3.0 {
		t.Errorf("targetWeightRange = %v, expected 3.0", got)
	}
	if got := targetWeightRange(nil); got != 0 {
		t.Errorf("targetWeightRange(nil) = %v, expected 0", got)
	}
}
