package eli5

import "testing"

func TestHue(t *testing.T) {
	tests := []struct {
		weight   float64
		expected int
		desc     string
	}{
		{1.0, huePositive, "Positive weight"},
		{1e-6, huePositive, "Tiny positive weight"},
		{-1.0, hueNegative, "Negative weight"},
		{-100.0, hueNegative, "Large negative weight"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := hue(tt.weight); got != tt.expected {
				t.Errorf("hue(%v) = %d, expected %d", tt.weight, got, tt.expected)
			}
		})
	}
}

func TestWeightColor(t *testing.T) {
	tests := []struct {
		weight       float64
		weightRange  float64
		minLightness float64
		expected     string
		desc         string
	}{
		{1.0, 1.0, 0.6, "hsl(120, 100.00%, 60.00%)", "Positive at range limit, vivid"},
		{-2.0, 2.0, 0.8, "hsl(0, 100.00%, 80.00%)", "Negative at range limit, dim"},
		{1.0, 2.0, 0.8, "hsl(120, 100.00%, 87.69%)", "Half weight, sub-linear lightness"},
		{0.5, 0.0, 0.6, "hsl(120, 100.00%, 100.00%)", "Zero range falls back to full lightness"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := weightColor(tt.weight, tt.weightRange, tt.minLightness)
			if got != tt.expected {
				t.Errorf("weightColor(%v, %v, %v) = %q, expected %q",
					tt.weight, tt.weightRange, tt.minLightness, got, tt.expected)
			}
		})
	}
}

func TestWeightOpacity(t *testing.T) {
	tests := []struct {
		weight      float64
		weightRange float64
		expected    string
		desc        string
	}{
		{1.0, 1.0, "1.00", "Full opacity at the range limit"},
		{-1.0, 1.0, "1.00", "Sign does not matter"},
		{0.0, 1.0, "0.80", "Minimum opacity at zero weight"},
		{1.0, 2.0, "0.90", "Linear in relative weight"},
		{0.0, 0.0, "0.80", "Zero range yields minimum opacity"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := weightOpacity(tt.weight, tt.weightRange)
			if got != tt.expected {
				t.Errorf("weightOpacity(%v, %v) = %q, expected %q",
					tt.weight, tt.weightRange, got, tt.expected)
			}
		})
	}
}
