package eli5

import (
	"fmt"
	"math"
)

// Categorical hues: green marks weights supporting the prediction, red
// marks weights opposing it. Magnitude is carried by lightness and
// opacity, never by hue.
const (
	huePositive = 120
	hueNegative = 0
)

// Lightness floors for the two color variants. The dim variant shades
// whole table rows; the vivid variant backs individual highlighted
// tokens.
const (
	dimLightness   = 0.8
	vividLightness = 0.6
)

// minOpacity keeps even zero-weight text readable.
const minOpacity = 0.8

func hue(weight float64) int {
	if weight > 0 {
		return huePositive
	}
	return hueNegative
}

// relativeWeight returns |weight| normalized to [0, 1]. A zero range
// means every weight is negligible, so the relative weight is zero by
// definition rather than a division by zero.
func relativeWeight(weight, weightRange float64) float64 {
	if weightRange == 0 {
		return 0
	}
	return math.Abs(weight) / weightRange
}

// weightColor returns the css color for a weight, where the maximum
// absolute weight is given by weightRange. The 0.7 exponent keeps small
// and medium weights visible.
func weightColor(weight, weightRange, minLightness float64) string {
	rel := math.Pow(relativeWeight(weight, weightRange), 0.7)
	lightness := 1 - (1-minLightness)*rel
	return fmt.Sprintf("hsl(%d, %.2f%%, %.2f%%)", hue(weight), 100.0, lightness*100)
}

// weightOpacity returns the opacity for a weight as a css value.
func weightOpacity(weight, weightRange float64) string {
	rel := relativeWeight(weight, weightRange)
	return fmt.Sprintf("%.2f", minOpacity+(1-minOpacity)*rel)
}
