package colour

// FallbackAccent is the accent used when no dominant colours could be
// extracted from the source image.
var FallbackAccent = RGB{R: 0xc4, G: 0x1e, B: 0x3a} // #c41e3a

// Accent scoring weights. Saturated colours at moderate lightness make
// the best accents; near-greys are suppressed regardless of lightness.
const (
	lightSweetSpotLow  = 25.0
	lightSweetSpotHigh = 60.0
	lightExtremeLow    = 15.0
	lightExtremeHigh   = 85.0
	greySaturationMin  = 20.0
)

// ScoreAccent scores a colour for accent suitability in [0, 1].
// Higher scores make better accents.
func ScoreAccent(c RGB) float64 {
	_, s, l := c.ToHSL()

	satScore := s / 100.0

	// Three-tier lightness step: full score in the sweet spot, near-zero
	// at the extremes.
	var lightScore float64
	switch {
	case l < lightExtremeLow || l > lightExtremeHigh:
		lightScore = 0.1
	case l >= lightSweetSpotLow && l <= lightSweetSpotHigh:
		lightScore = 1.0
	default:
		lightScore = 0.5
	}

	greyPenalty := 0.1
	if s > greySaturationMin {
		greyPenalty = 1.0
	}

	return satScore * lightScore * greyPenalty
}

// PickAccent selects the best accent from a list of candidate colours.
// Score ties keep the first-encountered candidate. An empty list yields
// FallbackAccent.
func PickAccent(colours []RGB) RGB {
	if len(colours) == 0 {
		return FallbackAccent
	}

	best := colours[0]
	bestScore := ScoreAccent(best)
	for _, c := range colours[1:] {
		if score := ScoreAccent(c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}
