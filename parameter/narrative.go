package parameter

// Narrative Section (scroll-driven)
const (
	// NarrativeScrollLength is the extra scroll distance in pixels the pinned block consumes
	NarrativeScrollLength = 4000.0

	// NarrativeScrub is the lag in seconds for the playhead to catch up with scroll
	NarrativeScrub = 1.2

	// NarrativeDefaultEase applies to tweens without an explicit ease
	NarrativeDefaultEase = "power2.inOut"

	// NarrativeRadius is how far tokens move outward in the pooling layout (pixels)
	NarrativeRadius = 180.0

	// NarrativeCenterLift shifts the radial center up from the sentence mid-height (pixels)
	NarrativeCenterLift = 20.0

	// NarrativeTokenRise is the starting downward offset of tokens on entry (pixels)
	NarrativeTokenRise = 30.0

	// NarrativeBarCount is the number of vector bars
	NarrativeBarCount = 10
)

// NarrativeSalientBars are the final bar heights of the precise vector
var NarrativeSalientBars = [NarrativeBarCount]float64{0.3, 0.9, 0.2, 0.7, 0.4, 1.0, 0.3, 0.6, 0.2, 0.8}
