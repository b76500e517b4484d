package parameter

import "time"

// Hero Headline
const (
	// HeroHeadline is the text the particle field converges into
	HeroHeadline = "Your Personal AI Collaborator"

	// HeroParticleCount is the fixed number of simulated particles
	HeroParticleCount = 2500

	// HeroFontFamily is the CSS-style family list resolved against embedded faces
	HeroFontFamily = "Inter, sans-serif"

	// HeroBreakpoint is the minimum viewport width in pixels for the animated hero
	HeroBreakpoint = 640
)

// Glyph Sampling
const (
	// GlyphSampleStride is the raster scan step in pixels on both axes
	GlyphSampleStride = 4

	// GlyphAlphaThreshold keeps a sample when rendered alpha exceeds it (0-255)
	GlyphAlphaThreshold = 128

	// GlyphFontDivisor scales font size to canvas width: size = width / divisor
	GlyphFontDivisor = 12.0

	// GlyphFontSizeMax caps the rendered font size in pixels
	GlyphFontSizeMax = 80.0
)

// Particle Field Integration
const (
	// ParticleAttractionGain scales the pull toward the target per unit attraction
	ParticleAttractionGain = 0.005

	// ParticleChaosGain scales the unit push away from origin per unit chaos
	ParticleChaosGain = 0.1

	// ParticleDamping multiplies velocity each step
	ParticleDamping = 0.95

	// ParticleInitialSpeedSpan is the width of the uniform initial velocity range per axis, centered on zero
	ParticleInitialSpeedSpan = 0.5

	// ParticleRadiusMin/ParticleRadiusSpan give radius in [min, min+span)
	ParticleRadiusMin  = 0.5
	ParticleRadiusSpan = 1.5

	// ParticleAlphaMin/ParticleAlphaSpan give neutral particle alpha in [min, min+span)
	ParticleAlphaMin  = 0.2
	ParticleAlphaSpan = 0.5
)

// Hero Timeline (seconds, relative to the synthesis start)
const (
	HeroTimelineDelay = 500 * time.Millisecond

	HeroSynthesisDuration = 2.5
	HeroSynthesisEase     = "power3.inOut"

	HeroHeadlineAt       = 1.5
	HeroHeadlineDuration = 1.5
	HeroHeadlineEase     = "power2.out"

	HeroCanvasFadeAt       = 2.0
	HeroCanvasFadeDuration = 1.0
	HeroCanvasFadeEase     = "power2.out"

	HeroSubheadingAt   = 2.0
	HeroCTAAt          = 2.2
	HeroRevealDuration = 1.0
	HeroRevealEase     = "expo.out"

	// HeroRevealOffsetY is the starting downward offset in pixels for revealed UI
	HeroRevealOffsetY = 20.0
)
