package visual

import (
	"github.com/lixenwraith/hero-field/core"
)

// core.RGB color definitions for the landing page (Tailwind slate/blue scale)
var (
	RgbWhite = core.RGB{R: 255, G: 255, B: 255}

	// Page surfaces
	RgbPageBackground = core.RGB{R: 255, G: 255, B: 255}
	RgbGridLine       = core.RGB{R: 240, G: 244, B: 248} // #f0f4f8 background grid

	// Slate text scale
	RgbSlate900 = core.RGB{R: 15, G: 23, B: 42}
	RgbSlate800 = core.RGB{R: 30, G: 41, B: 59}
	RgbSlate700 = core.RGB{R: 51, G: 65, B: 85}
	RgbSlate600 = core.RGB{R: 71, G: 85, B: 105}
	RgbSlate500 = core.RGB{R: 100, G: 116, B: 139}
	RgbSlate400 = core.RGB{R: 148, G: 163, B: 184}
	RgbSlate300 = core.RGB{R: 203, G: 213, B: 225}
	RgbSlate200 = core.RGB{R: 226, G: 232, B: 240}
	RgbSlate50  = core.RGB{R: 248, G: 250, B: 252}

	// Accents
	RgbBlue500 = core.RGB{R: 59, G: 130, B: 246}
	RgbBlue600 = core.RGB{R: 37, G: 99, B: 235} // #2563eb text-forming particles, keywords
	RgbBlue700 = core.RGB{R: 29, G: 78, B: 216}
)

// Particle colors
var (
	// RgbParticleNeutral is the base for non-text-forming particles, alpha drawn per particle
	RgbParticleNeutral = RgbSlate400

	// RgbParticleAccent is the opaque color of particles assigned to a glyph sample
	RgbParticleAccent = RgbBlue600
)

// Narrative colors
var (
	RgbTokenBase    = RgbSlate700
	RgbTokenPooled  = RgbSlate300 // #cbd5e1
	RgbTokenFiller  = RgbSlate200 // #e2e8f0
	RgbTokenKeyword = RgbBlue600
	RgbBarBase      = RgbSlate400
	RgbBarNoisy     = RgbSlate500 // #64748b
	RgbBarPrecise   = RgbBlue500  // #3b82f6
)

// Page chrome
var (
	RgbGridDot      = RgbSlate200
	RgbPanel        = RgbSlate50
	RgbNavText      = RgbSlate800
	RgbFooterText   = RgbSlate500
	RgbButtonText   = RgbWhite
	RgbButtonFill   = RgbSlate900
	RgbHeadline     = RgbSlate900
	RgbBody         = RgbSlate600
	RgbAccent       = RgbBlue600
	RgbSocial       = RgbSlate400
	RgbVectorLabel  = RgbSlate500
	RgbNarrativeHdr = RgbSlate800
)
