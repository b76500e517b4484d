package parameter

// Page Layout (pixels)
const (
	// NavHideScrollY hides the nav bar once the page is scrolled past it
	NavHideScrollY = 20.0

	// NavHeight is the fixed nav bar height; the hero starts below it
	NavHeight = 80.0

	// ScrollStep is the distance of one wheel notch or arrow key
	ScrollStep = 48.0

	// PageScrollRatio is the fraction of the viewport a page key scrolls
	PageScrollRatio = 0.9

	// SentenceLineHeight is the token line pitch in the narrative panel
	SentenceLineHeight = 48.0
)

// Page widths in terminal columns, from the max-width of each block
const (
	NavCols        = 64
	SubheadingCols = 56
	AboutCols      = 64
	SentenceCols   = 72
	ContactCols    = 56
	FooterCols     = 74

	BarCols    = 3
	BarGapCols = 1
	BarRows    = 4

	GridStepCols = 4
	GridStepRows = 2
)

// Section heights in terminal rows for non-hero sections
const (
	AboutIntroRows = 10
	ContactRows    = 16
	FooterRows     = 3
	SpacerRows     = 8
)

// About intro entrance (plays once when scrolled into view)
const (
	AboutRevealDelay    = 0.2
	AboutRevealDuration = 0.8
	AboutRevealEase     = "power2.out"
)

// Contact entrance (plays once when its top crosses ContactTriggerRatio of the viewport)
const (
	ContactTriggerRatio = 0.8
	ContactRise         = 30.0
	ContactStagger      = 0.1
	ContactDuration     = 1.0
	ContactEase         = "expo.out"
)
