package page

import (
	"math"

	"github.com/lixenwraith/hero-field/content"
	"github.com/lixenwraith/hero-field/narrative"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/render"
)

const (
	cellW = parameter.CellPixelWidth
	cellH = parameter.CellPixelHeight
)

// Slot is a token's resting cell relative to the sentence block origin
type Slot struct {
	Col, Line int
}

// Layout places every section in document pixels for one terminal size
type Layout struct {
	Cols, Rows int
	// Viewport size in logical pixels
	Width, Height float64

	HeroTop, HeroHeight   float64
	AboutTop, AboutHeight float64

	// PanelTop is where the narrative panel sits before it pins
	PanelTop float64
	// PinSpacing is the scroll distance the pinned panel consumes
	PinSpacing float64

	ContactTop, ContactHeight float64
	DocHeight                 float64

	SentenceCols  int
	SentenceLines int
	Slots         []Slot
}

// ComputeLayout stacks the sections for a cols x rows terminal
func ComputeLayout(cols, rows int) Layout {
	cols, rows = max(cols, 0), max(rows, 0)
	l := Layout{
		Cols:   cols,
		Rows:   rows,
		Width:  float64(cols * cellW),
		Height: float64(rows * cellH),
	}

	l.HeroTop = parameter.NavHeight
	l.HeroHeight = math.Max(l.Height-parameter.NavHeight, 0)
	l.AboutTop = l.HeroTop + l.HeroHeight
	l.AboutHeight = parameter.AboutIntroRows * cellH
	l.PanelTop = l.AboutTop + l.AboutHeight

	l.SentenceCols = max(min(cols-8, parameter.SentenceCols), 8)
	l.Slots, l.SentenceLines = tokenSlots(narrative.Tokenize(content.Sentence, content.Keywords), l.SentenceCols)

	l.PinSpacing = l.Narrative().Trigger().End - l.PanelTop
	l.ContactTop = l.PanelTop + l.PinSpacing + l.Height + parameter.SpacerRows*cellH
	l.ContactHeight = parameter.ContactRows * cellH
	l.DocHeight = l.ContactTop + l.ContactHeight + parameter.FooterRows*cellH
	return l
}

// Narrative returns the pinned panel geometry
func (l Layout) Narrative() narrative.Layout {
	return narrative.Layout{
		Top:            l.PanelTop,
		ViewportHeight: l.Height,
		SentenceHeight: float64(l.SentenceLines) * parameter.SentenceLineHeight,
	}
}

// MaxScroll is the largest valid scroll offset
func (l Layout) MaxScroll() float64 {
	return math.Max(l.DocHeight-l.Height, 0)
}

// HeroRows is the canvas height in cells
func (l Layout) HeroRows() int {
	return int(l.HeroHeight / cellH)
}

// ScreenRow converts a document offset to a viewport row at scrollY
func ScreenRow(docY, scrollY float64) int {
	return int(math.Floor((docY - scrollY) / cellH))
}

// tokenSlots flows tokens into lines of at most width cells, one space apart,
// each line centered
func tokenSlots(tokens []narrative.Token, width int) ([]Slot, int) {
	slots := make([]Slot, len(tokens))
	if len(tokens) == 0 {
		return slots, 0
	}

	var lineWidths []int
	line, col := 0, 0
	for i, t := range tokens {
		w := render.TextWidth(t.Word)
		if col > 0 && col+1+w > width {
			lineWidths = append(lineWidths, col)
			line++
			col = 0
		}
		if col > 0 {
			col++
		}
		slots[i] = Slot{Col: col, Line: line}
		col += w
	}
	lineWidths = append(lineWidths, col)

	for i := range slots {
		slots[i].Col += (width - lineWidths[slots[i].Line]) / 2
	}
	return slots, len(lineWidths)
}
