// Package narrative drives the pinned "mean pooling vs. salient tokens" block:
// a sentence whose tokens scatter into a noisy average and regroup around
// keywords, with a vector bar chart and a typed result label, scrubbed by scroll.
package narrative

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/content"
	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/timeline"
)

// Token is one animated word; X, Y are offsets in logical pixels from its layout slot
type Token struct {
	Word    string
	Keyword bool

	Opacity float64
	X, Y    float64
	Scale   float64
	Glow    float64
	Color   core.RGB
}

// Bar is one component of the sentence vector
type Bar struct {
	ScaleY float64
	Color  core.RGB
}

// Copy holds the opacity of each text block
type Copy struct {
	ProblemTitle  float64
	ProblemBody   float64
	SolutionTitle float64
	SolutionBody  float64
	// Block is the whole pinned panel
	Block float64
}

// Layout positions the section on the page, in logical pixels
type Layout struct {
	// Top is the document offset of the pinned panel
	Top float64
	// ViewportHeight is the panel height and part of the pinned scroll length
	ViewportHeight float64
	// SentenceHeight is the laid-out height of the token block
	SentenceHeight float64
}

// Trigger returns the scroll range over which the panel is pinned and scrubbed
func (l Layout) Trigger() timeline.ScrollTrigger {
	return timeline.ScrollTrigger{
		Start: l.Top,
		End:   l.Top + l.ViewportHeight + parameter.NarrativeScrollLength,
		Scrub: parameter.NarrativeScrub,
	}
}

var punctuation = strings.NewReplacer(",", "", ".", "")

// Tokenize splits sentence on spaces and flags words that match a keyword after
// lowercasing and dropping commas and periods
func Tokenize(sentence string, keywords []string) []Token {
	words := strings.Split(sentence, " ")
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		norm := punctuation.Replace(strings.ToLower(w))
		tokens = append(tokens, Token{
			Word:    w,
			Keyword: containsWord(keywords, norm),
			Opacity: 1,
			Scale:   1,
			Color:   visual.RgbTokenBase,
		})
	}
	return tokens
}

func containsWord(list []string, w string) bool {
	for _, k := range list {
		if k == w {
			return true
		}
	}
	return false
}

// RadialOffsets places n tokens evenly on a circle of radius around a center
// lifted above the sentence middle
func RadialOffsets(n int, radius, sentenceHeight float64) [][2]float64 {
	out := make([][2]float64, n)
	if n == 0 {
		return out
	}
	centerY := sentenceHeight/2 - parameter.NarrativeCenterLift
	step := 2 * math.Pi / float64(n)
	for i := range out {
		a := float64(i) * step
		out[i] = [2]float64{math.Cos(a) * radius, math.Sin(a)*radius + centerY}
	}
	return out
}

// Section is one mounted narrative block
type Section struct {
	Tokens []Token
	Bars   []Bar
	Label  string
	Copy   Copy

	layout   Layout
	tl       *timeline.Timeline
	driver   *timeline.ScrollDriver
	tornDown bool
	log      *zap.Logger
}

// Mount builds the scrubbed timeline for layout; the section starts at scroll 0
func Mount(layout Layout, fps int, log *zap.Logger) *Section {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Section{
		Tokens: Tokenize(content.Sentence, content.Keywords),
		Bars:   make([]Bar, parameter.NarrativeBarCount),
		Copy:   Copy{Block: 1},
		layout: layout,
		log:    log,
	}
	for i := range s.Bars {
		s.Bars[i].Color = visual.RgbBarBase
	}

	s.tl = s.build()
	if err := s.tl.Err(); err != nil {
		log.Error("narrative timeline build", zap.Error(err))
	}
	s.driver = timeline.NewScrollDriver(s.tl, layout.Trigger(), fps)
	log.Debug("narrative mounted",
		zap.Int("tokens", len(s.Tokens)),
		zap.Float64("duration", s.tl.Duration()),
		zap.Float64("pin_start", layout.Trigger().Start),
		zap.Float64("pin_end", layout.Trigger().End),
	)
	return s
}

func (s *Section) build() *timeline.Timeline {
	tl := timeline.New(timeline.Vars{Ease: parameter.NarrativeDefaultEase})
	n := len(s.Tokens)
	tok := func(i int) *Token { return &s.Tokens[i] }

	var keys, fillers []int
	for i, t := range s.Tokens {
		if t.Keyword {
			keys = append(keys, i)
		} else {
			fillers = append(fillers, i)
		}
	}
	radial := RadialOffsets(n, parameter.NarrativeRadius, s.layout.SentenceHeight)

	// Chapter 1: the problem, mean pooling
	tl.AddLabel("chapter1", "").
		Add("", timeline.Vars{Duration: 1}, timeline.To(&s.Copy.ProblemTitle, 1)).
		Add("-=0.5", timeline.Vars{Duration: 1}, timeline.To(&s.Copy.ProblemBody, 1)).
		Stagger("+=0.5", timeline.Vars{Duration: 1.5, Stagger: 0.03}, n, func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.From(&tok(i).Opacity, 0),
				timeline.From(&tok(i).Y, parameter.NarrativeTokenRise),
			}
		})

	tl.AddLabel("pooling", "+=2").
		Stagger("pooling", timeline.Vars{Duration: 3}, n, func(i int) []timeline.Track {
			return []timeline.Track{timeline.ColorTo(&tok(i).Color, visual.RgbTokenPooled)}
		}).
		Stagger("pooling+=1", timeline.Vars{Duration: 4, Stagger: 0.015}, n, func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.To(&tok(i).X, radial[i][0]),
				timeline.To(&tok(i).Y, radial[i][1]),
				timeline.To(&tok(i).Scale, 0.5),
				timeline.To(&tok(i).Opacity, 0.2),
			}
		}).
		Stagger("pooling+=3", timeline.Vars{Duration: 3, Ease: "expo.inOut"}, len(s.Bars), func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.To(&s.Bars[i].ScaleY, 0.2),
				timeline.ColorTo(&s.Bars[i].Color, visual.RgbBarNoisy),
			}
		}).
		Add("pooling+=3", timeline.Vars{Duration: 2, Ease: "none"}, timeline.TextTo(&s.Label, content.NoisyVectorLabel)).
		Add("pooling+=5", timeline.Vars{Duration: 1.5},
			timeline.To(&s.Copy.ProblemTitle, 0),
			timeline.To(&s.Copy.ProblemBody, 0),
		)

	// Chapter 2: the solution, salient tokens
	tl.AddLabel("chapter2", "+=2").
		Add("", timeline.Vars{Duration: 1.5}, timeline.To(&s.Copy.SolutionTitle, 1)).
		Add("-=1", timeline.Vars{Duration: 1.5}, timeline.To(&s.Copy.SolutionBody, 1)).
		Stagger("chapter2", timeline.Vars{Duration: 4, Stagger: 0.02, Ease: "power4.out"}, n, func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.To(&tok(i).X, 0),
				timeline.To(&tok(i).Y, 0),
				timeline.To(&tok(i).Scale, 1),
				timeline.To(&tok(i).Opacity, 1),
			}
		}).
		Stagger("chapter2+=2", timeline.Vars{Duration: 3}, len(fillers), func(i int) []timeline.Track {
			t := tok(fillers[i])
			return []timeline.Track{
				timeline.ColorTo(&t.Color, visual.RgbTokenFiller),
				timeline.To(&t.Opacity, 0.25),
				timeline.To(&t.Scale, 0.9),
			}
		}).
		Stagger("chapter2+=2", timeline.Vars{Duration: 3, Stagger: 0.2}, len(keys), func(i int) []timeline.Track {
			t := tok(keys[i])
			return []timeline.Track{
				timeline.ColorTo(&t.Color, visual.RgbTokenKeyword),
				timeline.To(&t.Scale, 1.15),
				timeline.To(&t.Glow, 1),
			}
		}).
		Stagger("chapter2+=3", timeline.Vars{Duration: 3, Ease: "expo.out"}, len(s.Bars), func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.To(&s.Bars[i].ScaleY, parameter.NarrativeSalientBars[i]),
				timeline.ColorTo(&s.Bars[i].Color, visual.RgbBarPrecise),
			}
		}).
		Add("chapter2+=3", timeline.Vars{Duration: 2, Ease: "none"}, timeline.TextTo(&s.Label, content.PreciseLabel))

	// Chapter 3: release the pin
	tl.AddLabel("fadeOut", "+=4").
		Add("fadeOut", timeline.Vars{Duration: 2},
			timeline.To(&s.Copy.Block, 0),
			timeline.To(&s.Copy.SolutionTitle, 0),
			timeline.To(&s.Copy.SolutionBody, 0),
		)

	return tl
}

// Scroll feeds the page scroll offset
func (s *Section) Scroll(scrollY float64) {
	if s.tornDown {
		return
	}
	s.driver.Scroll(scrollY)
}

// Tick advances scrub smoothing one frame; true while still catching up
func (s *Section) Tick() bool {
	if s.tornDown {
		return false
	}
	return s.driver.Tick()
}

// Relayout updates the scroll range after a resize; the radial layout keeps its
// original geometry
func (s *Section) Relayout(layout Layout) {
	s.layout = layout
	s.driver.SetTrigger(layout.Trigger())
}

// Layout returns the current layout
func (s *Section) Layout() Layout {
	return s.layout
}

// Progress returns the smoothed playhead fraction
func (s *Section) Progress() float64 {
	return s.driver.Progress()
}

// Pinned reports whether the panel is held at the viewport top at scrollY
func (s *Section) Pinned(scrollY float64) bool {
	t := s.layout.Trigger()
	return scrollY >= t.Start && scrollY <= t.End
}

// ScreenTop returns the panel's top relative to the viewport at scrollY,
// accounting for the pin
func (s *Section) ScreenTop(scrollY float64) float64 {
	t := s.layout.Trigger()
	switch {
	case scrollY < t.Start:
		return t.Start - scrollY
	case scrollY <= t.End:
		return 0
	default:
		return t.Start - (scrollY - (t.End - t.Start))
	}
}

// PinSpacing is the extra document height the pin consumes
func (s *Section) PinSpacing() float64 {
	t := s.layout.Trigger()
	return t.End - t.Start
}

// Teardown reverts every animated property; safe to call repeatedly
func (s *Section) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	s.tl.Revert()
}
