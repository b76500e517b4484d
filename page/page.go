// Package page composes the landing page on a terminal: nav bar, animated hero,
// about intro, pinned narrative, contact and footer, scrolled in logical pixels.
package page

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/engine"
	"github.com/lixenwraith/hero-field/hero"
	"github.com/lixenwraith/hero-field/narrative"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/render"
	"github.com/lixenwraith/hero-field/timeline"
	"github.com/lixenwraith/hero-field/vmath"
)

// Cue plays the headline sound
type Cue interface {
	PlayChime()
}

// Options configures a page
type Options struct {
	FPS    int
	Seed   uint64 // 0 seeds from the clock
	Colors render.ColorMode
	// Clock is the base time source; nil uses system time
	Clock engine.Clock
	// Cue plays when the headline fades in; nil is silent
	Cue Cue
	// ParticleCount overrides the hero particle count when positive
	ParticleCount int
	Logger        *zap.Logger
}

type navTarget int

const (
	navAbout navTarget = iota
	navContact
	navShow
)

type navHit struct {
	x0, x1, y int
	target    navTarget
}

const contactItems = 5

// Page owns the screen layout and every mounted section
type Page struct {
	screen tcell.Screen
	opts   Options
	log    *zap.Logger

	clock *engine.PausableClock
	sched *engine.FrameScheduler

	layout    Layout
	scrollY   float64
	navPinned bool
	navHits   []navHit

	hero      *hero.Hero
	canvas    *render.CellSurface
	narrative *narrative.Section

	about         Element
	aboutReveal   *reveal
	contact       [contactItems]Element
	contactReveal *reveal

	frames   uint64
	tornDown bool
}

// New lays out the page for the screen's current size and mounts every section
func New(screen tcell.Screen, opts Options) *Page {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	opts.FPS = max(1, min(opts.FPS, parameter.MaxFPS))

	cols, rows := screen.Size()
	p := &Page{
		screen: screen,
		opts:   opts,
		log:    opts.Logger,
		clock:  engine.NewPausableClock(opts.Clock),
		sched:  engine.NewFrameScheduler(),
		layout: ComputeLayout(cols, rows),
	}

	p.mountHero()
	p.narrative = narrative.Mount(p.layout.Narrative(), opts.FPS, p.log)
	p.buildAbout()
	p.buildContact()
	p.Scroll(0)

	p.log.Info("page mounted",
		zap.Int("cols", cols),
		zap.Int("rows", rows),
		zap.Float64("doc_height", p.layout.DocHeight),
		zap.Bool("hero_animated", p.hero.Animated()),
	)
	return p
}

func (p *Page) mountHero() {
	p.canvas = render.NewCellSurface(p.layout.Cols, p.layout.HeroRows(), visual.RgbPageBackground)

	ho := hero.DefaultOptions()
	if p.opts.ParticleCount > 0 {
		ho.Count = p.opts.ParticleCount
	}
	if seed := p.opts.Seed; seed != 0 {
		ho.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	ho.Clock = p.clock
	ho.Logger = p.log
	if p.opts.Cue != nil {
		ho.OnHeadline = p.opts.Cue.PlayChime
	}
	p.hero = hero.Mount(p.sched, p.canvas, int(p.layout.Width), ho)
}

func (p *Page) buildAbout() {
	tl := timeline.New(timeline.Vars{})
	tl.Add(timeline.At(parameter.AboutRevealDelay),
		timeline.Vars{Duration: parameter.AboutRevealDuration, Ease: parameter.AboutRevealEase},
		timeline.To(&p.about.Opacity, 1),
	)
	p.aboutReveal = newReveal(tl, p.clock)
}

func (p *Page) buildContact() {
	for i := range p.contact {
		p.contact[i] = Element{Opacity: 1}
	}
	tl := timeline.New(timeline.Vars{})
	tl.Stagger(timeline.At(0),
		timeline.Vars{Duration: parameter.ContactDuration, Ease: parameter.ContactEase, Stagger: parameter.ContactStagger},
		len(p.contact),
		func(i int) []timeline.Track {
			return []timeline.Track{
				timeline.From(&p.contact[i].Opacity, 0),
				timeline.From(&p.contact[i].Y, parameter.ContactRise),
			}
		},
	)
	p.contactReveal = newReveal(tl, p.clock)
}

// Scroll moves the page to y, clamped to the document
func (p *Page) Scroll(y float64) {
	y = vmath.Clamp(y, 0, p.layout.MaxScroll())
	if y != p.scrollY {
		p.navPinned = false
	}
	p.scrollY = y
	p.narrative.Scroll(y)
	p.checkTriggers()
}

// ScrollBy moves the page by dy pixels
func (p *Page) ScrollBy(dy float64) {
	p.Scroll(p.scrollY + dy)
}

func (p *Page) checkTriggers() {
	l := p.layout
	if l.AboutTop < p.scrollY+l.Height && l.AboutTop+l.AboutHeight > p.scrollY {
		p.aboutReveal.Trigger()
	}
	if l.ContactTop-p.scrollY <= parameter.ContactTriggerRatio*l.Height {
		p.contactReveal.Trigger()
	}
}

func (p *Page) jump(target navTarget) {
	switch target {
	case navAbout:
		p.Scroll(p.layout.AboutTop)
	case navContact:
		p.Scroll(p.layout.ContactTop)
	case navShow:
		p.navPinned = true
	}
}

// HandleEvent applies one input event; false means quit
func (p *Page) HandleEvent(ev tcell.Event) bool {
	page := p.layout.Height * parameter.PageScrollRatio
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			p.ScrollBy(parameter.ScrollStep)
		case tcell.KeyUp:
			p.ScrollBy(-parameter.ScrollStep)
		case tcell.KeyPgDn:
			p.ScrollBy(page)
		case tcell.KeyPgUp:
			p.ScrollBy(-page)
		case tcell.KeyHome:
			p.Scroll(0)
		case tcell.KeyEnd:
			p.Scroll(p.layout.MaxScroll())
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				p.ScrollBy(parameter.ScrollStep)
			case 'k':
				p.ScrollBy(-parameter.ScrollStep)
			case ' ':
				p.ScrollBy(page)
			case 'g':
				p.Scroll(0)
			case 'G':
				p.Scroll(p.layout.MaxScroll())
			case 'a':
				p.jump(navAbout)
			case 'c':
				p.jump(navContact)
			case 'p':
				paused := p.clock.Toggle()
				p.log.Debug("pause toggled", zap.Bool("paused", paused))
			case 'r':
				p.Replay()
			}
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelDown != 0:
			p.ScrollBy(parameter.ScrollStep)
		case buttons&tcell.WheelUp != 0:
			p.ScrollBy(-parameter.ScrollStep)
		case buttons&tcell.Button1 != 0:
			x, y := ev.Position()
			p.click(x, y)
		}

	case *tcell.EventResize:
		p.Resize()
	}
	return true
}

func (p *Page) click(x, y int) {
	for _, h := range p.navHits {
		if y == h.y && x >= h.x0 && x < h.x1 {
			p.jump(h.target)
			return
		}
	}
}

// Resize relays out for the screen's new size; the hero keeps the canvas it
// was mounted with
func (p *Page) Resize() {
	cols, rows := p.screen.Size()
	p.layout = ComputeLayout(cols, rows)
	p.narrative.Relayout(p.layout.Narrative())
	p.screen.Sync()
	p.Scroll(p.scrollY)
	p.log.Debug("page resized", zap.Int("cols", cols), zap.Int("rows", rows))
}

// Replay tears the hero down and mounts a fresh one at the current size
func (p *Page) Replay() {
	if p.tornDown {
		return
	}
	p.hero.Teardown()
	p.mountHero()
	p.log.Debug("hero replayed", zap.Bool("animated", p.hero.Animated()))
}

// Frame runs pending frame callbacks, steps scroll smoothing and reveals,
// then draws and shows the screen
func (p *Page) Frame(now time.Time) {
	if p.tornDown {
		return
	}
	if !p.clock.IsPaused() {
		p.sched.Tick(now)
	}
	p.narrative.Tick()
	p.aboutReveal.Tick()
	p.contactReveal.Tick()

	p.Draw()
	p.screen.Show()
	p.frames++
}

// Run drives the page until ctx ends or the user quits
// Input is polled on its own goroutine; all page state is touched only here
func (p *Page) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	loop := engine.NewFrameLoop(p.clock, p.opts.FPS)
	loop.Start()
	defer loop.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !p.HandleEvent(ev) {
				p.log.Debug("quit requested", zap.Uint64("frames", p.frames))
				return nil
			}
		case now := <-loop.Frames():
			p.Frame(now)
		}
	}
}

// Teardown reverts every mounted section; safe to call repeatedly
func (p *Page) Teardown() {
	if p.tornDown {
		return
	}
	p.tornDown = true
	p.hero.Teardown()
	p.narrative.Teardown()
	p.aboutReveal.Teardown()
	p.contactReveal.Teardown()
}

// ScrollY returns the scroll offset in pixels
func (p *Page) ScrollY() float64 { return p.scrollY }

// Layout returns the current section geometry
func (p *Page) Layout() Layout { return p.layout }

// Hero returns the mounted hero
func (p *Page) Hero() *hero.Hero { return p.hero }

// Narrative returns the pinned narrative section
func (p *Page) Narrative() *narrative.Section { return p.narrative }

// About returns the intro block state
func (p *Page) About() Element { return p.about }

// Contact returns the contact element states, top to bottom
func (p *Page) Contact() []Element { return p.contact[:] }

// Paused reports whether animation time is frozen
func (p *Page) Paused() bool { return p.clock.IsPaused() }

// NavVisible reports whether the full nav bar is shown
func (p *Page) NavVisible() bool {
	return p.scrollY <= parameter.NavHideScrollY || p.navPinned
}

// Frames returns the number of frames drawn
func (p *Page) Frames() uint64 { return p.frames }
