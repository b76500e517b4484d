package page

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-field/content"
	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
	"github.com/lixenwraith/hero-field/render"
	"github.com/lixenwraith/hero-field/vmath"
)

// minOpacity is the threshold below which text is not drawn at all, so it
// cannot cover canvas cells with background-colored glyphs
const minOpacity = 0.01

var eighthBlocks = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var bgRGB = visual.RgbPageBackground

// text is fg faded toward the page background by opacity
func (p *Page) text(fg core.RGB, opacity float64) tcell.Style {
	return p.opts.Colors.Style(bgRGB.Blend(fg, opacity), bgRGB)
}

// on is fg over a filled block, both faded by opacity
func (p *Page) on(fg, fill core.RGB, opacity float64) tcell.Style {
	return p.opts.Colors.Style(bgRGB.Blend(fg, opacity), bgRGB.Blend(fill, opacity))
}

func offsetRows(px float64) int {
	return int(math.Round(px / cellH))
}

// Draw renders the page at the current scroll offset without showing it
func (p *Page) Draw() {
	p.screen.Fill(' ', p.opts.Colors.Style(bgRGB, bgRGB))
	p.drawHero()
	p.drawAbout()
	p.drawNarrative()
	p.drawContact()
	p.drawNav()
	p.drawFooter()
}

func (p *Page) drawGrid(top, rows int) {
	style := p.text(visual.RgbGridDot, 1)
	for r := max(top, 0); r < min(top+rows, p.layout.Rows); r++ {
		if (r-top)%parameter.GridStepRows != 0 {
			continue
		}
		for c := parameter.GridStepCols / 2; c < p.layout.Cols; c += parameter.GridStepCols {
			p.screen.SetContent(c, r, '·', nil, style)
		}
	}
}

// drawSpans centers spans on row y, or one span per row when they do not fit
// Returns the rows used
func (p *Page) drawSpans(y int, spans []content.Span, opacity float64) int {
	if opacity < minOpacity {
		return p.spanRows(spans)
	}
	style := func(s content.Span) tcell.Style {
		c := visual.RgbHeadline
		if s.Accent {
			c = visual.RgbAccent
		}
		return p.text(c, opacity).Bold(true)
	}

	plain := content.Plain(spans)
	if w := render.TextWidth(plain); w <= p.layout.Cols {
		x := (p.layout.Cols - w) / 2
		for _, s := range spans {
			x += render.DrawText(p.screen, x, y, s.Text, style(s), 0)
		}
		return 1
	}
	for i, s := range spans {
		render.DrawCentered(p.screen, 0, y+i, p.layout.Cols, trimSpace(s.Text), style(s))
	}
	return len(spans)
}

func (p *Page) spanRows(spans []content.Span) int {
	if render.TextWidth(content.Plain(spans)) <= p.layout.Cols {
		return 1
	}
	return len(spans)
}

func trimSpace(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

// drawWrapped centers text wrapped to width starting at row y; returns lines used
func (p *Page) drawWrapped(y, width int, s string, style tcell.Style, visible bool) int {
	lines := render.Wrap(s, max(min(p.layout.Cols-4, width), 1))
	if visible {
		for i, line := range lines {
			render.DrawCentered(p.screen, 0, y+i, p.layout.Cols, line, style)
		}
	}
	return len(lines)
}

func (p *Page) drawHero() {
	l := p.layout
	top := ScreenRow(l.HeroTop, p.scrollY)
	rows := l.HeroRows()
	if top+rows <= 0 || top >= l.Rows {
		return
	}
	p.drawGrid(top, rows)

	ui := p.hero.UI()
	p.canvas.Flush(p.screen, 0, top, ui.CanvasOpacity, p.opts.Colors)

	headline := top + max(rows/2-3, 0)
	used := p.drawSpans(headline, content.HeroHeadline, ui.HeadlineOpacity)

	sub := headline + used + 1
	lines := p.drawWrapped(sub+offsetRows(ui.SubheadingY), parameter.SubheadingCols, content.HeroSubheading,
		p.text(visual.RgbBody, ui.SubheadingOpacity), ui.SubheadingOpacity >= minOpacity)

	if ui.CTAOpacity >= minOpacity {
		cta := sub + lines + 1 + offsetRows(ui.CTAY)
		label := "  " + content.HeroCTA + "  "
		render.DrawCentered(p.screen, 0, cta, l.Cols, label,
			p.on(visual.RgbButtonText, visual.RgbButtonFill, ui.CTAOpacity).Bold(true))
	}
}

func (p *Page) drawAbout() {
	l := p.layout
	top := ScreenRow(l.AboutTop, p.scrollY)
	if top+parameter.AboutIntroRows <= 0 || top >= l.Rows {
		return
	}
	o := p.about.Opacity
	y := top + 2
	y += p.drawSpans(y, content.AboutHeadline, o) + 1
	p.drawWrapped(y, parameter.AboutCols, content.AboutBody, p.text(visual.RgbBody, o), o >= minOpacity)
}

func (p *Page) drawNarrative() {
	l := p.layout
	n := p.narrative
	top := int(math.Floor(n.ScreenTop(p.scrollY) / cellH))
	rows := l.Rows
	if top+rows <= 0 || top >= l.Rows {
		return
	}
	render.FillRect(p.screen, 0, top, l.Cols, rows, p.text(bgRGB, 1))
	p.drawGrid(top, rows)

	block := n.Copy.Block
	lineRows := int(parameter.SentenceLineHeight / cellH)
	contentRows := 5 + l.SentenceLines*lineRows
	titleRow := top + max((rows-contentRows-parameter.BarRows-3)/2, 1)

	// problem and solution share rows; the more opaque one wins
	title, body := content.ProblemTitle, content.ProblemBody
	to, bo := n.Copy.ProblemTitle, n.Copy.ProblemBody
	if n.Copy.SolutionTitle+n.Copy.SolutionBody > to+bo {
		title, body = content.SolutionTitle, content.SolutionBody
		to, bo = n.Copy.SolutionTitle, n.Copy.SolutionBody
	}
	if to*block >= minOpacity {
		render.DrawCentered(p.screen, 0, titleRow, l.Cols, title, p.text(visual.RgbNarrativeHdr, to*block).Bold(true))
	}
	if bo*block >= minOpacity {
		render.DrawCentered(p.screen, 0, titleRow+1, l.Cols, body, p.text(visual.RgbSlate500, bo*block))
	}

	left := (l.Cols - l.SentenceCols) / 2
	sentenceRow := titleRow + 5
	for i, t := range n.Tokens {
		if i >= len(l.Slots) {
			break
		}
		op := t.Opacity * block
		if op < minOpacity {
			continue
		}
		s := l.Slots[i]
		x := left + s.Col + int(math.Round(t.X/cellW))
		y := sentenceRow + s.Line*lineRows + offsetRows(t.Y)
		style := p.text(t.Color, op)
		if t.Scale >= 1.1 || t.Glow > 0.5 {
			style = style.Bold(true)
		}
		if t.Scale < 0.75 {
			style = style.Dim(true)
		}
		render.DrawText(p.screen, x, y, t.Word, style, 0)
	}

	baseline := top + rows - 4
	pitch := parameter.BarCols + parameter.BarGapCols
	bx := (l.Cols - (len(n.Bars)*pitch - parameter.BarGapCols)) / 2
	for i, b := range n.Bars {
		style := p.text(b.Color, block)
		eighths := int(math.Round(vmath.Clamp(b.ScaleY, 0, 1) * parameter.BarRows * 8))
		for r := 0; r < parameter.BarRows && eighths > 0; r++ {
			ch := eighthBlocks[min(eighths, 8)]
			for c := 0; c < parameter.BarCols; c++ {
				p.screen.SetContent(bx+i*pitch+c, baseline-r, ch, nil, style)
			}
			eighths -= 8
		}
	}
	if n.Label != "" && block >= minOpacity {
		render.DrawCentered(p.screen, 0, baseline+2, l.Cols, n.Label, p.text(visual.RgbVectorLabel, block))
	}
}

func (p *Page) drawContact() {
	l := p.layout
	top := ScreenRow(l.ContactTop, p.scrollY)
	if top+parameter.ContactRows <= 0 || top >= l.Rows {
		return
	}
	el := p.contact
	visible := func(i int) bool { return el[i].Opacity >= minOpacity }
	row := func(base, i int) int { return base + offsetRows(el[i].Y) }

	y := top + 2
	if visible(0) {
		render.DrawCentered(p.screen, 0, row(y, 0), l.Cols, content.ContactLabel, p.text(visual.RgbAccent, el[0].Opacity).Bold(true))
	}
	y += 2
	if visible(1) {
		render.DrawCentered(p.screen, 0, row(y, 1), l.Cols, content.ContactHeadline, p.text(visual.RgbHeadline, el[1].Opacity).Bold(true))
	}
	y += 2
	y += p.drawWrapped(row(y, 2), parameter.ContactCols, content.ContactSubheading, p.text(visual.RgbBody, el[2].Opacity), visible(2))
	y++
	if visible(3) {
		r := row(y, 3)
		render.DrawCentered(p.screen, 0, r, l.Cols, "  "+content.ContactEmail+"  ",
			p.on(visual.RgbSlate700, visual.RgbPanel, el[3].Opacity))
		render.DrawCentered(p.screen, 0, r+1, l.Cols, "mailto:"+content.ContactEmail, p.text(visual.RgbSlate500, el[3].Opacity))
	}
	y += 3
	if visible(4) {
		style := p.text(visual.RgbSocial, el[4].Opacity)
		render.DrawCentered(p.screen, 0, row(y, 4), l.Cols, "GitHub ↗    LinkedIn ↗", style)
		render.DrawCentered(p.screen, 0, row(y, 4)+1, l.Cols, content.GitHubURL+"  "+content.LinkedInURL, style.Dim(true))
	}
}

func (p *Page) drawNav() {
	l := p.layout
	p.navHits = p.navHits[:0]
	panel := p.on(visual.RgbNavText, visual.RgbPanel, 1)
	w := min(l.Cols-4, parameter.NavCols)
	if w <= 0 {
		return
	}
	x0 := (l.Cols - w) / 2
	const y = 1

	if !p.NavVisible() {
		// slid aside; only the logo remains and brings it back
		lx := x0 + w - 3
		render.FillRect(p.screen, lx, y-1, 3, 3, panel)
		p.screen.SetContent(lx+1, y, '◆', nil, p.on(visual.RgbAccent, visual.RgbPanel, 1))
		p.navHits = append(p.navHits, navHit{x0: lx, x1: lx + 3, y: y, target: navShow})
		return
	}

	render.FillRect(p.screen, x0, y-1, w, 3, panel)
	p.screen.SetContent(x0+2, y, '◆', nil, p.on(visual.RgbAccent, visual.RgbPanel, 1))
	render.DrawText(p.screen, x0+4, y, content.Brand, panel.Bold(true), w-6)

	links := []struct {
		text   string
		at     int // percent of panel width
		target navTarget
	}{
		{content.NavAbout, 50, navAbout},
		{content.NavContact, 65, navContact},
	}
	for _, link := range links {
		tw := render.TextWidth(link.text)
		lx := x0 + w*link.at/100 - tw/2
		render.DrawText(p.screen, lx, y, link.text, panel, 0)
		p.navHits = append(p.navHits, navHit{x0: lx, x1: lx + tw, y: y, target: link.target})
	}
}

func (p *Page) drawFooter() {
	l := p.layout
	w := min(l.Cols-2, parameter.FooterCols)
	if w <= 0 || l.Rows < parameter.FooterRows {
		return
	}
	x0 := (l.Cols - w) / 2
	y := l.Rows - 2
	panel := p.on(visual.RgbFooterText, visual.RgbPanel, 1)
	render.FillRect(p.screen, x0, y, w, 1, panel)
	p.screen.SetContent(x0+1, y, '◆', nil, p.on(visual.RgbAccent, visual.RgbPanel, 1))
	if p.Paused() {
		render.DrawText(p.screen, x0+3, y, "‖ paused", panel.Bold(true), 0)
	}
	render.DrawCentered(p.screen, x0, y, w, content.Footer, panel)
	render.DrawText(p.screen, x0+w-3, y, "in", panel, 0)
}
