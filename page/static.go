package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/hero-field/content"
	"github.com/lixenwraith/hero-field/core"
	"github.com/lixenwraith/hero-field/parameter"
	"github.com/lixenwraith/hero-field/parameter/visual"
)

func fg(c core.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

var (
	brandStyle    = fg(visual.RgbNavText).Bold(true)
	headlineStyle = fg(visual.RgbHeadline).Bold(true)
	accentStyle   = fg(visual.RgbAccent).Bold(true)
	bodyStyle     = fg(visual.RgbBody)
	mutedStyle    = fg(visual.RgbSlate500)
	buttonStyle   = fg(visual.RgbButtonText).Background(lipgloss.Color(visual.RgbButtonFill.Hex())).Bold(true).Padding(0, 2)
	sectionStyle  = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

func spans(ss []content.Span) string {
	var b strings.Builder
	for _, s := range ss {
		if s.Accent {
			b.WriteString(accentStyle.Render(s.Text))
		} else {
			b.WriteString(headlineStyle.Render(s.Text))
		}
	}
	return b.String()
}

// Static writes the page copy without animation, centered in width columns
// Used when no terminal is available or the viewport is too narrow for the hero
func Static(w io.Writer, width int) error {
	width = max(width, 20)
	// block centers parts in a column of at most cols cells, wrapping long lines
	block := func(cols int, parts ...string) string {
		column := lipgloss.NewStyle().Width(min(width, cols)).Align(lipgloss.Center)
		body := column.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	}

	nav := lipgloss.JoinHorizontal(lipgloss.Top,
		brandStyle.Render("◆ "+content.Brand),
		"    ",
		mutedStyle.Render(content.NavAbout),
		"   ",
		mutedStyle.Render(content.NavContact),
	)

	sections := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, nav),
		sectionStyle.Render(block(parameter.SubheadingCols,
			spans(content.HeroHeadline),
			"",
			bodyStyle.Render(content.HeroSubheading),
			"",
			buttonStyle.Render(content.HeroCTA),
		)),
		sectionStyle.Render(block(parameter.AboutCols,
			spans(content.AboutHeadline),
			"",
			bodyStyle.Render(content.AboutBody),
		)),
		sectionStyle.Render(block(parameter.SentenceCols,
			fg(visual.RgbNarrativeHdr).Bold(true).Render(content.SolutionTitle),
			mutedStyle.Render(content.SolutionBody),
			"",
			fg(visual.RgbTokenBase).Render(content.Sentence),
			"",
			mutedStyle.Render(content.PreciseLabel),
		)),
		sectionStyle.Render(block(parameter.ContactCols,
			accentStyle.Render(content.ContactLabel),
			headlineStyle.Render(content.ContactHeadline),
			"",
			bodyStyle.Render(content.ContactSubheading),
			"",
			fg(visual.RgbSlate700).Render(content.ContactEmail),
			fg(visual.RgbSocial).Render(content.GitHubURL),
			fg(visual.RgbSocial).Render(content.LinkedInURL),
		)),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, mutedStyle.Render(content.Footer)),
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}
