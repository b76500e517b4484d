// Package content holds the landing page copy.
package content

// Span is a run of text with an accent flag
type Span struct {
	Text   string
	Accent bool
}

// Nav bar
const (
	Brand        = "Colsy Labs"
	NavAbout     = "ABOUT US"
	NavContact   = "CONTACT"
	NavAboutID   = "about-us"
	NavContactID = "contact"
)

// Hero
var HeroHeadline = []Span{
	{Text: "Your Personal "},
	{Text: "AI Collaborator", Accent: true},
}

const (
	HeroSubheading = "Beyond tools. A true partner in thought that synthesizes complexity into clarity."
	HeroCTA        = "Coming Soon!"
)

// About intro
var AboutHeadline = []Span{
	{Text: "Beyond Completion. "},
	{Text: "True Collaboration.", Accent: true},
}

const AboutBody = "We're engineering the world's first AI collaborator with a persistent, contextual memory—one that remembers, reasons, and retrieves with human-like precision."

// Narrative
const (
	Sentence         = "I have to go to the market to buy something. I’ll take my bike and bring cake for you."
	ProblemTitle     = "The Retrieval Problem"
	ProblemBody      = "Standard models average all words, diluting key concepts."
	SolutionTitle    = "Our Solution"
	SolutionBody     = "We identify and amplify high-signal tokens for a precise semantic vector."
	NoisyVectorLabel = "Result: Low-Signal, Noisy Vector"
	PreciseLabel     = "Result: High-Fidelity, Precise Vector"
)

// Keywords are the high-signal tokens of Sentence
var Keywords = []string{"market", "bike", "cake"}

// Contact
const (
	ContactLabel      = "Get in Touch"
	ContactHeadline   = "Let's Start a Conversation"
	ContactSubheading = "Have a project in mind, a question, or just want to connect? My inbox is always open. I'll get back to you as soon as possible."
	ContactEmail      = "colsylabs@gmail.com"
	GitHubURL         = "https://github.com/Colsy-Labs"
	LinkedInURL       = "https://www.linkedin.com/company/colsy"
)

// Footer
const Footer = "© 2025 Colsy Labs · India"

// Plain joins spans into one string
func Plain(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
