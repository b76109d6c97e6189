package content

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Project is one panel of the projects window.
type Project struct {
	Key       string // shortcut letter, lower case
	Tab       string
	Title     string
	Subtitle  string
	TechStack []string
	Body      []string
}

var projects = []Project{
	{
		Key:       "f",
		Tab:       "Fora",
		Title:     "Fora",
		Subtitle:  "A social media network built on the Solana blockchain.",
		TechStack: []string{"Rust", "AnchorLang", "Next.js", "Typescript"},
		Body: []string{
			"Personal passion project built with a friend over about six months, alongside my capstone project.",
			"An uncensorable social network on the Solana and Arweave blockchains. Solana programs are written " +
				"in Rust with Anchor, Arweave contracts and API in Typescript, and the frontend in React.",
			"Submitted to the Solana Riptide hackathon, and won the Arweave Open Web Foundry 6 hackathon.",
		},
	},
	{
		Key:       "p",
		Tab:       "PUPpy",
		Title:     "PUPpy",
		Subtitle:  "A pay-per-use platform built on the Ethereum blockchain.",
		TechStack: []string{"Solidity", "Next.js", "Typescript", "Rust", "Truffle", "AWS Lambda"},
		Body: []string{
			"Senior capstone: a full-stack application implementing pay-per-use for Festo machines on Ethereum. " +
				"Backend in Rust, contracts in Solidity, hosted on AWS.",
			"Rust Lambda functions and Solidity contracts track machine usage through MQTT packets and handle " +
				"payments, settled in Euros through traditional bank transfers with DZ Bank.",
			"After graduating I continued on contract: role-specific dashboards for administrators, machine " +
				"builders and users, a Rust rewrite of the IoT device, and ongoing contract upgrades.",
		},
	},
	{
		Key:       "r",
		Tab:       "reeslabree.com",
		Title:     "reeslabree.com",
		Subtitle:  "My personal website",
		TechStack: []string{"Typescript", "Next.js", "Tailwind CSS"},
		Body: []string{
			"What started as a basic Next.js application has evolved through multiple iterations.",
			"The current iteration is a nostalgic tribute to Windows 95, the operating system that introduced " +
				"me to computers.",
			"It is also a playground for experimenting with new technologies and design patterns.",
		},
	},
	{
		Key:       "a",
		Tab:       "Arduino/Guitar Hero",
		Title:     "Arduino Guitar-Hero Guitar",
		Subtitle:  "The Quintessential Covid Project",
		TechStack: []string{"Arduino", "Circuits"},
		Body: []string{
			"During the first lockdown months I discovered CloneHero, an open source Guitar Hero for PC, " +
				"and needed a real controller to enjoy it.",
			"PC guitars were expensive and rare, but thrift stores sold PlayStation 3 guitars for a couple of " +
				"bucks and Arduino Leonardos came three for $10.",
		},
	},
}

const tabGap = "  "

var (
	shortcutStyle = lipgloss.NewStyle().Underline(true)
	subtitleStyle = lipgloss.NewStyle().Italic(true)
)

// Projects shows a row of tabs and the selected project's panel.
type Projects struct {
	selected int // -1 when nothing is selected
}

// NewProjects returns the projects window body with no panel selected.
func NewProjects() *Projects {
	return &Projects{selected: -1}
}

// Selected returns the selected project, if any.
func (p *Projects) Selected() (Project, bool) {
	if p.selected < 0 {
		return Project{}, false
	}
	return projects[p.selected], true
}

// Select picks the project whose shortcut is key. It reports whether the
// selection changed.
func (p *Projects) Select(key string) bool {
	for i, proj := range projects {
		if proj.Key == key {
			changed := p.selected != i
			p.selected = i
			return changed
		}
	}
	return false
}

// HandleKey implements KeyHandler. Shortcuts are case-insensitive.
func (p *Projects) HandleKey(key string) bool {
	return p.Select(strings.ToLower(key))
}

// Click implements ClickHandler. Only the tab row reacts.
func (p *Projects) Click(col, row int) bool {
	if row != 0 {
		return false
	}
	x := 0
	for _, proj := range projects {
		w := ansi.StringWidth(proj.Tab)
		if col >= x && col < x+w {
			return p.Select(proj.Key)
		}
		x += w + len(tabGap)
	}
	return false
}

func renderTab(proj Project) string {
	// The shortcut letter is the first letter of every tab, except the
	// lower-case "r" of reeslabree.com which still matches case-insensitively.
	first, rest := proj.Tab[:1], proj.Tab[1:]
	return shortcutStyle.Render(first) + rest
}

// Lines implements Content.
func (p *Projects) Lines(width int) []string {
	tabs := make([]string, len(projects))
	for i, proj := range projects {
		tabs[i] = renderTab(proj)
	}
	out := []string{
		ansi.Truncate(strings.Join(tabs, tabGap), width, ""),
		strings.Repeat("─", max(width, 0)),
	}

	proj, ok := p.Selected()
	if !ok {
		out = append(out, "")
		out = append(out, heading("Select a project from the top row", width)...)
		out = append(out, wrap("You can also press the corresponding letter on your keyboard to select a project", width)...)
		return out
	}

	out = append(out, heading(proj.Title, width)...)
	out = append(out, strings.Split(subtitleStyle.Width(max(width, 1)).Render(proj.Subtitle), "\n")...)
	out = append(out, "")
	out = append(out, wrap("Tech Stack: "+strings.Join(proj.TechStack, " · "), width)...)
	out = append(out, "")
	return append(out, paragraphs(width, proj.Body...)...)
}
