package content

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// NewWelcome returns the welcome window body.
func NewWelcome() Content {
	return &Text{
		Title: "Welcome to retrodesk",
		Paragraphs: []string{
			"Double click on the desktop icons to the left to explore different pages.",
			"You can close or minimize this window with the buttons in the top right. " +
				"Reopen it by double clicking the \"Welcome\" desktop icon.",
		},
	}
}

// NewAboutMe returns the about-me window body.
func NewAboutMe() Content {
	return &Text{
		Title: "About Me",
		Paragraphs: []string{
			"I'm a software engineer who enjoys exploring different domains of programming, " +
				"from web development to embedded systems. I spend a lot of time tinkering with " +
				"CAD software and my 3D printer, trying to design practical objects that solve " +
				"real problems. Away from the computer you'll find me skiing down mountains, " +
				"hiking up them, or brewing beer.",
		},
	}
}

// NewBlog returns the blog window body.
func NewBlog() Content {
	return &Text{
		Paragraphs: []string{
			"Nothing to see here yet. I had some blogs on my old site, but I haven't " +
				"ported them over yet.",
			"I'll try to write some more in the future, but for now this is just a placeholder.",
		},
	}
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// Links renders one hyperlink per line using OSC 8 so terminals that
// support it make the label clickable.
type Links struct {
	Links []Link
}

// NewConnect returns the connect window body.
func NewConnect() Content {
	return &Links{Links: []Link{
		{Label: "GitHub", URL: "https://github.com/reeslabree"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/rees-labree-bb1566187/"},
	}}
}

// Lines implements Content.
func (l *Links) Lines(width int) []string {
	out := make([]string, 0, len(l.Links)*2)
	for i, link := range l.Links {
		if i > 0 {
			out = append(out, "")
		}
		label := ansi.Truncate(fmt.Sprintf("» %s", link.Label), width, "…")
		out = append(out, ansi.SetHyperlink(link.URL)+label+ansi.ResetHyperlink())
		out = append(out, ansi.Truncate("  "+link.URL, width, "…"))
	}
	return out
}
