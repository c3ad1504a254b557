// Package outline prints the section structure of a rendered page in the
// terminal, coloured with the skin's palette.
package outline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/theme"
)

// Styles are the lipgloss styles derived from one skin palette.
type Styles struct {
	Title  lipgloss.Style
	ID     lipgloss.Style
	Text   lipgloss.Style
	Dim    lipgloss.Style
	Accent lipgloss.Style
	Box    lipgloss.Style
}

// NewStyles builds styles from the skin's palette for mode.
func NewStyles(skin theme.Skin, mode theme.DisplayMode) Styles {
	p := skin.Palette(mode)
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		ID:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.AccentAlt)),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
	}
}

// Row is one section of the outline.
type Row struct {
	ID        string
	Title     string
	Backdrop  bool
	Alternate bool
	Cards     int
}

// Rows extracts the outline rows from a rendered page.
func Rows(root render.Node) []Row {
	var rows []Row
	for _, s := range root.Find(render.ByTag("section")) {
		id, _ := s.Attr("id")
		_, backdrop := s.Attr("data-backdrop")
		row := Row{
			ID:        id,
			Backdrop:  backdrop,
			Alternate: s.HasClass("section--alt"),
			Cards:     len(s.Find(render.ByClass("card"))),
		}
		if titles := s.Find(render.ByTag("h2")); len(titles) > 0 {
			row.Title = titles[0].TextContent()
		} else if titles := s.Find(render.ByTag("h1")); len(titles) > 0 {
			row.Title = titles[0].TextContent()
		}
		rows = append(rows, row)
	}
	return rows
}

// Render formats the outline of root.
func Render(root render.Node, skin theme.Skin, state theme.State) string {
	st := NewStyles(skin, state.Display)

	var b strings.Builder
	header := fmt.Sprintf("%s skin · %s", skin.Title, state.Display)
	if skin.Overlay {
		header += fmt.Sprintf(" · crt %s", state.Overlay)
	}
	b.WriteString(st.Title.Render(header))
	b.WriteString("\n")

	for _, r := range Rows(root) {
		var marks []string
		if r.Backdrop {
			marks = append(marks, st.Accent.Render("backdrop"))
		}
		if r.Alternate {
			marks = append(marks, st.Dim.Render("alt"))
		}
		line := fmt.Sprintf("%s  %s  %s",
			st.ID.Render(fmt.Sprintf("%-12s", "#"+r.ID)),
			st.Text.Render(r.Title),
			st.Dim.Render(fmt.Sprintf("(%d cards)", r.Cards)),
		)
		if len(marks) > 0 {
			line += "  " + strings.Join(marks, " ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return st.Box.Render(strings.TrimRight(b.String(), "\n"))
}
