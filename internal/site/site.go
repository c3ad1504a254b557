// Package site turns the content tables into served or exported pages.
package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Zachkp/folio/internal/backdrop"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/theme"
)

var (
	//go:embed assets/base.css
	baseCSS string

	//go:embed assets/theme.js
	themeJS []byte
)

// Site holds the validated content and its pre-rendered Markdown.
type Site struct {
	content   content.Content
	aboutHTML string
	log       *slog.Logger
}

// New validates c, converts its Markdown once and renders the page in every
// skin so a navigation entry without a section fails here instead of on
// every request.
func New(c content.Content, logger *slog.Logger) (*Site, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	about, err := content.MarkdownHTML(c.Profile.About)
	if err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Site{content: c, aboutHTML: about, log: logger}
	for _, skin := range theme.All() {
		if _, err := s.Page(PageOptions{Skin: skin, State: theme.Initial}); err != nil {
			return nil, fmt.Errorf("invalid content: %w", err)
		}
	}
	return s, nil
}

// Content returns the tables the site renders.
func (s *Site) Content() content.Content {
	return s.content
}

// PageOptions selects how a page is rendered.
type PageOptions struct {
	Skin        theme.Skin
	State       theme.State
	AssetBase   string
	Interactive bool
	Year        int
}

// Page renders the page tree and checks its anchors.
func (s *Site) Page(opts PageOptions) (render.Node, error) {
	root := render.RenderPage(render.PageInput{
		Content:     s.content,
		AboutHTML:   s.aboutHTML,
		State:       opts.State,
		Skin:        opts.Skin,
		AssetBase:   opts.AssetBase,
		Interactive: opts.Interactive,
		Year:        opts.Year,
	})
	if err := render.CheckNavigation(root, s.content.Navigation); err != nil {
		return render.Node{}, fmt.Errorf("skin %s: %w", opts.Skin.Name, err)
	}
	return root, nil
}

// Document renders the page as a complete HTML document.
func (s *Site) Document(opts PageOptions) ([]byte, error) {
	root, err := s.Page(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.WriteDocument(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stylesheet returns the shared CSS: the base rules, the backdrop keyframes
// and the custom properties of every registered skin.
func Stylesheet() string {
	var b strings.Builder
	b.WriteString(baseCSS)
	b.WriteString("\n")
	b.WriteString(backdrop.CSS())
	for _, skin := range theme.All() {
		b.WriteString("\n")
		b.WriteString(skin.CSS())
	}
	return b.String()
}

// Script returns the browser-side toggle and backdrop script.
func Script() []byte {
	return themeJS
}
