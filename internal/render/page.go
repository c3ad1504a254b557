package render

import (
	"fmt"
	"strings"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/theme"
)

// PageInput is the full input of RenderPage.
type PageInput struct {
	Content   content.Content
	AboutHTML string
	State     theme.State
	Skin      theme.Skin
	// AssetBase prefixes asset URLs, e.g. "/" when served or "../" for an
	// exported skin page in a subdirectory.
	AssetBase string
	// Interactive wires the toggles to the server's theme endpoints.
	// Without it the toggles are handled in the browser.
	Interactive bool
	Year        int
}

// HTMXSrc is the htmx build loaded by interactive pages.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// RenderPage returns the <html> element of the portfolio page.
func RenderPage(in PageInput) Node {
	return El("html",
		A("lang", "en",
			"data-skin", in.Skin.Name,
			"class", strings.Join(in.State.RootClasses(in.Skin), " ")),
		head(in),
		body(in),
	)
}

func head(in PageInput) Node {
	p := in.Content.Profile
	nodes := []Node{
		El("meta", A("charset", "utf-8")),
		El("meta", A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		El("title", nil, Text(fmt.Sprintf("%s | %s", p.Name, p.Headline))),
		El("link", A("rel", "stylesheet", "href", in.AssetBase+"static/site.css")),
	}
	if in.Interactive {
		nodes = append(nodes, El("script", A("src", HTMXSrc, "defer", "")))
	}
	nodes = append(nodes, El("script", A("src", in.AssetBase+"static/theme.js", "defer", "")))
	return El("head", nil, nodes...)
}

func body(in PageInput) Node {
	children := []Node{Header(in), mainContent(in), footer(in.Content.Profile, in.Year)}
	if in.Skin.Overlay {
		children = append(children, Overlay())
	}
	return El("body", Class("page"), children...)
}

// Overlay is the CRT scanline layer. It is always present for skins that
// offer it; the root's overlay-enabled class decides whether it shows.
func Overlay() Node {
	return El("div", A("class", "crt-overlay", "aria-hidden", "true"))
}

// Header is the sticky top bar with navigation and toggles.
func Header(in PageInput) Node {
	c := in.Content
	links := make([]Node, len(c.Navigation))
	for i, n := range c.Navigation {
		links[i] = El("a", A("href", "#"+n.ID, "class", "nav__link"), Text(n.Label))
	}

	controls := []Node{
		El("a", A("href", "#contact", "class", "pill pill--wide"), Text("Hire me")),
	}
	if in.Skin.Overlay {
		controls = append(controls, OverlayToggle(in.State, in.Skin, in.Interactive))
	}
	controls = append(controls, DisplayToggle(in.State, in.Skin, in.Interactive))

	return El("header", Class("header"),
		El("div", Class("container", "header__bar"),
			El("a", A("href", "#"+content.HeroID, "class", "brand"), Text(c.Profile.Name)),
			El("nav", Class("nav"), links...),
			El("div", Class("header__controls"), controls...),
		),
	)
}

// DisplayToggle is the light/dark button. It shows the sun while dark.
func DisplayToggle(s theme.State, skin theme.Skin, interactive bool) Node {
	glyph := "moon"
	if s.Display == theme.Dark {
		glyph = "sun"
	}
	attrs := A("type", "button",
		"id", "toggle-display",
		"class", "toggle",
		"aria-label", "Toggle theme",
		"data-toggle", "display")
	if interactive {
		attrs = append(attrs, htmxAttrs("/theme/display", "display", s.Display.String(), skin)...)
	}
	return El("button", attrs, icon(glyph))
}

// OverlayToggle is the CRT effect button.
func OverlayToggle(s theme.State, skin theme.Skin, interactive bool) Node {
	pressed := "false"
	if s.Overlay == theme.OverlayOn {
		pressed = "true"
	}
	attrs := A("type", "button",
		"id", "toggle-overlay",
		"class", "toggle toggle--text",
		"aria-label", "Toggle CRT effect",
		"aria-pressed", pressed,
		"data-toggle", "overlay")
	if interactive {
		attrs = append(attrs, htmxAttrs("/theme/overlay", "overlay", s.Overlay.String(), skin)...)
	}
	return El("button", attrs, Text("CRT"))
}

// htmxAttrs posts the button's own flag back so the server can toggle it
// without holding any state of its own. A button never carries the other
// flag, so a stale button cannot overwrite it.
func htmxAttrs(endpoint, flag, value string, skin theme.Skin) []Attr {
	vals := fmt.Sprintf(`{%q:%q,"skin":%q}`, flag, value, skin.Name)
	return A("hx-post", endpoint, "hx-vals", vals, "hx-swap", "outerHTML")
}

func mainContent(in PageInput) Node {
	children := []Node{Hero(in.Content.Profile, in.Content.Links)}
	for _, meta := range in.Content.Sections {
		children = append(children, RenderSection(SectionInput{
			ID:        meta.ID,
			Title:     meta.Title,
			Subtitle:  meta.Subtitle,
			Backdrop:  meta.Backdrop,
			Alternate: meta.Alternate,
			Content:   sectionContent(meta.ID, in),
		}))
	}
	return El("main", nil, children...)
}

// sectionContent maps a section id to its body. Unknown ids get a titled
// block with no body.
func sectionContent(id string, in PageInput) []Node {
	c := in.Content
	switch id {
	case "about":
		return []Node{AboutBody(c.Profile, in.AboutHTML)}
	case "skills":
		return []Node{SkillGrid(c.Skills)}
	case "projects":
		return []Node{ProjectGrid(c.Projects)}
	case "experience":
		return []Node{ExperienceGrid(c.Experience)}
	case "contact":
		return []Node{ContactBody(c.Profile, c.Links)}
	}
	return nil
}

// Hero is the #home banner. It always composes the backdrop.
func Hero(p content.Profile, links []content.Link) Node {
	var social []Node
	for _, l := range links {
		if l.Kind == "mail" {
			continue
		}
		social = append(social, El("a", A("href", l.Href, "class", "link"), icon(l.Kind), Text(titleCase(l.Kind))))
	}

	heroChips := make([]Node, len(p.HeroChips))
	for i, cp := range p.HeroChips {
		heroChips[i] = Chip(cp)
	}

	intro := El("div", Class("hero__intro"),
		El("h1", Class("hero__title"),
			Text("Hi, I'm "),
			El("span", Class("gradient-text"), Text(p.FirstName)),
			Text(","),
			El("br", nil),
			Text(p.Headline),
		),
		El("p", Class("hero__tagline"), Text(p.Tagline)),
		El("div", Class("hero__actions"),
			El("a", A("href", "#projects", "class", "button button--solid"), Text("View Projects"), icon("arrow-up-right")),
			El("a", A("href", "#contact", "class", "button button--outline"), Text("Contact Me"), icon("mail")),
			El("a", A("href", "#", "class", "button button--outline"), icon("download"), Text("Download CV")),
		),
		El("div", Class("hero__social"), social...),
	)

	portrait := El("div", Class("hero__portrait"),
		El("div", A("class", "hero__glow", "aria-hidden", "true")),
		El("div", Class("hero__frame"),
			El("div", Class("hero__photo"), El("span", nil, Text("Your Photo Here (1:1)"))),
		),
		El("div", Class("chips", "chips--grid"), heroChips...),
	)

	return El("section", A("id", content.HeroID, "class", "hero", "data-backdrop", content.HeroID),
		Backdrop(),
		El("div", Class("container", "hero__body"), intro, portrait),
	)
}

func footer(p content.Profile, year int) Node {
	return El("footer", Class("footer"),
		El("div", Class("container", "footer__bar"),
			El("p", nil, Text(fmt.Sprintf("© %d %s. All rights reserved.", year, p.Name))),
			El("a", A("href", "#"+content.HeroID, "class", "link"), Text("Back to top")),
		),
	)
}

var kindTitles = map[string]string{
	"github":   "GitHub",
	"linkedin": "LinkedIn",
}

func titleCase(kind string) string {
	if t, ok := kindTitles[kind]; ok {
		return t
	}
	if kind == "" {
		return ""
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
