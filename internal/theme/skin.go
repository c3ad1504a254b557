package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultSkin is used when no skin is configured.
const DefaultSkin = "arcade"

// ErrUnknownSkin is returned by Get for names that were never registered.
var ErrUnknownSkin = errors.New("unknown skin")

// Palette is one color scheme of a skin.
type Palette struct {
	Background string
	Surface    string
	SurfaceAlt string
	Text       string
	Muted      string
	Accent     string
	AccentAlt  string
	Border     string
}

// Skin is a cosmetic presentation of the page. Both skins share the same
// markup; only the palette, fonts and the overlay layer differ.
type Skin struct {
	Name        string
	Title       string
	BodyFont    string
	HeadingFont string
	Light       Palette
	Dark        Palette
	// Overlay reports whether the skin renders the CRT overlay layer and
	// its toggle.
	Overlay bool
}

// Palette returns the palette for mode.
func (s Skin) Palette(mode DisplayMode) Palette {
	if mode == Dark {
		return s.Dark
	}
	return s.Light
}

// CSS returns the custom properties for the skin, scoped to the root's
// data-skin attribute so several skins can share one stylesheet.
func (s Skin) CSS() string {
	var b strings.Builder
	writeVars := func(selector string, p Palette) {
		fmt.Fprintf(&b, "%s {\n", selector)
		fmt.Fprintf(&b, "  --bg: %s;\n  --surface: %s;\n  --surface-alt: %s;\n", p.Background, p.Surface, p.SurfaceAlt)
		fmt.Fprintf(&b, "  --text: %s;\n  --muted: %s;\n", p.Text, p.Muted)
		fmt.Fprintf(&b, "  --accent: %s;\n  --accent-alt: %s;\n  --border: %s;\n", p.Accent, p.AccentAlt, p.Border)
		if selector == rootSelector(s.Name) {
			fmt.Fprintf(&b, "  --font-body: %s;\n  --font-heading: %s;\n", s.BodyFont, s.HeadingFont)
		}
		b.WriteString("}\n")
	}
	writeVars(rootSelector(s.Name), s.Light)
	writeVars(rootSelector(s.Name)+".dark", s.Dark)
	return b.String()
}

func rootSelector(name string) string {
	return fmt.Sprintf(`:root[data-skin="%s"]`, name)
}

var registry = make(map[string]Skin)

// Register adds a skin to the registry, replacing any skin of the same name.
func Register(s Skin) {
	registry[s.Name] = s
}

// Get returns the skin registered under name.
func Get(name string) (Skin, error) {
	s, ok := registry[name]
	if !ok {
		return Skin{}, fmt.Errorf("%w %q", ErrUnknownSkin, name)
	}
	return s, nil
}

// Valid reports whether name is a registered skin.
func Valid(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered skin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered skin ordered by name.
func All() []Skin {
	names := Names()
	skins := make([]Skin, 0, len(names))
	for _, name := range names {
		skins = append(skins, registry[name])
	}
	return skins
}
