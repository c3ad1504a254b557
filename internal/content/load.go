package content

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load returns the default content with any tables from the YAML file at
// path laid over it. A table present in the file replaces the default table
// wholesale; absent tables keep their defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Content{}, fmt.Errorf("accessing content file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Content{}, fmt.Errorf("reading content file %s: %w", path, err)
	}

	var loaded Content
	if err := k.Unmarshal("", &loaded); err != nil {
		return Content{}, fmt.Errorf("unmarshalling content file %s: %w", path, err)
	}
	c.overlay(loaded)

	if err := c.Validate(); err != nil {
		return Content{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

func (c *Content) overlay(o Content) {
	p := &c.Profile
	setString(&p.Name, o.Profile.Name)
	setString(&p.FirstName, o.Profile.FirstName)
	setString(&p.Headline, o.Profile.Headline)
	setString(&p.Tagline, o.Profile.Tagline)
	setString(&p.About, o.Profile.About)
	setString(&p.LinksTitle, o.Profile.LinksTitle)
	setSlice(&p.HeroChips, o.Profile.HeroChips)
	setSlice(&p.AboutPoints, o.Profile.AboutPoints)
	setSlice(&p.QuickFacts, o.Profile.QuickFacts)

	setSlice(&c.Navigation, o.Navigation)
	setSlice(&c.Sections, o.Sections)
	setSlice(&c.Skills, o.Skills)
	setSlice(&c.Projects, o.Projects)
	setSlice(&c.Experience, o.Experience)
	setSlice(&c.Links, o.Links)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setSlice[T any](dst *[]T, v []T) {
	if len(v) > 0 {
		*dst = v
	}
}

// Validate checks the tables for authoring mistakes that can be caught
// without rendering: empty or duplicate identifiers.
func (c Content) Validate() error {
	navIDs := make(map[string]bool, len(c.Navigation))
	for i, n := range c.Navigation {
		if n.ID == "" {
			return fmt.Errorf("navigation[%d]: id is required", i)
		}
		if navIDs[n.ID] {
			return fmt.Errorf("navigation[%d]: duplicate id %q", i, n.ID)
		}
		navIDs[n.ID] = true
	}

	sectionIDs := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections[%d]: id is required", i)
		}
		if s.ID == HeroID {
			return fmt.Errorf("sections[%d]: id %q is reserved for the hero", i, s.ID)
		}
		if sectionIDs[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		if s.Title == "" {
			return fmt.Errorf("sections[%d]: title is required", i)
		}
		sectionIDs[s.ID] = true
	}
	return nil
}

// HeroID is the identifier of the hero banner section.
const HeroID = "home"
