// Package content holds the static tables the portfolio page is built from.
package content

// NavigationEntry is one anchor link in the header. ID must equal the id of
// exactly one rendered section.
type NavigationEntry struct {
	ID    string `koanf:"id" yaml:"id"`
	Label string `koanf:"label" yaml:"label"`
}

// ProjectEntry is one featured project card.
type ProjectEntry struct {
	Title       string   `koanf:"title" yaml:"title"`
	Description string   `koanf:"description" yaml:"description"`
	Tags        []string `koanf:"tags" yaml:"tags"`
	Repo        string   `koanf:"repo" yaml:"repo"`
	Demo        string   `koanf:"demo" yaml:"demo"`
}

// SkillGroup is one skills card: a heading and its lines.
type SkillGroup struct {
	Title string   `koanf:"title" yaml:"title"`
	Items []string `koanf:"items" yaml:"items"`
}

// ExperienceEntry is one experience card.
type ExperienceEntry struct {
	Role    string `koanf:"role" yaml:"role"`
	Period  string `koanf:"period" yaml:"period"`
	Summary string `koanf:"summary" yaml:"summary"`
}

// Link is an outbound placeholder link (mail, repository, profile).
type Link struct {
	Kind  string `koanf:"kind" yaml:"kind"`
	Label string `koanf:"label" yaml:"label"`
	Href  string `koanf:"href" yaml:"href"`
}

// SectionMeta drives the order of the page sections and the two knobs of
// each: whether the backdrop is composed behind it, and which background
// tone it uses.
type SectionMeta struct {
	ID        string `koanf:"id" yaml:"id"`
	Title     string `koanf:"title" yaml:"title"`
	Subtitle  string `koanf:"subtitle" yaml:"subtitle"`
	Backdrop  bool   `koanf:"backdrop" yaml:"backdrop"`
	Alternate bool   `koanf:"alternate" yaml:"alternate"`
}

// Profile is the person the page is about.
type Profile struct {
	Name        string   `koanf:"name" yaml:"name"`
	FirstName   string   `koanf:"first_name" yaml:"first_name"`
	Headline    string   `koanf:"headline" yaml:"headline"`
	Tagline     string   `koanf:"tagline" yaml:"tagline"`
	HeroChips   []string `koanf:"hero_chips" yaml:"hero_chips"`
	About       string   `koanf:"about" yaml:"about"`
	AboutPoints []string `koanf:"about_points" yaml:"about_points"`
	QuickFacts  []string `koanf:"quick_facts" yaml:"quick_facts"`
	LinksTitle  string   `koanf:"links_title" yaml:"links_title"`
}

// Content is every table the page needs.
type Content struct {
	Profile    Profile           `koanf:"profile" yaml:"profile"`
	Navigation []NavigationEntry `koanf:"navigation" yaml:"navigation"`
	Sections   []SectionMeta     `koanf:"sections" yaml:"sections"`
	Skills     []SkillGroup      `koanf:"skills" yaml:"skills"`
	Projects   []ProjectEntry    `koanf:"projects" yaml:"projects"`
	Experience []ExperienceEntry `koanf:"experience" yaml:"experience"`
	Links      []Link            `koanf:"links" yaml:"links"`
}
