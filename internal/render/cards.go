package render

import "github.com/Zachkp/folio/internal/content"

// Card wraps children in the shared card frame.
func Card(extra string, children ...Node) Node {
	class := "card"
	if extra != "" {
		class += " " + extra
	}
	return El("div", Class(class), children...)
}

// Chip is a small rounded label.
func Chip(label string) Node {
	return El("span", Class("chip"), Text(label))
}

func chips(labels []string) Node {
	nodes := make([]Node, len(labels))
	for i, l := range labels {
		nodes[i] = Chip(l)
	}
	return El("div", Class("chips"), nodes...)
}

func grid(cols string, children ...Node) Node {
	return El("div", Class("grid", "grid--"+cols), children...)
}

// ProjectCard shows one project with every tag in order.
func ProjectCard(p content.ProjectEntry) Node {
	actions := []Node{
		El("a", A("href", hrefOrHash(p.Repo), "class", "pill"), Text("Code"), icon("external-link")),
		El("a", A("href", hrefOrHash(p.Demo), "class", "pill"), Text("Demo"), icon("external-link")),
	}
	return Card("project-card",
		El("div", Class("card__row"),
			El("div", nil,
				El("h3", Class("card__title"), Text(p.Title)),
				El("p", Class("card__text"), Text(p.Description)),
			),
			El("div", Class("card__actions"), actions...),
		),
		chips(p.Tags),
	)
}

// ProjectGrid renders one card per project, in table order.
func ProjectGrid(projects []content.ProjectEntry) Node {
	cards := make([]Node, len(projects))
	for i, p := range projects {
		cards[i] = ProjectCard(p)
	}
	return grid("2", cards...)
}

// SkillCard renders a skill group as a titled list.
func SkillCard(g content.SkillGroup) Node {
	items := make([]Node, len(g.Items))
	for i, it := range g.Items {
		items[i] = El("li", nil, Text(it))
	}
	return Card("skill-card",
		El("h3", Class("card__title"), Text(g.Title)),
		El("ul", Class("card__list"), items...),
	)
}

// SkillGrid renders every skill group.
func SkillGrid(groups []content.SkillGroup) Node {
	cards := make([]Node, len(groups))
	for i, g := range groups {
		cards[i] = SkillCard(g)
	}
	return grid("3", cards...)
}

// ExperienceCard renders one role.
func ExperienceCard(e content.ExperienceEntry) Node {
	return Card("experience-card",
		El("div", Class("card__row", "card__row--baseline"),
			El("h3", Class("card__title"), Text(e.Role)),
			El("span", Class("card__meta"), Text(e.Period)),
		),
		El("p", Class("card__text"), Text(e.Summary)),
	)
}

// ExperienceGrid renders every role.
func ExperienceGrid(entries []content.ExperienceEntry) Node {
	cards := make([]Node, len(entries))
	for i, e := range entries {
		cards[i] = ExperienceCard(e)
	}
	return grid("2", cards...)
}

// AboutBody is the about text card next to the quick facts card.
func AboutBody(p content.Profile, aboutHTML string) Node {
	points := make([]Node, len(p.AboutPoints))
	for i, pt := range p.AboutPoints {
		points[i] = El("li", nil, Text(pt))
	}
	return grid("5",
		El("div", Class("span-3"),
			Card("about-card",
				El("div", Class("prose"), Raw(aboutHTML)),
				El("ul", Class("card__list", "card__list--disc"), points...),
			),
		),
		El("div", Class("span-2"),
			Card("facts-card",
				El("h3", Class("card__title"), Text("Quick Facts")),
				chips(p.QuickFacts),
			),
		),
	)
}

// ContactForm is decorative: it has no action and its button does not
// submit.
func ContactForm() Node {
	field := func(label, id string, control Node) Node {
		return El("div", Class("field"),
			El("label", A("for", id, "class", "field__label"), Text(label)),
			control,
		)
	}
	return El("form", A("class", "form", "onsubmit", "return false"),
		field("Name", "contact-name",
			El("input", A("id", "contact-name", "class", "field__input", "placeholder", "Your name"))),
		field("Email", "contact-email",
			El("input", A("id", "contact-email", "type", "email", "class", "field__input", "placeholder", "you@example.com"))),
		field("Message", "contact-message",
			El("textarea", A("id", "contact-message", "rows", "4", "class", "field__input", "placeholder", "Tell me about your project..."))),
		El("button", A("type", "button", "class", "button button--solid"), Text("Send Message")),
	)
}

// LinkList renders the outbound placeholder links.
func LinkList(title string, links []content.Link) Node {
	items := make([]Node, len(links))
	for i, l := range links {
		items[i] = El("li", nil,
			El("a", A("href", l.Href, "class", "link"), icon(l.Kind), Text(l.Label)),
		)
	}
	return Card("links-card",
		El("h3", Class("card__title"), Text(title)),
		El("ul", Class("card__list"), items...),
	)
}

// ContactBody is the contact form beside the links card.
func ContactBody(p content.Profile, links []content.Link) Node {
	return grid("5",
		El("div", Class("span-3"), Card("form-card", ContactForm())),
		El("div", Class("span-2"), LinkList(p.LinksTitle, links)),
	)
}

func hrefOrHash(href string) string {
	if href == "" {
		return "#"
	}
	return href
}
