package render

// SectionInput is everything RenderSection needs. Content is composed
// unchanged inside the section body.
type SectionInput struct {
	ID        string
	Title     string
	Subtitle  string
	Backdrop  bool
	Alternate bool
	Content   []Node
}

// RenderSection returns a titled section block. Backdrop composes the
// animated backdrop behind the section; Alternate picks the second of the
// two background tones.
func RenderSection(in SectionInput) Node {
	tone := "section--base"
	if in.Alternate {
		tone = "section--alt"
	}
	attrs := A("id", in.ID, "class", "section "+tone)
	var children []Node
	if in.Backdrop {
		attrs = append(attrs, Attr{Key: "data-backdrop", Val: in.ID})
		children = append(children, Backdrop())
	}

	heading := []Node{El("h2", Class("section__title"), Text(in.Title))}
	if in.Subtitle != "" {
		heading = append(heading, El("p", Class("section__subtitle"), Text(in.Subtitle)))
	}

	body := []Node{
		El("div", Class("section__head"),
			El("div", nil, heading...),
			El("a", A("href", "#"+in.ID, "class", "section__anchor"),
				icon("arrow-up-right"),
				Text("anchor"),
			),
		),
	}
	body = append(body, in.Content...)

	children = append(children, El("div", Class("container", "section__body"), body...))
	return El("section", attrs, children...)
}

// Backdrop is the decorative layer: two blurred orbs and the drifting
// gradient. It carries no content and is hidden from assistive tech.
func Backdrop() Node {
	return El("div", A("class", "backdrop", "aria-hidden", "true"),
		El("div", Class("backdrop__orb", "backdrop__orb--left")),
		El("div", Class("backdrop__orb", "backdrop__orb--right")),
		El("div", Class("backdrop__drift")),
	)
}

func icon(name string) Node {
	return El("span", A("class", "icon icon--"+name, "aria-hidden", "true"))
}
