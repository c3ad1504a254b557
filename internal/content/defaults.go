package content

var (
	aboutMe = `I'm a final-year Informatics student at Universitas Pamulang. I love shipping
pragmatic, well-documented software, from neat PHP dashboards to Kotlin Android apps,
and applying machine learning to real problems like **rice disease classification**.`

	navigation = []NavigationEntry{
		{ID: "home", Label: "Home"},
		{ID: "about", Label: "About"},
		{ID: "skills", Label: "Skills"},
		{ID: "projects", Label: "Projects"},
		{ID: "experience", Label: "Experience"},
		{ID: "contact", Label: "Contact"},
	}

	sections = []SectionMeta{
		{ID: "about", Title: "About", Subtitle: "A quick snapshot of who I am and what I do.", Alternate: true},
		{ID: "skills", Title: "Skills", Subtitle: "Tech I use to turn ideas into products.", Backdrop: true},
		{ID: "projects", Title: "Featured Projects", Subtitle: "A few things I'm proud of.", Alternate: true},
		{ID: "experience", Title: "Experience", Subtitle: "Work & projects where I learned the most.", Backdrop: true},
		{ID: "contact", Title: "Contact", Subtitle: "Let's build something together.", Alternate: true},
	}

	skills = []SkillGroup{
		{Title: "Frontend", Items: []string{"HTML, CSS, JavaScript", "React, TailwindCSS", "Android (Kotlin, Compose)"}},
		{Title: "Backend", Items: []string{"PHP (Native), Flask", "MySQL, PostgreSQL", "REST APIs, Auth, Reporting"}},
		{Title: "AI/ML", Items: []string{"Computer Vision (CNNs)", "Model training & evaluation", "Data pipelines (Kaggle/Colab)"}},
	}

	projects = []ProjectEntry{
		{
			Title:       "Rice Disease Classifier (CNN)",
			Description: "Web app to classify rice leaf diseases with image upload, causes & suggested actions.",
			Tags:        []string{"Python", "Flask", "CNN"},
		},
		{
			Title:       "HR/Payroll Web Suite",
			Description: "Professional PHP/MySQL system for employees, payroll, CSV import/export, and reports.",
			Tags:        []string{"PHP", "MySQL", "Reports"},
		},
		{
			Title:       "Contact Manager (Android)",
			Description: "Material 3 app with Room DB, search, and clean architecture.",
			Tags:        []string{"Kotlin", "Room", "Compose"},
		},
		{
			Title:       "Money Changer Accounting",
			Description: "Native PHP app for transactions, rate management, cash stock, and dashboard.",
			Tags:        []string{"PHP", "Accounting"},
		},
	}

	experience = []ExperienceEntry{
		{
			Role:    "Intern, PT. Kurabo",
			Period:  "2023",
			Summary: "Assisted with IT support and small tooling, learning fast delivery and clean documentation.",
		},
		{
			Role:    "Freelance Projects",
			Period:  "2023 to now",
			Summary: "Built multiple web utilities and Android apps for SMEs; focused on reliability and usability.",
		},
	}

	links = []Link{
		{Kind: "mail", Label: "you@mail.com", Href: "mailto:you@mail.com"},
		{Kind: "github", Label: "github.com/yourname", Href: "#"},
		{Kind: "linkedin", Label: "linkedin.com/in/yourname", Href: "#"},
	}
)

// Default returns the built-in content tables. Each call returns fresh
// slices, so callers may modify the result.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:        "Zidan Ramadhan",
			FirstName:   "Zidan",
			Headline:    "Software Developer & AI Enthusiast",
			Tagline:     "I build clean, reliable web & mobile apps and experiment with computer vision models. Based in Indonesia.",
			HeroChips:   []string{"Indonesia", "Android / Web", "AI / CV / CNN"},
			About:       aboutMe,
			AboutPoints: []string{"Focus: Web, Android, and Computer Vision", "Style: Minimal, elegant, readable", "Tools: Kotlin, PHP/MySQL, Python, Tailwind"},
			QuickFacts:  []string{"Material 3", "TailwindCSS", "Room DB", "Flask", "PostgreSQL", "JasperReports", "Framer Motion"},
			LinksTitle:  "Elsewhere",
		},
		Navigation: append([]NavigationEntry(nil), navigation...),
		Sections:   append([]SectionMeta(nil), sections...),
		Skills:     cloneSkills(skills),
		Projects:   cloneProjects(projects),
		Experience: append([]ExperienceEntry(nil), experience...),
		Links:      append([]Link(nil), links...),
	}
}

func cloneSkills(in []SkillGroup) []SkillGroup {
	out := make([]SkillGroup, len(in))
	for i, g := range in {
		out[i] = SkillGroup{Title: g.Title, Items: append([]string(nil), g.Items...)}
	}
	return out
}

func cloneProjects(in []ProjectEntry) []ProjectEntry {
	out := make([]ProjectEntry, len(in))
	for i, p := range in {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}
