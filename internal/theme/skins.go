package theme

func init() {
	Register(Minimal())
	Register(Arcade())
}

// Minimal is the neutral light/dark skin.
func Minimal() Skin {
	return Skin{
		Name:        "minimal",
		Title:       "Minimal",
		BodyFont:    `"Inter", ui-sans-serif, system-ui, sans-serif`,
		HeadingFont: `"Inter", ui-sans-serif, system-ui, sans-serif`,
		Light: Palette{
			Background: "#fafafa",
			Surface:    "#ffffff",
			SurfaceAlt: "#f5f5f5",
			Text:       "#171717",
			Muted:      "#525252",
			Accent:     "#6366f1",
			AccentAlt:  "#06b6d4",
			Border:     "#e5e5e5",
		},
		Dark: Palette{
			Background: "#0a0a0a",
			Surface:    "#171717",
			SurfaceAlt: "#111111",
			Text:       "#f5f5f5",
			Muted:      "#a3a3a3",
			Accent:     "#818cf8",
			AccentAlt:  "#22d3ee",
			Border:     "#262626",
		},
	}
}

// Arcade is the neon retro-arcade skin with the CRT overlay.
func Arcade() Skin {
	return Skin{
		Name:        "arcade",
		Title:       "Arcade",
		BodyFont:    `"VT323", ui-monospace, monospace`,
		HeadingFont: `"Press Start 2P", ui-monospace, monospace`,
		Light: Palette{
			Background: "#fdf4ff",
			Surface:    "#ffffff",
			SurfaceAlt: "#fae8ff",
			Text:       "#2e1065",
			Muted:      "#6b21a8",
			Accent:     "#db2777",
			AccentAlt:  "#0891b2",
			Border:     "#f0abfc",
		},
		Dark: Palette{
			Background: "#0b0221",
			Surface:    "#1a0536",
			SurfaceAlt: "#12032a",
			Text:       "#00d4ff",
			Muted:      "#9d00ff",
			Accent:     "#ff1493",
			AccentAlt:  "#ffe900",
			Border:     "#4a0080",
		},
		Overlay: true,
	}
}
