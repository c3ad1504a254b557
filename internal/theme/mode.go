// Package theme owns the page's two visual flags and the skins they are
// applied to.
package theme

import "fmt"

// DisplayMode is the light/dark color scheme applied to the page root.
type DisplayMode bool

const (
	Light DisplayMode = false
	Dark  DisplayMode = true
)

// Toggle returns the opposite mode.
func (m DisplayMode) Toggle() DisplayMode { return !m }

func (m DisplayMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseDisplayMode accepts the wire values "light" and "dark".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("invalid display mode %q: must be light or dark", s)
}

// OverlayMode is the CRT scanline effect flag, independent of DisplayMode.
type OverlayMode bool

const (
	OverlayOff OverlayMode = false
	OverlayOn  OverlayMode = true
)

// Toggle returns the opposite mode.
func (m OverlayMode) Toggle() OverlayMode { return !m }

func (m OverlayMode) String() string {
	if m == OverlayOn {
		return "on"
	}
	return "off"
}

// ParseOverlayMode accepts the wire values "on" and "off".
func ParseOverlayMode(s string) (OverlayMode, error) {
	switch s {
	case "on":
		return OverlayOn, nil
	case "off":
		return OverlayOff, nil
	}
	return OverlayOn, fmt.Errorf("invalid overlay mode %q: must be on or off", s)
}
