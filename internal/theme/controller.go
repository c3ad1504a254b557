package theme

// State is an immutable snapshot of both flags. It is what the render tree
// reads; only a Controller produces new values.
type State struct {
	Display DisplayMode
	Overlay OverlayMode
}

// Initial is the state every page load starts from.
var Initial = State{Display: Dark, Overlay: OverlayOn}

// Root classes each flag controls.
const (
	DarkClass    = "dark"
	OverlayClass = "overlay-enabled"
)

// RootClasses returns the classes for the document root. The overlay class
// is only emitted for skins that offer the effect.
func (s State) RootClasses(skin Skin) []string {
	classes := make([]string, 0, 3)
	if s.Display == Dark {
		classes = append(classes, DarkClass)
	}
	if skin.Overlay && s.Overlay == OverlayOn {
		classes = append(classes, OverlayClass)
	}
	return append(classes, "scroll-smooth")
}

// Controller is the single writer of the display and overlay flags.
type Controller struct {
	state State
}

// NewController returns a controller in the Initial state.
func NewController() *Controller {
	return &Controller{state: Initial}
}

// Restore returns a controller holding s. Stateless callers such as HTTP
// handlers use it to continue from the snapshot a client sent back.
func Restore(s State) *Controller {
	return &Controller{state: s}
}

// ToggleDisplayMode flips between Light and Dark and returns the new state.
func (c *Controller) ToggleDisplayMode() State {
	c.state.Display = c.state.Display.Toggle()
	return c.state
}

// ToggleOverlayEffect flips the overlay and returns the new state.
func (c *Controller) ToggleOverlayEffect() State {
	c.state.Overlay = c.state.Overlay.Toggle()
	return c.state
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return c.state
}
