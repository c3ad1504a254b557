package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/backdrop"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/theme"
)

// ServerOptions configure the HTTP server.
type ServerOptions struct {
	Port             int
	Mode             string
	DefaultSkin      string
	BackdropInterval time.Duration
}

// Server serves the page and the theme endpoints. It keeps no per-visitor
// state: every page load starts from theme.Initial and each toggle carries
// its own flag in the request.
type Server struct {
	site     *Site
	engine   *gin.Engine
	port     int
	skin     theme.Skin
	interval time.Duration
	now      func() time.Time
}

// NewServer builds the gin engine and its routes.
func NewServer(s *Site, opts ServerOptions) (*Server, error) {
	skin, err := theme.Get(opts.DefaultSkin)
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	srv := &Server{
		site:     s,
		engine:   gin.Default(),
		port:     opts.Port,
		skin:     skin,
		interval: opts.BackdropInterval,
		now:      time.Now,
	}
	srv.setupRoutes()
	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv *Server) Handler() http.Handler {
	return srv.engine
}

func (srv *Server) setupRoutes() {
	r := srv.engine

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	stylesheet := []byte(Stylesheet())
	r.GET("/static/site.css", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/css; charset=utf-8", stylesheet)
	})
	r.GET("/static/theme.js", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/javascript; charset=utf-8", Script())
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		srv.servePage(c, srv.skin)
	})

	r.GET("/skins/:name", func(c *gin.Context) {
		skin, err := theme.Get(c.Param("name"))
		if errors.Is(err, theme.ErrUnknownSkin) {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		srv.servePage(c, skin)
	})

	// HTMX toggles - each returns the re-rendered button
	r.POST("/theme/display", srv.toggleHandler(toggleDisplay))
	r.POST("/theme/overlay", srv.toggleHandler(toggleOverlay))

	r.GET("/backdrop/stream", srv.streamBackdrop)
}

func (srv *Server) servePage(c *gin.Context, skin theme.Skin) {
	doc, err := srv.site.Document(PageOptions{
		Skin:        skin,
		State:       theme.NewController().State(),
		AssetBase:   "/",
		Interactive: true,
		Year:        srv.now().Year(),
	})
	if err != nil {
		srv.site.log.Error("rendering page", "skin", skin.Name, "err", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

type toggleKind int

const (
	toggleDisplay toggleKind = iota
	toggleOverlay
)

// themeChanged is the HX-Trigger payload the page script applies to the
// document root. It names one flag and the root class that flag controls,
// so the script touches that class and nothing else.
type themeChanged struct {
	Flag    string `json:"flag"`
	Value   string `json:"value"`
	Class   string `json:"class"`
	Enabled bool   `json:"enabled"`
}

// toggleHandler toggles the one flag its endpoint owns. The request carries
// only that flag, so the other one is never read or reported.
func (srv *Server) toggleHandler(kind toggleKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		skin, err := theme.Get(c.PostForm("skin"))
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		var (
			ev     themeChanged
			button render.Node
		)
		switch kind {
		case toggleDisplay:
			display, err := theme.ParseDisplayMode(c.PostForm("display"))
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			state := theme.Restore(theme.State{Display: display}).ToggleDisplayMode()
			ev = themeChanged{
				Flag:    "display",
				Value:   state.Display.String(),
				Class:   theme.DarkClass,
				Enabled: state.Display == theme.Dark,
			}
			button = render.DisplayToggle(state, skin, true)
		case toggleOverlay:
			if !skin.Overlay {
				c.String(http.StatusBadRequest, fmt.Sprintf("skin %q has no overlay effect", skin.Name))
				return
			}
			overlay, err := theme.ParseOverlayMode(c.PostForm("overlay"))
			if err != nil {
				c.String(http.StatusBadRequest, err.Error())
				return
			}
			state := theme.Restore(theme.State{Overlay: overlay}).ToggleOverlayEffect()
			ev = themeChanged{
				Flag:    "overlay",
				Value:   state.Overlay.String(),
				Class:   theme.OverlayClass,
				Enabled: state.Overlay == theme.OverlayOn,
			}
			button = render.OverlayToggle(state, skin, true)
		}

		trigger, err := json.Marshal(map[string]themeChanged{"themeChanged": ev})
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to encode trigger")
			return
		}

		var buf bytes.Buffer
		if err := render.Write(&buf, button); err != nil {
			srv.site.log.Error("rendering toggle", "err", err)
			c.String(http.StatusInternalServerError, "failed to render toggle")
			return
		}

		srv.site.log.Debug("theme toggled", "skin", skin.Name, ev.Flag, ev.Value)
		c.Header("HX-Trigger", string(trigger))
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

// streamFrame is one server-sent backdrop frame.
type streamFrame struct {
	Section string  `json:"section"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// streamBackdrop sends backdrop frames until the client goes away, which
// happens when the section scrolls out of view or the page is closed.
func (srv *Server) streamBackdrop(c *gin.Context) {
	section := c.DefaultQuery("section", "home")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	err := backdrop.Loop(c.Request.Context(), srv.interval, func(f backdrop.Frame) {
		c.SSEvent("frame", streamFrame{Section: section, X: f.X, Y: f.Y})
		c.Writer.Flush()
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		srv.site.log.Error("backdrop stream", "section", section, "err", err)
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", srv.port),
		Handler:     srv.engine,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	srv.site.log.Info("starting server", "addr", fmt.Sprintf("http://localhost:%d", srv.port), "skin", srv.skin.Name)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			srv.site.log.Error("server shutdown", "err", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
