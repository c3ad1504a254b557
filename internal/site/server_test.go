package site

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/folio/internal/content"
)

func newTestSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(content.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func newTestServer(t *testing.T, skin string) *Server {
	t.Helper()
	srv, err := NewServer(newTestSite(t), ServerOptions{
		Port:             8080,
		Mode:             gin.TestMode,
		DefaultSkin:      skin,
		BackdropInterval: 5 * time.Millisecond,
	})
	require.NoError(t, err)
	return srv
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTrigger(t *testing.T, rec *httptest.ResponseRecorder) themeChanged {
	t.Helper()
	var payload map[string]themeChanged
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &payload))
	ev, ok := payload["themeChanged"]
	require.True(t, ok)
	return ev
}

func TestNewServerUnknownSkin(t *testing.T) {
	_, err := NewServer(newTestSite(t), ServerOptions{Mode: gin.TestMode, DefaultSkin: "vaporwave"})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "minimal")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHomePageInitialState(t *testing.T) {
	srv := newTestServer(t, "arcade")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `class="dark overlay-enabled scroll-smooth"`)
	assert.Contains(t, body, `hx-post="/theme/display"`)
	assert.Contains(t, body, `hx-post="/theme/overlay"`)
	assert.Contains(t, body, `<section id="projects"`)
}

func TestSkinPages(t *testing.T) {
	srv := newTestServer(t, "minimal")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skins/arcade", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-skin="arcade"`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skins/vaporwave", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleDisplayRoundTrip(t *testing.T) {
	srv := newTestServer(t, "arcade")

	rec := postForm(t, srv.Handler(), "/theme/display", url.Values{
		"display": {"dark"}, "skin": {"arcade"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	ev := decodeTrigger(t, rec)
	assert.Equal(t, themeChanged{Flag: "display", Value: "light", Class: "dark", Enabled: false}, ev)
	assert.Contains(t, rec.Body.String(), `id="toggle-display"`)
	assert.Contains(t, rec.Body.String(), "icon--moon")

	rec = postForm(t, srv.Handler(), "/theme/display", url.Values{
		"display": {ev.Value}, "skin": {"arcade"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	ev = decodeTrigger(t, rec)
	assert.Equal(t, "dark", ev.Value)
	assert.True(t, ev.Enabled)
}

func TestToggleOverlay(t *testing.T) {
	srv := newTestServer(t, "arcade")

	rec := postForm(t, srv.Handler(), "/theme/overlay", url.Values{
		"overlay": {"on"}, "skin": {"arcade"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	ev := decodeTrigger(t, rec)
	assert.Equal(t, themeChanged{Flag: "overlay", Value: "off", Class: "overlay-enabled", Enabled: false}, ev)
	assert.Contains(t, rec.Body.String(), `aria-pressed="false"`)
}

func TestToggleOverlayRejectedForMinimal(t *testing.T) {
	srv := newTestServer(t, "minimal")
	rec := postForm(t, srv.Handler(), "/theme/overlay", url.Values{
		"overlay": {"on"}, "skin": {"minimal"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleBadForm(t *testing.T) {
	srv := newTestServer(t, "arcade")
	tests := []struct {
		name string
		path string
		form url.Values
	}{
		{"missing", "/theme/display", url.Values{}},
		{"bad display", "/theme/display", url.Values{"display": {"sepia"}, "skin": {"arcade"}}},
		{"bad overlay", "/theme/overlay", url.Values{"overlay": {"maybe"}, "skin": {"arcade"}}},
		{"overlay sent to display", "/theme/display", url.Values{"overlay": {"on"}, "skin": {"arcade"}}},
		{"bad skin", "/theme/display", url.Values{"display": {"dark"}, "skin": {"vaporwave"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, srv.Handler(), tt.path, tt.form)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("HX-Trigger"))
		})
	}
}

// client replays what htmx and theme.js do with a served page: a click posts
// the button's hx-vals, the response replaces that button and the trigger
// updates the root classes.
type client struct {
	t       *testing.T
	h       http.Handler
	classes map[string]bool
	buttons map[string]*html.Node
}

func load(t *testing.T, h http.Handler, path string) *client {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := html.Parse(rec.Body)
	require.NoError(t, err)

	cl := &client{t: t, h: h, classes: map[string]bool{}, buttons: map[string]*html.Node{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html":
				for _, c := range strings.Fields(attr(n, "class")) {
					cl.classes[c] = true
				}
			case "button":
				if id := attr(n, "id"); id != "" {
					cl.buttons[id] = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return cl
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (cl *client) click(id string) {
	cl.t.Helper()
	btn, ok := cl.buttons[id]
	require.True(cl.t, ok, "no button %s", id)

	var vals map[string]string
	require.NoError(cl.t, json.Unmarshal([]byte(attr(btn, "hx-vals")), &vals))
	form := url.Values{}
	for k, v := range vals {
		form.Set(k, v)
	}
	rec := postForm(cl.t, cl.h, attr(btn, "hx-post"), form)
	require.Equal(cl.t, http.StatusOK, rec.Code, rec.Body.String())

	ev := decodeTrigger(cl.t, rec)
	cl.classes[ev.Class] = ev.Enabled

	nodes, err := html.ParseFragment(rec.Body, &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	require.NoError(cl.t, err)
	require.Len(cl.t, nodes, 1)
	cl.buttons[id] = nodes[0]
}

func TestTogglesStayIndependentAcrossEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		clicks []string
		dark   bool
		crt    bool
	}{
		{"display then overlay", []string{"toggle-display", "toggle-overlay"}, false, false},
		{"overlay then display", []string{"toggle-overlay", "toggle-display"}, false, false},
		{"display twice then overlay", []string{"toggle-display", "toggle-display", "toggle-overlay"}, true, false},
		{"interleaved", []string{"toggle-display", "toggle-overlay", "toggle-display", "toggle-overlay", "toggle-display"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := load(t, newTestServer(t, "arcade").Handler(), "/")
			require.True(t, cl.classes["dark"])
			require.True(t, cl.classes["overlay-enabled"])

			for _, id := range tt.clicks {
				cl.click(id)
			}
			assert.Equal(t, tt.dark, cl.classes["dark"], "display mode")
			assert.Equal(t, tt.crt, cl.classes["overlay-enabled"], "overlay mode")
			assert.True(t, cl.classes["scroll-smooth"])
		})
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t, "minimal")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	css := rec.Body.String()
	assert.Contains(t, css, "@keyframes backdrop-drift")
	assert.Contains(t, css, `:root[data-skin="arcade"].dark`)
	assert.Contains(t, css, `:root[data-skin="minimal"]`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/theme.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "themeChanged")
}

func TestBackdropStreamStopsWithRequest(t *testing.T) {
	srv := newTestServer(t, "minimal")

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/backdrop/stream?section=skills", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		srv.Handler().ServeHTTP(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end with its request")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event:frame")
	assert.Contains(t, body, `"section":"skills"`)
}
