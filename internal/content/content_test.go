package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Navigation, 6)
	assert.Equal(t, "home", c.Navigation[0].ID)
	assert.Equal(t, NavigationEntry{ID: "contact", Label: "Contact"}, c.Navigation[5])
	assert.Len(t, c.Projects, 4)
	assert.Equal(t, []string{"Python", "Flask", "CNN"}, c.Projects[0].Tags)
	assert.Len(t, c.Sections, 5)
	assert.Len(t, c.Skills, 3)
}

func TestDefaultReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Projects[0].Tags[0] = "changed"
	a.Navigation[0].Label = "changed"

	b := Default()
	assert.Equal(t, "Python", b.Projects[0].Tags[0])
	assert.Equal(t, "Home", b.Navigation[0].Label)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	yml := `profile:
  name: Ada Lovelace
projects:
  - title: Analytical Engine Notes
    description: Annotated translation.
    tags: [Math, History]
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", c.Profile.Name)
	assert.Equal(t, Default().Profile.Headline, c.Profile.Headline, "unset fields keep defaults")
	require.Len(t, c.Projects, 1, "a table in the file replaces the default table")
	assert.Equal(t, []string{"Math", "History"}, c.Projects[0].Tags)
	assert.Equal(t, Default().Navigation, c.Navigation)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	yml := `sections:
  - id: about
    title: About
  - id: about
    title: Again
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "duplicate id")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Content)
		wantErr string
	}{
		{"empty nav id", func(c *Content) { c.Navigation[1].ID = "" }, "navigation[1]: id is required"},
		{"duplicate nav id", func(c *Content) { c.Navigation[2].ID = "about" }, "duplicate id"},
		{"hero id reused", func(c *Content) { c.Sections[0].ID = HeroID }, "reserved"},
		{"missing title", func(c *Content) { c.Sections[1].Title = "" }, "title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.wantErr)
		})
	}
}

func TestMarkdownHTML(t *testing.T) {
	out, err := MarkdownHTML("Hello **world**")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>\n", out)

	out, err = MarkdownHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
