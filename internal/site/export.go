package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/theme"
)

// ExportOptions control a static build.
type ExportOptions struct {
	Dir         string
	DefaultSkin string
	Year        int
}

// Export writes dir/index.html in the default skin, dir/<skin>/index.html
// for every registered skin, and the shared assets under dir/static. Pages
// are rendered concurrently. It returns the number of pages written.
func (s *Site) Export(ctx context.Context, opts ExportOptions) (int, error) {
	def, err := theme.Get(opts.DefaultSkin)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Join(opts.Dir, "static"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.Dir, "static", "site.css"), []byte(Stylesheet()), 0o644); err != nil {
		return 0, fmt.Errorf("writing stylesheet: %w", err)
	}
	if err := os.WriteFile(filepath.Join(opts.Dir, "static", "theme.js"), Script(), 0o644); err != nil {
		return 0, fmt.Errorf("writing script: %w", err)
	}

	type job struct {
		skin      theme.Skin
		path      string
		assetBase string
	}
	jobs := []job{{skin: def, path: filepath.Join(opts.Dir, "index.html")}}
	for _, skin := range theme.All() {
		jobs = append(jobs, job{
			skin:      skin,
			path:      filepath.Join(opts.Dir, skin.Name, "index.html"),
			assetBase: "../",
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := s.Document(PageOptions{
				Skin:      j.skin,
				State:     theme.Initial,
				AssetBase: j.assetBase,
				Year:      opts.Year,
			})
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(j.path), err)
			}
			if err := os.WriteFile(j.path, doc, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", j.path, err)
			}
			s.log.Debug("page written", "skin", j.skin.Name, "path", j.path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(jobs), nil
}
