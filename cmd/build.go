package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as static HTML",
	Long:  `Writes index.html in the default skin, one page per skin under <out>/<skin>/, and the shared assets.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, s, logger, err := loadSite()
	if err != nil {
		return err
	}
	dir := cfg.OutputDir
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		dir = out
	}

	n, err := s.Export(cmd.Context(), site.ExportOptions{
		Dir:         dir,
		DefaultSkin: cfg.Skin,
		Year:        time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	logger.Info("static site generated", "dir", dir, "pages", n)
	return nil
}
