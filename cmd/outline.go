package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/outline"
	"github.com/Zachkp/folio/internal/site"
	"github.com/Zachkp/folio/internal/theme"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the page's section outline",
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().String("skin", "", "skin to preview (defaults to the configured skin)")
	outlineCmd.Flags().Bool("light", false, "preview with the display mode toggled to light")
	outlineCmd.Flags().Bool("no-overlay", false, "preview with the overlay effect toggled off")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	cfg, s, _, err := loadSite()
	if err != nil {
		return err
	}
	name := cfg.Skin
	if v, _ := cmd.Flags().GetString("skin"); v != "" {
		name = v
	}
	skin, err := theme.Get(name)
	if err != nil {
		return err
	}

	ctrl := theme.NewController()
	if light, _ := cmd.Flags().GetBool("light"); light {
		ctrl.ToggleDisplayMode()
	}
	if off, _ := cmd.Flags().GetBool("no-overlay"); off {
		ctrl.ToggleOverlayEffect()
	}

	root, err := s.Page(site.PageOptions{Skin: skin, State: ctrl.State(), Year: time.Now().Year()})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), outline.Render(root, skin, ctrl.State()))
	return nil
}
