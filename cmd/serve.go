package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with live theme toggles",
	Long: `Start the HTTP server.

Examples:
  folio serve              # Start on the configured port (default 8080)
  folio serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, s, _, err := loadSite()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	srv, err := site.NewServer(s, site.ServerOptions{
		Port:             cfg.Port,
		Mode:             cfg.Mode,
		DefaultSkin:      cfg.Skin,
		BackdropInterval: cfg.BackdropInterval,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}
