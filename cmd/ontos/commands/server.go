package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/config"
	"github.com/PavelShpagin/ontos/logger"
	"github.com/PavelShpagin/ontos/server"
)

// ServerCmd starts the websocket graph visualization server.
var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the graph visualization server",
	Long: `Serve the loaded ontology over HTTP: GET /graph returns the full
export, and /ws streams it to websocket clients that can then ask
reasoning questions and get witness paths back for highlighting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			port = cfg.Server.Port
		}

		srv := server.New(rt.Facade, rt.Resolver, rt.SeedName, logger.Logger)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Run(port) }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Infow("Shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	ServerCmd.Flags().IntP("port", "p", 0, "Listen port (default from config)")
}
