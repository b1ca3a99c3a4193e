package cmd

import (
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serve the feedback form at /, the dashboard at /dashboard and the JSON API under /api.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("metrics", config.Metrics.Enabled),
	)

	// Initialize all repositories
	repos := repository.NewRepository(logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		logger.Error("Failed to wire application", zap.Error(err))
		return err
	}

	return APIServer(cmd.Context(), app.Router, config, logger)
}
