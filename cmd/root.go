package cmd

import (
	"log"

	"customer-feedback/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "customer-feedback",
	Short: "Customer feedback form and dashboard",
	Long: `customer-feedback serves a product feedback form and an analytics dashboard
over a fixed feedback dataset, plus a JSON API for the same screens.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".env", "env file to read settings from")
	rootCmd.PersistentFlags().StringP("port", "p", "", "HTTP port (overrides PORT)")
	_ = v.BindPFlag("PORT", rootCmd.PersistentFlags().Lookup("port"))
}

// setup loads config and builds the logger shared by every command.
func setup(cmd *cobra.Command) (*utils.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	config, err := utils.LoadConfig(v, path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}
