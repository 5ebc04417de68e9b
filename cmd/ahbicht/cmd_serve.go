package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveConfigFile string

var serveCmd = &cobra.Command{
	Use:   "serve --config <registry.yaml>",
	Short: "Watch a registry config file and log bundle changes until interrupted",
	Long: `serve is a development aid: it loads a RegistryConfig YAML file,
logs how many bundles it declares, then watches the file for changes and logs
each reload. It registers no evaluators itself — use this to confirm a
config file is being picked up before wiring it into a long-running
process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := content.LoadRegistryConfig(serveConfigFile)
		if err != nil {
			return err
		}
		logger.Info("loaded registry config", zap.String("path", serveConfigFile), zap.Int("bundles", len(cfg.Bundles)))

		cw, err := content.NewConfigWatcher(serveConfigFile, logger, func(reloaded content.RegistryConfig) {
			logger.Info("registry config reloaded", zap.Int("bundles", len(reloaded.Bundles)))
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cw.Start(ctx)
		<-ctx.Done()
		cw.Stop()
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "registry config YAML file to watch (required)")
	_ = serveCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(serveCmd)
}
