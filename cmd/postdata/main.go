package main

import (
	"log/slog"
	"os"

	"github.com/llamacodes/postdata/cmd/postdata/cmd"
	"github.com/llamacodes/postdata/internal/config"
	"github.com/llamacodes/postdata/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer logger.Flush()

	if !cfg.DotEnvLoaded {
		slog.Debug("no .env file found, using environment variables")
	}

	rootCmd := cmd.BuildCmd(cfg)
	rootCmd.AddCommand(cmd.PublishCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		logger.Flush()
		os.Exit(1)
	}
}
