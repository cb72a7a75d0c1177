package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"surveyrank/internal/app"
	"surveyrank/internal/config"
	"surveyrank/internal/infrastructure"
)

func main() {
	input := flag.String("input", "", "path to the survey spreadsheet (.xlsx or .csv)")
	outDir := flag.String("outdir", "", "output directory for the report artifacts")
	configPath := flag.String("config", "", "optional YAML config file overriding the survey layout and outputs")
	flag.Parse()

	if *input == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "both -input and -outdir are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting survey rank-order report",
		slog.String("input", *input),
		slog.String("outdir", *outDir),
		slog.String("config", *configPath))

	if err := app.New(cfg, logger).Run(context.Background(), *input, *outDir); err != nil {
		logger.Error("Run failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
