package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	a, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, a, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildAnalyzer assembles the taxonomy store and optional grammar checker.
func buildAnalyzer(cfg *config.Config, log *zap.Logger) (*analyzer.Analyzer, error) {
	store := taxonomy.NewStore()
	if cfg.TaxonomyPath != "" {
		var err error
		store, err = taxonomy.LoadFile(cfg.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
	}

	var checker grammar.Checker
	if cfg.GeminiAPIKey != "" {
		checker = grammar.NewGeminiChecker(cfg.GeminiAPIKey, log)
	}

	return analyzer.New(store, checker, log), nil
}
