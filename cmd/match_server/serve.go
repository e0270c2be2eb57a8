package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campushq/talent-match/internal/config"
	"github.com/campushq/talent-match/internal/llm"
	"github.com/campushq/talent-match/internal/logger"
	"github.com/campushq/talent-match/internal/matching"
	"github.com/campushq/talent-match/internal/ranking"
	"github.com/campushq/talent-match/internal/retention"
	"github.com/campushq/talent-match/internal/server"
	"github.com/campushq/talent-match/internal/store"
	"github.com/campushq/talent-match/internal/taxonomy"
	"github.com/campushq/talent-match/internal/vector"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the candidate search, ranking, and skill-match endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required (env or config file)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		tax, err = taxonomy.LoadFile(cfg.TaxonomyPath)
		if err != nil {
			return err
		}
		log.Info("loaded taxonomy file",
			zap.String("path", cfg.TaxonomyPath),
			zap.Int("entries", tax.Len()))
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to candidate store: %w", err)
	}
	defer db.Close()

	var searcher vector.Searcher
	if cfg.VectorServiceURL != "" {
		searcher = vector.NewHTTPClient(cfg.VectorServiceURL)
	} else {
		log.Warn("no vector service configured, semantic signal disabled")
	}

	var scorer retention.Scorer = retention.NewFallbackScorer()
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		scorer = retention.NewGeminiScorer(client)
	} else {
		log.Warn("no API key configured, retention scoring uses the local heuristic")
	}
	scorer = retention.NewCachedScorer(scorer)

	ranker := ranking.New(
		matching.New(tax),
		scorer,
		log.Named("ranker"),
		ranking.Options{
			Concurrency:      cfg.Concurrency,
			RetentionTimeout: time.Duration(cfg.RetentionTimeout) * time.Second,
			RetentionCallCap: cfg.RetentionCallCap,
		},
	)

	srv := server.New(
		server.Config{Port: cfg.Port, SearchRateLimit: cfg.SearchRateLimit},
		db,
		searcher,
		ranker,
		tax,
		log.Named("server"),
	)
	return srv.Start()
}
