package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kaupunki/events-backend/internal/db"
	"github.com/kaupunki/events-backend/internal/importer/finto"
	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/utils"
)

func main() {
	var configPath string
	var urlOverride string
	var dryRun bool
	flag.StringVar(&configPath, "config", "", "path to importer YAML config")
	flag.StringVar(&urlOverride, "url", "", "override the ontology URL")
	flag.BoolVar(&dryRun, "dry-run", false, "fetch and extract only, write nothing")
	flag.Parse()

	logMode := utils.GetEnv("LOG_MODE", "development", nil)
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := finto.LoadConfig(configPath)
	if err != nil {
		log.Error("Failed to load importer config", "error", err)
		os.Exit(1)
	}
	if urlOverride != "" {
		cfg.OntologyURL = urlOverride
	}

	ctx := context.Background()

	if dryRun {
		fetcher := finto.NewFetcher(cfg.OntologyURL, cfg.Timeout(), log)
		graph, err := fetcher.Fetch(ctx)
		if err != nil {
			log.Error("Fetch failed", "error", err)
			os.Exit(2)
		}
		concepts, deprecated := finto.Extract(graph)
		fmt.Printf("[dry-run] triples=%d concepts=%d deprecated_pairs=%d\n", graph.Len(), len(concepts), len(deprecated))
		return
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	imp := finto.New(pg.DB(), log, cfg)
	report, err := imp.Run(ctx)
	if err != nil {
		log.Error("Import run aborted", "error", err)
		os.Exit(2)
	}

	fmt.Printf("done; run_id=%s extracted=%d skipped_unchanged=%d keywords_upserted=%d marked_deprecated=%d replaced=%d failures=%d\n",
		report.RunID,
		report.Extracted,
		report.SkippedUnchanged,
		report.KeywordsUpserted,
		report.MarkedDeprecated,
		report.Replaced,
		len(report.Failures),
	)
	for _, f := range report.Failures {
		fmt.Printf("failed: stage=%s ref=%s error=%v\n", f.Stage, f.Ref, f.Err)
	}
}
