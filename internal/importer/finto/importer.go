package finto

import (
	"context"

	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/repos"
)

// Importer synchronizes the JUPO/YSO controlled vocabulary into the keyword
// tables. One Run is a single-threaded, run-to-completion pipeline:
// fetch -> extract -> diff -> labels -> keywords -> deprecations.
type Importer struct {
	db       *gorm.DB
	log      *logger.Logger
	cfg      Config
	fetcher  *Fetcher
	keywords repos.KeywordRepo
	labels   repos.KeywordLabelRepo
}

func New(db *gorm.DB, baseLog *logger.Logger, cfg Config) *Importer {
	log := baseLog.With("importer", "finto")
	return &Importer{
		db:       db,
		log:      log,
		cfg:      cfg,
		fetcher:  NewFetcher(cfg.OntologyURL, cfg.Timeout(), log),
		keywords: repos.NewKeywordRepo(db, log),
		labels:   repos.NewKeywordLabelRepo(db, log),
	}
}

// Run executes one full synchronization. A fetch failure aborts the run and
// is returned; per-item failures in later stages are collected into the
// report and never abort sibling items.
func (imp *Importer) Run(ctx context.Context) (*Report, error) {
	report := newReport()
	defer report.finish()

	imp.log.Info("Ensuring bootstrap rows...", "run_id", report.RunID)
	refs, err := ensureBootstrap(ctx, imp.db, DefaultBootstrap())
	if err != nil {
		return report, err
	}

	graph, err := imp.fetcher.Fetch(ctx)
	if err != nil {
		return report, err
	}
	report.Triples = graph.Len()

	imp.log.Info("Extracting concepts...")
	concepts, deprecatedPairs := Extract(graph)
	report.Extracted = len(concepts)
	report.DeprecatedPairs = len(deprecatedPairs)
	imp.log.Info("Concepts extracted", "concepts", len(concepts), "deprecated_pairs", len(deprecatedPairs))

	imp.log.Info("Diffing against persisted keywords...")
	before := len(concepts)
	concepts = NewDiffFilter(imp.keywords, imp.log).Apply(ctx, concepts)
	report.SkippedUnchanged = before - len(concepts)

	imp.log.Info("Saving keyword labels...")
	imp.upsertLabels(ctx, concepts, report)

	imp.log.Info("Saving keywords...")
	imp.upsertKeywords(ctx, concepts, refs, report)

	imp.log.Info("Mapping replacements...")
	imp.mapReplacements(ctx, concepts, report)

	imp.log.Info("Marking deprecated keywords...")
	imp.markDeprecated(ctx, deprecatedPairs, report)

	imp.log.Info("Import run finished",
		"run_id", report.RunID,
		"extracted", report.Extracted,
		"skipped_unchanged", report.SkippedUnchanged,
		"keywords_upserted", report.KeywordsUpserted,
		"marked_deprecated", report.MarkedDeprecated,
		"failures", len(report.Failures),
	)
	return report, nil
}
