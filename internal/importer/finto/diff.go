package finto

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/repos"
)

// DiffFilter drops concepts whose persisted deprecation state already matches
// the extracted one. Label edits upstream are intentionally not diffed; only
// the deprecated flag and the replacement reference count as deltas.
type DiffFilter struct {
	keywords repos.KeywordRepo
	log      *logger.Logger
}

func NewDiffFilter(keywords repos.KeywordRepo, baseLog *logger.Logger) *DiffFilter {
	return &DiffFilter{keywords: keywords, log: baseLog.With("component", "DiffFilter")}
}

// Apply returns the subset of concepts that need a write: new references, and
// references whose deprecated flag or replacement changed. Unchanged
// references are skipped.
func (f *DiffFilter) Apply(ctx context.Context, concepts map[string]*Concept) map[string]*Concept {
	kept := make(map[string]*Concept, len(concepts))
	skipped := 0
	for ref, c := range concepts {
		existing, err := f.keywords.GetByID(ctx, nil, ref)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				// On lookup trouble, keep the concept: upserting is safe.
				f.log.Error("Keyword lookup failed, keeping concept", "ref", ref, "error", err)
			}
			kept[ref] = c
			continue
		}
		if existing.Deprecated == c.Deprecated && ptrEqual(existing.ReplacedByID, c.ReplacedBy) {
			skipped++
			continue
		}
		kept[ref] = c
	}
	if skipped > 0 {
		f.log.Info("Skipped unchanged keywords", "count", skipped)
	}
	return kept
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
