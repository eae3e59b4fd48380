package finto

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/types"
)

// upsertKeywords creates or overwrites one keyword row per concept and
// attaches the previously persisted alternate labels. Failure on one concept
// does not abort the rest.
func (imp *Importer) upsertKeywords(ctx context.Context, concepts map[string]*Concept, refs *Refs, report *Report) {
	now := time.Now()
	for _, ref := range sortedRefs(concepts) {
		c := concepts[ref]

		var dataSourceID string
		switch c.Namespace {
		case namespaceJUPO:
			dataSourceID = refs.DataSourceJUPO.ID
		case namespaceYSO:
			dataSourceID = refs.DataSourceYSO.ID
		default:
			continue
		}

		kw := &types.Keyword{
			ID:               c.Ref,
			DataSourceID:     dataSourceID,
			NameFi:           c.PrefLabel["fi"],
			NameSv:           c.PrefLabel["sv"],
			NameEn:           c.PrefLabel["en"],
			Broader:          refsJSON(c.Broader),
			Narrower:         refsJSON(c.Narrower),
			Deprecated:       c.Deprecated,
			CreatedTime:      now,
			LastModifiedTime: now,
		}
		if err := imp.keywords.Upsert(ctx, nil, kw); err != nil {
			imp.log.Error("Failed to save keyword", "ref", c.Ref, "error", err)
			report.fail(StageKeywords, c.Ref, err)
			continue
		}
		report.KeywordsUpserted++

		var alts []*types.KeywordLabel
		for _, lang := range supportedLanguages {
			text := c.AltLabel[lang]
			if text == nil || *text == "" {
				continue
			}
			label, err := imp.labels.GetByNameAndLanguage(ctx, nil, *text, lang)
			if err != nil {
				// A missing label row means the label stage failed for
				// this pair; the keyword simply keeps fewer links.
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					imp.log.Error("Alt label lookup failed", "ref", c.Ref, "language", lang, "error", err)
					report.fail(StageKeywords, c.Ref, err)
				}
				continue
			}
			alts = append(alts, label)
		}
		if len(alts) > 0 {
			if err := imp.keywords.AppendAltLabels(ctx, nil, kw, alts); err != nil {
				imp.log.Error("Failed to link alt labels", "ref", c.Ref, "error", err)
				report.fail(StageKeywords, c.Ref, err)
			}
		}
	}
}

// mapReplacements assigns the replacement reference for extracted concepts
// that point at a successor. Active only when replacement linking is enabled.
func (imp *Importer) mapReplacements(ctx context.Context, concepts map[string]*Concept, report *Report) {
	if !imp.cfg.LinkReplacements {
		return
	}
	for _, ref := range sortedRefs(concepts) {
		c := concepts[ref]
		if c.ReplacedBy == nil {
			continue
		}
		if err := imp.keywords.SetDeprecated(ctx, nil, c.Ref, c.ReplacedBy); err != nil {
			imp.log.Error("Could not map replacement", "ref", c.Ref, "replaced_by", *c.ReplacedBy, "error", err)
			report.fail(StageDeprecate, c.Ref, err)
			continue
		}
		report.Replaced++
		imp.log.Info("Added replacement", "ref", c.Ref, "replaced_by", *c.ReplacedBy)
	}
}

// markDeprecated sets the deprecated flag for retired references found during
// extraction. References not yet synced are silently skipped. The replacement
// pointer is assigned only when replacement linking is enabled.
func (imp *Importer) markDeprecated(ctx context.Context, pairs []DeprecatedPair, report *Report) {
	for _, pair := range pairs {
		replacedBy := pair.ReplacedBy
		if !imp.cfg.LinkReplacements {
			replacedBy = nil
		}
		err := imp.keywords.SetDeprecated(ctx, nil, pair.Ref, replacedBy)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			imp.log.Error("Failed to mark keyword deprecated", "ref", pair.Ref, "error", err)
			report.fail(StageDeprecate, pair.Ref, err)
			continue
		}
		report.MarkedDeprecated++
	}
}

func refsJSON(refs []string) datatypes.JSON {
	if len(refs) == 0 {
		return nil
	}
	raw, err := json.Marshal(refs)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func sortedRefs(concepts map[string]*Concept) []string {
	refs := make([]string, 0, len(concepts))
	for ref := range concepts {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
