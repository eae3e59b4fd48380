package finto

import (
	"context"
)

// upsertLabels persists every distinct non-empty (text, language) alternate
// label pair that does not yet exist. A failing pair is recorded and skipped;
// the remaining pairs are still processed.
func (imp *Importer) upsertLabels(ctx context.Context, concepts map[string]*Concept, report *Report) {
	seen := map[string]bool{}
	for _, ref := range sortedRefs(concepts) {
		c := concepts[ref]
		for _, lang := range supportedLanguages {
			text := c.AltLabel[lang]
			if text == nil || *text == "" {
				continue
			}
			key := lang + "\x00" + *text
			if seen[key] {
				continue
			}
			seen[key] = true
			report.LabelPairs++
			if err := imp.labels.EnsureExists(ctx, nil, *text, lang); err != nil {
				imp.log.Error("Failed to save keyword label", "ref", ref, "language", lang, "error", err)
				report.fail(StageLabels, ref, err)
			}
		}
	}
}
