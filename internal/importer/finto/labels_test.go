package finto

import (
	"context"
	"testing"

	"github.com/kaupunki/events-backend/internal/types"
)

func altConcept(ref, ns string, alts map[string]*string) *Concept {
	labels := map[string]*string{"fi": nil, "sv": nil, "en": nil}
	for lang, v := range alts {
		labels[lang] = v
	}
	return &Concept{
		Ref:       ref,
		Namespace: ns,
		PrefLabel: map[string]*string{"fi": nil, "sv": nil, "en": nil},
		AltLabel:  labels,
	}
}

func TestUpsertLabelsIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	imp := newTestImporter(t, gdb, "http://unused.invalid", true)
	concepts := map[string]*Concept{
		"yso:1": altConcept("yso:1", "yso", map[string]*string{"fi": strptr("Kulttuuri"), "en": strptr("Culture")}),
		"yso:2": altConcept("yso:2", "yso", map[string]*string{"fi": strptr("Kulttuuri")}),
	}

	report := newReport()
	imp.upsertLabels(ctx, concepts, report)
	imp.upsertLabels(ctx, concepts, report)

	if !report.Clean() {
		t.Fatalf("unexpected failures: %v", report.Failures)
	}

	var count int64
	if err := gdb.Model(&types.KeywordLabel{}).Count(&count).Error; err != nil {
		t.Fatalf("count labels: %v", err)
	}
	// Kulttuuri/fi shared between concepts, Culture/en once.
	if count != 2 {
		t.Fatalf("expected 2 label rows, got %d", count)
	}
}

func TestUpsertLabelsSkipsEmptyValues(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	imp := newTestImporter(t, gdb, "http://unused.invalid", true)
	concepts := map[string]*Concept{
		"yso:1": altConcept("yso:1", "yso", map[string]*string{"fi": strptr(""), "sv": nil}),
	}

	report := newReport()
	imp.upsertLabels(ctx, concepts, report)

	var count int64
	if err := gdb.Model(&types.KeywordLabel{}).Count(&count).Error; err != nil {
		t.Fatalf("count labels: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no label rows, got %d", count)
	}
	if report.LabelPairs != 0 {
		t.Fatalf("empty values must not count as pairs, got %d", report.LabelPairs)
	}
}

func TestSameTextDifferentLanguageAreDistinctLabels(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	imp := newTestImporter(t, gdb, "http://unused.invalid", true)
	concepts := map[string]*Concept{
		"yso:1": altConcept("yso:1", "yso", map[string]*string{"fi": strptr("Design"), "sv": strptr("Design"), "en": strptr("Design")}),
	}

	report := newReport()
	imp.upsertLabels(ctx, concepts, report)

	var count int64
	if err := gdb.Model(&types.KeywordLabel{}).Count(&count).Error; err != nil {
		t.Fatalf("count labels: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 label rows, got %d", count)
	}
}
