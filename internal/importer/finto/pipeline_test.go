package finto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/types"
)

const pipelineDoc = `
<http://www.yso.fi/onto/yso/1200> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .
<http://www.yso.fi/onto/yso/1200> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.yso.fi/onto/yso-meta/Concept> .
<http://www.yso.fi/onto/yso/1200> <http://www.w3.org/2004/02/skos/core#prefLabel> "Culture"@en .
<http://www.yso.fi/onto/yso/1200> <http://www.w3.org/2004/02/skos/core#prefLabel> "Kulttuuri"@fi .
<http://www.yso.fi/onto/yso/1200> <http://www.w3.org/2004/02/skos/core#altLabel> "Sivistys"@fi .
<http://www.yso.fi/onto/jupo/200> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .
<http://www.yso.fi/onto/jupo/200> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.yso.fi/onto/jupo-meta/Concept> .
<http://www.yso.fi/onto/jupo/200> <http://www.w3.org/2004/02/skos/core#prefLabel> "Palvelut"@fi .
<http://www.yso.fi/onto/jupo/200> <http://www.w3.org/2004/02/skos/core#altLabel> "Sivistys"@fi .
<http://www.yso.fi/onto/jupo/200> <http://www.w3.org/2004/02/skos/core#broader> <http://www.yso.fi/onto/yso/1200> .
<http://www.yso.fi/onto/yso/9999> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .
<http://www.yso.fi/onto/yso/9999> <http://www.w3.org/2002/07/owl#deprecated> "true" .
<http://www.yso.fi/onto/yso/9999> <http://purl.org/dc/terms/isReplacedBy> <http://www.yso.fi/onto/yso/1200> .
`

func serveDoc(t *testing.T, doc string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/turtle")
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestImporter(t *testing.T, gdb *gorm.DB, url string, linkReplacements bool) *Importer {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OntologyURL = url
	cfg.LinkReplacements = linkReplacements
	return New(gdb, testLog(), cfg)
}

func TestRunSyncsKeywordsAndLabels(t *testing.T) {
	gdb := newTestDB(t)
	srv := serveDoc(t, pipelineDoc)
	imp := newTestImporter(t, gdb, srv.URL, true)

	report, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !report.Clean() {
		t.Fatalf("expected clean run, failures: %v", report.Failures)
	}
	if report.Extracted != 2 {
		t.Fatalf("expected 2 extracted concepts, got %d", report.Extracted)
	}
	if report.DeprecatedPairs != 1 {
		t.Fatalf("expected 1 deprecated pair, got %d", report.DeprecatedPairs)
	}
	if report.KeywordsUpserted != 2 {
		t.Fatalf("expected 2 upserted keywords, got %d", report.KeywordsUpserted)
	}

	var kw types.Keyword
	if err := gdb.Preload("AltLabels").First(&kw, "id = ?", "yso:1200").Error; err != nil {
		t.Fatalf("load yso:1200: %v", err)
	}
	if kw.DataSourceID != "yso" {
		t.Fatalf("expected datasource yso, got %s", kw.DataSourceID)
	}
	if kw.NameEn == nil || *kw.NameEn != "Culture" {
		t.Fatalf("expected name_en Culture, got %v", kw.NameEn)
	}
	if kw.NameFi == nil || *kw.NameFi != "Kulttuuri" {
		t.Fatalf("expected name_fi Kulttuuri, got %v", kw.NameFi)
	}
	if kw.NameSv != nil {
		t.Fatalf("expected nil name_sv, got %v", *kw.NameSv)
	}
	if len(kw.AltLabels) != 1 || kw.AltLabels[0].Name != "Sivistys" || kw.AltLabels[0].LanguageID != "fi" {
		t.Fatalf("expected single alt label (Sivistys, fi), got %v", kw.AltLabels)
	}

	var jupoKw types.Keyword
	if err := gdb.Preload("AltLabels").First(&jupoKw, "id = ?", "jupo:200").Error; err != nil {
		t.Fatalf("load jupo:200: %v", err)
	}
	if jupoKw.DataSourceID != "jupo" {
		t.Fatalf("expected datasource jupo, got %s", jupoKw.DataSourceID)
	}
	// The alt label text is shared between the two keywords; the label row
	// is global and linked from both.
	if len(jupoKw.AltLabels) != 1 || jupoKw.AltLabels[0].ID != kw.AltLabels[0].ID {
		t.Fatalf("expected shared alt label row, got %v", jupoKw.AltLabels)
	}

	// Shared label text appears once.
	var labelCount int64
	if err := gdb.Model(&types.KeywordLabel{}).Count(&labelCount).Error; err != nil {
		t.Fatalf("count labels: %v", err)
	}
	if labelCount != 1 {
		t.Fatalf("expected 1 label row, got %d", labelCount)
	}

	// yso:9999 was never synced: silently skipped, no row created.
	var missing int64
	if err := gdb.Model(&types.Keyword{}).Where("id = ?", "yso:9999").Count(&missing).Error; err != nil {
		t.Fatalf("count yso:9999: %v", err)
	}
	if missing != 0 {
		t.Fatal("deprecation marking must not create keywords")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	srv := serveDoc(t, pipelineDoc)
	imp := newTestImporter(t, gdb, srv.URL, true)
	ctx := context.Background()

	if _, err := imp.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	report, err := imp.Run(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report.SkippedUnchanged != 2 {
		t.Fatalf("expected both concepts skipped on re-sync, got %d", report.SkippedUnchanged)
	}
	if report.KeywordsUpserted != 0 {
		t.Fatalf("expected no keyword writes on re-sync, got %d", report.KeywordsUpserted)
	}

	var labelCount int64
	if err := gdb.Model(&types.KeywordLabel{}).Count(&labelCount).Error; err != nil {
		t.Fatalf("count labels: %v", err)
	}
	if labelCount != 1 {
		t.Fatalf("label upsert is not idempotent: %d rows", labelCount)
	}

	var kwCount int64
	if err := gdb.Model(&types.Keyword{}).Count(&kwCount).Error; err != nil {
		t.Fatalf("count keywords: %v", err)
	}
	if kwCount != 2 {
		t.Fatalf("expected 2 keywords after re-sync, got %d", kwCount)
	}
}

func TestRunMarksPreviouslySyncedDeprecated(t *testing.T) {
	gdb := newTestDB(t)
	srv := serveDoc(t, pipelineDoc)
	ctx := context.Background()

	// Simulate an earlier sync where yso:9999 was still current.
	if err := gdb.Create(&types.DataSource{ID: "yso", Name: "yso"}).Error; err != nil {
		t.Fatalf("seed datasource: %v", err)
	}
	if err := gdb.Create(&types.Keyword{ID: "yso:9999", DataSourceID: "yso"}).Error; err != nil {
		t.Fatalf("seed keyword: %v", err)
	}

	imp := newTestImporter(t, gdb, srv.URL, true)
	report, err := imp.Run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.MarkedDeprecated != 1 {
		t.Fatalf("expected 1 keyword marked deprecated, got %d", report.MarkedDeprecated)
	}

	var kw types.Keyword
	if err := gdb.First(&kw, "id = ?", "yso:9999").Error; err != nil {
		t.Fatalf("load yso:9999: %v", err)
	}
	if !kw.Deprecated {
		t.Fatal("expected deprecated flag set")
	}
	if kw.ReplacedByID == nil || *kw.ReplacedByID != "yso:1200" {
		t.Fatalf("expected replacement link yso:1200, got %v", kw.ReplacedByID)
	}
}

func TestRunReplacementLinkingDisabled(t *testing.T) {
	gdb := newTestDB(t)
	srv := serveDoc(t, pipelineDoc)
	ctx := context.Background()

	if err := gdb.Create(&types.DataSource{ID: "yso", Name: "yso"}).Error; err != nil {
		t.Fatalf("seed datasource: %v", err)
	}
	if err := gdb.Create(&types.Keyword{ID: "yso:9999", DataSourceID: "yso"}).Error; err != nil {
		t.Fatalf("seed keyword: %v", err)
	}

	imp := newTestImporter(t, gdb, srv.URL, false)
	if _, err := imp.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	var kw types.Keyword
	if err := gdb.First(&kw, "id = ?", "yso:9999").Error; err != nil {
		t.Fatalf("load yso:9999: %v", err)
	}
	if !kw.Deprecated {
		t.Fatal("expected deprecated flag set")
	}
	if kw.ReplacedByID != nil {
		t.Fatalf("replacement linking disabled, got %v", *kw.ReplacedByID)
	}
}

func TestRunFetchFailureAborts(t *testing.T) {
	gdb := newTestDB(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	imp := newTestImporter(t, gdb, srv.URL, true)
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected fetch failure to abort the run")
	}

	var kwCount int64
	if err := gdb.Model(&types.Keyword{}).Count(&kwCount).Error; err != nil {
		t.Fatalf("count keywords: %v", err)
	}
	if kwCount != 0 {
		t.Fatalf("aborted run must not write keywords, got %d", kwCount)
	}
}

func TestRunBootstrapIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	srv := serveDoc(t, pipelineDoc)
	imp := newTestImporter(t, gdb, srv.URL, true)
	ctx := context.Background()

	if _, err := imp.Run(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := imp.Run(ctx); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var dsCount int64
	if err := gdb.Model(&types.DataSource{}).Count(&dsCount).Error; err != nil {
		t.Fatalf("count datasources: %v", err)
	}
	if dsCount != 3 {
		t.Fatalf("expected 3 datasources, got %d", dsCount)
	}
	var orgCount int64
	if err := gdb.Model(&types.Organization{}).Count(&orgCount).Error; err != nil {
		t.Fatalf("count organizations: %v", err)
	}
	if orgCount != 2 {
		t.Fatalf("expected 2 organizations, got %d", orgCount)
	}
}
