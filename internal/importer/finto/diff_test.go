package finto

import (
	"context"
	"testing"

	"github.com/kaupunki/events-backend/internal/repos"
	"github.com/kaupunki/events-backend/internal/types"
)

func TestDiffFilter(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	seed := []types.DataSource{{ID: "yso", Name: "yso"}, {ID: "jupo", Name: "jupo"}}
	if err := gdb.Create(&seed).Error; err != nil {
		t.Fatalf("seed datasources: %v", err)
	}
	existing := []*types.Keyword{
		{ID: "yso:1", DataSourceID: "yso", Deprecated: false},
		{ID: "yso:2", DataSourceID: "yso", Deprecated: false},
		{ID: "yso:3", DataSourceID: "yso", Deprecated: true, ReplacedByID: strptr("yso:1")},
	}
	if err := gdb.Create(&existing).Error; err != nil {
		t.Fatalf("seed keywords: %v", err)
	}

	concepts := map[string]*Concept{
		// Unchanged: persisted state matches -> discard.
		"yso:1": {Ref: "yso:1", Namespace: "yso", Deprecated: false},
		// Deprecated flag flipped -> keep.
		"yso:2": {Ref: "yso:2", Namespace: "yso", Deprecated: true},
		// Replacement changed -> keep.
		"yso:3": {Ref: "yso:3", Namespace: "yso", Deprecated: true, ReplacedBy: strptr("yso:2")},
		// Not persisted yet -> keep.
		"yso:4": {Ref: "yso:4", Namespace: "yso", Deprecated: false},
	}

	filter := NewDiffFilter(repos.NewKeywordRepo(gdb, testLog()), testLog())
	kept := filter.Apply(ctx, concepts)

	if _, ok := kept["yso:1"]; ok {
		t.Fatal("unchanged concept must be discarded")
	}
	for _, ref := range []string{"yso:2", "yso:3", "yso:4"} {
		if _, ok := kept[ref]; !ok {
			t.Fatalf("expected %s to be kept", ref)
		}
	}
	if len(kept) != 3 {
		t.Fatalf("expected 3 kept concepts, got %d", len(kept))
	}
}

func TestDiffFilterUnchangedReplacementMatch(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	if err := gdb.Create(&types.DataSource{ID: "yso", Name: "yso"}).Error; err != nil {
		t.Fatalf("seed datasource: %v", err)
	}
	kw := &types.Keyword{ID: "yso:9", DataSourceID: "yso", Deprecated: true, ReplacedByID: strptr("yso:1")}
	if err := gdb.Create(kw).Error; err != nil {
		t.Fatalf("seed keyword: %v", err)
	}

	concepts := map[string]*Concept{
		"yso:9": {Ref: "yso:9", Namespace: "yso", Deprecated: true, ReplacedBy: strptr("yso:1")},
	}
	filter := NewDiffFilter(repos.NewKeywordRepo(gdb, testLog()), testLog())
	if kept := filter.Apply(ctx, concepts); len(kept) != 0 {
		t.Fatalf("matching deprecated+replacement must be discarded, got %v", kept)
	}
}
