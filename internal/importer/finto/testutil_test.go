package finto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/knakk/rdf"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kaupunki/events-backend/internal/db"
	"github.com/kaupunki/events-backend/internal/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func parseTurtle(t *testing.T, doc string) *Graph {
	t.Helper()
	graph, err := decodeGraph(strings.NewReader(doc), rdf.Turtle)
	if err != nil {
		t.Fatalf("parse turtle: %v", err)
	}
	return graph
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func strptr(s string) *string { return &s }
