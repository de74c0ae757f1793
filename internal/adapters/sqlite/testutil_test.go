// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for tests.
// All setup goes through db.GetSchemaSQL() so tests run against the same
// schema as production. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// sampleBoard returns a two-grid document with the second grid current.
func sampleBoard() *models.AppData {
	current := "g2"
	return &models.AppData{
		Grids: []models.Grid{
			{ID: "g1", Title: "Personal", Lists: []models.List{
				{ID: "l1", Title: "Todo", Order: 0, Items: []models.Item{
					{ID: "i1", Title: "Buy milk", Order: 0},
					{ID: "i2", Title: "Call mom", Order: 1},
				}},
				{ID: "l2", Title: "Done", Order: 1, Items: []models.Item{}},
			}},
			{ID: "g2", Title: "Work", Lists: []models.List{}},
		},
		CurrentGridID: &current,
	}
}
