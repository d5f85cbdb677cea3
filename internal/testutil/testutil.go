// Package testutil provides a throwaway SQLite database with the admission
// schema for package tests.
package testutil

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/config"
	"github.com/yigit/admission/internal/db"
)

//go:embed schema.sql
var schema string

// Config returns a configuration pointing at a fresh database file under dir
func Config(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(dir, "admission.db")
	cfg.Database.MaxOpenConns = 4
	cfg.Database.ConnMaxLifetime = "1h"
	return cfg
}

// NewProvider opens a file-backed SQLite database with every table created.
// A file is used instead of :memory: because each connection would otherwise
// see its own empty database.
func NewProvider(t testing.TB) *db.Provider {
	t.Helper()

	provider, err := db.Open(context.Background(), Config(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := provider.DB.Exec(stmt)
		require.NoError(t, err, "creating schema")
	}

	return provider
}

// Exec runs a raw statement, for arranging fixtures
func Exec(t testing.TB, provider *db.Provider, query string, args ...any) {
	t.Helper()
	_, err := provider.DB.Exec(query, args...)
	require.NoError(t, err)
}

// Count returns the number of rows in table
func Count(t testing.TB, provider *db.Provider, table string) int {
	t.Helper()
	var n int
	require.NoError(t, provider.DB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// SeedExam inserts a unit and an exam belonging to it
func SeedExam(t testing.TB, provider *db.Provider, unitID string, examID int64) {
	t.Helper()
	Exec(t, provider, "INSERT OR IGNORE INTO Unit (UnitID, UnitName, MaxCapacity) VALUES (?, ?, ?)", unitID, "Unit "+unitID, 100)
	Exec(t, provider, "INSERT INTO Exam (ExamID, UnitID, ExamName, MaxMarks) VALUES (?, ?, ?, ?)", examID, unitID, "Admission Test", 100)
}

// SeedStudent inserts a student with a contact number
func SeedStudent(t testing.TB, provider *db.Provider, id int64, name string) {
	t.Helper()
	Exec(t, provider, "INSERT INTO Student (StudentID, Name, Age, Address) VALUES (?, ?, ?, ?)", id, name, 20, "Dhaka")
	Exec(t, provider, "INSERT INTO ContactNumber (StudentID, ContactNumber) VALUES (?, ?)", id, fmt.Sprintf("01710000%03d", id))
}
