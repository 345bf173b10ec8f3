// Package storetest provides helpers for tests that need a migrated store.
package storetest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/krisly/beauty-store/modules/database"
)

var dbSeq atomic.Int64

// NewStore opens a private in-memory SQLite database, migrates the full
// schema and closes it when the test ends.
func NewStore(t *testing.T) *database.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	url := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Connect(database.Config{URL: url})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	store := database.NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Logger returns a types.Logger that discards everything.
func Logger() types.Logger {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any) {}
func (m *mockLogger) Info(_ string, _ ...any)  {}
func (m *mockLogger) Warn(_ string, _ ...any)  {}
func (m *mockLogger) Error(_ string, _ ...any) {}
func (m *mockLogger) With(_ ...any) types.Logger {
	return m
}
func (m *mockLogger) WithModule(_ string) types.Logger {
	return m
}
func (m *mockLogger) WithError(_ error) types.Logger {
	return m
}
