package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "site.db"),
		LogLevel: "error",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestStores(t *testing.T) *Stores {
	return New(newTestDB(t))
}

func TestStorageErrorIsNotNotFound(t *testing.T) {
	s := newTestStores(t)
	sqlDB, err := s.db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()

	_, err = s.Users.FindByCredentials(context.Background(), "alice", "secret1")
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("storage failure reported as not found")
	}
}

func TestDump(t *testing.T) {
	ctx := context.Background()
	s := newTestStores(t)

	if _, err := s.Users.Create(ctx, "alice", "secret1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Users.Create(ctx, "bob", "secret2"); err != nil {
		t.Fatal(err)
	}

	d, err := s.Dump(ctx, "users")
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	wantCols := []string{"id", "username", "password"}
	for i, c := range wantCols {
		if d.Columns[i] != c {
			t.Fatalf("columns = %v, want %v", d.Columns, wantCols)
		}
	}
	if len(d.Rows) != 2 {
		t.Fatalf("rows = %v", d.Rows)
	}
	if d.Rows[0][0] != "1" || d.Rows[0][1] != "alice" || d.Rows[1][1] != "bob" {
		t.Fatalf("rows = %v", d.Rows)
	}
}

func TestDumpUnknownTable(t *testing.T) {
	s := newTestStores(t)
	_, err := s.Dump(context.Background(), "sqlite_master; DROP TABLE users")
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("err = %v, want ErrUnknownTable", err)
	}
}
