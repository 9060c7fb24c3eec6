package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath, ttl)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLayout_SaveLoad(t *testing.T) {
	s := openTestStore(t, 0)

	// Miss on empty.
	if _, ok := s.LoadLayout("editor", 2); ok {
		t.Fatal("expected miss")
	}

	if err := s.SaveLayout("editor", []int{30, 170}, 201); err != nil {
		t.Fatalf("SaveLayout: %v", err)
	}

	got, ok := s.LoadLayout("editor", 2)
	if !ok {
		t.Fatal("expected hit")
	}
	if !reflect.DeepEqual(got.Sizes, []int{30, 170}) || got.Container != 201 || got.Name != "editor" {
		t.Errorf("got %+v", got)
	}

	// A different panel count is a different layout.
	if _, ok := s.LoadLayout("editor", 3); ok {
		t.Error("expected miss for different panel count")
	}
}

func TestLayout_Overwrite(t *testing.T) {
	s := openTestStore(t, 0)
	s.SaveLayout("editor", []int{100, 100}, 201)
	s.SaveLayout("editor", []int{50, 150}, 201)

	got, ok := s.LoadLayout("editor", 2)
	if !ok {
		t.Fatal("expected hit")
	}
	if !reflect.DeepEqual(got.Sizes, []int{50, 150}) {
		t.Errorf("got %v", got.Sizes)
	}
}

func TestLayout_Delete(t *testing.T) {
	s := openTestStore(t, 0)
	s.SaveLayout("editor", []int{100, 100}, 201)
	s.SaveLayout("editor", []int{60, 70, 70}, 202)
	s.SaveLayout("other", []int{10, 10}, 21)

	if err := s.DeleteLayout("editor"); err != nil {
		t.Fatalf("DeleteLayout: %v", err)
	}
	if _, ok := s.LoadLayout("editor", 2); ok {
		t.Error("editor/2 survived delete")
	}
	if _, ok := s.LoadLayout("editor", 3); ok {
		t.Error("editor/3 survived delete")
	}
	if _, ok := s.LoadLayout("other", 2); !ok {
		t.Error("other was deleted")
	}
}

func TestLayout_CorruptRowIsMiss(t *testing.T) {
	s := openTestStore(t, 0)
	s.db.Exec("INSERT INTO layouts (name, panel_count, sizes, container, updated) VALUES (?, ?, ?, ?, ?)",
		"broken", 2, "not json", 10, time.Now().Unix())

	if _, ok := s.LoadLayout("broken", 2); ok {
		t.Fatal("expected miss on corrupt row")
	}
}

func TestListLayouts(t *testing.T) {
	s := openTestStore(t, 0)
	s.SaveLayout("a", []int{1, 2}, 4)
	s.SaveLayout("b", []int{3}, 3)

	// Backdate a so b sorts first.
	s.db.Exec("UPDATE layouts SET updated = ? WHERE name = ?",
		time.Now().Add(-time.Hour).Unix(), "a")

	got, err := s.ListLayouts()
	if err != nil {
		t.Fatalf("ListLayouts: %v", err)
	}
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "a" {
		t.Fatalf("got %+v", got)
	}
}

func TestPurgeStale(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath, time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.SaveLayout("old", []int{1, 1}, 3)
	s.SaveLayout("fresh", []int{1, 1}, 3)
	s.db.Exec("UPDATE layouts SET updated = ? WHERE name = ?",
		time.Now().Add(-2*time.Hour).Unix(), "old")
	s.Close()

	s, err = Open(dbPath, time.Hour)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if _, ok := s.LoadLayout("old", 2); ok {
		t.Error("stale layout not purged")
	}
	if _, ok := s.LoadLayout("fresh", 2); !ok {
		t.Error("fresh layout purged")
	}
}

func TestOpen_MigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.db.Exec("DROP TABLE layouts")
	s.db.Exec("CREATE TABLE layouts (name TEXT PRIMARY KEY, sizes TEXT)")
	s.Close()

	s, err = Open(dbPath, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if err := s.SaveLayout("editor", []int{1, 2}, 4); err != nil {
		t.Fatalf("SaveLayout after migration: %v", err)
	}
}

func TestNilStore(t *testing.T) {
	var s *Store

	if err := s.SaveLayout("x", []int{1}, 1); err != nil {
		t.Errorf("SaveLayout: %v", err)
	}
	if _, ok := s.LoadLayout("x", 1); ok {
		t.Error("expected miss")
	}
	if err := s.DeleteLayout("x"); err != nil {
		t.Errorf("DeleteLayout: %v", err)
	}
	if got, err := s.ListLayouts(); got != nil || err != nil {
		t.Errorf("ListLayouts = %v, %v", got, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
