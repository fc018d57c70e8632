package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crackodile/crackodile/internal/types"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["10k.txt"] = Entry{Fingerprint: "deadbeef", Entries: 10000, Bytes: 81920}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "wordlists.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := db2.Entries["10k.txt"]; got.Fingerprint != "deadbeef" || got.Entries != 10000 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestEntryFresh(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(p, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}

	e := Entry{Bytes: st.Size(), ModTime: st.ModTime()}
	if !e.Fresh(p) {
		t.Fatal("expected matching size+mtime to be fresh")
	}

	stale := Entry{Bytes: st.Size() + 1, ModTime: st.ModTime()}
	if stale.Fresh(p) {
		t.Fatal("expected size mismatch to be stale")
	}
	if (Entry{}).Fresh(filepath.Join(dir, "gone.txt")) {
		t.Fatal("expected missing file to be stale")
	}
}

func TestSaveRejectsNilEntries(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error for nil entries")
	}
}

func TestLastAuditRoundTrip(t *testing.T) {
	dir := t.TempDir()
	res := types.AuditResult{
		Verdict:      types.VerdictFair,
		Method:       types.MethodEnumeration,
		Search:       &types.SearchOutcome{Status: types.StatusBudgetExceeded, Attempts: 42},
		AlphabetSize: 36,
		Length:       8,
		Duration:     3 * time.Second,
	}
	if err := SaveResult(dir, res); err != nil {
		t.Fatalf("save result: %v", err)
	}
	last, err := LoadResult(dir)
	if err != nil {
		t.Fatalf("load result: %v", err)
	}
	if last.Result.Verdict != types.VerdictFair || last.Result.Search.Attempts != 42 {
		t.Fatalf("unexpected result: %+v", last.Result)
	}
	if last.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, DB{Entries: map[string]Entry{"x": {}}}); err != nil {
		t.Fatal(err)
	}
	if err := SaveResult(dir, types.AuditResult{}); err != nil {
		t.Fatal(err)
	}
	if err := Purge(dir); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "wordlists.json")); !os.IsNotExist(err) {
		t.Fatal("expected stats cache removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "last_audit.json")); !os.IsNotExist(err) {
		t.Fatal("expected last-audit cache removed")
	}
	if err := Purge(dir); err != nil {
		t.Fatal("purging twice must be fine")
	}
}
