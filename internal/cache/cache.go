package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Entry records one wordlist's stats at the time it was last read.
type Entry struct {
	Fingerprint string    `json:"fingerprint"`
	Entries     int       `json:"entries"`
	Bytes       int64     `json:"bytes"`
	ModTime     time.Time `json:"mtime"`
}

// DB maps wordlist path to cached stats, so repeated stats calls skip
// re-reading large files that have not changed.
type DB struct {
	Entries map[string]Entry `json:"entries"`
}

// Fresh reports whether the cached entry still describes the file at path.
// Size and mtime agreement is taken as content agreement; a real change is
// caught by the fingerprint on the next full read anyway.
func (e Entry) Fresh(path string) bool {
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	return st.Size() == e.Bytes && st.ModTime().Equal(e.ModTime)
}

func cacheDir(dir string) string {
	if dir != "" {
		return dir
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "."
	}
	return filepath.Join(base, "crackodile")
}

func dbPath(dir string) string {
	return filepath.Join(cacheDir(dir), "wordlists.json")
}

// Load reads the stats cache under dir (the user config directory when dir
// is empty). A missing or unreadable cache comes back empty with the error.
func Load(dir string) (DB, error) {
	var db DB
	f, err := os.ReadFile(dbPath(dir))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save writes the stats cache under dir.
func Save(dir string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	if err := os.MkdirAll(cacheDir(dir), 0o700); err != nil {
		return err
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(dbPath(dir), b, 0o644)
}

// Purge removes the stats cache and the last-result cache. Missing files
// are fine.
func Purge(dir string) error {
	for _, p := range []string{dbPath(dir), resultPath(dir)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
