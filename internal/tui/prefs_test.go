package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPrefs(t *testing.T) {
	prefs := DefaultPrefs()
	if !prefs.HideCandidates {
		t.Error("DefaultPrefs().HideCandidates should be true")
	}
}

func TestLoadPrefs_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	prefs := LoadPrefs()
	if !prefs.HideCandidates {
		t.Error("LoadPrefs() with no file should return defaults (HideCandidates=true)")
	}
}

func TestSaveAndLoadPrefs(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	prefs := Prefs{HideCandidates: false}
	if err := SavePrefs(prefs); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	prefsFile := filepath.Join(tmpDir, ".crackodile", "tui_prefs.json")
	if _, err := os.Stat(prefsFile); os.IsNotExist(err) {
		t.Fatal("prefs file was not created")
	}

	loaded := LoadPrefs()
	if loaded.HideCandidates {
		t.Error("Loaded prefs should have HideCandidates=false")
	}

	prefs.HideCandidates = true
	if err := SavePrefs(prefs); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	loaded = LoadPrefs()
	if !loaded.HideCandidates {
		t.Error("Loaded prefs should have HideCandidates=true")
	}
}
