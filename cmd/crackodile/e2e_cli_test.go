package crackodile

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI invokes the binary via `go run .` so os.Exit stays out of the test
// process. State lands under a throwaway XDG dir, and CI=1 keeps the update
// check offline.
func runCLI(t *testing.T, xdg, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+xdg, "CI=1")
	cmd.Stdin = strings.NewReader(stdin)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if ee, ok := err.(*exec.ExitError); ok {
		code = ee.ExitCode()
	} else if err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String(), code
}

func TestCLI_Audit_JSON_Shape_ExitCode(t *testing.T) {
	// "ab" enumerates to a hit on attempt 2, and a cracked verdict trips the
	// default fail-on threshold.
	out, code := runCLI(t, t.TempDir(), "ab\n", "audit", "--stdin", "--json", "--no-history")
	if code != 1 {
		t.Fatalf("expected exit 1 for a cracked secret, got %d\n%s", code, out)
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if res["verdict"] != "cracked" || res["method"] != "enumeration" {
		t.Fatalf("unexpected verdict/method: %v %v", res["verdict"], res["method"])
	}
	if res["attempts"] != float64(2) {
		t.Fatalf("expected attempts=2, got %v", res["attempts"])
	}
	search, _ := res["search"].(map[string]any)
	if search == nil || search["status"] != "found" {
		t.Fatalf("expected search status found, got %v", res["search"])
	}
}

func TestCLI_Audit_WordlistHit_RecordsHistory(t *testing.T) {
	xdg := t.TempDir()
	wl := filepath.Join(t.TempDir(), "common.txt")
	if err := os.WriteFile(wl, []byte("alpha\nbravo\ncharlie\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, code := runCLI(t, xdg, "bravo\n", "audit", "--stdin", "--json", "--wordlist", wl)
	if code != 1 {
		t.Fatalf("expected exit 1 for a cracked secret, got %d\n%s", code, out)
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if res["verdict"] != "cracked" || res["method"] != "wordlist" {
		t.Fatalf("unexpected verdict/method: %v %v", res["verdict"], res["method"])
	}
	match, _ := res["match"].(map[string]any)
	if match == nil || match["line"] != float64(2) {
		t.Fatalf("expected match at line 2, got %v", res["match"])
	}

	out, code = runCLI(t, xdg, "", "history", "--json")
	if code != 0 {
		t.Fatalf("history exit %d\n%s", code, out)
	}
	var recs []map[string]any
	if err := json.Unmarshal([]byte(out), &recs); err != nil {
		t.Fatalf("history json: %v\n%s", err, out)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(recs))
	}
	if recs[0]["secret"] != "[REDACTED]" {
		t.Fatalf("secret must be redacted in history, got %v", recs[0]["secret"])
	}
}

func TestCLI_Audit_FailOnThresholds(t *testing.T) {
	// Digits in the secret widen the alphabet to 36 chars; at length 9 the
	// entropy grades fair, and the budget stops enumeration early.
	out, code := runCLI(t, t.TempDir(), "abcdefgh1\n",
		"audit", "--stdin", "--json", "--no-history", "--budget", "1000", "--fail-on", "cracked")
	if code != 0 {
		t.Fatalf("fair verdict must pass --fail-on cracked, got exit %d\n%s", code, out)
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if res["verdict"] != "fair" {
		t.Fatalf("expected fair verdict, got %v", res["verdict"])
	}
	search, _ := res["search"].(map[string]any)
	if search == nil || search["status"] != "budget_exceeded" || search["attempts"] != float64(1000) {
		t.Fatalf("expected budget_exceeded after 1000 attempts, got %v", res["search"])
	}

	_, code = runCLI(t, t.TempDir(), "abcdefgh1\n",
		"audit", "--stdin", "--json", "--no-history", "--budget", "1000", "--fail-on", "fair")
	if code != 1 {
		t.Fatalf("fair verdict must fail --fail-on fair, got exit %d", code)
	}
}

func TestCLI_Estimate_JSON(t *testing.T) {
	out, code := runCLI(t, t.TempDir(), "abc123\n", "estimate", "--stdin", "--json")
	if code != 0 {
		t.Fatalf("estimate exit %d\n%s", code, out)
	}
	var res map[string]any
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if res["space"] != float64(2176782336) {
		t.Fatalf("expected 36^6 space, got %v", res["space"])
	}
	if res["verdict"] != "weak" || res["method"] != "none" {
		t.Fatalf("unexpected verdict/method: %v %v", res["verdict"], res["method"])
	}
	if _, ok := res["search"]; ok {
		t.Fatalf("estimate must not run a search, got %v", res["search"])
	}
}

func TestCLI_History_EmptyIsFriendly(t *testing.T) {
	out, code := runCLI(t, t.TempDir(), "", "history")
	if code != 0 {
		t.Fatalf("history exit %d\n%s", code, out)
	}
	if !strings.Contains(out, "No audit history yet") {
		t.Fatalf("expected empty-history notice, got %q", out)
	}
}
