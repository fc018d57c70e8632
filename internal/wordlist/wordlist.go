package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/crackodile/crackodile/internal/types"
)

// maxLineBytes bounds a single wordlist entry. Lines beyond this surface as
// a scan error rather than being silently split.
const maxLineBytes = 1 << 20

// Scan reads entries from r one per line (CRLF tolerated) and returns the
// first entry exactly equal to target, with its 1-based line number. The
// scan stops at the first hit. A read error mid-stream is returned as-is.
func Scan(target string, r io.Reader) (types.DictionaryMatch, bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		if sc.Text() == target {
			return types.DictionaryMatch{Line: line, Text: target}, true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return types.DictionaryMatch{}, false, err
	}
	return types.DictionaryMatch{}, false, nil
}

// File looks target up in the wordlist at path. A missing file is not an
// error: the word is simply not known weak. Any other failure to open or
// read the file is reported.
func File(target, path string) (types.DictionaryMatch, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.DictionaryMatch{}, false, nil
		}
		return types.DictionaryMatch{}, false, fmt.Errorf("open wordlist %s: %w", path, err)
	}
	defer f.Close()
	m, ok, err := Scan(target, f)
	if err != nil {
		return types.DictionaryMatch{}, false, fmt.Errorf("read wordlist %s: %w", path, err)
	}
	if ok {
		m.Source = path
	}
	return m, ok, nil
}

// Any returns the first hit for target across paths in order. Missing files
// are skipped; real I/O errors stop the lookup.
func Any(target string, paths []string) (types.DictionaryMatch, bool, error) {
	for _, p := range paths {
		m, ok, err := File(target, p)
		if err != nil {
			return types.DictionaryMatch{}, false, err
		}
		if ok {
			return m, true, nil
		}
	}
	return types.DictionaryMatch{}, false, nil
}

// Expand resolves wordlist patterns to concrete file paths. Literal paths
// pass through untouched (existence is checked later, by File). Glob
// patterns use doublestar semantics, so **/ recursion works. The result is
// deduplicated and keeps pattern order, with glob matches sorted.
func Expand(patterns []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, pat := range patterns {
		pat = expandHome(pat)
		if !strings.ContainsAny(pat, "*?[{") {
			add(pat)
			continue
		}
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("bad wordlist pattern %q: %w", pat, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
