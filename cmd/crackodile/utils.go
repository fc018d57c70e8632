package crackodile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"golang.org/x/term"

	"github.com/crackodile/crackodile/internal/cache"
	"github.com/crackodile/crackodile/internal/config"
	"github.com/crackodile/crackodile/internal/wordlist"
)

func selfUpdate() error {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// Update from GitHub Releases: crackodile/crackodile
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "crackodile/crackodile")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// readSecret obtains the secret without echoing it. With fromStdin set, or
// when stdin is not a terminal, one line is read from stdin instead.
func readSecret(fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if !fromStdin && term.IsTerminal(fd) {
		_, _ = fmt.Fprint(os.Stderr, "Secret: ")
		b, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(b), nil
	}
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// resolveWordlists applies the usual precedence (CLI > local > global) and
// expands glob patterns into concrete paths.
func resolveWordlists(cli []string) ([]string, error) {
	patterns := cli
	if len(patterns) == 0 {
		cwd, _ := os.Getwd()
		if c, err := config.LoadLocal(cwd); err == nil && len(c.Wordlists) > 0 {
			patterns = c.Wordlists
		} else if c, err := config.LoadGlobal(); err == nil {
			patterns = c.Wordlists
		}
	}
	return wordlist.Expand(patterns)
}

// statAll collects stats for each wordlist, serving fresh cache entries
// without re-reading and silently skipping unreadable files.
func statAll(paths []string) []wordlist.Info {
	db, _ := cache.Load("")
	dirty := false
	var infos []wordlist.Info
	for _, p := range paths {
		if e, ok := db.Entries[p]; ok && e.Fresh(p) {
			infos = append(infos, wordlist.Info{Path: p, Entries: e.Entries, Bytes: e.Bytes, Fingerprint: e.Fingerprint})
			continue
		}
		in, err := wordlist.Stat(p)
		if err != nil {
			continue
		}
		infos = append(infos, in)
		if st, err := os.Stat(p); err == nil {
			db.Entries[p] = cache.Entry{Fingerprint: in.Fingerprint, Entries: in.Entries, Bytes: in.Bytes, ModTime: st.ModTime()}
			dirty = true
		}
	}
	if dirty {
		_ = cache.Save("", db)
	}
	return infos
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
