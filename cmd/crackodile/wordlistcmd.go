package crackodile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/crackodile/crackodile/internal/cache"
	"github.com/crackodile/crackodile/internal/wordlist"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	wl := &cobra.Command{Use: "wordlist", Short: "Wordlist helpers"}
	rootCmd.AddCommand(wl)

	var checkLists []string
	checkCmd := &cobra.Command{
		Use:   "check <word>",
		Short: "Look a word up across wordlists",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			paths, err := resolveWordlists(checkLists)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no wordlists configured; pass --wordlist or set wordlists in .crackodile.yml")
			}
			match, hit, err := wordlist.Any(args[0], paths)
			if err != nil {
				return fmt.Errorf("wordlist lookup: %w", err)
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Found  bool   `json:"found"`
					Source string `json:"source,omitempty"`
					Line   int    `json:"line,omitempty"`
				}{hit, match.Source, match.Line})
			}
			if !hit {
				fmt.Printf("not found in %d wordlist(s)\n", len(paths))
				return nil
			}
			fmt.Printf("found: %s:%d\n", match.Source, match.Line)
			return nil
		},
	}
	checkCmd.Flags().StringSliceVar(&checkLists, "wordlist", nil, "wordlist file or glob (repeatable)")
	wl.AddCommand(checkCmd)

	var statsLists []string
	var statsNoCache bool
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show entries, size and fingerprint per wordlist",
		RunE: func(_ *cobra.Command, _ []string) error {
			paths, err := resolveWordlists(statsLists)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no wordlists configured; pass --wordlist or set wordlists in .crackodile.yml")
			}

			db, _ := cache.Load("")
			dirty := false
			var infos []wordlist.Info
			for _, p := range paths {
				if e, ok := db.Entries[p]; ok && !statsNoCache && e.Fresh(p) {
					infos = append(infos, wordlist.Info{Path: p, Entries: e.Entries, Bytes: e.Bytes, Fingerprint: e.Fingerprint})
					continue
				}
				in, err := wordlist.Stat(p)
				if err != nil {
					_, _ = fmt.Fprintln(os.Stderr, "stats warning:", err)
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

			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			table := tablewriter.NewTable(os.Stdout)
			table.Header([]string{"Wordlist", "Entries", "Bytes", "Fingerprint"})
			for _, in := range infos {
				table.Append([]string{in.Path, strconv.Itoa(in.Entries), strconv.FormatInt(in.Bytes, 10), in.Fingerprint})
			}
			table.Render()
			return nil
		},
	}
	statsCmd.Flags().StringSliceVar(&statsLists, "wordlist", nil, "wordlist file or glob (repeatable)")
	statsCmd.Flags().BoolVar(&statsNoCache, "no-cache", false, "ignore cached stats and re-read files")
	wl.AddCommand(statsCmd)
}
