package crackodile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/crackodile/crackodile/internal/audit"
	"github.com/crackodile/crackodile/internal/cache"
	"github.com/crackodile/crackodile/internal/report"
	"github.com/crackodile/crackodile/internal/tui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	histLimit int
	histShow  int
	histLast  bool
	histTUI   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past audit outcomes",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&histLimit, "limit", 20, "show at most N records (0 = all)")
	cmd.Flags().IntVar(&histShow, "show", 0, "print record N (1 = newest) as JSON")
	cmd.Flags().BoolVar(&histLast, "last", false, "re-display the last audit result")
	cmd.Flags().BoolVar(&histTUI, "tui", false, "interactive history browser")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if histLast {
		last, err := cache.LoadResult("")
		if err != nil {
			return fmt.Errorf("no cached audit result: %w", err)
		}
		if flagJSON {
			return report.WriteJSON(os.Stdout, last.Result)
		}
		fmt.Printf("Audited: %s\n", last.Timestamp.Format(time.RFC3339))
		report.PrintText(os.Stdout, last.Result, report.PrintOptions{NoColor: flagNoColor})
		return nil
	}

	log := audit.NewLog("")
	records, err := log.LoadHistory()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if len(records) == 0 && !histTUI {
		fmt.Println("No audit history yet. Run an audit first.")
		return nil
	}

	if histTUI {
		return tui.RunHistory(log, records)
	}

	if histShow > 0 {
		if histShow > len(records) {
			return fmt.Errorf("record %d out of range (%d records)", histShow, len(records))
		}
		b, err := json.MarshalIndent(records[histShow-1], "", "  ")
		if err != nil {
			return err
		}
		out := string(b)
		if !flagNoColor {
			out = report.HighlightJSON(out)
		}
		fmt.Println(out)
		return nil
	}

	if histLimit > 0 && len(records) > histLimit {
		records = records[:histLimit]
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"When", "Verdict", "Method", "Attempts", "Len", "Entropy"})
	for _, r := range records {
		table.Append([]string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Verdict,
			r.Method,
			strconv.FormatUint(r.Attempts, 10),
			strconv.Itoa(r.Length),
			fmt.Sprintf("%.1f", r.EntropyBits),
		})
	}
	table.Render()
	return nil
}
