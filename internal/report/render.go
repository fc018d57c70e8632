package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/olekukonko/tablewriter"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/strength"
	"github.com/crackodile/crackodile/internal/types"
)

type PrintOptions struct {
	NoColor bool
}

// Render writes res to w in the named format: "json", "table", or "text"
// (the default for anything else).
func Render(w io.Writer, res types.AuditResult, format string, opts PrintOptions) error {
	switch format {
	case "json":
		return WriteJSON(w, res)
	case "table":
		PrintTable(w, res, opts)
	default:
		PrintText(w, res, opts)
	}
	return nil
}

func PrintText(w io.Writer, res types.AuditResult, opts PrintOptions) {
	verdict := string(res.Verdict)
	if !opts.NoColor {
		verdict = colorVerdict(res.Verdict)
	}
	fmt.Fprintf(w, "Verdict: %s\n", verdict)
	fmt.Fprintf(w, "Method: %s\n", res.Method)
	if res.Match != nil {
		fmt.Fprintf(w, "Match: %s:%d (%s)\n", res.Match.Source, res.Match.Line, Mask(res.Match.Text))
	}
	if res.Search != nil {
		fmt.Fprintf(w, "Search: %s\n", describeSearch(*res.Search))
	}
	fmt.Fprintf(w, "Alphabet: %d chars (%s)\n", res.AlphabetSize, describeAlphabet(res.Alphabet))
	fmt.Fprintf(w, "Space: %s candidates at length %d\n", formatSpace(res), res.Length)
	fmt.Fprintf(w, "Entropy: %.1f bits charset, %.1f bits shannon\n", res.EntropyBits, res.ShannonBits)
	if !res.Expressible {
		fmt.Fprintln(w, "Note: secret is not reachable at this length and alphabet")
	}
	if res.Wordlists > 0 {
		fmt.Fprintf(w, "Wordlists: %d\n", res.Wordlists)
	}
	if res.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", res.Duration.Seconds())
	}
	if !res.Cracked() && res.AlphabetSize > 0 && res.Length > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Time to search at common guess rates:")
		for _, rate := range strength.Rates() {
			fmt.Fprintf(w, "  %-22s %s\n", rate.Name, eta(res.Space, res.SpaceExact, rate.PerSecond))
		}
	}
}

func PrintTable(w io.Writer, res types.AuditResult, opts PrintOptions) {
	verdict := string(res.Verdict)
	if !opts.NoColor {
		verdict = colorVerdict(res.Verdict)
	}
	rows := [][]string{
		{"Verdict", verdict},
		{"Method", string(res.Method)},
	}
	if res.Match != nil {
		rows = append(rows, []string{"Match", fmt.Sprintf("%s:%d", res.Match.Source, res.Match.Line)})
	}
	if res.Search != nil {
		rows = append(rows,
			[]string{"Status", string(res.Search.Status)},
			[]string{"Attempts", strconv.FormatUint(res.Search.Attempts, 10)},
		)
	}
	rows = append(rows,
		[]string{"Alphabet", describeAlphabet(res.Alphabet)},
		[]string{"Alphabet size", strconv.Itoa(res.AlphabetSize)},
		[]string{"Length", strconv.Itoa(res.Length)},
		[]string{"Space", formatSpace(res)},
		[]string{"Entropy", fmt.Sprintf("%.1f bits", res.EntropyBits)},
		[]string{"Shannon entropy", fmt.Sprintf("%.1f bits", res.ShannonBits)},
	)
	if res.Wordlists > 0 {
		rows = append(rows, []string{"Wordlists", strconv.Itoa(res.Wordlists)})
	}
	if res.Duration > 0 {
		rows = append(rows, []string{"Duration", fmt.Sprintf("%.2fs", res.Duration.Seconds())})
	}
	if !res.Cracked() {
		for _, rate := range strength.Rates() {
			rows = append(rows, []string{"ETA " + rate.Name, eta(res.Space, res.SpaceExact, rate.PerSecond)})
		}
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"Field", "Value"})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// WriteJSON writes res as indented JSON to w.
func WriteJSON(w io.Writer, res types.AuditResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// HighlightJSON returns src with terminal color codes applied. On any
// highlighting failure the input comes back unchanged.
func HighlightJSON(src string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return buf.String()
}

// Mask hides a matched secret for display. Short values are replaced
// wholesale so their length leaks nothing.
func Mask(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func describeSearch(out types.SearchOutcome) string {
	switch out.Status {
	case types.StatusFound:
		return fmt.Sprintf("found at attempt %d", out.Attempts)
	case types.StatusBudgetExceeded:
		return fmt.Sprintf("budget exhausted after %d attempts", out.Attempts)
	case types.StatusCancelled:
		return fmt.Sprintf("cancelled after %d attempts", out.Attempts)
	default:
		return fmt.Sprintf("space exhausted after %d attempts", out.Attempts)
	}
}

func describeAlphabet(chars string) string {
	if chars == "" {
		return "empty"
	}
	var parts []string
	rest := chars
	if strings.HasPrefix(rest, alphabet.Lowercase) {
		parts = append(parts, "lowercase")
		rest = rest[len(alphabet.Lowercase):]
	}
	if strings.HasPrefix(rest, alphabet.Digits) {
		parts = append(parts, "digits")
		rest = rest[len(alphabet.Digits):]
	}
	if strings.HasPrefix(rest, alphabet.Symbols) {
		parts = append(parts, "symbols")
		rest = rest[len(alphabet.Symbols):]
	}
	if rest != "" {
		parts = append(parts, "custom")
	}
	return strings.Join(parts, "+")
}

func formatSpace(res types.AuditResult) string {
	if !res.SpaceExact {
		return "more than 2^64"
	}
	return strconv.FormatUint(res.Space, 10)
}

// eta renders how long scanning a space takes at a given rate. The figure
// is informational, so magnitudes matter more than precision.
func eta(space uint64, exact bool, perSecond float64) string {
	if !exact {
		return "practically unbounded"
	}
	secs := float64(space) / perSecond
	switch {
	case secs < 1:
		return "under a second"
	case secs < 60:
		return fmt.Sprintf("%.0f seconds", secs)
	case secs < 3600:
		return fmt.Sprintf("%.0f minutes", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%.0f hours", secs/3600)
	case secs < 31557600:
		return fmt.Sprintf("%.0f days", secs/86400)
	default:
		years := secs / 31557600
		if years > 1e6 {
			return "over a million years"
		}
		return fmt.Sprintf("%.0f years", years)
	}
}

func colorVerdict(v types.Verdict) string {
	switch v {
	case types.VerdictCracked:
		return "\x1b[31mcracked\x1b[0m" // red
	case types.VerdictWeak:
		return "\x1b[33mweak\x1b[0m" // yellow
	case types.VerdictFair:
		return "\x1b[36mfair\x1b[0m" // cyan
	default:
		return "\x1b[32m" + string(v) + "\x1b[0m" // green
	}
}
