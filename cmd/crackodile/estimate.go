package crackodile

import (
	"fmt"
	"os"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/engine"
	"github.com/crackodile/crackodile/internal/report"
	"github.com/crackodile/crackodile/internal/strength"
	"github.com/spf13/cobra"
)

var (
	estStdin   bool
	estLength  int
	estDigits  string
	estSymbols string
	estTable   bool
	estRank    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Project search space and entropy without enumerating",
		RunE:  runEstimate,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&estStdin, "stdin", false, "read the secret from stdin (for piping)")
	cmd.Flags().IntVar(&estLength, "length", 0, "candidate length (0 = secret length)")
	cmd.Flags().StringVar(&estDigits, "digits", "", "digits in the alphabet: auto|on|off")
	cmd.Flags().StringVar(&estSymbols, "symbols", "", "symbols in the alphabet: auto|on|off")
	cmd.Flags().BoolVar(&estTable, "table", false, "output in table format with borders")
	cmd.Flags().BoolVar(&estRank, "rank", false, "also print the secret's 1-based enumeration rank")
}

func runEstimate(_ *cobra.Command, _ []string) error {
	for _, m := range []string{estDigits, estSymbols} {
		if m != "" && !alphabet.Mode(m).Valid() {
			return fmt.Errorf("invalid category mode %q (want auto, on or off)", m)
		}
	}

	// A secret is only needed when the length comes from it, when the rank
	// is requested, or when one is piped in explicitly.
	secret := ""
	if estStdin || estRank || estLength <= 0 {
		s, err := readSecret(estStdin)
		if err != nil {
			return err
		}
		secret = s
	}

	res := engine.Estimate(engine.Config{
		Secret:  secret,
		Length:  estLength,
		Digits:  estDigits,
		Symbols: estSymbols,
	})

	format := ""
	switch {
	case flagJSON:
		format = "json"
	case estTable:
		format = "table"
	}
	if err := report.Render(os.Stdout, res, format, report.PrintOptions{NoColor: flagNoColor}); err != nil {
		return err
	}
	if estRank && !flagJSON {
		if rank, ok := strength.Rank(secret, res.Alphabet); ok {
			fmt.Printf("Rank: %d\n", rank)
		} else {
			fmt.Println("Rank: not representable (outside the alphabet or beyond 2^64)")
		}
	}
	return nil
}
