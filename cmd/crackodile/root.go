package crackodile

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagFailOn        string
	flagNoColor       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Crackodile CLI.
var rootCmd = &cobra.Command{
	Use:           "crackodile",
	Short:         "Estimate how guessable a secret is",
	Long:          "Crackodile checks a secret against wordlists and exhaustive enumeration and reports how long an attacker would need to find it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Crackodile CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "weak", "fail on cracked|weak|fair")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update crackodile to the latest release")
}
