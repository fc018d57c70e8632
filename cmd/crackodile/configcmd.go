package crackodile

import (
	"fmt"
	"os"
	"strings"

	"github.com/crackodile/crackodile/internal/alphabet"
	"github.com/crackodile/crackodile/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput  string
	cfgLists   []string
	cfgLength  int
	cfgDigits  string
	cfgSymbols string
	cfgBudget  int64
	cfgFailOn  string
	cfgNoColor bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .crackodile.yml with selected defaults",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".crackodile.yml", "output file path")
	initCmd.Flags().StringSliceVar(&cfgLists, "wordlist", nil, "wordlist file or glob (repeatable)")
	initCmd.Flags().IntVar(&cfgLength, "length", 0, "default candidate length (0 = secret length)")
	initCmd.Flags().StringVar(&cfgDigits, "digits", "", "default digits mode: auto|on|off")
	initCmd.Flags().StringVar(&cfgSymbols, "symbols", "", "default symbols mode: auto|on|off")
	initCmd.Flags().Int64Var(&cfgBudget, "budget", 0, "default attempt budget (0 = unbounded)")
	initCmd.Flags().StringVar(&cfgFailOn, "fail-on", "", "default fail-on verdict: cracked|weak|fair")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective merged configuration",
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	for _, m := range []string{cfgDigits, cfgSymbols} {
		if m != "" && !alphabet.Mode(m).Valid() {
			return fmt.Errorf("invalid category mode %q (want auto, on or off)", m)
		}
	}

	fc := config.FileConfig{
		Wordlists: cfgLists,
		Length:    intPtr(cfgLength),
		Digits:    optStrPtr(cfgDigits),
		Symbols:   optStrPtr(cfgSymbols),
		Budget:    int64Ptr(cfgBudget),
		FailOn:    optStrPtr(cfgFailOn),
		NoColor:   boolPtr(cfgNoColor),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	var eff config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		eff = c
	}
	cwd, _ := os.Getwd()
	if c, err := config.LoadLocal(cwd); err == nil {
		eff = overlayConfig(eff, c)
	}
	b, err := yaml.Marshal(&eff)
	if err != nil {
		return err
	}
	_, _ = os.Stdout.Write(b)
	return nil
}

// overlayConfig lays local settings over global ones field by field.
func overlayConfig(base, over config.FileConfig) config.FileConfig {
	out := base
	if len(over.Wordlists) > 0 {
		out.Wordlists = over.Wordlists
	}
	if over.Length != nil {
		out.Length = over.Length
	}
	if over.Digits != nil {
		out.Digits = over.Digits
	}
	if over.Symbols != nil {
		out.Symbols = over.Symbols
	}
	if over.Budget != nil {
		out.Budget = over.Budget
	}
	if over.ProgressEvery != nil {
		out.ProgressEvery = over.ProgressEvery
	}
	if over.Output != nil {
		out.Output = over.Output
	}
	if over.FailOn != nil {
		out.FailOn = over.FailOn
	}
	if over.NoColor != nil {
		out.NoColor = over.NoColor
	}
	if over.NoHistory != nil {
		out.NoHistory = over.NoHistory
	}
	if over.NoUpdateCheck != nil {
		out.NoUpdateCheck = over.NoUpdateCheck
	}
	return out
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
