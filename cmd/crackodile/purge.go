package crackodile

import (
	"fmt"

	"github.com/crackodile/crackodile/internal/audit"
	"github.com/crackodile/crackodile/internal/cache"
	"github.com/crackodile/crackodile/internal/update"
	"github.com/spf13/cobra"
)

func init() {
	var withHistory bool
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove cached wordlist stats and update-check state",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := cache.Purge(""); err != nil {
				return err
			}
			if err := update.ClearCache(); err != nil {
				return err
			}
			fmt.Println("Caches cleared.")
			if withHistory {
				if !yes {
					return fmt.Errorf("refusing to delete audit history without --yes")
				}
				log := audit.NewLog("")
				if err := log.Truncate(); err != nil {
					return err
				}
				fmt.Println("History log removed:", log.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withHistory, "history", false, "also delete the audit history log (needs --yes)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm history deletion")
	rootCmd.AddCommand(cmd)
}
