package crackodile

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the crackodile version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("crackodile", version)
			if info, ok := debug.ReadBuildInfo(); ok {
				for _, s := range info.Settings {
					if s.Key == "vcs.revision" && s.Value != "" {
						fmt.Println("commit:", s.Value)
					}
				}
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
