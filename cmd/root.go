package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagCVD    string
	flagWindow string
	flagLimit  int
)

var rootCmd = &cobra.Command{
	Use:   "calmhn",
	Short: "A calm terminal reader for Hacker News",
	Long:  "calmhn shows the top-scoring Hacker News stories of the recent past as a quiet, ranked reading list. No refresh churn, no noise.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	// Local to the reader itself; `calmhn cvd` is the shell-side way to
	// change the stored preference.
	rootCmd.Flags().StringVar(&flagCVD, "cvd", "", "set and persist the display mode (protanopia, deuteranopia)")
	rootCmd.Flags().StringVar(&flagWindow, "window", "", "override the search window (e.g., 90d, 24h)")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 0, "override the story count cap")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(cvdCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("calmhn %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
