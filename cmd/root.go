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
	flagDemo   bool
	flagSearch string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "hackerstories",
	Short: "Browse Hacker News stories in the terminal",
	Long: `hackerstories fetches stories from the Hacker News search API once at startup,
lets you filter them by title and dismiss the ones you are not interested in.
The last search term is remembered between runs.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDemo, "demo", false, "use the built-in sample stories instead of the network")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log to the state directory")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "start with this search term (replaces the remembered one)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hackerstories %s (commit: %s, built: %s)\n", version, commit, date)
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
