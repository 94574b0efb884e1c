package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"wallgrab/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// rootCmd scrapes when called without a subcommand. Flag parsing is left to
// cli.Resolve so malformed page numbers fall back to defaults instead of
// failing the command.
var rootCmd = &cobra.Command{
	Use:   "wallgrab [--start N] [--end N]",
	Short: "Download 1920x1080 wallpapers from wallpaperswide.com",
	Long: `wallgrab walks the wallpaperswide.com gallery page by page and saves every
wallpaper offered in 1920x1080 into the downloads/ folder.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runScrape,
}

// Execute runs the root command and exits non-zero on any error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.NewConsole(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error(err)
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s/%s)",
		version, gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func init() {
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr()).Usage()
	})

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
