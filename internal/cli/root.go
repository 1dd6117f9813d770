package cli

import (
	"fmt"

	"github.com/rqst-labs/rqst/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configFile string
	quiet      bool
	verbose    bool
)

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "Read settings (manifest path) from this file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the success message")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a quest summary to stderr on success")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [path]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks a quest manifest for a multi-stage tutorial repository.

The manifest is read from ` + branding.ManifestFile() + ` in the current directory unless a
path is given. The exit status is 0 when the manifest is valid, 1 when it cannot
be loaded, and 2 when it loads but breaks a content rule.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

// Execute runs the root command with build info injected via ldflags.
// A failure is printed to stderr as a single line before it is returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return err
}
