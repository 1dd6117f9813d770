package cli

import (
	"fmt"

	"github.com/rqst-labs/rqst/internal/config"
	"github.com/rqst-labs/rqst/internal/manifest"
	"github.com/spf13/cobra"
)

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configFile)
	if err != nil {
		return err
	}

	path := settings.Manifest
	if len(args) == 1 {
		path = args[0]
	}

	q, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("Error loading quest config: %w", err)
	}

	if err := manifest.Validate(q); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s by %s: %d stage(s)\n", q.Title, q.Author, len(q.Stages))
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), manifest.PassedMessage)
	}
	return nil
}
