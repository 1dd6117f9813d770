package cli

import (
	"errors"

	"github.com/rqst-labs/rqst/internal/manifest"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1 // load failure, bad flags or settings
	ExitInvalid = 2 // manifest loaded but failed validation
)

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ve *manifest.ValidationError
	if errors.As(err, &ve) {
		return ExitInvalid
	}
	return ExitFailure
}
