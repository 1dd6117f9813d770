// Package cli defines the Cobra command tree for the rqst CLI. The root
// command loads and validates a quest manifest; subcommands only report
// build information. Business logic lives in internal/manifest.
package cli
