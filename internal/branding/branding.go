// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary with //go:embed. Forks that want a
// different command name or default manifest file edit that file and rebuild.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	ManifestFile string `yaml:"manifest_file"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "rqst",
			DisplayName:  "rqst",
			Description:  "Validator for quest manifests (rqst.toml)",
			ManifestFile: "rqst.toml",
			GoModule:     "github.com/rqst-labs/rqst",
			GitHubRepo:   "rqst-labs/rqst",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rqst").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ManifestFile returns the manifest file name resolved in the working
// directory when no path is given (e.g., "rqst.toml").
func ManifestFile() string { load(); return defaults.ManifestFile }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }
