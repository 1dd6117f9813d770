package config

import (
	"fmt"
	"path/filepath"

	"github.com/rqst-labs/rqst/internal/branding"
	"github.com/spf13/viper"
)

const (
	keyManifest     = "manifest"
	defaultFileType = "yaml"
)

// Settings holds values resolved from defaults and the settings file.
type Settings struct {
	// Manifest is the path of the quest manifest to validate.
	Manifest string
}

// Load resolves settings. When file is empty only defaults apply. A relative
// manifest path read from the file is resolved against the file's directory.
func Load(file string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(keyManifest, branding.ManifestFile())

	if file != "" {
		v.SetConfigFile(file)
		if filepath.Ext(file) == "" {
			v.SetConfigType(defaultFileType)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", file, err)
		}
	}

	manifest := v.GetString(keyManifest)
	if file != "" && v.InConfig(keyManifest) && !filepath.IsAbs(manifest) {
		manifest = filepath.Join(filepath.Dir(file), manifest)
	}

	return &Settings{Manifest: manifest}, nil
}
