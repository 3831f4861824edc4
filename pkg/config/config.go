package config

import (
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

type CatalogConfig struct {
	// Delimiter separates fields in the course data file
	Delimiter string `koanf:"delimiter"`
	// ListPrefixes restricts the menu course list to matching course ids;
	// empty means list everything
	ListPrefixes []string `koanf:"list_prefixes"`
	// DataDirectory is scanned for loadable course files in the menu
	DataDirectory string `koanf:"data_directory"`
	// Extensions of files offered by the menu's load prompt
	DataExtensions []string `koanf:"data_extensions"`
}

type Configuration struct {
	Catalog CatalogConfig `koanf:"catalog"`
}

var (
	Config Configuration

	k = koanf.New(".")
)

// Init loads configuration defaults, then the YAML config file when present,
// and unmarshals the result into Config.
func Init(configFilePath string) error {
	defaults := map[string]interface{}{
		"catalog.delimiter":       ",",
		"catalog.list_prefixes":   []string{"CSCI", "MATH"},
		"catalog.data_directory":  ".",
		"catalog.data_extensions": []string{".csv", ".txt"},
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return errors.Wrap(err, "failed loading config defaults")
	}

	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err == nil {
			if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
				return errors.Wrapf(err, "failed loading config file: %q", configFilePath)
			}
		}
	}

	if err := k.Unmarshal("", &Config); err != nil {
		return errors.Wrap(err, "failed unmarshalling config")
	}

	return nil
}

// Delimiter returns the configured field delimiter as a single byte,
// falling back to comma.
func Delimiter() byte {
	if Config.Catalog.Delimiter == "" {
		return ','
	}
	return Config.Catalog.Delimiter[0]
}
