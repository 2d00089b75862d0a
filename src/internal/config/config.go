package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/validatedpatterns/reference-api/src/internal/errors"
	"github.com/validatedpatterns/reference-api/src/internal/log"
)

// LoadConfig reads a TOML file on top of DefaultConfig. An empty path returns
// the defaults unchanged. Keys missing from the file keep their default.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		return config, nil
	}

	configFile := filepath.Clean(configPath)
	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
		}
		return nil, apperrors.NewConfigError("failed to read config file", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			log.Errorf("%s", derr.String())
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("%s", serr.String())
			return nil, apperrors.NewConfigError("unknown keys in config file", err)
		}
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile
	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// SerializeConfig encodes c as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
