// Package config loads the weatherapi.com credential.
//
// The default file is secrets.ini:
//
//	[weatherapi]
//	api_key = <YOUR-WEATHERAPI-KEY>
//
// The same section and key are read from .toml and .yaml/.yml files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "secrets.ini"
	Section     = "weatherapi"

	EnvAPIKey     = "WEATHERAPI_KEY"
	EnvConfigPath = "WEATHER_CONFIG"
)

var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrSectionMissing    = errors.New("section [" + Section + "] is missing")
	ErrKeyMissing        = errors.New("api_key is missing")
	ErrUnsupportedFormat = errors.New("unsupported configuration file extension")
)

// Error is a configuration failure tied to a file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Credentials is the [weatherapi] section.
type Credentials struct {
	APIKey string `mapstructure:"api_key"`
}

// Resolve returns the API key, preferring WEATHERAPI_KEY over the file named
// by WEATHER_CONFIG or DefaultPath.
func Resolve(getenv func(string) string) (string, error) {
	if key := strings.TrimSpace(getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	path := getenv(EnvConfigPath)
	if path == "" {
		path = DefaultPath
	}
	return LoadAPIKey(path)
}

// LoadAPIKey reads api_key from the weatherapi section of the file at path.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Path: path, Err: ErrFileNotFound}
		}
		return "", &Error{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	sections, err := parse(filepath.Ext(path), data)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}

	raw, ok := sections[Section]
	if !ok {
		return "", &Error{Path: path, Err: ErrSectionMissing}
	}

	var creds Credentials
	if err := decodeSection(raw, &creds); err != nil {
		return "", &Error{Path: path, Err: fmt.Errorf("invalid [%s] section: %w", Section, err)}
	}

	creds.APIKey = strings.TrimSpace(creds.APIKey)
	if creds.APIKey == "" {
		return "", &Error{Path: path, Err: ErrKeyMissing}
	}
	return creds.APIKey, nil
}

func parse(ext string, data []byte) (map[string]any, error) {
	sections := map[string]any{}

	switch strings.ToLower(ext) {
	case ".ini", "":
		file, err := ini.Load(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse INI: %w", err)
		}
		for _, s := range file.Sections() {
			if s.Name() == ini.DefaultSection {
				continue
			}
			sections[s.Name()] = s.KeysHash()
		}
	case ".toml":
		if err := toml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	return sections, nil
}

func decodeSection(raw any, creds *Credentials) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           creds,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
