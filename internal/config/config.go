package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// Config holds the settings shared by the xt commands. Keys are the json tags
// and are the same in YAML, JSON and environment variables.
type Config struct {
	Dir      string `json:"dir"`      // directory holding table files
	DB       string `json:"db"`       // sqlite catalog path
	Pattern  string `json:"pattern"`  // glob for table files inside Dir
	Warnings bool   `json:"warnings"` // print comment-skip warnings
}

func DefaultConfig() Config {
	return Config{
		Dir:      "xts",
		DB:       filepath.Join("xts", "xt.db"),
		Pattern:  "*.xt",
		Warnings: true,
	}
}

// Glob returns the pattern matching every table file.
func (c Config) Glob() string {
	return filepath.Join(c.Dir, c.Pattern)
}

// DefaultPaths lists the config files tried in order; the first one found wins.
func DefaultPaths() []string {
	return []string{".xt.yaml", ".xt.yml", ".xt.json"}
}

const DefaultEnvPrefix = "XT_"

type options struct {
	paths     []string
	envPrefix string
}

type Option func(*options)

// WithPaths replaces the config file search list.
func WithPaths(paths ...string) Option {
	return func(o *options) {
		o.paths = paths
	}
}

// WithEnvPrefix sets the environment prefix; an empty prefix disables env lookup.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// Load merges, from lowest to highest priority, the defaults, the first config
// file found and the prefixed environment variables. Unless db is set by the
// file or the environment, the catalog lives at xt.db inside the final Dir.
func Load(opts ...Option) (*Config, error) {
	o := &options{paths: DefaultPaths(), envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(o)
	}

	defaults := DefaultConfig()
	configMap := map[string]any{
		"dir":      defaults.Dir,
		"db":       defaults.DB,
		"pattern":  defaults.Pattern,
		"warnings": defaults.Warnings,
	}

	dbSet := false
	for _, path := range o.paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		for k, v := range fileMap {
			configMap[k] = v
		}
		_, dbSet = fileMap["db"]
		slog.Debug("Loaded config from file", "path", path)
		break
	}

	if o.envPrefix != "" {
		for key := range configMap {
			envKey := o.envPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
			if val := os.Getenv(envKey); val != "" {
				configMap[key] = val
				dbSet = dbSet || key == "db"
				slog.Debug("Loaded env binding", "env", envKey, "key", key)
			}
		}
	}

	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if !dbSet {
		cfg.DB = filepath.Join(cfg.Dir, "xt.db")
	}
	return &cfg, nil
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}
	return m, nil
}

func decodeConfigMap(data map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}
