// file: kata/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rskv-p/kata/pkg/x_log"
)

// EnvPrefix is the prefix of every environment variable the tool reads.
const EnvPrefix = "KATA_"

// Config holds all runtime settings of the kata CLI.
type Config struct {
	ServiceName     string        `json:"service_name" mapstructure:"service_name"`
	LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	JSONOutput      bool          `json:"json_output" mapstructure:"json_output"`
	DecodeListLimit int           `json:"decode_list_limit" mapstructure:"decode_list_limit"`
	Batch           BatchSettings `json:"batch" mapstructure:"batch"`
	Log             x_log.Config  `json:"log" mapstructure:"log"`
}

// BatchSettings controls script execution.
type BatchSettings struct {
	StopOnError bool `json:"stop_on_error" mapstructure:"stop_on_error"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		ServiceName:     "kata",
		LogLevel:        "info",
		JSONOutput:      false,
		DecodeListLimit: 100,
		Batch: BatchSettings{
			StopOnError: false,
		},
		Log: x_log.DefaultConfig(),
	}
}

// Load reads a JSON config file over the defaults. ${ENV_VAR} references
// in the file are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = replaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.syncLog()
	return cfg, nil
}

// LoadFromEnv builds a config from prefixed environment variables over the
// defaults. A value that does not fit its field is an error.
func LoadFromEnv(prefix string) (*Config, error) {
	cfg := Default()
	if err := decode(envMap(prefix), cfg); err != nil {
		return nil, fmt.Errorf("decode %senv: %w", prefix, err)
	}
	cfg.syncLog()
	return cfg, nil
}

// LoadWithFallback loads from KATA_CONFIG when set, otherwise from KATA_ env vars.
func LoadWithFallback() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		return Load(path)
	}
	return LoadFromEnv(EnvPrefix)
}

// Validate checks config for required values.
func (cfg *Config) Validate() error {
	var bad []string
	if cfg.ServiceName == "" {
		bad = append(bad, "service_name")
	}
	if _, err := x_log.ParseLevel(cfg.LogLevel); err != nil {
		bad = append(bad, fmt.Sprintf("log_level(%q)", cfg.LogLevel))
	}
	if cfg.DecodeListLimit < 0 {
		bad = append(bad, fmt.Sprintf("decode_list_limit(%d)", cfg.DecodeListLimit))
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(bad, ", "))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}

// syncLog makes the top-level log_level authoritative for the logger.
func (cfg *Config) syncLog() {
	if cfg.LogLevel != "" {
		cfg.Log.Level = cfg.LogLevel
	}
}

// decode copies raw values onto cfg; keys absent from raw keep their current value.
func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       boolWordHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// replaceEnvVars replaces ${ENV_VAR} in JSON with values from os.Getenv
func replaceEnvVars(data []byte) []byte {
	s := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})
	return []byte(s)
}
