// Package conf loads and models the ytscribe configuration.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sjzar/ytscribe/internal/speech"
)

// Backend selectors for the speech stage.
const (
	BackendLocal = "local"
	BackendAPI   = "api"
)

// Config is the root configuration record.
type Config struct {
	Output  OutputConfig  `mapstructure:"output" json:"output"`
	Speech  SpeechConfig  `mapstructure:"speech" json:"speech"`
	Network NetworkConfig `mapstructure:"network" json:"network"`
}

// OutputConfig controls where run artifacts land.
type OutputConfig struct {
	// AudioFile is the fixed download target, relative to the working
	// directory unless absolute.
	AudioFile string `mapstructure:"audio_file" json:"audio_file"`
	// Format is the default output format choice (txt, json, srt).
	Format string `mapstructure:"format" json:"format"`
}

// SpeechConfig controls the transcription backend.
type SpeechConfig struct {
	Backend       string   `mapstructure:"backend" json:"backend"`
	Model         string   `mapstructure:"model" json:"model"`
	ModelDir      string   `mapstructure:"model_dir" json:"model_dir"`
	Device        string   `mapstructure:"device" json:"device"`
	Language      string   `mapstructure:"language" json:"language"`
	InitialPrompt string   `mapstructure:"initial_prompt" json:"initial_prompt"`
	Temperature   *float64 `mapstructure:"temperature" json:"temperature"`
	APIKey        string   `mapstructure:"api_key" json:"api_key"`
	BaseURL       string   `mapstructure:"base_url" json:"base_url"`
}

// NetworkConfig carries the explicit TLS trust configuration; the CA pool
// is built once at startup instead of mutating process-global state.
type NetworkConfig struct {
	CABundle       string `mapstructure:"ca_bundle" json:"ca_bundle"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" json:"timeout_seconds"`
}

// ToOptions converts the speech config into runtime options for a
// transcription backend.
func (c *SpeechConfig) ToOptions() speech.Options {
	var opts speech.Options
	if c == nil {
		return opts
	}
	opts.Language = c.Language
	opts.InitialPrompt = c.InitialPrompt
	if c.Temperature != nil {
		opts.Temperature = float32(*c.Temperature)
		opts.TemperatureSet = true
	}
	return opts
}

// DefaultModelDir returns the per-user cache directory for ggml weights.
func DefaultModelDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "models")
	}
	return filepath.Join(dir, "ytscribe", "models")
}

// Load reads the configuration from path, or from the default location
// when path is empty. A missing default file yields the built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("YTSCRIBE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "ytscribe"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Speech.ModelDir == "" {
		cfg.Speech.ModelDir = DefaultModelDir()
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.audio_file", "audio.mp4")
	v.SetDefault("output.format", "txt")
	v.SetDefault("speech.backend", BackendLocal)
	v.SetDefault("speech.model", "base")
	v.SetDefault("speech.device", "")
	v.SetDefault("network.timeout_seconds", 0)
}
