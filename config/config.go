package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"tagGallery/gallery"
	"tagGallery/utils"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config struct {
	ServerURL      string        `mapstructure:"server_url"`
	MediaBasePath  string        `mapstructure:"media_base_path"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	ThumbnailWidth     int     `mapstructure:"thumbnail_width"`
	ThumbnailHeight    int     `mapstructure:"thumbnail_height"`
	ThumbnailCacheSize int     `mapstructure:"thumbnail_cache_size"`
	LazyLoadMargin     int     `mapstructure:"lazy_load_margin"`
	LazyLoadThreshold  float64 `mapstructure:"lazy_load_threshold"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		ServerURL:          "http://localhost:8080",
		MediaBasePath:      "",
		RequestTimeout:     0,
		ThumbnailWidth:     16,
		ThumbnailHeight:    6,
		ThumbnailCacheSize: 256,
		LazyLoadMargin:     gallery.DefaultLazyMargin,
		LazyLoadThreshold:  gallery.DefaultLazyThreshold,
		LogLevel:           "info",
		LogFile:            filepath.Join(os.TempDir(), "tagGallery", "tui.log"),
	}
}

// SetDefaults registers every key with viper so environment variables are
// picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server_url", d.ServerURL)
	v.SetDefault("media_base_path", d.MediaBasePath)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("thumbnail_width", d.ThumbnailWidth)
	v.SetDefault("thumbnail_height", d.ThumbnailHeight)
	v.SetDefault("thumbnail_cache_size", d.ThumbnailCacheSize)
	v.SetDefault("lazy_load_margin", d.LazyLoadMargin)
	v.SetDefault("lazy_load_threshold", d.LazyLoadThreshold)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
}

func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to find home directory: %w", err)
	}

	viper.AddConfigPath(home)
	viper.AddConfigPath(".")
	viper.SetConfigName(".tagGallery")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("TAGGALLERY")
	viper.AutomaticEnv()
	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(viper.GetViper())
}

func FromViper(v *viper.Viper) (*Config, error) {
	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// WriteConfig writes config to path. A path without an extension is written
// as YAML.
func WriteConfig(config *Config, path string) error {
	if err := ValidateConfig(config); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	for key, value := range config.Settings() {
		v.Set(key, value)
	}

	return v.WriteConfig()
}

// Settings returns the config keyed the way the config file spells it.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"server_url":           c.ServerURL,
		"media_base_path":      c.MediaBasePath,
		"request_timeout":      c.RequestTimeout.String(),
		"thumbnail_width":      c.ThumbnailWidth,
		"thumbnail_height":     c.ThumbnailHeight,
		"thumbnail_cache_size": c.ThumbnailCacheSize,
		"lazy_load_margin":     c.LazyLoadMargin,
		"lazy_load_threshold":  c.LazyLoadThreshold,
		"log_level":            c.LogLevel,
		"log_file":             c.LogFile,
	}
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tagGallery.yaml"), nil
}

func CreateDefaultConfig(path string) error {
	return WriteConfig(DefaultConfig(), path)
}

func ValidateConfig(config *Config) error {
	if err := utils.ValidateServerURL(config.ServerURL); err != nil {
		return err
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, config.LogLevel) {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if config.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if config.ThumbnailWidth < 4 || config.ThumbnailHeight < 2 {
		return fmt.Errorf("thumbnail size too small: %dx%d", config.ThumbnailWidth, config.ThumbnailHeight)
	}
	if config.ThumbnailCacheSize < 1 {
		return fmt.Errorf("thumbnail_cache_size must be positive")
	}
	if config.LazyLoadMargin < 0 {
		return fmt.Errorf("lazy_load_margin must not be negative")
	}
	if config.LazyLoadThreshold <= 0 || config.LazyLoadThreshold > 1 {
		return fmt.Errorf("lazy_load_threshold must be in (0, 1]: %v", config.LazyLoadThreshold)
	}

	return nil
}
