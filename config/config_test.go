package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "bad server url", mutate: func(c *Config) { c.ServerURL = "localhost" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }, wantErr: true},
		{name: "tiny thumbnails", mutate: func(c *Config) { c.ThumbnailWidth = 1 }, wantErr: true},
		{name: "zero cache", mutate: func(c *Config) { c.ThumbnailCacheSize = 0 }, wantErr: true},
		{name: "zero threshold", mutate: func(c *Config) { c.LazyLoadThreshold = 0 }, wantErr: true},
		{name: "threshold above one", mutate: func(c *Config) { c.LazyLoadThreshold = 1.5 }, wantErr: true},
		{name: "negative margin", mutate: func(c *Config) { c.LazyLoadMargin = -1 }, wantErr: true},
		{name: "https server", mutate: func(c *Config) { c.ServerURL = "https://gallery.example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := ValidateConfig(c)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromViperReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.yaml")
	content := `server_url: http://gallery.local:9000
media_base_path: C:/Users/me/Pictures
request_timeout: 15s
thumbnail_width: 20
lazy_load_threshold: 0.25
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	c, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if c.ServerURL != "http://gallery.local:9000" {
		t.Errorf("ServerURL = %q", c.ServerURL)
	}
	if c.MediaBasePath != "C:/Users/me/Pictures" {
		t.Errorf("MediaBasePath = %q", c.MediaBasePath)
	}
	if c.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v", c.RequestTimeout)
	}
	if c.ThumbnailWidth != 20 || c.ThumbnailHeight != 6 {
		t.Errorf("thumbnail size = %dx%d", c.ThumbnailWidth, c.ThumbnailHeight)
	}
	if c.LazyLoadThreshold != 0.25 || c.LazyLoadMargin != 2 {
		t.Errorf("lazy load = %v/%d", c.LazyLoadThreshold, c.LazyLoadMargin)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", c.LogLevel)
	}
}

func TestFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("lazy_load_threshold", 2.0)
	if _, err := FromViper(v); err == nil {
		t.Error("expected validation error")
	}
}

func TestSettingsReloadThroughViper(t *testing.T) {
	c := DefaultConfig()
	c.ServerURL = "https://gallery.example.com"
	c.RequestTimeout = 3 * time.Second
	c.LazyLoadThreshold = 0.5

	v := viper.New()
	for key, value := range c.Settings() {
		v.Set(key, value)
	}
	got, err := FromViper(v)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *c {
		t.Errorf("reloaded %+v, want %+v", got, c)
	}
}

func TestCreateDefaultConfigAtPath(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"custom.yaml", "gallery-config"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := CreateDefaultConfig(path); err != nil {
				t.Fatal(err)
			}

			v := viper.New()
			v.SetConfigFile(path)
			if filepath.Ext(path) == "" {
				v.SetConfigType("yaml")
			}
			if err := v.ReadInConfig(); err != nil {
				t.Fatal(err)
			}
			got, err := FromViper(v)
			if err != nil {
				t.Fatal(err)
			}
			if want := DefaultConfig(); *got != *want {
				t.Errorf("read back %+v, want %+v", got, want)
			}
		})
	}
}

func TestWriteConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	c := DefaultConfig()
	c.ServerURL = "ftp://gallery"

	if err := WriteConfig(c, path); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("invalid config was written: %v", err)
	}
}
