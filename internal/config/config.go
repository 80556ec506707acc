package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port int `yaml:"port"`
	} `yaml:"app"`

	Source struct {
		// Mode picks where searches are answered from: "local" (seeded
		// corpus) or "live" (listing walk against BaseURL).
		Mode              string  `yaml:"mode"`
		BaseURL           string  `yaml:"base_url"`
		MaxPages          int     `yaml:"max_pages"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		// Browser: "none" or "chromedp". Only used in live mode to close
		// consent popups and overlays before fetching.
		Browser string `yaml:"browser"`
	} `yaml:"source"`

	Corpus struct {
		GeneratedCount int    `yaml:"generated_count"`
		Seed           int64  `yaml:"seed"`
		DefaultCity    string `yaml:"default_city"`
	} `yaml:"corpus"`
}

func Defaults() Config {
	var cfg Config
	cfg.App.Port = 8787

	cfg.Source.Mode = "local"
	cfg.Source.BaseURL = "https://www.hellowork.com"
	cfg.Source.MaxPages = 20
	cfg.Source.TimeoutSeconds = 10
	cfg.Source.RequestsPerSecond = 1
	cfg.Source.Browser = "none"

	cfg.Corpus.GeneratedCount = 1000
	cfg.Corpus.Seed = 1
	cfg.Corpus.DefaultCity = "Paris"
	return cfg
}

// Load reads path over the defaults. A missing file is not an error; the
// engine runs on defaults alone.
func Load(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Source.Mode {
	case "local", "live":
	default:
		return fmt.Errorf("config: unknown source mode %q", c.Source.Mode)
	}
	switch c.Source.Browser {
	case "none", "chromedp":
	default:
		return fmt.Errorf("config: unknown browser %q", c.Source.Browser)
	}
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.App.Port)
	}
	return nil
}
