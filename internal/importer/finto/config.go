package finto

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the run options of one importer invocation.
type Config struct {
	// OntologyURL is the ontology distribution endpoint.
	OntologyURL string `yaml:"ontology_url"`
	// RequestTimeout bounds the fetch, e.g. "90s". Empty means the default.
	RequestTimeout string `yaml:"request_timeout"`
	// LinkReplacements controls whether marking a keyword deprecated also
	// assigns its replacement reference, or only sets the flag.
	LinkReplacements bool `yaml:"link_replacements"`
}

func DefaultConfig() Config {
	return Config{
		OntologyURL:      "https://finto.fi/rest/v1/jupo/data",
		RequestTimeout:   "120s",
		LinkReplacements: true,
	}
}

// LoadConfig overlays a YAML file onto the defaults. An empty path returns
// the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read importer config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse importer config: %w", err)
	}
	if cfg.OntologyURL == "" {
		cfg.OntologyURL = DefaultConfig().OntologyURL
	}
	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 120 * time.Second
	}
	return d
}
