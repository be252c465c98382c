package runner

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultMaxConcurrent is the default admission ceiling
const DefaultMaxConcurrent = 4

type Config struct {
	MaxConcurrent int `yaml:"maxConcurrent"`
	CacheSize     int `yaml:"cacheSize"` // token cache entries, 0 disables cache
}

func DefaultConfig() *Config {
	return &Config{
		MaxConcurrent: DefaultMaxConcurrent,
	}
}

// LoadConfig loads YAML config from URL, unset fields keep their defaults
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if ret.MaxConcurrent <= 0 {
		return nil, fmt.Errorf("invalid config %s: maxConcurrent must be positive, got %d", URL, ret.MaxConcurrent)
	}
	return ret, nil
}
