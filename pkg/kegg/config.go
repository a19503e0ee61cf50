// 17 Oct 2026

package kegg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// DefaultConfigFile is looked for if no config file is named.
const DefaultConfigFile = "kegg.json"

// Config is what can be set in the JSON config file. Command line flags
// win over the file.
type Config struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	LogLevel       string `json:"log_level"`
	UserAgent      string `json:"user_agent"`
}

// Timeout is the per request timeout, zero if not set.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads a JSON config. If path is empty, DefaultConfigFile
// is tried. A missing file is not an error, you just get the defaults.
// A file that is there but broken is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if c.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("config %s: negative timeout_seconds", path)
	}
	return &c, nil
}
