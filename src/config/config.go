package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the agent looks for its configuration unless
// --config overrides it.
const DefaultPath = "/etc/zfsbak.yaml"

// Config is built once at startup and passed down explicitly; nothing in
// the agent reads ambient process-wide state.
type Config struct {
	// Pattern filters volume names during discovery. Unanchored regexp;
	// empty matches every volume.
	Pattern string `yaml:"pattern"`

	// ZFSPath is the zfs binary invoked for every storage operation.
	ZFSPath string `yaml:"zfs_path"`
}

func Default() Config {
	return Config{ZFSPath: "zfs"}
}

// Load reads the yaml file at path. A missing file yields the defaults; a
// malformed one is fatal.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ZFSPath == "" {
		cfg.ZFSPath = "zfs"
	}
	return cfg, nil
}
