// Optional per-repository configuration for gitstat.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = ".gitstat.yml"

// GitStat holds defaults read from a repository's .gitstat.yml. Zero values
// mean "not set"; explicitly-passed flags always win over the file.
type GitStat struct {
	Days   int    `yaml:"days"`
	Author string `yaml:"author"`
	Export string `yaml:"export"`
	Limit  int    `yaml:"limit"`
}

// Load reads .gitstat.yml from the repository path. A missing file is fine
// and yields the zero config; a file that exists but does not parse is an
// error.
func Load(repoPath string) (GitStat, error) {
	var cfg GitStat

	path := filepath.Join(repoPath, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse %s: %w", path, err)
	}

	if cfg.Days < 0 {
		return cfg, fmt.Errorf("%s: days must not be negative", path)
	}

	return cfg, nil
}
