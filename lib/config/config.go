package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/pescuma/devhours/lib/utils"
)

const (
	DefaultDevDir = "~/Documents/Development"
	DevDirEnv     = "DEV_DIR"
)

type Config struct {
	DevDir     string   `yaml:"dev_dir"`
	Emails     []string `yaml:"emails"`
	IgnoreCase bool     `yaml:"ignore_case"`
	Workers    int      `yaml:"workers"`

	Progress bool `yaml:"-"`
	Verbose  bool `yaml:"-"`
}

func DefaultEmails() []string {
	return []string{"@hackery.site", "@som.codes"}
}

func DefaultConfig() *Config {
	return &Config{
		DevDir:  DefaultDevDir,
		Emails:  DefaultEmails(),
		Workers: utils.DefaultRoutines(),
	}
}

func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "devhours", "config.yaml"), nil
}

// Load reads file on top of the defaults. A missing file is not an error.
// If file is empty the default location is used.
func Load(file string) (*Config, error) {
	cfg := DefaultConfig()

	if file == "" {
		var err error
		file, err = DefaultConfigFile()
		if err != nil {
			return cfg, nil
		}
	}

	file, err := utils.PathAbs(file)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, errors.Wrapf(err, "reading config %v", file)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %v", file)
	}

	return cfg, nil
}

func (c *Config) ApplyEnv() {
	if dir := strings.TrimSpace(os.Getenv(DevDirEnv)); dir != "" {
		c.DevDir = dir
	}
}

// Validate normalizes paths and checks that the scan can start.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DevDir) == "" {
		return errors.New("dev dir is required")
	}

	dir, err := utils.PathAbs(c.DevDir)
	if err != nil {
		return errors.Wrapf(err, "invalid dev dir %v", c.DevDir)
	}
	c.DevDir = dir

	info, err := os.Stat(c.DevDir)
	switch {
	case err != nil:
		return errors.Wrapf(err, "invalid dev dir %v", c.DevDir)
	case !info.IsDir():
		return errors.Errorf("dev dir is not a directory: %v", c.DevDir)
	}

	c.Emails = lo.Filter(c.Emails, func(e string, _ int) bool { return strings.TrimSpace(e) != "" })
	if len(c.Emails) == 0 {
		return errors.New("at least one email to match is required")
	}

	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %v", c.Workers)
	}

	return nil
}
