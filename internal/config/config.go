package config

import (
	"fmt"
	"os"

	"github.com/synthbench/evalreport/internal/dataset"
	"gopkg.in/yaml.v3"
)

// Config enumerates the inputs the analysis commands recognize. Entry
// order is preserved from the file and determines output row order.
type Config struct {
	Reports   []Report      `yaml:"reports"`
	Dataset   Dataset       `yaml:"dataset"`
	Baselines []BaselineRun `yaml:"baselines"`
}

type Report struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Dataset struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"`
}

type BaselineRun struct {
	Budget int    `yaml:"budget"`
	Path   string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Reports) == 0 && len(cfg.Baselines) == 0 {
		return fmt.Errorf("no reports or baselines defined")
	}
	names := make(map[string]bool)
	for i, r := range cfg.Reports {
		if r.Name == "" {
			return fmt.Errorf("report %d: name is required", i)
		}
		if r.Path == "" {
			return fmt.Errorf("report %q: path is required", r.Name)
		}
		if names[r.Name] {
			return fmt.Errorf("report %q: duplicate name", r.Name)
		}
		names[r.Name] = true
	}
	budgets := make(map[int]bool)
	for i, b := range cfg.Baselines {
		if b.Budget <= 0 {
			return fmt.Errorf("baseline %d: budget must be positive", i)
		}
		if b.Path == "" {
			return fmt.Errorf("baseline budget %d: path is required", b.Budget)
		}
		if budgets[b.Budget] {
			return fmt.Errorf("baseline budget %d: duplicate budget", b.Budget)
		}
		budgets[b.Budget] = true
	}
	if len(cfg.Baselines) > 0 && cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset path is required when baselines are defined")
	}
	if cfg.Dataset.Encoding == "" {
		cfg.Dataset.Encoding = "latin-1"
	}
	if err := dataset.CheckEncoding(cfg.Dataset.Encoding); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}

// FindReport returns the configured report with the given name.
func (c *Config) FindReport(name string) (*Report, error) {
	for i := range c.Reports {
		if c.Reports[i].Name == name {
			return &c.Reports[i], nil
		}
	}
	return nil, fmt.Errorf("report %q not found in config", name)
}
