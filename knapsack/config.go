package knapsack

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrInvalidConfig is wrapped by every configuration and input validation error.
var ErrInvalidConfig = errors.New("config error")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Config stores the configuration parameters for an engine run and the experiments built on it.
type Config struct {
	Evolution  EvolutionConfig
	Experiment ExperimentConfig
}

// EvolutionConfig holds the genetic algorithm parameters.
type EvolutionConfig struct {
	PopulationSize int     `ini:"population_size"`
	NumGenerations int     `ini:"num_generations"`
	CrossoverRate  float64 `ini:"crossover_rate"`
	MutationRate   float64 `ini:"mutation_rate"` // per gene
	TournamentSize int     `ini:"tournament_size"`
	Seed           uint64  `ini:"seed"` // 0 = random
}

// ExperimentConfig holds parameters for the repeated-trial studies.
type ExperimentConfig struct {
	Trials             int       `ini:"trials"`
	Workers            int       `ini:"workers"`
	Capacities         []float64 `ini:"capacities" delim:","`
	ComparisonCapacity float64   `ini:"comparison_capacity"`
	PlotDir            string    `ini:"plot_dir"`
}

// DefaultEvolutionConfig returns the parameters used by the original experiments.
func DefaultEvolutionConfig() EvolutionConfig {
	return EvolutionConfig{
		PopulationSize: 100,
		NumGenerations: 200,
		CrossoverRate:  0.85,
		MutationRate:   0.01,
		TournamentSize: 3,
		Seed:           0,
	}
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	return &Config{
		Evolution: DefaultEvolutionConfig(),
		Experiment: ExperimentConfig{
			Trials:             5,
			Workers:            1,
			Capacities:         []float64{30, 40, 50, 60, 70},
			ComparisonCapacity: 50,
			PlotDir:            "plots",
		},
	}
}

// Validate checks ranges of the genetic algorithm parameters.
func (c EvolutionConfig) Validate() error {
	if c.PopulationSize <= 0 {
		return configErrorf("population_size must be positive, got %d", c.PopulationSize)
	}
	if c.NumGenerations < 0 {
		return configErrorf("num_generations cannot be negative, got %d", c.NumGenerations)
	}
	if !isProbability(c.CrossoverRate) {
		return configErrorf("crossover_rate must be between 0 and 1, got %v", c.CrossoverRate)
	}
	if !isProbability(c.MutationRate) {
		return configErrorf("mutation_rate must be between 0 and 1, got %v", c.MutationRate)
	}
	if c.TournamentSize <= 0 {
		return configErrorf("tournament_size must be positive, got %d", c.TournamentSize)
	}
	if c.TournamentSize > c.PopulationSize {
		return configErrorf("tournament_size (%d) cannot exceed population_size (%d)", c.TournamentSize, c.PopulationSize)
	}
	return nil
}

// Validate checks ranges of the experiment parameters.
func (c ExperimentConfig) Validate() error {
	if c.Trials <= 0 {
		return configErrorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return configErrorf("workers must be positive, got %d", c.Workers)
	}
	for _, capacity := range c.Capacities {
		if err := validateCapacity(capacity); err != nil {
			return err
		}
	}
	return validateCapacity(c.ComparisonCapacity)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

func validateCapacity(capacity float64) error {
	if math.IsNaN(capacity) || capacity < 0 {
		return configErrorf("capacity cannot be negative, got %v", capacity)
	}
	return nil
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:         true,
	UnescapeValueCommentSymbols: true,
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(filePath string) (*Config, error) {
	config, err := loadConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// loadConfig accepts anything ini.LoadSources does (file name or raw bytes).
func loadConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Experiment").MapTo(&config.Experiment); err != nil {
		return nil, fmt.Errorf("failed to map [Experiment] section: %w", err)
	}
	config.Experiment.PlotDir = strings.TrimSpace(config.Experiment.PlotDir)

	if err := config.Evolution.Validate(); err != nil {
		return nil, err
	}
	if err := config.Experiment.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadCatalogs reads named item catalogs from an INI file. Each section is one
// catalog, in file order, and each key is an item: `Item 1 = <weight>, <value>`.
func LoadCatalogs(filePath string) ([]NamedCatalog, error) {
	catalogs, err := loadCatalogs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs from '%s': %w", filePath, err)
	}
	return catalogs, nil
}

func loadCatalogs(source interface{}) ([]NamedCatalog, error) {
	cfg, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, err
	}

	var catalogs []NamedCatalog
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}
		catalog := make(Catalog, 0, len(section.Keys()))
		for _, key := range section.Keys() {
			fields, err := key.StrictFloat64s(",")
			if err != nil {
				return nil, configErrorf("[%s] %s: %v", section.Name(), key.Name(), err)
			}
			if len(fields) != 2 {
				return nil, configErrorf("[%s] %s: expected \"weight, value\", got %q", section.Name(), key.Name(), key.String())
			}
			catalog = append(catalog, Item{Name: key.Name(), Weight: fields[0], Value: fields[1]})
		}
		if err := catalog.Validate(); err != nil {
			return nil, fmt.Errorf("catalog [%s]: %w", section.Name(), err)
		}
		catalogs = append(catalogs, NamedCatalog{Name: section.Name(), Items: catalog})
	}
	if len(catalogs) == 0 {
		return nil, configErrorf("no catalogs defined")
	}
	return catalogs, nil
}
