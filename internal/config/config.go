package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"BankruptcySentiment/internal/domain"
)

const (
	configPathEnv   = "SENTIMENT_CONFIG"
	logLevelEnv     = "SENTIMENT_LOG_LEVEL"
	outputDirEnv    = "SENTIMENT_OUTPUT_DIR"
	scorerURLEnv    = "SENTIMENT_SCORER_URL"
	scorerAPIKeyEnv = "SENTIMENT_SCORER_API_KEY"

	// BackendLexicon scores text with the built-in offline lexicon.
	BackendLexicon = "lexicon"
	// BackendHTTP scores text through a remote polarity service.
	BackendHTTP = "http"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Sources    []SourceConfig   `yaml:"sources"`
	Statistics StatisticsConfig `yaml:"statistics"`
	Scorer     ScorerConfig     `yaml:"scorer"`
	Output     OutputConfig     `yaml:"output"`
}

// LoggingConfig selects slog level and handler format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PipelineConfig tunes the correlation run.
type PipelineConfig struct {
	Workers           int      `yaml:"workers"`
	PositiveThreshold *float64 `yaml:"positiveThreshold"`
	Region            string   `yaml:"region"`
}

// Threshold returns the configured positivity threshold or the default.
func (p PipelineConfig) Threshold() float64 {
	if p.PositiveThreshold == nil {
		return domain.DefaultPositiveThreshold
	}
	return *p.PositiveThreshold
}

// SourceConfig describes one outlet corpus and the variant that decodes it.
type SourceConfig struct {
	Name       string   `yaml:"name"`
	Variant    string   `yaml:"variant"`
	Path       string   `yaml:"path"`
	Vocabulary []string `yaml:"vocabulary"`
}

// StatisticsConfig lists the bankruptcy-expectation extracts, one per snapshot.
type StatisticsConfig struct {
	Files []string `yaml:"files"`
}

// ScorerConfig selects the sentiment backend.
type ScorerConfig struct {
	Backend  string        `yaml:"backend"`
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"apiKey"`
	Timeout  time.Duration `yaml:"timeout"`
}

// OutputConfig controls where and how charts are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. path takes precedence over SENTIMENT_CONFIG; unreadable files
// are reported and defaults are kept.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			log.Printf("config: %v (falling back to defaults)", err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// LoadFromFile is Load for an explicitly requested file: a missing or
// malformed file is an error instead of a fallback.
func LoadFromFile(path string) (Config, error) {
	fileCfg, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := mergeConfig(defaultConfig(), fileCfg)
	cfg.applyEnvOverrides()
	return cfg, nil
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return fileCfg, nil
}

// Validate rejects configurations the pipeline cannot run.
func (c Config) Validate() error {
	var errs []error

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want text or json", c.Logging.Format))
	}

	if t := c.Pipeline.Threshold(); t < -1 || t > 1 {
		errs = append(errs, fmt.Errorf("pipeline.positiveThreshold must lie in [-1,1], got %v", t))
	}

	if c.Pipeline.Workers < 0 {
		errs = append(errs, fmt.Errorf("pipeline.workers must not be negative, got %d", c.Pipeline.Workers))
	}

	if len(c.Sources) == 0 {
		errs = append(errs, errors.New("sources: at least one source is required"))
	}
	seen := map[domain.Source]string{}
	for i, s := range c.Sources {
		src, err := domain.ParseSource(s.Variant)
		if err != nil {
			errs = append(errs, fmt.Errorf("sources[%d] %s: %w", i, s.Name, err))
			continue
		}
		if prev, dup := seen[src]; dup {
			errs = append(errs, fmt.Errorf("sources[%d] %s: variant %s already used by %s", i, s.Name, src, prev))
		}
		seen[src] = s.Name
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("sources[%d] %s: path is required", i, s.Name))
		}
	}

	if len(c.Statistics.Files) == 0 {
		errs = append(errs, errors.New("statistics.files: at least one file is required"))
	}

	switch c.Scorer.Backend {
	case BackendLexicon:
	case BackendHTTP:
		if c.Scorer.Endpoint == "" {
			errs = append(errs, errors.New("scorer.endpoint is required for the http backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("scorer.backend %q: want %s or %s", c.Scorer.Backend, BackendLexicon, BackendHTTP))
	}

	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir is required"))
	}

	return errors.Join(errs...)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(scorerURLEnv); v != "" {
		c.Scorer.Endpoint = v
	}

	if v := os.Getenv(scorerAPIKeyEnv); v != "" {
		c.Scorer.APIKey = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Pipeline.Workers != 0 {
		base.Pipeline.Workers = override.Pipeline.Workers
	}
	if override.Pipeline.PositiveThreshold != nil {
		base.Pipeline.PositiveThreshold = override.Pipeline.PositiveThreshold
	}
	if override.Pipeline.Region != "" {
		base.Pipeline.Region = override.Pipeline.Region
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	if len(override.Statistics.Files) > 0 {
		base.Statistics = override.Statistics
	}

	if override.Scorer.Backend != "" {
		base.Scorer.Backend = override.Scorer.Backend
	}
	if override.Scorer.Endpoint != "" {
		base.Scorer.Endpoint = override.Scorer.Endpoint
	}
	if override.Scorer.APIKey != "" {
		base.Scorer.APIKey = override.Scorer.APIKey
	}
	if override.Scorer.Timeout != 0 {
		base.Scorer.Timeout = override.Scorer.Timeout
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.Width != 0 {
		base.Output.Width = override.Output.Width
	}
	if override.Output.Height != 0 {
		base.Output.Height = override.Output.Height
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Pipeline: PipelineConfig{Workers: 4, Region: domain.NationalRegion},
		Sources: []SourceConfig{
			{Name: "cbc", Variant: string(domain.SourceA), Path: "dataset/articles.json"},
			{Name: "the_star", Variant: string(domain.SourceB), Path: "dataset/the_star.json"},
			{Name: "global", Variant: string(domain.SourceC), Path: "dataset/global.json"},
		},
		Statistics: StatisticsConfig{Files: []string{
			"dataset/dataset_2020_07_14.csv",
			"dataset/dataset_2020_11_13.csv",
			"dataset/dataset_2021_03_05.csv",
			"dataset/dataset_2021_05_28.csv",
			"dataset/dataset_2021_08_27.csv",
		}},
		Scorer: ScorerConfig{Backend: BackendLexicon, Timeout: 15 * time.Second},
		Output: OutputConfig{Dir: "charts", Width: 900, Height: 480},
	}
}
