package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wordfreq/internal/adapter/analyzer"
)

const (
	dataDirName    = ".wordfreq"
	configFileName = "wordfreq.yaml"
)

// Config holds all configuration for the wordfreq tool.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Index    IndexConfig    `yaml:"index"`
	Input    InputConfig    `yaml:"input"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalyzerConfig holds the normalize/tokenize/rank toggles.
type AnalyzerConfig struct {
	FoldCase         bool     `yaml:"fold_case"`
	FoldYo           bool     `yaml:"fold_yo"`
	FoldDiacritics   bool     `yaml:"fold_diacritics"`
	Punctuation      string   `yaml:"punctuation"` // "boundary" or "strip"
	Charset          string   `yaml:"charset"`     // "word" or "alpha"
	JoinHyphens      bool     `yaml:"join_hyphens"`
	MinLength        int      `yaml:"min_length"`
	Stopwords        []string `yaml:"stopwords"`
	DefaultStopwords bool     `yaml:"default_stopwords"`
	TopN             int      `yaml:"top_n"`
}

// IndexConfig holds corpus indexing configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
}

// InputConfig holds text source configuration.
type InputConfig struct {
	Encoding string `yaml:"encoding"`
}

// ReportConfig holds report export configuration.
type ReportConfig struct {
	Format string `yaml:"format"` // "csv", "json", "xlsx"; empty picks by extension
	Output string `yaml:"output"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := analyzer.DefaultOptions()
	return &Config{
		Analyzer: AnalyzerConfig{
			FoldCase:       opts.FoldCase,
			FoldYo:         opts.FoldYo,
			FoldDiacritics: opts.FoldDiacritics,
			Punctuation:    string(opts.Punctuation),
			Charset:        string(opts.Charset),
			JoinHyphens:    opts.JoinHyphens,
			MinLength:      opts.MinLength,
			TopN:           opts.TopN,
		},
		Index: IndexConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/" + dataDirName + "/**"},
			Workers:  4,
		},
		Input: InputConfig{
			Encoding: "utf-8",
		},
		Report: ReportConfig{
			Format: "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// AnalyzerOptions maps the analyzer section to pipeline options.
func (c *Config) AnalyzerOptions() analyzer.Options {
	a := c.Analyzer
	opts := analyzer.Options{
		FoldCase:       a.FoldCase,
		FoldYo:         a.FoldYo,
		FoldDiacritics: a.FoldDiacritics,
		Punctuation:    analyzer.Punctuation(a.Punctuation),
		Charset:        analyzer.Charset(a.Charset),
		JoinHyphens:    a.JoinHyphens,
		MinLength:      a.MinLength,
		TopN:           a.TopN,
	}
	if a.DefaultStopwords {
		opts.Stopwords = append(opts.Stopwords, analyzer.DefaultStopwords()...)
	}
	opts.Stopwords = append(opts.Stopwords, a.Stopwords...)
	return opts
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for wordfreq.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, dataDirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, dataDirName, "index.db")
}

// EnsureDataDir ensures the .wordfreq directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, dataDirName), 0755)
}
