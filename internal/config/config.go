// Package config handles loading and saving the dialect corpus.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/salernoelia/py-dialect-test/internal/dialect"
	"gopkg.in/yaml.v3"
)

// CorpusFile is the name of the corpus inside the config directory.
const CorpusFile = "corpus.yaml"

//go:embed corpus.yaml
var defaultCorpus []byte

// File is the on-disk layout of a corpus.
type File struct {
	References []string                `yaml:"references"`
	Regions    []dialect.RegionPhrases `yaml:"regions"`
}

// DefaultCorpusYAML returns the built-in corpus file contents.
func DefaultCorpusYAML() []byte {
	return append([]byte(nil), defaultCorpus...)
}

// DefaultCorpus returns the built-in Zurich, Bern and Basel sample.
func DefaultCorpus() (*dialect.Corpus, error) {
	c, err := ParseCorpus(defaultCorpus)
	if err != nil {
		return nil, fmt.Errorf("built-in corpus: %w", err)
	}
	return c, nil
}

// ParseCorpus decodes and validates a YAML corpus.
func ParseCorpus(data []byte) (*dialect.Corpus, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}

	c, err := dialect.NewCorpus(f.Regions, f.References)
	if err != nil {
		return nil, fmt.Errorf("validating corpus: %w", err)
	}
	return c, nil
}

// LoadCorpus loads a corpus from a YAML file.
func LoadCorpus(path string) (*dialect.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	return ParseCorpus(data)
}

// SaveCorpus writes a corpus to a YAML file.
func SaveCorpus(path string, c *dialect.Corpus) error {
	regions, refs := c.Export()
	data := File{References: refs, Regions: regions}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling corpus: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing corpus file: %w", err)
	}

	return nil
}

// Source describes where a corpus came from.
type Source struct {
	Path     string // Empty for the built-in corpus
	Embedded bool
}

// String returns the path, or "built-in" for the embedded corpus.
func (s Source) String() string {
	if s.Embedded {
		return "built-in"
	}
	return s.Path
}

// Resolve picks the corpus to use: an explicit path first, then
// corpus.yaml in the config directory, then the built-in sample.
// An explicit path that cannot be loaded is an error; so is an invalid
// corpus.yaml in the config directory.
func Resolve(explicit, configDir string) (*dialect.Corpus, Source, error) {
	if explicit != "" {
		c, err := LoadCorpus(explicit)
		if err != nil {
			return nil, Source{}, err
		}
		return c, Source{Path: explicit}, nil
	}

	if configDir != "" {
		path := filepath.Join(configDir, CorpusFile)
		if _, err := os.Stat(path); err == nil {
			c, err := LoadCorpus(path)
			if err != nil {
				return nil, Source{}, fmt.Errorf("%s: %w", path, err)
			}
			return c, Source{Path: path}, nil
		}
	}

	c, err := DefaultCorpus()
	if err != nil {
		return nil, Source{}, err
	}
	return c, Source{Embedded: true}, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dialect"), nil
}
