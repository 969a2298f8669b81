// Package dialect provides the phrase corpus and the nearest-dialect classifier.
package dialect

import "errors"

// Region identifies a dialect-bearing area, e.g. a canton.
type Region string

// Translation pairs a reference sentence with its dialect rendering.
type Translation struct {
	Reference string `yaml:"reference" json:"reference"` // Sentence in the reference language
	Dialect   string `yaml:"dialect" json:"dialect"`     // The region's translation
}

// RegionPhrases holds all translations known for one region.
type RegionPhrases struct {
	Region       Region        `yaml:"region" json:"region"`
	Translations []Translation `yaml:"translations" json:"translations"`
}

// RegionScore is a region with its cumulative distance.
type RegionScore struct {
	Region Region
	Score  int
}

var (
	// ErrEmptyInput is returned when there are no sentences to classify.
	ErrEmptyInput = errors.New("no sentences to classify")
	// ErrEmptyTranslationSet means a region has no sample phrases.
	ErrEmptyTranslationSet = errors.New("region has no translations")
	// ErrNotFound is returned for lookups of unknown regions.
	ErrNotFound = errors.New("region not found")
	// ErrDuplicateRegion means a region was declared twice.
	ErrDuplicateRegion = errors.New("duplicate region")
	// ErrInconsistentCorpus means regions disagree on their reference phrases.
	ErrInconsistentCorpus = errors.New("inconsistent corpus")
)
