package dialect

import (
	"fmt"
	"slices"
)

// Corpus is a read-only mapping from region to reference phrase to dialect
// phrase. It is validated once on construction and never mutated; every
// accessor returns a copy.
type Corpus struct {
	regions    []Region
	phrases    map[Region][]Translation
	references []string
}

// NewCorpus builds a corpus from regions in display order and the list of
// reference phrases that drives the translation quiz.
//
// Every region must translate the same set of reference phrases, and every
// listed reference phrase must be among them.
func NewCorpus(regions []RegionPhrases, references []string) (*Corpus, error) {
	c := &Corpus{
		regions:    make([]Region, 0, len(regions)),
		phrases:    make(map[Region][]Translation, len(regions)),
		references: slices.Clone(references),
	}

	var keys map[string]bool
	for _, rp := range regions {
		if rp.Region == "" {
			return nil, fmt.Errorf("region with empty name: %w", ErrInconsistentCorpus)
		}
		if _, ok := c.phrases[rp.Region]; ok {
			return nil, fmt.Errorf("%s: %w", rp.Region, ErrDuplicateRegion)
		}
		if len(rp.Translations) == 0 {
			return nil, fmt.Errorf("%s: %w", rp.Region, ErrEmptyTranslationSet)
		}

		own := make(map[string]bool, len(rp.Translations))
		for _, t := range rp.Translations {
			if own[t.Reference] {
				return nil, fmt.Errorf("%s: reference %q translated twice: %w", rp.Region, t.Reference, ErrInconsistentCorpus)
			}
			own[t.Reference] = true
		}

		if keys == nil {
			keys = own
		} else if err := sameKeys(keys, own); err != nil {
			return nil, fmt.Errorf("%s: %w", rp.Region, err)
		}

		c.regions = append(c.regions, rp.Region)
		c.phrases[rp.Region] = slices.Clone(rp.Translations)
	}

	if keys != nil {
		for _, ref := range references {
			if !keys[ref] {
				return nil, fmt.Errorf("reference %q has no translations: %w", ref, ErrInconsistentCorpus)
			}
		}
	}

	return c, nil
}

func sameKeys(want, got map[string]bool) error {
	for k := range want {
		if !got[k] {
			return fmt.Errorf("missing translation for %q: %w", k, ErrInconsistentCorpus)
		}
	}
	for k := range got {
		if !want[k] {
			return fmt.Errorf("unexpected reference %q: %w", k, ErrInconsistentCorpus)
		}
	}
	return nil
}

// Regions returns the regions in construction order.
func (c *Corpus) Regions() []Region {
	return slices.Clone(c.regions)
}

// Len returns the number of regions.
func (c *Corpus) Len() int {
	return len(c.regions)
}

// Has reports whether the region is part of the corpus.
func (c *Corpus) Has(r Region) bool {
	_, ok := c.phrases[r]
	return ok
}

// TranslationsFor returns reference phrase -> dialect phrase for a region.
func (c *Corpus) TranslationsFor(r Region) (map[string]string, error) {
	ts, ok := c.phrases[r]
	if !ok {
		return nil, fmt.Errorf("%s: %w", r, ErrNotFound)
	}

	out := make(map[string]string, len(ts))
	for _, t := range ts {
		out[t.Reference] = t.Dialect
	}
	return out, nil
}

// Phrases returns a region's translations in declaration order.
func (c *Corpus) Phrases(r Region) ([]Translation, error) {
	ts, ok := c.phrases[r]
	if !ok {
		return nil, fmt.Errorf("%s: %w", r, ErrNotFound)
	}
	return slices.Clone(ts), nil
}

// ReferencePhrases returns the quiz sentences in declared order.
func (c *Corpus) ReferencePhrases() []string {
	return slices.Clone(c.references)
}

// Export returns the corpus in its construction form.
func (c *Corpus) Export() ([]RegionPhrases, []string) {
	regions := make([]RegionPhrases, 0, len(c.regions))
	for _, r := range c.regions {
		regions = append(regions, RegionPhrases{
			Region:       r,
			Translations: slices.Clone(c.phrases[r]),
		})
	}
	return regions, c.ReferencePhrases()
}
