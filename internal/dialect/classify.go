package dialect

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the outcome of a classification run.
type Result struct {
	Scores map[Region]int // Cumulative best-match distance per region
	Order  []Region       // Regions in corpus order, for display
	Best   Region         // Region with the lowest score
	Found  bool           // False only when the corpus has no regions
}

// Classify scores each region by summing, over all sentences, the distance
// from the sentence to the region's closest dialect phrase. Comparison is
// case-insensitive.
//
// The best region is the first one in corpus order holding the minimum
// score; later regions only win with a strictly smaller score.
func Classify(sentences []string, c *Corpus) (*Result, error) {
	if len(sentences) == 0 {
		return nil, ErrEmptyInput
	}

	lower := cases.Lower(language.Und)

	res := &Result{
		Scores: make(map[Region]int, len(c.regions)),
		Order:  slices.Clone(c.regions),
	}
	for _, r := range c.regions {
		res.Scores[r] = 0
	}

	for _, text := range sentences {
		text = lower.String(text)

		for _, r := range c.regions {
			best, err := bestMatch(text, c.phrases[r], lower)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", r, err)
			}
			res.Scores[r] += best
		}
	}

	for _, r := range res.Order {
		if !res.Found || res.Scores[r] < res.Scores[res.Best] {
			res.Best = r
			res.Found = true
		}
	}

	return res, nil
}

// bestMatch returns the smallest distance from text to any dialect phrase.
func bestMatch(text string, phrases []Translation, lower cases.Caser) (int, error) {
	if len(phrases) == 0 {
		return 0, ErrEmptyTranslationSet
	}

	best := Distance(text, lower.String(phrases[0].Dialect))
	for _, t := range phrases[1:] {
		if d := Distance(text, lower.String(t.Dialect)); d < best {
			best = d
		}
	}
	return best, nil
}

// Ranked returns the scores sorted ascending. Equal scores keep corpus order.
func (r *Result) Ranked() []RegionScore {
	out := make([]RegionScore, 0, len(r.Order))
	for _, region := range r.Order {
		out = append(out, RegionScore{Region: region, Score: r.Scores[region]})
	}
	slices.SortStableFunc(out, func(a, b RegionScore) int {
		return a.Score - b.Score
	})
	return out
}

// Summary renders the result on a single line.
func (r *Result) Summary() string {
	parts := make([]string, 0, len(r.Order))
	for _, region := range r.Order {
		parts = append(parts, fmt.Sprintf("%s=%d", region, r.Scores[region]))
	}

	best := "none"
	if r.Found {
		best = string(r.Best)
	}
	return fmt.Sprintf("closest: %s (%s)", best, strings.Join(parts, ", "))
}
