package wikifeet

import (
	"context"
	"fmt"
)

type field struct {
	name  string
	chain []capture
	// format turns the captured value into the returned one, nil returns it as is.
	format func(string) string
}

var (
	fieldShoeSize = field{
		name:  "shoe size",
		chain: []capture{{pattern: shoeSizePattern, group: 1}},
	}
	fieldBirthPlace = field{
		name:  "birth place",
		chain: []capture{{pattern: birthPlacePattern, group: 1}},
	}
	fieldBirthDate = field{
		name:  "birth date",
		chain: []capture{{pattern: birthDatePattern, group: 1}},
	}
	fieldRating = field{
		name: "rating",
		chain: []capture{
			{pattern: ratingPattern, group: 1},
			{pattern: ratingGorgeousPattern, group: 2},
		},
	}
	fieldRatingStats = field{
		name:  "rating stats",
		chain: []capture{{pattern: ratingStatsPattern, group: 1}},
	}
	fieldImdb = field{
		name:  "imdb page",
		chain: []capture{{pattern: imdbPattern, group: 1}},
		format: func(segment string) string {
			return fmt.Sprintf("%s/%s", imdbUrl, segment)
		},
	}
)

func (m Model) extractField(ctx context.Context, f field) (string, error) {
	text, err := m.page(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.name, err)
	}

	value, ok := extractChain(text, f.chain)
	if !ok {
		return "", fmt.Errorf("%s: %w", f.name, ErrNoMatch)
	}
	if f.format != nil {
		value = f.format(value)
	}
	return value, nil
}

func (m Model) ShoeSize(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldShoeSize)
}

func (m Model) BirthPlace(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldBirthPlace)
}

func (m Model) BirthDate(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldBirthDate)
}

// Rating returns the overall feet rating, falling back to the alternate rating box.
func (m Model) Rating(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldRating)
}

// RatingStats returns the number of votes behind the rating.
func (m Model) RatingStats(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldRatingStats)
}

func (m Model) ImdbPage(ctx context.Context) (string, error) {
	return m.extractField(ctx, fieldImdb)
}

type RatingCategory string

const (
	RatingBeautiful RatingCategory = "beautiful"
	RatingNice      RatingCategory = "nice"
	RatingOk        RatingCategory = "ok"
	RatingBad       RatingCategory = "bad"
	RatingUgly      RatingCategory = "ugly"
)

// RatingCategories lists the known categories from best to worst.
func RatingCategories() []RatingCategory {
	return []RatingCategory{RatingBeautiful, RatingNice, RatingOk, RatingBad, RatingUgly}
}

func (c RatingCategory) known() bool {
	for _, known := range RatingCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// RatingBreakdown maps a category label to its vote count.
type RatingBreakdown map[RatingCategory]string

// RatingBreakdown returns the vote count of every known category listed on the page.
// Unknown labels are ignored and when a label occurs more than once the first occurrence wins.
func (m Model) RatingBreakdown(ctx context.Context) (RatingBreakdown, error) {
	text, err := m.page(ctx)
	if err != nil {
		return nil, fmt.Errorf("rating breakdown: %w", err)
	}

	breakdown := RatingBreakdown{}
	for _, groups := range extractAll(text, ratingBreakdownPattern) {
		category := RatingCategory(groups[1])
		if !category.known() {
			continue
		}
		if _, exists := breakdown[category]; exists {
			continue
		}
		breakdown[category] = groups[0]
	}
	if len(breakdown) == 0 {
		return nil, fmt.Errorf("rating breakdown: %w", ErrNoMatch)
	}
	return breakdown, nil
}

// CategoryRating returns the vote count of a single category.
func (m Model) CategoryRating(ctx context.Context, category RatingCategory) (string, error) {
	breakdown, err := m.RatingBreakdown(ctx)
	if err != nil {
		return "", err
	}
	value, ok := breakdown[category]
	if !ok {
		return "", fmt.Errorf("%s rating: %w", category, ErrNoMatch)
	}
	return value, nil
}
