package wikifeet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/titanous/json5"
)

const (
	report_media_decode = "media.decode"
)

// Media is one photo of a model.
type Media struct {
	ID        string
	Thumbnail string
	Image     string
}

func ThumbnailURL(id string) string {
	return fmt.Sprintf("%s/%s.jpg", thumbnailHost, id)
}

func ImageURL(username, id string) string {
	return fmt.Sprintf("%s/%s-feet-%s.jpg", imageHost, username, id)
}

// formatPid turns a decoded `pid` into its decimal representation, ok is false when it
// is neither a number nor a non-empty string.
func formatPid(value any) (string, bool) {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	}
	return "", false
}

// parseMediaIds decodes the inline photo array of a model page into photo ids.
func parseMediaIds(text string) ([]string, error) {
	groups, ok := extractFirst(text, mediaDataPattern)
	if !ok {
		return nil, ErrNoMatch
	}

	var photos []map[string]any
	err := json5.Unmarshal([]byte(groups[0]), &photos)
	if err != nil {
		return nil, fmt.Errorf("decode photo data: %w", err)
	}

	ids := make([]string, 0, len(photos))
	for _, photo := range photos {
		id, ok := formatPid(photo["pid"])
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MediaIDs returns every photo id listed on the model page.
func (m Model) MediaIDs(ctx context.Context) ([]string, error) {
	text, err := m.page(ctx)
	if err != nil {
		return nil, fmt.Errorf("media: %w", err)
	}

	ids, err := parseMediaIds(text)
	if errors.Is(err, ErrNoMatch) {
		return nil, fmt.Errorf("media: %w", ErrNoMatch)
	}
	if err != nil {
		m.client.tel.ReportBroken(report_media_decode, err, m.record.PageURL)
		return nil, fmt.Errorf("media: %w: %w", ErrNoMatch, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("media: %w", ErrNoMatch)
	}
	return ids, nil
}

// RandomMediaID picks one of the model's photo ids uniformly at random, every call
// fetches the page and picks again.
func (m Model) RandomMediaID(ctx context.Context) (string, error) {
	ids, err := m.MediaIDs(ctx)
	if err != nil {
		return "", err
	}
	return ids[m.client.rand.IntN(len(ids))], nil
}

// Media picks a random photo and returns both of its urls.
func (m Model) Media(ctx context.Context) (Media, error) {
	id, err := m.RandomMediaID(ctx)
	if err != nil {
		return Media{}, err
	}
	return Media{
		ID:        id,
		Thumbnail: ThumbnailURL(id),
		Image:     ImageURL(m.record.Username, id),
	}, nil
}

// Thumbnail returns the thumbnail url of a random photo.
func (m Model) Thumbnail(ctx context.Context) (string, error) {
	id, err := m.RandomMediaID(ctx)
	if err != nil {
		return "", err
	}
	return ThumbnailURL(id), nil
}

// Image returns the full size url of a random photo, chosen independently of Thumbnail.
func (m Model) Image(ctx context.Context) (string, error) {
	id, err := m.RandomMediaID(ctx)
	if err != nil {
		return "", err
	}
	return ImageURL(m.record.Username, id), nil
}
