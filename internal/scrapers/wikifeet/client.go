// Package wikifeet resolves models listed on wikifeet.com by rank or by name and extracts
// the fields shown on their pages and on the site-wide poll pages.
//
// Nothing is cached: every accessor fetches the pages it needs again, so two accessors
// called on the same model make two requests and media accessors pick a new random
// photo on every call.
package wikifeet

import (
	"context"
	"fmt"
	"wikifeet-go/internal/components/assert"
	"wikifeet-go/internal/components/entropy"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/components/telemetry"
)

const (
	report_model_fetch_page = "model.fetch-page"
	report_model_gated      = "model.gated"
)

type Client struct {
	fetch fetch.API
	rand  entropy.API
	tel   telemetry.API
}

func NewClient(fetcher fetch.API, rand entropy.API, tel telemetry.API) Client {
	assert.NotNil(fetcher)
	assert.NotNil(rand)
	assert.NotNil(tel)

	return Client{
		fetch: fetcher,
		rand:  rand,
		tel:   telemetry.NewScopedAPI("wikifeet", tel),
	}
}

// Model is a resolved (or unresolved) model together with the client used to query it.
// Accessors of an unresolved model return ErrUnresolved without making any request.
type Model struct {
	client Client
	record *ModelRecord
	origin Origin
}

func (c Client) unresolved(origin Origin) Model {
	return Model{client: c, origin: origin}
}

func (c Client) resolved(origin Origin, record ModelRecord) Model {
	return Model{client: c, record: &record, origin: origin}
}

func (m Model) Resolved() bool {
	return m.record != nil
}

func (m Model) Origin() Origin {
	return m.origin
}

// Record returns a copy of the model's record, ok is false when the model is unresolved.
func (m Model) Record() (record ModelRecord, ok bool) {
	if m.record == nil {
		return ModelRecord{}, false
	}
	return *m.record, true
}

func (m Model) Name() (string, error) {
	if m.record == nil {
		return "", ErrUnresolved
	}
	return m.record.Name, nil
}

func (m Model) Username() (string, error) {
	if m.record == nil {
		return "", ErrUnresolved
	}
	return m.record.Username, nil
}

// ID returns the rank the model was resolved by, search results have none.
func (m Model) ID() (int, error) {
	if m.record == nil {
		return 0, ErrUnresolved
	}
	if m.record.ID == nil {
		return 0, fmt.Errorf("id: %w", ErrNoMatch)
	}
	return *m.record.ID, nil
}

// page fetches the model page and, for search-resolved models, applies the adult
// content gate before anything else looks at it.
func (m Model) page(ctx context.Context) (string, error) {
	if m.record == nil {
		return "", ErrUnresolved
	}

	text, err := m.client.fetch.FetchText(ctx, m.record.PageURL)
	if err != nil {
		m.client.tel.ReportWarning(report_model_fetch_page, err, m.record.PageURL)
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if m.origin == OriginSearch && IsGated(text) {
		m.client.tel.ReportDebug(report_model_gated, m.record.Name)
		return "", &AdultContentError{Name: m.record.Name}
	}
	return text, nil
}

// PageURL returns the model's page url if the page can currently be retrieved.
func (m Model) PageURL(ctx context.Context) (string, error) {
	_, err := m.page(ctx)
	if err != nil {
		return "", err
	}
	return m.record.PageURL, nil
}
