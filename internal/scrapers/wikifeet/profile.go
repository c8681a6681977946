package wikifeet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	report_profile_field = "profile.field"
)

// maximum number of page fetches a single profile runs at once
const profileConcurrency = 4

// Profile holds every field of a model page, fields that are absent stay empty.
type Profile struct {
	Record          ModelRecord
	Origin          Origin
	ShoeSize        string
	BirthPlace      string
	BirthDate       string
	Rating          string
	RatingStats     string
	RatingBreakdown RatingBreakdown
	ImdbPage        string
	Media           []string
}

type profileField struct {
	name  string
	fetch func(ctx context.Context) (string, error)
	set   func(p *Profile, value string)
}

// Profile fetches every field of the model concurrently. Each field still fetches the page
// on its own. An adult content error from any field aborts the profile and is returned,
// other errors only leave the field empty.
func (m Model) Profile(ctx context.Context) (Profile, error) {
	record, ok := m.Record()
	if !ok {
		return Profile{}, fmt.Errorf("profile: %w", ErrUnresolved)
	}

	var mutex sync.Mutex
	profile := Profile{Record: record, Origin: m.origin}

	fields := []profileField{
		{"shoe size", m.ShoeSize, func(p *Profile, v string) { p.ShoeSize = v }},
		{"birth place", m.BirthPlace, func(p *Profile, v string) { p.BirthPlace = v }},
		{"birth date", m.BirthDate, func(p *Profile, v string) { p.BirthDate = v }},
		{"rating", m.Rating, func(p *Profile, v string) { p.Rating = v }},
		{"rating stats", m.RatingStats, func(p *Profile, v string) { p.RatingStats = v }},
		{"imdb page", m.ImdbPage, func(p *Profile, v string) { p.ImdbPage = v }},
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(profileConcurrency)

	for _, f := range fields {
		group.Go(func() error {
			value, err := f.fetch(groupCtx)
			if err != nil {
				return m.profileError(f.name, err)
			}
			mutex.Lock()
			f.set(&profile, value)
			mutex.Unlock()
			return nil
		})
	}
	group.Go(func() error {
		breakdown, err := m.RatingBreakdown(groupCtx)
		if err != nil {
			return m.profileError("rating breakdown", err)
		}
		mutex.Lock()
		profile.RatingBreakdown = breakdown
		mutex.Unlock()
		return nil
	})
	group.Go(func() error {
		ids, err := m.MediaIDs(groupCtx)
		if err != nil {
			return m.profileError("media", err)
		}
		mutex.Lock()
		profile.Media = ids
		mutex.Unlock()
		return nil
	})

	err := group.Wait()
	if err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// profileError swallows absent fields and passes through anything that should abort.
func (m Model) profileError(name string, err error) error {
	if IsAdultContent(err) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	m.client.tel.ReportDebug(report_profile_field, name, err.Error())
	return nil
}
