// Package history keeps a log of the lookups made through the cli, in a local sqlite file
// or on a remote libsql server.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"wikifeet-go/internal/history/db"
)

// Migrate creates the tables of the store if they do not exist yet.
func Migrate(database *sql.DB) error {
	_, err := database.Exec(db.Schema)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeGated    Outcome = "gated"
	OutcomeFailed   Outcome = "failed"
)

// Lookup is one recorded cli lookup.
type Lookup struct {
	Time time.Time
	// Kind is how the model was resolved, "rank" or "search".
	Kind     string
	Query    string
	Name     string
	Username string
	PageURL  string
	Outcome  Outcome
}

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func (s Store) Close() error {
	return s.db.Close()
}

func (s Store) Record(ctx context.Context, lookup Lookup) error {
	if lookup.Time.IsZero() {
		lookup.Time = time.Now()
	}
	err := s.qry.CreateLookup(ctx, db.CreateLookupParams{
		Time:     lookup.Time.Unix(),
		Kind:     lookup.Kind,
		Query:    lookup.Query,
		Name:     lookup.Name,
		Username: lookup.Username,
		PageUrl:  lookup.PageURL,
		Outcome:  string(lookup.Outcome),
	})
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	return nil
}

// Recent returns up to limit lookups, newest first.
func (s Store) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.qry.ListRecentLookups(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}

	lookups := make([]Lookup, len(rows))
	for i, r := range rows {
		lookups[i] = Lookup{
			Time:     time.Unix(r.Time, 0),
			Kind:     r.Kind,
			Query:    r.Query,
			Name:     r.Name,
			Username: r.Username,
			PageURL:  r.PageUrl,
			Outcome:  Outcome(r.Outcome),
		}
	}
	return lookups, nil
}

func (s Store) Count(ctx context.Context) (int, error) {
	count, err := s.qry.CountLookups(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lookups: %w", err)
	}
	return int(count), nil
}
