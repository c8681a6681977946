package db

import (
	"context"
)

const createLookup = `-- name: CreateLookup :exec
insert into Lookup(time, kind, query, name, username, page_url, outcome)
values (?, ?, ?, ?, ?, ?, ?)
`

type CreateLookupParams struct {
	Time     int64
	Kind     string
	Query    string
	Name     string
	Username string
	PageUrl  string
	Outcome  string
}

func (q *Queries) CreateLookup(ctx context.Context, arg CreateLookupParams) error {
	_, err := q.db.ExecContext(ctx, createLookup,
		arg.Time,
		arg.Kind,
		arg.Query,
		arg.Name,
		arg.Username,
		arg.PageUrl,
		arg.Outcome,
	)
	return err
}

const listRecentLookups = `-- name: ListRecentLookups :many
select id, time, kind, query, name, username, page_url, outcome from Lookup
order by time desc, id desc
limit ?
`

func (q *Queries) ListRecentLookups(ctx context.Context, limit int64) ([]Lookup, error) {
	rows, err := q.db.QueryContext(ctx, listRecentLookups, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lookup
	for rows.Next() {
		var i Lookup
		if err := rows.Scan(
			&i.ID,
			&i.Time,
			&i.Kind,
			&i.Query,
			&i.Name,
			&i.Username,
			&i.PageUrl,
			&i.Outcome,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countLookups = `-- name: CountLookups :one
select count(*) from Lookup
`

func (q *Queries) CountLookups(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countLookups)
	var count int64
	err := row.Scan(&count)
	return count, err
}
