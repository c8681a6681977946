package wikifeet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	report_rank_listing = "rank.listing"
	report_rank_resolve = "rank.resolve"
)

// RankEntry is one entry of the "feet of the year" listing.
type RankEntry struct {
	Rank    int
	Name    string
	Segment string
}

func (e RankEntry) record() ModelRecord {
	rank := e.Rank
	return newModelRecord(&rank, e.Name, e.Segment)
}

// RankListing fetches the "feet of the year" page and returns every entry in document order.
// Several entries may share a rank.
func (c Client) RankListing(ctx context.Context) ([]RankEntry, error) {
	text, err := c.fetch.FetchText(ctx, rankListUrl)
	if err != nil {
		c.tel.ReportBroken(report_rank_listing, fmt.Errorf("fetch: %w", err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var entries []RankEntry
	for _, groups := range extractAll(text, rankListingPattern) {
		rank, err := strconv.Atoi(strings.TrimSpace(groups[0]))
		if err != nil {
			c.tel.ReportWarning(
				report_rank_listing,
				fmt.Errorf("parse rank: %w", err),
				groups[0],
			)
			continue
		}
		entries = append(entries, RankEntry{
			Rank:    rank,
			Name:    groups[1],
			Segment: groups[2],
		})
	}
	c.tel.ReportDebug(report_rank_listing, "parsed entries", len(entries))

	return entries, nil
}

// effectiveIndex maps the caller supplied disambiguation index to a position among the
// entries sharing a rank: 1 selects the first entry and 2 the second, so that 1-based
// callers work, while 0 also selects the first and any other value is used as is.
func effectiveIndex(index int) int {
	switch index {
	case 1:
		return 0
	case 2:
		return 1
	}
	return index
}

// selectEntry filters entries by rank, preserving order, and picks the entry at the
// effective index, falling back to the first one when the index is out of range.
func selectEntry(entries []RankEntry, rank, index int) (RankEntry, bool) {
	var candidates []RankEntry
	for _, e := range entries {
		if e.Rank == rank {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return RankEntry{}, false
	}

	position := effectiveIndex(index)
	if position < 0 || position >= len(candidates) {
		return candidates[0], true
	}
	return candidates[position], true
}

// ByRank resolves the first model listed with the given rank.
func (c Client) ByRank(ctx context.Context, rank int) (Model, error) {
	return c.ByRankIndex(ctx, rank, 0)
}

// ByRankIndex resolves a model by rank, using index to choose between models sharing
// that rank (see effectiveIndex). On failure the returned model is unresolved and the
// error wraps ErrNotFound.
func (c Client) ByRankIndex(ctx context.Context, rank, index int) (Model, error) {
	entries, err := c.RankListing(ctx)
	if err != nil {
		return c.unresolved(OriginRank), err
	}

	entry, ok := selectEntry(entries, rank, index)
	if !ok {
		c.tel.ReportDebug(report_rank_resolve, "no entry for rank", rank)
		return c.unresolved(OriginRank), fmt.Errorf("rank %d: %w", rank, ErrNotFound)
	}

	return c.resolved(OriginRank, entry.record()), nil
}
