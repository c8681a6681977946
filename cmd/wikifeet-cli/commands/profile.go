package commands

import (
	"context"
	"fmt"
	"wikifeet-go/internal/scrapers/wikifeet"
)

// showProfile fetches and prints the profile of a resolved model, resolution errors and
// adult content are fatal.
func showProfile(ctx context.Context, kind, query string, model wikifeet.Model, resolveErr error) {
	if resolveErr != nil {
		current.recordLookup(ctx, query, model, resolveErr)
		fail(ctx, fmt.Sprintf("could not resolve %s %q", kind, query), resolveErr)
		return
	}

	profile, err := model.Profile(ctx)
	current.recordLookup(ctx, query, model, err)
	if err != nil {
		fail(ctx, "could not fetch profile", err)
		return
	}
	renderProfile(stdout, profile)
}
