package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	rec := NewRecorder()
	scoped := NewScopedAPI("wikifeet", rec)

	scoped.ReportBroken("rank-resolver.fetch-listing", errors.New("boom"))
	scoped.ReportWarning("name-resolver.suggest", "query")
	scoped.ReportDebug("fetch page", "https://www.wikifeet.com/x")
	scoped.ReportCount("media.candidates", 3)

	broken := rec.Reports(KindBroken)
	require.Len(t, broken, 1)
	require.Equal(t, "wikifeet: rank-resolver.fetch-listing", broken[0].Id)
	require.Len(t, broken[0].Params, 1)

	require.True(t, rec.Has(KindWarning, "name-resolver.suggest"))
	require.True(t, rec.Has(KindDebug, "fetch page"))
	require.False(t, rec.Has(KindBroken, "name-resolver.suggest"))

	counts := rec.Reports(KindCount)
	require.Len(t, counts, 1)
	require.Equal(t, int64(3), counts[0].Count)
}

func TestNestedScopes(t *testing.T) {
	rec := NewRecorder()
	scoped := NewScopedAPI("outer", NewScopedAPI("inner", rec))
	scoped.ReportWarning("id")

	warnings := rec.Reports(KindWarning)
	require.Len(t, warnings, 1)
	require.Equal(t, "inner: outer: id", warnings[0].Id)
}
