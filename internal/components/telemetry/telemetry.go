package telemetry

import (
	"fmt"
)

// API is what components report through instead of logging directly, so tests can
// assert on what a component reported.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that failed in a way someone should fix, like a
	// page whose layout no longer matches the patterns used to read it.
	//
	// `id` names the component and the step that broke in lowercase, dot separated,
	// with dashes between words (ex. `rank.listing`, `model.fetch-page`). Details go
	// into params. Package names are added by ScopedAPI, not by the caller.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something unexpected that did not stop the component, like
	// a suggestion whose name barely resembles the query. `id` follows ReportBroken.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information that is only interesting while debugging.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the value of a gauge at the current time, consecutive reports
	// replace each other rather than add up. `id` follows ReportBroken.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id reported through it with a namespace, nesting scopes
// yields "outer: inner: id".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scoped(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scoped(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scoped(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scoped(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scoped(id), count)
}
