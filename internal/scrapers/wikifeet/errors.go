package wikifeet

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent is returned by accessors when a value could not be produced, it is wrapped by
	// every cause below so that callers which do not care why can test for it alone.
	ErrAbsent = errors.New("wikifeet: value absent")
	// ErrFetchFailed means the page holding the value could not be retrieved.
	ErrFetchFailed = fmt.Errorf("%w: page unavailable", ErrAbsent)
	// ErrNoMatch means the page was retrieved but does not contain the value.
	ErrNoMatch = fmt.Errorf("%w: not present on page", ErrAbsent)
	// ErrUnresolved is returned by every accessor of a model whose resolution failed,
	// no request is made in that case.
	ErrUnresolved = fmt.Errorf("%w: model was not resolved", ErrAbsent)

	// ErrNotFound is returned by resolvers when no model matches the rank or query.
	ErrNotFound = errors.New("wikifeet: model not found")
	// ErrUnavailable is returned by the rank resolver when the listing cannot be fetched.
	ErrUnavailable = fmt.Errorf("%w: rank listing unavailable", ErrNotFound)

	ErrUnknownMetric = errors.New("wikifeet: unknown poll metric")
)

// AdultContentError is returned by accessors of a search-resolved model whose page is
// flagged as adult content. It deliberately does not wrap ErrAbsent.
type AdultContentError struct {
	Name string
}

func (e *AdultContentError) Error() string {
	return fmt.Sprintf("wikifeet: %s's page contains adult content", e.Name)
}

// IsAdultContent reports whether err is (or wraps) an *AdultContentError.
func IsAdultContent(err error) bool {
	var target *AdultContentError
	return errors.As(err, &target)
}
