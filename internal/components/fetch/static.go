package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrNoSuchPage = errors.New("no such page")

// Static implements API over a fixed set of pages, urls that are not registered fail with
// ErrNoSuchPage. It records every requested url so tests can assert on network usage.
type Static struct {
	mutex    sync.Mutex
	pages    map[string]string
	failures map[string]error
	requests []string
}

func NewStatic(pages map[string]string) *Static {
	copied := make(map[string]string, len(pages))
	for k, v := range pages {
		copied[k] = v
	}
	return &Static{
		pages:    copied,
		failures: map[string]error{},
	}
}

// Set registers (or replaces) the body served at url.
func (s *Static) Set(url, body string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.failures, url)
	s.pages[url] = body
}

// Fail makes every fetch of url return err.
func (s *Static) Fail(url string, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failures[url] = err
}

func (s *Static) FetchText(ctx context.Context, url string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.requests = append(s.requests, url)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := s.failures[url]; ok {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	body, ok := s.pages[url]
	if !ok {
		return "", fmt.Errorf("fetch %s: %w", url, ErrNoSuchPage)
	}
	return body, nil
}

// Requests returns every url requested so far in order.
func (s *Static) Requests() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]string(nil), s.requests...)
}

// Count returns how many times url was requested.
func (s *Static) Count(url string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	n := 0
	for _, r := range s.requests {
		if r == url {
			n++
		}
	}
	return n
}
