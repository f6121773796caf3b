package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/timeutil"
)

// ErrNoActiveSearch is returned by transitions that need an existing result,
// such as paging or re-sorting, before any search has been submitted.
var ErrNoActiveSearch = errors.New("no active search")

// SearchSession drives the search screen's state: one current criteria
// value, one current result, and the transitions the screen offers. Every
// transition rebuilds the criteria wholesale and issues one full fetch;
// nothing is merged across pages.
//
// Responses are applied newest-wins: when a fetch is superseded by a later
// transition before it returns, its result is discarded rather than
// overwriting newer state.
type SearchSession struct {
	searcher SearchUseCase
	clock    timeutil.Clock
	log      *logger.Logger

	mu          sync.Mutex
	criteria    domain.SearchCriteria
	result      *SearchResult
	lastFetched time.Time
	nextSeq     uint64
	appliedSeq  uint64
}

// NewSearchSession creates a session over the given search use case.
func NewSearchSession(searcher SearchUseCase, clock timeutil.Clock, log *logger.Logger) *SearchSession {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SearchSession{
		searcher: searcher,
		clock:    clock,
		log:      log.WithComponent("session"),
	}
}

// Submit runs a fresh search from page 1 with the given criteria.
func (s *SearchSession) Submit(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error) {
	return s.run(ctx, criteria.Normalized().FirstPage())
}

// SetSort changes the sort order, resets to page 1, and re-issues the
// search with the existing filters. It fails with ErrNoActiveSearch before
// the first Submit.
func (s *SearchSession) SetSort(ctx context.Context, sortBy domain.SortOption) (*SearchResult, error) {
	s.mu.Lock()
	started := s.result != nil
	criteria := s.criteria.WithSort(sortBy)
	s.mu.Unlock()

	if !started {
		return nil, ErrNoActiveSearch
	}
	return s.run(ctx, criteria)
}

// NextPage advances one page, holding all other criteria fixed. When the
// current result reports no further pages this is a no-op returning the
// current result. It fails with ErrNoActiveSearch before the first Submit.
func (s *SearchSession) NextPage(ctx context.Context) (*SearchResult, error) {
	s.mu.Lock()
	current := s.result
	hasMore := current != nil && current.HasMore
	criteria := s.criteria.NextPage(hasMore)
	s.mu.Unlock()

	if current == nil {
		return nil, ErrNoActiveSearch
	}
	if !hasMore {
		return current, nil
	}
	return s.run(ctx, criteria)
}

// PrevPage moves back one page, holding all other criteria fixed. On page 1
// this is a no-op returning the current result. It fails with
// ErrNoActiveSearch before the first Submit.
func (s *SearchSession) PrevPage(ctx context.Context) (*SearchResult, error) {
	s.mu.Lock()
	current := s.result
	criteria := s.criteria.PrevPage()
	onFirstPage := criteria.Page == s.criteria.Page
	s.mu.Unlock()

	if current == nil {
		return nil, ErrNoActiveSearch
	}
	if onFirstPage {
		return current, nil
	}
	return s.run(ctx, criteria)
}

// Criteria returns the criteria of the most recent transition.
func (s *SearchSession) Criteria() domain.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Result returns the current result, or nil before the first Submit.
func (s *SearchSession) Result() *SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// LastFetched returns when the current result was applied.
func (s *SearchSession) LastFetched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFetched
}

// run executes one fetch for the given criteria and applies the result
// unless a later fetch has finished in the meantime.
func (s *SearchSession) run(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error) {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.criteria = criteria
	s.mu.Unlock()

	result, err := s.searcher.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		// A later transition already landed; keep its state.
		s.log.Debug().Uint64("seq", seq).Msg("Discarding superseded search response")
		return s.result, nil
	}
	s.appliedSeq = seq
	s.result = result
	s.lastFetched = s.clock.Now()
	return result, nil
}
