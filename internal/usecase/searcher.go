package usecase

import (
	"context"
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
)

// PageCache caches whole result pages keyed by the complete criteria
// value. A hit replaces exactly one fetch; pages are never merged.
// Implementations must be safe for concurrent use.
type PageCache interface {
	// Get returns the cached page for the criteria, if present.
	Get(ctx context.Context, criteria domain.SearchCriteria) (domain.ResultPage, bool)

	// Set stores the page under the criteria's key.
	Set(ctx context.Context, criteria domain.SearchCriteria, page domain.ResultPage)
}

// SearchUseCase runs one complete search cycle: fetch, derive, present.
type SearchUseCase interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error)
}

// SearchResult is the outcome of one search: normalized criteria actually
// sent upstream, presenter rows in server order, and paging flags.
type SearchResult struct {
	// Criteria echoes the normalized criteria the result answers.
	Criteria domain.SearchCriteria `json:"criteria"`

	// Rows are the display rows, one per surviving result item.
	Rows []Row `json:"rows"`

	// HasMore reports whether a following page exists for this search
	// mode (round-trip: more outbound OR more return).
	HasMore bool `json:"hasMore"`

	// Total is the server-reported result count, when known.
	Total int `json:"total"`

	// Meta describes how the search executed.
	Meta SearchMeta `json:"meta"`

	// page keeps the raw page for callers that need the itineraries
	// themselves (details views, session state).
	page domain.ResultPage
}

// Page returns the raw result page behind the rows.
func (r *SearchResult) Page() domain.ResultPage {
	return r.page
}

// SearchMeta describes the execution of one search.
type SearchMeta struct {
	// DurationMs is the end-to-end search duration in milliseconds.
	DurationMs int64 `json:"durationMs"`

	// CacheHit reports whether the page came from the response cache.
	CacheHit bool `json:"cacheHit"`
}

// Searcher implements SearchUseCase over a SearchGateway with an optional
// response cache.
type Searcher struct {
	gateway   domain.SearchGateway
	cache     PageCache
	presenter *Presenter
	log       *logger.Logger
}

// NewSearcher creates a Searcher. cache may be nil to disable caching.
func NewSearcher(gateway domain.SearchGateway, cache PageCache, presenter *Presenter, log *logger.Logger) *Searcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Searcher{
		gateway:   gateway,
		cache:     cache,
		presenter: presenter,
		log:       log.WithComponent("searcher"),
	}
}

// Search normalizes and validates the criteria, fetches one page (from
// cache when possible) and presents it.
func (s *Searcher) Search(ctx context.Context, criteria domain.SearchCriteria) (*SearchResult, error) {
	start := time.Now()

	criteria = criteria.Normalized()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	page, cacheHit, err := s.fetch(ctx, criteria)
	if err != nil {
		return nil, err
	}

	rows := s.presenter.Present(page, criteria.OneWay)

	s.log.Debug().
		Int("items", len(page.Items)).
		Int("rows", len(rows)).
		Bool("cache_hit", cacheHit).
		Int("page", criteria.Page).
		Msg("Search completed")

	return &SearchResult{
		Criteria: criteria,
		Rows:     rows,
		HasMore:  page.HasNext(criteria.OneWay),
		Total:    page.Total,
		Meta: SearchMeta{
			DurationMs: time.Since(start).Milliseconds(),
			CacheHit:   cacheHit,
		},
		page: page,
	}, nil
}

// fetch returns a page from the cache when possible, falling back to the
// gateway. Cache failures never fail the search.
func (s *Searcher) fetch(ctx context.Context, criteria domain.SearchCriteria) (domain.ResultPage, bool, error) {
	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, criteria); ok {
			return page, true, nil
		}
	}

	page, err := s.gateway.Search(ctx, criteria)
	if err != nil {
		return domain.ResultPage{}, false, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, criteria, page)
	}
	return page, false, nil
}

var _ SearchUseCase = (*Searcher)(nil)
