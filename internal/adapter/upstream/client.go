package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/retry"
)

const (
	defaultTimeout = 10 * time.Second

	// maxResponseBytes caps how much of a response body we read.
	maxResponseBytes = 4 << 20
)

// sortParam maps domain sort options to the values the search API accepts.
var sortParam = map[domain.SortOption]string{
	domain.SortByTravelTime:    "traveltime",
	domain.SortByArrivalTime:   "arrivedatetime",
	domain.SortByDepartureTime: "departdatetime",
}

var (
	_ domain.SearchGateway      = (*Client)(nil)
	_ domain.ReservationGateway = (*Client)(nil)
)

// Client talks to the flight-search API. It implements
// domain.SearchGateway and domain.ReservationGateway.
type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	retryCfg retry.Config
	log      *logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRateLimit throttles outgoing requests.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithRetryConfig overrides the retry policy for search and lookup calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.retryCfg = cfg }
}

// NewClient builds a Client for the given API base URL.
func NewClient(baseURL string, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultTimeout},
		retryCfg: retry.UpstreamConfig,
		log:      log.WithComponent("upstream"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// encodeCriteria builds the query string the search API expects. Criteria
// must already be normalized; optional fields are omitted when unset.
func encodeCriteria(c domain.SearchCriteria) url.Values {
	q := url.Values{}
	q.Set("departureAirport", c.DepartureAirport)
	q.Set("arriveAirport", c.ArriveAirport)

	if dayStart := c.DepartureDate; !dayStart.IsZero() {
		q.Set("startTime", dayStart.Format(time.RFC3339))
		q.Set("endTime", dayStart.Add(24*time.Hour-time.Second).Format(time.RFC3339))
	}

	q.Set("oneWay", strconv.FormatBool(c.OneWay))
	if !c.OneWay {
		if !c.ReturnDateStart.IsZero() {
			q.Set("returnDateStart", c.ReturnDateStart.Format(time.RFC3339))
		}
		if !c.ReturnDateEnd.IsZero() {
			q.Set("returnDateEnd", c.ReturnDateEnd.Format(time.RFC3339))
		}
	}
	q.Set("maxStops", strconv.Itoa(c.MaxStops))
	if c.Airline != "" {
		q.Set("airline", c.Airline)
	}
	if v, ok := sortParam[c.SortBy]; ok {
		q.Set("sortBy", v)
	}
	q.Set("page", strconv.Itoa(c.Page))
	q.Set("pageSize", strconv.Itoa(c.PageSize))
	return q
}

// Search fetches one result page matching the criteria.
func (c *Client) Search(ctx context.Context, criteria domain.SearchCriteria) (domain.ResultPage, error) {
	endpoint := c.baseURL + "/flights?" + encodeCriteria(criteria).Encode()

	var payload searchPayload
	err := c.doRetried(ctx, "search", func() error {
		return c.getJSON(ctx, "search", endpoint, &payload)
	})
	if err != nil {
		return domain.ResultPage{}, err
	}

	page, dropped := toResultPage(&payload)
	if dropped > 0 {
		c.log.Warn().
			Int("dropped", dropped).
			Int("kept", len(page.Items)).
			Msg("dropped malformed result items")
	}
	return page, nil
}

// Itinerary fetches a single itinerary by the ID of its outbound head
// segment.
func (c *Client) Itinerary(ctx context.Context, id string) (domain.Itinerary, error) {
	endpoint := c.baseURL + "/flights/" + url.PathEscape(id)

	var rec flightRecord
	err := c.doRetried(ctx, "lookup", func() error {
		return c.getJSON(ctx, "lookup", endpoint, &rec)
	})
	if err != nil {
		return domain.Itinerary{}, err
	}

	itinerary, err := toItinerary(&rec)
	if err != nil {
		return domain.Itinerary{}, err
	}
	return itinerary, nil
}

// Reserve books a seat on every segment of the itinerary. Reservation is
// not idempotent upstream, so it is never retried here.
func (c *Client) Reserve(ctx context.Context, id string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + "/flights/" + url.PathEscape(id) + "/reserve"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return domain.NewUpstreamError("reserve", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewRetryableUpstreamError("reserve", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes)) //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrNoSeatsAvailable
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrItineraryNotFound
	case resp.StatusCode >= 500:
		return domain.NewRetryableUpstreamError("reserve", fmt.Errorf("status %d", resp.StatusCode))
	default:
		return domain.NewUpstreamError("reserve", fmt.Errorf("status %d", resp.StatusCode))
	}
}

// wait blocks on the rate limiter when one is configured.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewUpstreamError("rate-limit", err)
	}
	return nil
}

// doRetried runs fn under the client's retry policy, retrying only
// errors marked retryable.
func (c *Client) doRetried(ctx context.Context, op string, fn func() error) error {
	cfg := c.retryCfg
	cfg.RetryIf = func(err error) bool {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return ue.Retryable
		}
		return false
	}
	err := retry.Do(ctx, fn, cfg)
	if err != nil {
		c.log.Error().Err(err).Str("op", op).Msg("upstream call failed")
	}
	return err
}

// getJSON performs a rate-limited GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.NewUpstreamError(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewRetryableUpstreamError(op, err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, body) //nolint:errcheck
		return domain.ErrItineraryNotFound
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, body) //nolint:errcheck
		return domain.NewRetryableUpstreamError(op, fmt.Errorf("status %d", resp.StatusCode))
	default:
		io.Copy(io.Discard, body) //nolint:errcheck
		return domain.NewUpstreamError(op, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return domain.NewUpstreamError(op, fmt.Errorf("decode: %w", err))
	}
	return nil
}
