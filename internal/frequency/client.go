// Package frequency pages through the dbSNP allele-frequency-by-interval
// service, accumulating every record overlapping a genomic interval.
package frequency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/HIM72/dbsnp/internal/ncbi"
)

// DefaultBaseURL is the NCBI variation services endpoint.
const DefaultBaseURL = "https://api.ncbi.nlm.nih.gov/variation/v0"

// DefaultMaxPages bounds the pagination loop against a misbehaving upstream.
const DefaultMaxPages = 1000

// ErrTooManyPages is returned when pagination exceeds the configured page cap.
var ErrTooManyPages = errors.New("frequency: page limit exceeded")

// Records maps composite "<length>@<start>" keys to their frequency payloads.
// Payloads are passed through undecoded; only the key is interpreted.
type Records map[string]json.RawMessage

// Pacer spaces out external calls. *ratelimit.Limiter satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Client fetches overlapping frequency records for an interval, following
// partial responses until the service reports the result set complete.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    Pacer
	logger     *zap.Logger
	maxPages   int
}

// NewClient creates a client against the given variation-services base URL.
// An empty baseURL selects the public NCBI endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Redirect statuses are unrecognized in the interval protocol
			// and must surface as such, not be followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger:   zap.NewNop(),
		maxPages: DefaultMaxPages,
	}
}

// SetLogger sets the logger for request tracing.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// SetLimiter installs a pacer consulted before every upstream request.
func (c *Client) SetLimiter(p Pacer) {
	c.limiter = p
}

// SetMaxPages caps the number of pagination requests per FetchAll call.
// Zero or negative disables the cap.
func (c *Client) SetMaxPages(n int) {
	c.maxPages = n
}

type intervalResponse struct {
	Results map[string]json.RawMessage `json:"results"`
}

// FetchAll returns every frequency record overlapping [start, stop] on the
// given accession. The service takes a position and a length, so each
// request covers start..start+length-1 with length = stop - start + 1.
//
// HTTP 200 means the page completed the result set; 206 means the page was
// capped, and the next request starts one past the highest position covered
// by any record accumulated so far. Statuses >= 400 surface a
// *ncbi.TransportError, anything else a *ncbi.ProtocolError. On error no
// partial accumulator is returned.
func (c *Client) FetchAll(ctx context.Context, accession string, start, stop int64) (Records, error) {
	recs := make(Records)

	for page := 1; ; page++ {
		if c.maxPages > 0 && page > c.maxPages {
			return nil, fmt.Errorf("%s:%d-%d after %d pages: %w",
				accession, start, stop, c.maxPages, ErrTooManyPages)
		}

		done, err := c.fetchPage(ctx, accession, start, stop, recs)
		if err != nil {
			return nil, err
		}
		if done {
			return recs, nil
		}

		next, err := nextStart(recs)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("continuing pagination",
			zap.Int("page", page),
			zap.Int("accumulated", len(recs)),
			zap.Int64("next_start", next))
		start = next
	}
}

// fetchPage issues one interval request and merges the returned records.
// It reports whether the service marked the result set complete.
func (c *Client) fetchPage(ctx context.Context, accession string, start, stop int64, recs Records) (bool, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return false, err
		}
	}

	length := stop - start + 1
	reqURL := fmt.Sprintf("%s/interval/%s:%d:%d/overlapping_frequency_records",
		c.baseURL, accession, start, length)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("building interval request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &ncbi.TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusPartialContent:
		// Fall through to decode.
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(resp.Body)
		return false, &ncbi.TransportError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	default:
		return false, &ncbi.ProtocolError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	var page intervalResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return false, fmt.Errorf("decode interval response from %s: %w", reqURL, err)
	}

	// Identical keys denote identical variants, so overwriting on merge is safe.
	for k, v := range page.Results {
		recs[k] = v
	}

	c.logger.Debug("fetched page",
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("records", len(page.Results)))

	return resp.StatusCode == http.StatusOK, nil
}
