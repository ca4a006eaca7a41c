package gene

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/HIM72/dbsnp/internal/ncbi"
)

// DefaultBaseURL is the NCBI E-utilities endpoint.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// LookupError reports a well-formed summary response that lacks the gene or
// its genomic coordinates.
type LookupError struct {
	GeneID string
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("gene %s: %s", e.GeneID, e.Reason)
}

// Pacer spaces out external calls. *ratelimit.Limiter satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Resolver looks up genomic locations by gene identifier via the esummary
// service. One HTTP request per Resolve call; no retries.
type Resolver struct {
	baseURL    string
	httpClient *http.Client
	limiter    Pacer
	logger     *zap.Logger
}

// NewResolver creates a resolver against the given E-utilities base URL.
// An empty baseURL selects the public NCBI endpoint.
func NewResolver(baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for request tracing.
func (r *Resolver) SetLogger(l *zap.Logger) {
	r.logger = l
}

// SetLimiter installs a pacer consulted before the upstream request.
func (r *Resolver) SetLimiter(p Pacer) {
	r.limiter = p
}

// summaryResponse mirrors the subset of the esummary JSON body we consume.
// The result object maps each requested uid to its document summary.
type summaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type summaryDocument struct {
	GenomicInfo []genomicInfo `json:"genomicinfo"`
}

type genomicInfo struct {
	ChrAccVer string  `json:"chraccver"`
	ChrStart  flexInt `json:"chrstart"`
	ChrStop   flexInt `json:"chrstop"`
}

// Resolve returns the accession and normalized interval for geneID. Genes on
// the minus strand report chrstart > chrstop; the bounds are swapped so the
// returned Location always has Start <= Stop.
func (r *Resolver) Resolve(ctx context.Context, geneID string) (*Location, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	reqURL := fmt.Sprintf("%s/esummary.fcgi?db=gene&id=%s&format=json",
		r.baseURL, url.QueryEscape(geneID))

	r.logger.Debug("resolving gene", zap.String("gene_id", geneID), zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building summary request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &ncbi.TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ncbi.TransportError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}

	raw, ok := summary.Result[geneID]
	if !ok {
		return nil, &LookupError{GeneID: geneID, Reason: "not present in summary result"}
	}

	var doc summaryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode summary for gene %s: %w", geneID, err)
	}
	if len(doc.GenomicInfo) == 0 {
		return nil, &LookupError{GeneID: geneID, Reason: "no genomic coordinate data"}
	}

	info := doc.GenomicInfo[0]
	start, stop := int64(info.ChrStart), int64(info.ChrStop)
	if start > stop {
		start, stop = stop, start
	}

	loc := &Location{Accession: info.ChrAccVer, Start: start, Stop: stop}
	r.logger.Debug("resolved gene",
		zap.String("gene_id", geneID),
		zap.String("location", loc.String()))
	return loc, nil
}
