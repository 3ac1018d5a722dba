package restld

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// Logger defines the interface for logging operations within the restld
// package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Client implements annotator.LDService against a REST LD endpoint
// (GET {base}/ld/{species}/{id}/{population}). It is an alternative to
// the database-backed variationdb store for hosts without a local
// variation mirror.
type Client struct {
	baseURL    string
	species    string
	httpClient *http.Client
	logger     Logger
	tracer     annotator.Tracer
}

// ldRecord is one result object as returned by the endpoint. The r2
// value comes over the wire as a string.
type ldRecord struct {
	Variation1     string `json:"variation1"`
	Variation2     string `json:"variation2"`
	R2             string `json:"r2"`
	DPrime         string `json:"d_prime"`
	PopulationName string `json:"population_name"`
}

// NewClient constructs a REST LD client. Tracer may be nil.
func NewClient(cfg Config, logger Logger, tracer annotator.Tracer) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("restld: missing LD_REST_ENDPOINT")
	}

	species := cfg.Species
	if species == "" {
		species = "human"
	}

	timeout := cfg.HTTPTimeoutS
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		species:    species,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger:     logger,
		tracer:     tracer,
	}, nil
}

// LDValues fetches pairwise LD results for the placement's variant in
// the given population. A 404 means no LD container exists for the
// pair and is reported as annotator.ErrNotFound.
func (c *Client) LDValues(ctx context.Context, placement annotator.Placement, population *annotator.Population) ([]annotator.LDPair, error) {
	if c.tracer != nil {
		tracedCtx, span := c.tracer.StartSpan(ctx, "restld.ld_values")
		defer span.End()
		ctx = tracedCtx
	}

	endpoint := fmt.Sprintf("%s/ld/%s/%s/%s?content-type=application/json",
		c.baseURL,
		url.PathEscape(c.species),
		url.PathEscape(placement.VariantName),
		url.PathEscape(population.Name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("restld: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restld: ld request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, annotator.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("restld: ld request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var records []ldRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("restld: decoding ld response: %w", err)
	}

	pairs := make([]annotator.LDPair, 0, len(records))
	for _, record := range records {
		r2, err := strconv.ParseFloat(record.R2, 64)
		if err != nil {
			c.logger.Warn("skipping ld record with unparseable r2", err, map[string]interface{}{
				"variation1": record.Variation1,
				"variation2": record.Variation2,
				"r2":         record.R2,
			})
			continue
		}
		pairs = append(pairs, annotator.LDPair{
			VariationName1: record.Variation1,
			VariationName2: record.Variation2,
			R2:             r2,
		})
	}

	return pairs, nil
}
