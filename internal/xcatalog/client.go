package xcatalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "carmatch/0.1.0"

// ErrNotFound indicates the upstream catalog has no trim for the code.
var ErrNotFound = errors.New("trim not found")

// Client provides access to the X-Catalog API.
type Client struct {
	baseURL    string
	country    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRateLimit caps outbound requests per second. Zero or negative disables
// pacing.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		} else {
			c.limiter = nil
		}
	}
}

// New creates an X-Catalog client.
func New(baseURL, country string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("xcatalog base url required")
	}
	country = strings.TrimSpace(country)
	if country == "" {
		country = "it"
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    country,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

type trimSearchRequest struct {
	Country        string   `json:"country"`
	Source         string   `json:"source"`
	ReferenceCode  string   `json:"referenceCode"`
	VehicleType    string   `json:"vehicleType"`
	ReferenceDate  string   `json:"referenceDate"`
	EquipmentTypes []string `json:"equipmentTypes"`
	OptionCodes    []string `json:"optionCodes"`
}

// FetchTrim looks up one source trim by provider code. Returns ErrNotFound
// when the upstream has no record for it.
func (c *Client) FetchTrim(ctx context.Context, providerCode string) (*Record, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	payload := trimSearchRequest{
		Country:        c.country,
		Source:         "infocar",
		ReferenceCode:  providerCode,
		VehicleType:    "auto",
		EquipmentTypes: []string{},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode trim search: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/trim/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build trim search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trim search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trim search: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read trim search response: %w", err)
	}

	// The endpoint answers with either a record list or a single object
	// (which may be an error envelope).
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrNotFound
	}
	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode trim search response: %w", err)
		}
		if len(records) == 0 {
			return nil, ErrNotFound
		}
		return &records[0], nil
	}

	var record Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("decode trim search response: %w", err)
	}
	switch record.Code {
	case "TRIM_NOT_FOUND", "NOT_FOUND", "ERROR":
		return nil, ErrNotFound
	}
	if record.Make == "" && record.Name == "" {
		return nil, ErrNotFound
	}
	return &record, nil
}

// ResolveTrim fetches a trim by provider code, retrying once with the
// inverted code when the original misses. It reports the code that actually
// resolved and whether inversion was used.
func (c *Client) ResolveTrim(ctx context.Context, providerCode string) (*Record, string, bool, error) {
	record, err := c.FetchTrim(ctx, providerCode)
	if err == nil {
		return record, providerCode, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, providerCode, false, err
	}

	inverted := InvertProviderCode(providerCode)
	if inverted == "" {
		return nil, providerCode, false, ErrNotFound
	}
	record, err = c.FetchTrim(ctx, inverted)
	if err != nil {
		return nil, providerCode, false, err
	}
	return record, inverted, true, nil
}

// ExistingMapping returns the most recent eurotax mapping recorded upstream
// for the source code, or nil when none exists.
func (c *Client) ExistingMapping(ctx context.Context, sourceCode, vehicleType string) (*Mapping, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/private/mapping/infocar/%s", c.baseURL, url.PathEscape(sourceCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build mapping lookup request: %w", err)
	}
	query := req.URL.Query()
	query.Set("country", c.country)
	query.Set("vehicleType", vehicleType)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapping lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapping lookup: unexpected status %d", resp.StatusCode)
	}

	var mappings []Mapping
	if err := json.NewDecoder(resp.Body).Decode(&mappings); err != nil {
		return nil, fmt.Errorf("decode mapping lookup response: %w", err)
	}

	// The id encodes the creation time, so the lexically greatest id is the
	// most recent eurotax mapping.
	var latest *Mapping
	for i := range mappings {
		m := &mappings[i]
		if m.DestProvider != "eurotax" {
			continue
		}
		if latest == nil || m.ID > latest.ID {
			latest = m
		}
	}
	return latest, nil
}

type mappingSubmission struct {
	Country        string  `json:"country"`
	DestCode       string  `json:"destCode"`
	DestProvider   string  `json:"destProvider"`
	Score          float64 `json:"score"`
	SourceCode     string  `json:"sourceCode"`
	SourceProvider string  `json:"sourceProvider"`
	Strategy       string  `json:"strategy"`
	VehicleType    string  `json:"vehicleType"`
}

// SubmitMapping persists a confirmed mapping upstream. The raw score is
// normalized to a 0-1 scale against the submitting profile's max score.
func (c *Client) SubmitMapping(ctx context.Context, sub Submission) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	normalized := 0.0
	if sub.MaxScore > 0 {
		normalized = math.Round(float64(sub.Score)/float64(sub.MaxScore)*10000) / 10000
	}
	vehicleType := "car"
	if strings.EqualFold(sub.VehicleClass, "LCV") {
		vehicleType = "lcv"
	}
	country := sub.Country
	if country == "" {
		country = c.country
	}

	payload := mappingSubmission{
		Country:        country,
		DestCode:       sub.DestCode,
		DestProvider:   "eurotax",
		Score:          normalized,
		SourceCode:     sub.SourceCode,
		SourceProvider: "infocar",
		Strategy:       "manual",
		VehicleType:    vehicleType,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mapping submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/private/mapping", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mapping submission request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mapping submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mapping submission: unexpected status %d", resp.StatusCode)
	}
	return nil
}
