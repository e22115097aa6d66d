package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// tokenExpirySkew renews the access token this long before its reported
// expiry, so an in-flight request never carries a token that dies mid-call.
const tokenExpirySkew = 30 * time.Second

// HTTPProvider fetches parts from a remote catalog service speaking the
// altsource catalog API: GET /parts/{mpn} for a single part and
// GET /parts?category=...&limit=... for candidate search.
type HTTPProvider struct {
	config contract.CatalogConfig
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewHTTPProvider returns a provider for the configured catalog service.
func NewHTTPProvider(config contract.CatalogConfig) *HTTPProvider {
	return &HTTPProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// GetPart fetches a single part by MPN.
func (p *HTTPProvider) GetPart(ctx context.Context, mpn string) (schema.PartAttributes, error) {
	var part schema.PartAttributes
	endpoint := p.config.BaseURL + "/parts/" + url.PathEscape(strings.TrimSpace(mpn))
	if err := p.getJSON(ctx, endpoint, &part); err != nil {
		return schema.PartAttributes{}, err
	}
	return part, nil
}

// FindCandidates searches the catalog for parts in the source's category.
// The source part itself is filtered out of the response.
func (p *HTTPProvider) FindCandidates(ctx context.Context, source *schema.PartAttributes, limit int) ([]schema.PartAttributes, error) {
	query := url.Values{}
	query.Set("category", source.Part.Category)
	if limit > 0 {
		// Ask for one extra in case the source part is in the response.
		query.Set("limit", strconv.Itoa(limit+1))
	}

	var results []schema.PartAttributes
	endpoint := p.config.BaseURL + "/parts?" + query.Encode()
	if err := p.getJSON(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	sourceKey := normalizeMPN(source.Part.MPN)
	out := results[:0]
	for i := range results {
		if normalizeMPN(results[i].Part.MPN) == sourceKey {
			continue
		}
		out = append(out, results[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (p *HTTPProvider) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if p.config.TokenURL != "" {
		token, err := p.accessToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to obtain catalog token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrPartNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// accessToken returns a cached OAuth token, fetching a new one via the
// client-credentials grant when the cached token is absent or near expiry.
func (p *HTTPProvider) accessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.tokenExpiry.Add(-tokenExpirySkew)) {
		return p.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.config.ClientID)
	form.Set("client_secret", p.config.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned an empty token")
	}

	p.token = payload.AccessToken
	p.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	return p.token, nil
}
