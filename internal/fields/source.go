package fields

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source fetches field definitions for an entity type.
type Source interface {
	ListFields(ctx context.Context, entityType string) ([]Definition, error)
}

// HTTPSource fetches definitions from the tenant field schema service.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource constructs an HTTPSource against the given base URL.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("FIELD_SCHEMA_URL is required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListFields returns the definitions for the entity type. Any transport or
// decode failure surfaces as an error; callers degrade to zero custom fields.
func (s *HTTPSource) ListFields(ctx context.Context, entityType string) ([]Definition, error) {
	endpoint := fmt.Sprintf("%s/custom-fields?entity_type=%s", s.baseURL, url.QueryEscape(entityType))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("field schema fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("field schema fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("field schema fetch: read: %w", err)
	}

	var defs []Definition
	if err := json.Unmarshal(body, &defs); err != nil {
		return nil, fmt.Errorf("field schema fetch: decode: %w", err)
	}
	return defs, nil
}

// StaticSource serves a fixed definition list. Used in tests and when no
// schema service is configured.
type StaticSource struct {
	Defs []Definition
}

func (s StaticSource) ListFields(ctx context.Context, entityType string) ([]Definition, error) {
	_ = ctx
	_ = entityType
	return s.Defs, nil
}

var (
	_ Source = (*HTTPSource)(nil)
	_ Source = StaticSource{}
)
