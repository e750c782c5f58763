package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"netflix-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// ErrFetchFailed is the single error kind for any failed outbound search call.
var ErrFetchFailed = errors.New("failed to fetch data")

type SearchClient interface {
	// Fetch performs one GET against endpoint and returns the decoded JSON body.
	Fetch(ctx context.Context, endpoint string, params url.Values) (any, error)
}

type searchClient struct {
	config     config.SearchConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewSearchClient(cfg config.SearchConfig, logger *logrus.Logger) SearchClient {
	return &searchClient{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *searchClient) Fetch(ctx context.Context, endpoint string, params url.Values) (any, error) {
	requestURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("Search API request failed")
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Error("Search API returned non-success status")
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload any
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("Failed to decode search API response")
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailed, err)
	}

	return payload, nil
}

func (c *searchClient) buildURL(endpoint string, params url.Values) (string, error) {
	base := strings.TrimRight(c.config.BaseURL, "/")
	if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	u, err := url.Parse(base + endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	if c.config.APIKey != "" {
		query.Set(c.config.APIKeyParam, c.config.APIKey)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}
