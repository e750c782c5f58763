package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type apiClient struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

type apiResponse struct {
	StatusCode int
	Body       []byte
}

func newAPIClient(baseURL string, timeout time.Duration, log *logrus.Logger) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, token string, body any) (*apiResponse, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.WithFields(logrus.Fields{"method": method, "url": u}).Debug("Sending request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("Received response")

	return &apiResponse{StatusCode: resp.StatusCode, Body: data}, nil
}

// print writes the body as indented JSON and fails on error statuses.
func (r *apiResponse) print(w io.Writer) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, r.Body, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(r.Body)
	}
	fmt.Fprintln(w, pretty.String())

	if r.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", r.StatusCode)
	}
	return nil
}
