package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallgrab/pkg/errors"
	"wallgrab/pkg/logger"
)

// Client performs plain GET requests against the gallery
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// NewClient creates a new client. A zero timeout leaves requests unbounded.
func NewClient(timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: make(map[string]string),
		logger:  log,
	}
}

// NewClientWithHTTP wraps an existing http.Client
func NewClientWithHTTP(httpClient *http.Client, log logger.Logger) *Client {
	c := NewClient(0, log)
	c.httpClient = httpClient
	return c
}

// SetHeader sets a custom header sent with every request
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// doRequest performs an HTTP GET with the configured headers
func (c *Client) doRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeInvalidInput, fmt.Sprintf("failed to create request for %s", url), err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errors.New(errors.ErrorTypeNetwork, fmt.Sprintf("GET %s", url), err)
	}

	logger.LogRequest(c.logger, req.Method, url, resp.StatusCode, float64(duration.Milliseconds()))

	return resp, nil
}

// get performs the request and reads the whole body of a 2xx response
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !errors.IsSuccessStatus(resp.StatusCode) {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.NewHTTPError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(errors.ErrorTypeNetwork, fmt.Sprintf("failed to read response body from %s", url), err)
	}

	return body, nil
}

// FetchText returns the response body of url as text
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchBinary returns the raw response body of url
func (c *Client) FetchBinary(ctx context.Context, url string) ([]byte, error) {
	data, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	c.logger.DebugWithFields("downloaded binary", map[string]interface{}{
		"url":  url,
		"size": len(data),
	})

	return data, nil
}
