package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	internal_errors "github.com/itchan-dev/signflow/shared/errors"
	"github.com/itchan-dev/signflow/shared/metrics"
	"github.com/itchan-dev/signflow/shared/utils"
)

// maxErrorDetail bounds how much of an error body ends up in an error message.
const maxErrorDetail = 512

// baseClient holds what both upstream clients share: where to send requests
// and how to record them.
type baseClient struct {
	BaseURL    string
	HttpClient *http.Client
	service    string
}

func newBaseClient(service, baseURL string) baseClient {
	return baseClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{},
		service:    service,
	}
}

// do is the single helper for making API requests. Transport failures come
// back as *UpstreamError; the caller owns the response body otherwise.
func (c *baseClient) do(ctx context.Context, operation, method, path string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", c.service, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("X-Request-Id", utils.NewRequestID())

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(c.service, operation, 0, time.Since(start))
		return nil, &internal_errors.UpstreamError{Service: c.service, Operation: operation, Err: err}
	}
	metrics.ObserveUpstream(c.service, operation, resp.StatusCode, time.Since(start))
	return resp, nil
}

// readBody drains the response and turns non-2xx statuses into *UpstreamError.
func (c *baseClient) readBody(operation string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &internal_errors.UpstreamError{Service: c.service, Operation: operation, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &internal_errors.UpstreamError{
			Service:    c.service,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Detail:     utils.Truncate(body, maxErrorDetail),
		}
	}
	return body, nil
}
