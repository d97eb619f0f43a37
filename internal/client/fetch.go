package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/metrics"
)

// getJSON performs an HTTP GET against endpoint and decodes the JSON body into out.
// The label names the endpoint in metrics and logs.
func (c *client) getJSON(ctx context.Context, label, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.CatalogRequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(label, "transport_error").Inc()
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	metrics.CatalogRequestsTotal.WithLabelValues(label, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return &apperrors.ErrUnexpectedStatus{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(utf8Body(resp)).Decode(out); err != nil {
		return fmt.Errorf("decode JSON response: %w", err)
	}
	return nil
}

// utf8Body returns the response body, transcoded to UTF-8 when the server
// declares another charset. JSON without a charset parameter is UTF-8.
func utf8Body(resp *http.Response) io.Reader {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.Body
	}
	label := params["charset"]
	if label == "" || strings.EqualFold(label, "utf-8") {
		return resp.Body
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return resp.Body
	}
	return enc.NewDecoder().Reader(resp.Body)
}
