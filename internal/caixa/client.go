package caixa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"leilaoradar/server/internal/metrics"
)

// Client downloads the per-UF property listing published by Caixa. The feed
// is semicolon-delimited CSV served as ISO-8859-1 text.
type Client struct {
	logger      *logrus.Logger
	client      *http.Client
	urlTemplate string
}

// NewClient creates a listing client. urlTemplate must contain a single %s
// verb, which receives the uppercase UF code.
func NewClient(logger *logrus.Logger, urlTemplate string, timeout time.Duration) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Client{
		logger:      logger,
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
	}
}

// FetchList downloads the listing for one region code and returns it as UTF-8
// text. It does not retry and does not inspect the content type; the feed has
// been observed to serve CSV under several different headers.
func (c *Client) FetchList(ctx context.Context, uf string) (string, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	listURL := fmt.Sprintf(c.urlTemplate, uf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return "", &FetchError{Err: fmt.Errorf("failed to create request: %v", err)}
	}
	req.Header.Set("User-Agent", "LeilaoRadar/1.0")

	start := time.Now()
	metrics.UpstreamFetchTotal.Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamFetchFailTotal.Inc()
		c.logger.WithError(err).WithField("uf", uf).Error("Listing request failed")
		return "", &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamFetchFailTotal.Inc()
		c.logger.WithFields(logrus.Fields{
			"uf":     uf,
			"status": resp.StatusCode,
		}).Error("Listing request returned non-success status")
		return "", &FetchError{StatusCode: resp.StatusCode}
	}

	// The feed is Latin-1; decode up front so the rest of the pipeline only
	// ever sees UTF-8.
	body, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(resp.Body))
	if err != nil {
		metrics.UpstreamFetchFailTotal.Inc()
		c.logger.WithError(err).WithField("uf", uf).Error("Failed to read listing body")
		return "", &FetchError{Err: fmt.Errorf("failed to read response: %v", err)}
	}

	metrics.UpstreamFetchDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	c.logger.WithFields(logrus.Fields{
		"uf":    uf,
		"bytes": len(body),
	}).Info("Downloaded property listing")

	return string(body), nil
}
