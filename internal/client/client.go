package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// Client defines the interface for querying the TVmaze show catalog
type Client interface {
	// SearchShows returns every show matching term, in the catalog's order.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)

	// ListEpisodes returns the episodes of a show, in the catalog's order.
	ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient      *http.Client
	baseURL         string
	missingImageURL string
	userAgent       string
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	baseURL := strings.TrimRight(cfg.TVMazeBaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultTVMazeBaseURL
	}

	missingImageURL := cfg.MissingImageURL
	if missingImageURL == "" {
		missingImageURL = config.DefaultMissingImageURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newDecodingTransport(baseTransport),
		},
		baseURL:         baseURL,
		missingImageURL: missingImageURL,
		userAgent:       userAgent,
	}
}

// Close releases idle keep-alive connections.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
