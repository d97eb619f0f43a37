package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// SearchShows queries the catalog's show search endpoint. The term is sent as-is,
// without trimming, and every entry of the response is returned in order.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()
	logger.Info().Str("term", term).Msg("Searching shows")

	endpoint := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())

	var results []models.SearchResult
	if err := c.getJSON(ctx, "search", endpoint, &results); err != nil {
		return nil, fmt.Errorf("failed to search shows: %w", err)
	}

	shows := make([]models.Show, 0, len(results))
	for _, result := range results {
		shows = append(shows, result.Show.ToShow(c.missingImageURL))
	}

	logger.Info().Str("term", term).Int("shows", len(shows)).Msg("Search completed")
	return shows, nil
}
