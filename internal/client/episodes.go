package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

// ListEpisodes fetches the episode list of a show. The catalog's order is kept,
// no sorting by season or number is applied.
func (c *client) ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Fetching episodes")

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)

	var payloads []models.EpisodePayload
	if err := c.getJSON(ctx, "episodes", endpoint, &payloads); err != nil {
		var statusErr *apperrors.ErrUnexpectedStatus
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(showID)
		}
		return nil, fmt.Errorf("failed to list episodes of show %d: %w", showID, err)
	}

	episodes := make([]models.Episode, 0, len(payloads))
	for _, payload := range payloads {
		episodes = append(episodes, payload.ToEpisode())
	}

	logger.Info().Int("showID", showID).Int("episodes", len(episodes)).Msg("Episodes fetched")
	return episodes, nil
}
