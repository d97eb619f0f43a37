package controller

import (
	"context"
	"sync"

	"golang.org/x/net/html"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/view"
)

// Catalog is the part of the catalog client the controller needs
type Catalog interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	ListEpisodes(ctx context.Context, showID int) ([]models.Episode, error)
}

// Controller wires the two user actions of the widget (search submission and
// episode requests) to catalog calls and renderer calls on one page.
//
// Catalog calls run without holding the page lock, so actions of the same page
// may overlap. Each flow numbers its requests and only the newest one of a flow
// is allowed to render.
type Controller struct {
	catalog  Catalog
	page     *view.Page
	renderer *view.Renderer

	mu       sync.Mutex // guards page and the sequence counters
	searches sequence
	episodes sequence
}

// NewController creates a controller driving page
func NewController(catalog Catalog, page *view.Page) *Controller {
	return &Controller{
		catalog:  catalog,
		page:     page,
		renderer: view.NewRenderer(page.Shows, page.Episodes),
	}
}

// Submit handles a search form submission. The term is used exactly as typed.
// The episode area is hidden before the search is issued.
func (c *Controller) Submit(ctx context.Context, term string) error {
	logger := config.GetLogger()

	c.mu.Lock()
	c.page.SetSearchTerm(term)
	c.page.EpisodesArea.Hide()
	ticket := c.searches.next()
	c.mu.Unlock()

	shows, err := c.catalog.SearchShows(ctx, term)
	if err != nil {
		metrics.WidgetActionsTotal.WithLabelValues("search", "error").Inc()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.searches.isLatest(ticket) {
		metrics.WidgetActionsTotal.WithLabelValues("search", "stale").Inc()
		logger.Debug().Str("term", term).Uint64("ticket", ticket).Msg("Discarding stale search response")
		return nil
	}

	c.renderer.RenderShows(shows)
	metrics.WidgetActionsTotal.WithLabelValues("search", "rendered").Inc()
	return nil
}

// ActivateEpisodes handles a click on an Episodes control. target is the
// activated node; the show is recovered from it or its closest tagged ancestor.
func (c *Controller) ActivateEpisodes(ctx context.Context, target *html.Node) error {
	logger := config.GetLogger()

	c.mu.Lock()
	c.page.EpisodesArea.Show()
	showID, err := view.ShowIDFrom(target)
	if err != nil {
		c.mu.Unlock()
		metrics.WidgetActionsTotal.WithLabelValues("episodes", "error").Inc()
		return err
	}
	ticket := c.episodes.next()
	c.mu.Unlock()

	episodes, err := c.catalog.ListEpisodes(ctx, showID)
	if err != nil {
		metrics.WidgetActionsTotal.WithLabelValues("episodes", "error").Inc()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.episodes.isLatest(ticket) {
		metrics.WidgetActionsTotal.WithLabelValues("episodes", "stale").Inc()
		logger.Debug().Int("showID", showID).Uint64("ticket", ticket).Msg("Discarding stale episodes response")
		return nil
	}

	c.renderer.RenderEpisodes(episodes)
	metrics.WidgetActionsTotal.WithLabelValues("episodes", "rendered").Inc()
	return nil
}

// ActivateEpisodesFor activates the Episodes control rendered for showID.
// It reports false when the page has no such control.
func (c *Controller) ActivateEpisodesFor(ctx context.Context, showID int) (bool, error) {
	c.mu.Lock()
	control, ok := c.page.EpisodeControl(showID)
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, c.ActivateEpisodes(ctx, control)
}

// Snapshot serializes the page under the controller's lock.
func (c *Controller) Snapshot() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Bytes()
}

// sequence hands out increasing request tickets for one flow.
type sequence struct {
	issued uint64
}

func (s *sequence) next() uint64 {
	s.issued++
	return s.issued
}

func (s *sequence) isLatest(ticket uint64) bool {
	return ticket == s.issued
}
