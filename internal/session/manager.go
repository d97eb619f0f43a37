package session

import (
	"bytes"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Belphemur/ShowSearch/internal/cache"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/controller"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/view"
)

// Widget is the page and controller owned by one browser session
type Widget struct {
	ID         string
	Controller *controller.Controller
}

// Manager hands out the widget of a session. Live widgets are kept in an
// expirable LRU; their pages are also written to a snapshot cache so a widget
// dropped from memory (or served by another instance) can be rebuilt.
//
// A session lives for ttl after its last Acquire or Save.
type Manager struct {
	catalog   controller.Catalog
	snapshots cache.Cache

	mu   sync.Mutex // serializes lookup-or-create and snapshot writes
	live *lru.LRU[string, *Widget]
}

// NewManager creates a session manager keeping at most size live widgets.
func NewManager(catalog controller.Catalog, snapshots cache.Cache, size int, ttl time.Duration) *Manager {
	onEvict := func(string, *Widget) {
		metrics.LiveSessions.Dec()
	}
	return &Manager{
		catalog:   catalog,
		snapshots: snapshots,
		live:      lru.NewLRU[string, *Widget](size, onEvict, ttl),
	}
}

// Acquire returns the widget of session id. An empty, malformed or unknown id
// yields a new session; created reports whether a new id was issued.
func (m *Manager) Acquire(id string) (widget *Widget, created bool) {
	logger := config.GetLogger()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return m.create(uuid.NewString(), view.NewPage()), true
	}

	if w, ok := m.live.Get(id); ok {
		m.touch(w)
		return w, false
	}

	if data, ok := m.snapshots.Get(id); ok {
		page, err := view.ParsePage(bytes.NewReader(data))
		if err == nil {
			logger.Debug().Str("session", id).Msg("Restored widget from snapshot")
			w := m.create(id, page)
			m.snapshots.Set(id, data)
			return w, false
		}
		logger.Warn().Err(err).Str("session", id).Msg("Discarding unreadable session snapshot")
		m.snapshots.Delete(id)
	}

	return m.create(uuid.NewString(), view.NewPage()), true
}

// touch restarts the TTL of a live widget and of its snapshot. Get on the
// expirable LRU does not extend an entry, Add does.
func (m *Manager) touch(w *Widget) {
	m.live.Add(w.ID, w)
	if err := m.write(w); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("session", w.ID).Msg("Failed to refresh session snapshot")
	}
}

func (m *Manager) create(id string, page *view.Page) *Widget {
	w := &Widget{
		ID:         id,
		Controller: controller.NewController(m.catalog, page),
	}
	m.live.Add(id, w)
	metrics.LiveSessions.Inc()
	return w
}

// Save writes the widget's current page to the snapshot cache and restarts the
// session's TTL. Writes are serialized and each one serializes the page at
// that moment, so the stored page is never older than a previous write.
//
// A widget that no longer owns its session id (it expired and the session was
// rebuilt from its snapshot meanwhile) is not written. One that expired
// without replacement still writes its page, which the next Acquire restores.
func (m *Manager) Save(w *Widget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.live.Peek(w.ID)
	if ok && current != w {
		logger := config.GetLogger()
		logger.Debug().Str("session", w.ID).Msg("Skipping snapshot of a replaced widget")
		return nil
	}
	if ok {
		m.live.Add(w.ID, w)
	}

	return m.write(w)
}

func (m *Manager) write(w *Widget) error {
	data, err := w.Controller.Snapshot()
	if err != nil {
		return err
	}
	m.snapshots.Set(w.ID, data)
	return nil
}

// Len returns the number of live widgets.
func (m *Manager) Len() int {
	return m.live.Len()
}
