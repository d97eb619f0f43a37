package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/session"
)

// SessionCookie carries the widget session id
const SessionCookie = "showsearch_session"

// Server exposes the widget of each browser session over HTTP
type Server struct {
	sessions *session.Manager
	router   *mux.Router
}

// NewServer creates the widget server and registers its routes
func NewServer(sessions *session.Manager) *Server {
	s := &Server{
		sessions: sessions,
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	s.router.HandleFunc("/shows/{id:[0-9]+}/episodes", s.handleEpisodes).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	s.router.Use(requestLogger)

	return s
}

// Handler returns the routed handler. When a Sentry client is bound it is
// wrapped so panics and captured errors carry the request.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.router
	if sentry.CurrentHub().Client() != nil {
		handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
	}
	return handler
}

// NewHTTPServer creates the HTTP server listening on server.address:server.port
func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
}
