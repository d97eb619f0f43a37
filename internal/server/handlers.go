package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/session"
)

// widget resolves the session of r, issuing a cookie for new sessions
func (s *Server) widget(w http.ResponseWriter, r *http.Request) *session.Widget {
	var id string
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		id = cookie.Value
	}

	widget, created := s.sessions.Acquire(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    widget.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return widget
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	widget := s.widget(w, r)

	body, err := widget.Controller.Snapshot()
	if err != nil {
		s.fail(w, r, "render", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	widget := s.widget(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	term := r.PostFormValue("term")

	err := widget.Controller.Submit(r.Context(), term)
	s.save(widget)
	if err != nil {
		s.fail(w, r, "search", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	widget := s.widget(w, r)

	showID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid show id", http.StatusBadRequest)
		return
	}

	found, err := widget.Controller.ActivateEpisodesFor(r.Context(), showID)
	if !found {
		http.Error(w, "show is not listed", http.StatusNotFound)
		return
	}
	s.save(widget)
	if err != nil {
		s.fail(w, r, "episodes", err)
		return
	}

	http.Redirect(w, r, "/#episodesArea", http.StatusSeeOther)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) save(widget *session.Widget) {
	if err := s.sessions.Save(widget); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("session", widget.ID).Msg("Failed to save session snapshot")
	}
}

// fail reports an action error. The page keeps whatever state the action left.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger := config.GetLogger()

	if errors.Is(err, context.Canceled) {
		logger.Debug().Err(err).Str("action", action).Msg("Request canceled")
		return
	}

	logger.Error().Err(err).Str("action", action).Str("path", r.URL.Path).Msg("Widget action failed")

	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("action", action)
		hub.CaptureException(err)
	})

	if errors.Is(err, &apperrors.ErrNotFound{}) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, "catalog request failed", http.StatusBadGateway)
}
