package web

import (
	"errors"
	"net/http"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

const showFailed = "An error occurred. Show could not be listed."

type showFormView struct {
	Form   forms.ShowForm
	Errors forms.FieldErrors
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("list shows")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "shows.html", "Shows", shows)
}

func (s *Server) handleNewShow(w http.ResponseWriter, r *http.Request) {
	form := forms.ShowForm{StartTime: time.Now().UTC().Format("2006-01-02 15:04:05")}
	s.render(w, r, http.StatusOK, "show_form.html", "List a new show", showFormView{Form: form})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	form := forms.DecodeShow(r.PostForm)

	show, err := s.shows.Create(r.Context(), form)
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			s.render(w, r, http.StatusBadRequest, "show_form.html", "List a new show",
				showFormView{Form: form, Errors: verr.Fields})
			return
		}

		event := logging.WithContext(r.Context()).Error().Err(err)
		switch {
		case errors.Is(err, store.ErrShowExists):
			event = event.Str("kind", "duplicate")
		case errors.Is(err, store.ErrShowReference):
			event = event.Str("kind", "reference")
		}
		event.Str("venue_id", form.VenueID).Str("artist_id", form.ArtistID).Msg("create show")

		s.render(w, r, http.StatusBadRequest, "show_form.html", "List a new show",
			showFormView{Form: form}, showFailed)
		return
	}

	logging.WithContext(r.Context()).Info().
		Int64("venue_id", show.VenueID).
		Int64("artist_id", show.ArtistID).
		Msg("show listed")
	s.redirectWithFlash(w, r, "/", "Show was successfully listed!")
}
