package web

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

// venueFormView feeds the venue create and edit pages.
type venueFormView struct {
	ID     int64
	Action string
	Form   forms.VenueForm
	Errors forms.FieldErrors
	Genres []string
	States []string
}

func newVenueFormView(id int64, action string, form forms.VenueForm, errs forms.FieldErrors) venueFormView {
	return venueFormView{ID: id, Action: action, Form: form, Errors: errs, Genres: forms.Genres, States: forms.States}
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Areas(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("list venues")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "venues.html", "Venues", areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")
	result, err := s.venues.Search(r.Context(), term)
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("term", term).Msg("search venues")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "search.html", "Venue Search", searchView{
		Kind:    "venues",
		Term:    term,
		Count:   result.Count,
		Results: result.Data,
	})
}

func (s *Server) handleShowVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("venue detail")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "venue.html", detail.Name, detail)
}

func (s *Server) handleNewVenue(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "venue_form.html", "List a new venue",
		newVenueFormView(0, "/venues/create", forms.VenueForm{}, nil))
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	form := forms.DecodeVenue(r.PostForm)

	venue, err := s.venues.Create(r.Context(), form)
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			s.render(w, r, http.StatusBadRequest, "venue_form.html", "List a new venue",
				newVenueFormView(0, "/venues/create", form, verr.Fields))
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Str("venue", form.Name).Msg("create venue")
		s.render(w, r, http.StatusBadRequest, "venue_form.html", "List a new venue",
			newVenueFormView(0, "/venues/create", form, nil),
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	s.redirectWithFlash(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("load venue for edit")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "venue_form.html", "Edit venue",
		newVenueFormView(id, fmt.Sprintf("/venues/%d/edit", id), forms.VenueFormFrom(venue), nil))
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !parseForm(w, r) {
		return
	}
	form := forms.DecodeVenue(r.PostForm)
	action := fmt.Sprintf("/venues/%d/edit", id)

	venue, err := s.venues.Update(r.Context(), id, form)
	if err != nil {
		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			s.render(w, r, http.StatusBadRequest, "venue_form.html", "Edit venue",
				newVenueFormView(id, action, form, verr.Fields))
		case errors.Is(err, store.ErrVenueNotFound):
			s.notFound(w, r)
		default:
			logging.WithContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("update venue")
			s.render(w, r, http.StatusBadRequest, "venue_form.html", "Edit venue",
				newVenueFormView(id, action, form, nil),
				fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		}
		return
	}

	s.redirectWithFlash(w, r, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, deleteResponse{Error: "venue not found"})
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			writeJSON(w, http.StatusNotFound, deleteResponse{Error: "venue not found"})
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("delete venue")
		msg := fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id)
		s.setFlash(w, msg)
		writeJSON(w, http.StatusBadRequest, deleteResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true})
}

// handleDeleteVenueForm serves the delete button on the venue page.
func (s *Server) handleDeleteVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			s.notFound(w, r)
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("venue_id", id).Msg("delete venue")
		s.redirectWithFlash(w, r, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		return
	}

	s.redirectWithFlash(w, r, "/venues", "Venue was successfully deleted.")
}
