package web

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/store"
)

type artistFormView struct {
	ID     int64
	Action string
	Form   forms.ArtistForm
	Errors forms.FieldErrors
	Genres []string
	States []string
}

func newArtistFormView(id int64, action string, form forms.ArtistForm, errs forms.FieldErrors) artistFormView {
	return artistFormView{ID: id, Action: action, Form: form, Errors: errs, Genres: forms.Genres, States: forms.States}
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Msg("list artists")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "artists.html", "Artists", artists)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")
	result, err := s.artists.Search(r.Context(), term)
	if err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("term", term).Msg("search artists")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "search.html", "Artist Search", searchView{
		Kind:    "artists",
		Term:    term,
		Count:   result.Count,
		Results: result.Data,
	})
}

func (s *Server) handleShowArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.notFound(w, r)
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("artist_id", id).Msg("artist detail")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "artist.html", detail.Name, detail)
}

func (s *Server) handleNewArtist(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "artist_form.html", "List a new artist",
		newArtistFormView(0, "/artists/create", forms.ArtistForm{}, nil))
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	form := forms.DecodeArtist(r.PostForm)

	artist, err := s.artists.Create(r.Context(), form)
	if err != nil {
		var verr *forms.ValidationError
		if errors.As(err, &verr) {
			s.render(w, r, http.StatusBadRequest, "artist_form.html", "List a new artist",
				newArtistFormView(0, "/artists/create", form, verr.Fields))
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Str("artist", form.Name).Msg("create artist")
		s.render(w, r, http.StatusBadRequest, "artist_form.html", "List a new artist",
			newArtistFormView(0, "/artists/create", form, nil),
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	s.redirectWithFlash(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			s.notFound(w, r)
			return
		}
		logging.WithContext(r.Context()).Error().Err(err).Int64("artist_id", id).Msg("load artist for edit")
		s.serverError(w, r)
		return
	}
	s.render(w, r, http.StatusOK, "artist_form.html", "Edit artist",
		newArtistFormView(id, fmt.Sprintf("/artists/%d/edit", id), forms.ArtistFormFrom(artist), nil))
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !parseForm(w, r) {
		return
	}
	form := forms.DecodeArtist(r.PostForm)
	action := fmt.Sprintf("/artists/%d/edit", id)

	artist, err := s.artists.Update(r.Context(), id, form)
	if err != nil {
		var verr *forms.ValidationError
		switch {
		case errors.As(err, &verr):
			s.render(w, r, http.StatusBadRequest, "artist_form.html", "Edit artist",
				newArtistFormView(id, action, form, verr.Fields))
		case errors.Is(err, store.ErrArtistNotFound):
			s.notFound(w, r)
		default:
			logging.WithContext(r.Context()).Error().Err(err).Int64("artist_id", id).Msg("update artist")
			s.render(w, r, http.StatusBadRequest, "artist_form.html", "Edit artist",
				newArtistFormView(id, action, form, nil),
				fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		}
		return
	}

	s.redirectWithFlash(w, r, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}
