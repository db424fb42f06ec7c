package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/middleware"
	"fyyur/internal/models"
)

// maxFormBytes caps submitted form bodies.
const maxFormBytes = 1 << 20

// VenueService describes venue workflows.
type VenueService interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.VenueSearchResult, error)
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, form forms.VenueForm) (models.Venue, error)
	Update(ctx context.Context, id int64, form forms.VenueForm) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes artist workflows.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.ArtistSearchResult, error)
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, form forms.ArtistForm) (models.Artist, error)
	Update(ctx context.Context, id int64, form forms.ArtistForm) (models.Artist, error)
}

// ShowService describes show workflows.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowWithDetails, error)
	Create(ctx context.Context, form forms.ShowForm) (models.Show, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues      VenueService
	artists     ArtistService
	shows       ShowService
	store       Pinger
	flashCookie string
}

// New configures a Server. flashCookie names the cookie used for flash messages.
func New(venues VenueService, artists ArtistService, shows ShowService, store Pinger, flashCookie string) *Server {
	if flashCookie == "" {
		flashCookie = "fyyur_flash"
	}
	return &Server{
		venues:      venues,
		artists:     artists,
		shows:       shows,
		store:       store,
		flashCookie: flashCookie,
	}
}

// Handler returns the routes wrapped in request logging and panic recovery.
func (s *Server) Handler() http.Handler {
	return middleware.Chain(s.Routes(),
		middleware.RequestLogging(),
		middleware.Recovery(http.HandlerFunc(s.serverError)),
	)
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /static/", staticHandler())

	mux.HandleFunc("GET /{$}", s.handleHome)

	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenue)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleShowVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenue)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleUpdateVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("POST /venues/{id}/delete", s.handleDeleteVenueForm)

	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtist)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleShowArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtist)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleUpdateArtist)

	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShow)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	mux.HandleFunc("/", s.notFound)

	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", "Fyyur", nil)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("readiness check failed")
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

type statusResponse struct {
	Status string `json:"status"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// searchView feeds the shared search results page.
type searchView struct {
	Kind    string
	Term    string
	Count   int
	Results any
}

// pathID reads a positive {id} path value.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseForm reads a bounded urlencoded or multipart body into r.PostForm.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("parse form")
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
