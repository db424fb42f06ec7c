package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"slices"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/logging"
	"fyyur/internal/models"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Date layouts for formatDateTime.
const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

var funcs = template.FuncMap{
	"formatDateTime": formatDateTime,
	"joinGenres":     models.JoinGenres,
	"contains": func(list []string, item string) bool {
		return slices.Contains(list, item)
	},
	"fieldError": func(errs forms.FieldErrors, field string) string {
		return errs.Get(field)
	},
	"dict": dict,
}

// dict builds a map from alternating keys and values for passing to partials.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	names, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		panic(err)
	}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			name,
		))
		out[path.Base(name)] = t
	}
	return out
}

func formatDateTime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.Format(fullLayout)
	case "medium":
		return t.Format(mediumLayout)
	default:
		return t.Format(format)
	}
}

// view is handed to every page template.
type view struct {
	Title   string
	Flashes []string
	Data    any
}

// render executes a page into a buffer so a template failure can still
// produce a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, title string, data any, flashes ...string) {
	t, ok := pages[page]
	if !ok {
		logging.WithContext(r.Context()).Error().Str("page", page).Msg("unknown template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	v := view{Title: title, Flashes: append(s.popFlash(w, r), flashes...), Data: data}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", v); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", page).Msg("render template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// setFlash queues a message for the next rendered page.
func (s *Server) setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the queued message, if any, and clears it.
func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) []string {
	c, err := r.Cookie(s.flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	return []string{msg}
}

func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	if message != "" {
		s.setFlash(w, message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "404.html", "Not Found", nil)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "500.html", "Server Error", nil)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
