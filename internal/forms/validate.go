// Package forms decodes submitted HTML forms and validates them field by field.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FacebookPrefix is the required start of a Facebook link.
const FacebookPrefix = "https://www.facebook.com/"

var phoneRX = regexp.MustCompile(`^\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)

// startTimeLayouts are tried in order when parsing a show start time.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("state", stateValidator)
	_ = v.RegisterValidation("genre", genreValidator)
	_ = v.RegisterValidation("phone", phoneValidator)
	_ = v.RegisterValidation("facebook", facebookValidator)
	_ = v.RegisterValidation("id", idValidator)
	_ = v.RegisterValidation("starttime", startTimeValidator)
	return v
}

func stateValidator(fl validator.FieldLevel) bool {
	return slices.Contains(States, fl.Field().String())
}

func genreValidator(fl validator.FieldLevel) bool {
	return slices.Contains(Genres, fl.Field().String())
}

func phoneValidator(fl validator.FieldLevel) bool {
	return phoneRX.MatchString(fl.Field().String())
}

func facebookValidator(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), FacebookPrefix)
}

func idValidator(fl validator.FieldLevel) bool {
	_, err := parseID(fl.Field().String())
	return err == nil
}

func startTimeValidator(fl validator.FieldLevel) bool {
	_, err := ParseStartTime(fl.Field().String())
	return err == nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

// ParseStartTime reads a show start time in any of the accepted layouts.
// Times without a zone are taken as UTC.
func ParseStartTime(raw string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", raw)
}

// FieldErrors maps a form field name to its violation messages.
type FieldErrors map[string][]string

// Add records a message against field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Get returns the first message recorded for field, or "".
func (f FieldErrors) Get(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ValidationError reports every rejected field of a submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// check runs struct validation on form and converts the outcome.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	fields := FieldErrors{}
	var badGenres []string
	for _, fe := range verrs {
		name, _, _ := strings.Cut(fe.Field(), "[")
		if fe.Tag() == "genre" {
			badGenres = append(badGenres, fmt.Sprint(fe.Value()))
			continue
		}
		fields.Add(name, message(fe.Tag()))
	}
	if len(badGenres) > 0 {
		fields.Add("genres", "Invalid genre(s): "+strings.Join(badGenres, ", "))
	}
	return &ValidationError{Fields: fields}
}

func message(tag string) string {
	switch tag {
	case "required", "min":
		return "This field is required."
	case "state":
		return "Invalid state selection"
	case "phone":
		return "Invalid phone number. Expected format: XXX-XXX-XXXX"
	case "uri":
		return "Invalid URL"
	case "facebook":
		return fmt.Sprintf("Facebook link must start with %q", FacebookPrefix)
	case "id":
		return "Must be a positive whole number."
	case "starttime":
		return "Not a valid datetime value."
	default:
		return "Invalid value."
	}
}

// Checked decodes a checkbox: the key being present means true, whatever its value.
func Checked(values url.Values, key string) bool {
	_, ok := values[key]
	return ok
}

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func list(values url.Values, key string) []string {
	raw := values[key]
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
