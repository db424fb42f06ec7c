package models

import "strings"

// GenreSeparator joins genres in their delimited text form.
const GenreSeparator = ", "

// JoinGenres renders a genre list as delimited text.
func JoinGenres(genres []string) string {
	return strings.Join(genres, GenreSeparator)
}

// SplitGenres parses delimited genre text back into an ordered list.
// An empty string yields an empty list rather than a single empty genre.
func SplitGenres(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, GenreSeparator)
}
