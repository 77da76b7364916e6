package query

import "github.com/Mirriamnjeri/rentals/core/validate"

// Defaults callers should apply when a request carries no explicit paging.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page describes one slice of a result set. Both fields are 1-based and must
// be at least 1; zero or negative values are a caller error, never silently
// clamped.
type Page struct {
	Number int `json:"page"`
	Limit  int `json:"limit"`
}

// DefaultPageDescriptor is the paging callers get when they supply nothing.
func DefaultPageDescriptor() Page {
	return Page{Number: DefaultPage, Limit: DefaultLimit}
}

// Validate rejects non-positive page numbers and limits.
func (p Page) Validate() error {
	if p.Number < 1 {
		return &validate.ValidationError{Field: "page", Reason: "must be at least 1"}
	}
	if p.Limit < 1 {
		return &validate.ValidationError{Field: "limit", Reason: "must be at least 1"}
	}
	return nil
}

// Paginate returns the slice of matches for the page. A start index past the
// end of the matches yields an empty slice, not an error.
func Paginate[T any](matches []T, p Page) []T {
	start := (p.Number - 1) * p.Limit
	if start >= len(matches) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end]
}
