package views

import "fmt"

// EmptyKind says why a page has nothing to list
type EmptyKind string

const (
	EmptyNone      EmptyKind = "none"
	EmptyNoData    EmptyKind = "no_data"
	EmptyNoResults EmptyKind = "no_results"
	EmptyError     EmptyKind = "error"
	EmptyNotFound  EmptyKind = "not_found"
)

// EmptyState is shown in place of a list or a detail view
type EmptyState struct {
	Kind     EmptyKind `json:"kind"`
	Keyword  string    `json:"keyword,omitempty"`
	Title    string    `json:"title,omitempty"`
	Message  string    `json:"message,omitempty"`
	BackLink string    `json:"backLink,omitempty"`
	Action   *Action   `json:"action,omitempty"`
}

// None is the state of a page that has something to show
func None() EmptyState {
	return EmptyState{Kind: EmptyNone}
}

// ForList picks the state of a list with count visible items.
// A search that matched nothing is told apart from a list with no data at all.
func ForList(count int, keyword, noun string) EmptyState {
	switch {
	case count > 0:
		return None()
	case keyword != "":
		return EmptyState{
			Kind:    EmptyNoResults,
			Keyword: keyword,
			Title:   "No results",
			Message: fmt.Sprintf("No %s match %q", noun, keyword),
		}
	default:
		return EmptyState{
			Kind:    EmptyNoData,
			Title:   fmt.Sprintf("No %s yet", noun),
			Message: fmt.Sprintf("There are no %s to show", noun),
		}
	}
}

// LoadError is the state of a list whose data could not be fetched
func LoadError(message, reloadHref string) EmptyState {
	return EmptyState{
		Kind:    EmptyError,
		Title:   "Could not load data",
		Message: message,
		Action:  &Action{Label: "Reload", Href: reloadHref},
	}
}

// NotFound is the state of a detail page whose entity does not exist
func NotFound(noun, backLink string) EmptyState {
	return EmptyState{
		Kind:     EmptyNotFound,
		Title:    fmt.Sprintf("%s not found", noun),
		Message:  fmt.Sprintf("The %s you are looking for does not exist or was removed", noun),
		BackLink: backLink,
	}
}

// NotFoundError carries a not-found state through error returns
type NotFoundError struct {
	State EmptyState
}

func (e *NotFoundError) Error() string {
	return e.State.Title
}

// NewNotFoundError wraps NotFound into an error
func NewNotFoundError(noun, backLink string) *NotFoundError {
	return &NotFoundError{State: NotFound(noun, backLink)}
}
