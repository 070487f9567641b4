package models

// StrictSchema is implemented by payload types whose objects must not carry keys beyond the declared ones.
type StrictSchema interface {
	StrictKeys()
}

// Pagination describes one page of a remote list
type Pagination struct {
	TotalItem   int `json:"totalItem" validate:"gte=0"`
	PageSize    int `json:"pageSize" validate:"gte=0"`
	CurrentPage int `json:"currentPage" validate:"gte=0"`
	MaxPageSize int `json:"maxPageSize" validate:"gte=0"`
	TotalPage   int `json:"totalPage" validate:"gte=0"`
}

// Envelope wraps a single remote entity
type Envelope[T any] struct {
	Data       T      `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Info       string `json:"info,omitempty"`
}

// ListEnvelope wraps an unpaginated list of remote entities
type ListEnvelope[T any] struct {
	Data       []T    `json:"data" validate:"dive"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// PagedEnvelope wraps one page of remote entities
type PagedEnvelope[T any] struct {
	Data       []T        `json:"data" validate:"dive"`
	Message    string     `json:"message"`
	StatusCode int        `json:"statusCode"`
	Pagination Pagination `json:"pagination"`
}

// PagedObjectEnvelope wraps an aggregate object that is itself paginated (comments, my blogs)
type PagedObjectEnvelope[T any] struct {
	Data       T          `json:"data"`
	Message    string     `json:"message"`
	StatusCode int        `json:"statusCode"`
	Info       string     `json:"info,omitempty"`
	Pagination Pagination `json:"pagination"`
}

// StatusEnvelope is returned by remote mutations that carry no data
type StatusEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Info       string `json:"info,omitempty"`
}

// UserRef is the short user projection embedded in remote entities
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// NamedRef is an id and name pair (categories attached to courses and blogs)
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
