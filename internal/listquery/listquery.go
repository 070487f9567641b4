// Package listquery reads and writes the list state kept in page URLs.
package listquery

import (
	"net/url"
	"strconv"
	"strings"
)

// URL parameter names
const (
	ParamKeyword   = "keyword"
	ParamPageSize  = "page_size"
	ParamPageIndex = "page_index"
)

// Defaults and limits
const (
	DefaultPageSize  = 10
	DefaultPageIndex = 1
	MaxPageSize      = 100
)

// Query is the keyword and page a list view shows
type Query struct {
	Keyword   string `json:"keyword"`
	PageSize  int    `json:"pageSize"`
	PageIndex int    `json:"pageIndex"`
}

// Default returns the first page with no keyword
func Default() Query {
	return Query{PageSize: DefaultPageSize, PageIndex: DefaultPageIndex}
}

// Parse reads a query from URL values.
// Missing, malformed or non-positive numbers fall back to the defaults and the page size is capped.
func Parse(values url.Values) Query {
	q := Default()
	q.Keyword = strings.TrimSpace(values.Get(ParamKeyword))

	if size, ok := positiveInt(values.Get(ParamPageSize)); ok {
		q.PageSize = min(size, MaxPageSize)
	}
	if index, ok := positiveInt(values.Get(ParamPageIndex)); ok {
		q.PageIndex = index
	}
	return q
}

// Values returns the query as URL values, omitting an empty keyword
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Keyword != "" {
		values.Set(ParamKeyword, q.Keyword)
	}
	values.Set(ParamPageSize, strconv.Itoa(q.PageSize))
	values.Set(ParamPageIndex, strconv.Itoa(q.PageIndex))
	return values
}

// Encode returns the query as a URL query string
func (q Query) Encode() string {
	return q.Values().Encode()
}

// WithPage returns a copy of q pointing at page n
func (q Query) WithPage(n int) Query {
	if n < 1 {
		n = 1
	}
	q.PageIndex = n
	return q
}

// WithKeyword returns a copy of q searching for keyword from the first page
func (q Query) WithKeyword(keyword string) Query {
	q.Keyword = strings.TrimSpace(keyword)
	q.PageIndex = DefaultPageIndex
	return q
}

// Link returns path with the query appended
func (q Query) Link(path string) string {
	return path + "?" + q.Encode()
}

func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
