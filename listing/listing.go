// Package listing holds the catalog's list query state: search text, page
// number and sort order, plus the transition rules between them.
package listing

import "strconv"

type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// ParseSort normalizes a raw sort parameter, defaulting to ascending.
func ParseSort(raw string) Sort {
	if Sort(raw) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// Query is an immutable list query. Transitions return a new value:
// changing the search text resets the page to 1, changing the sort order
// does not, and the page never leaves [1, pages].
type Query struct {
	Search string
	Page   int
	Sort   Sort
}

// New returns the initial catalog query: page 1, ascending.
func New() Query {
	return Query{Page: 1, Sort: SortAsc}
}

// WithSearch sets the search text. A new filter invalidates the old page
// position, so the page resets to 1 when the text actually changes.
func (q Query) WithSearch(search string) Query {
	if search != q.Search {
		q.Search = search
		q.Page = 1
	}
	return q
}

// WithSort sets the sort order, preserving the current page.
func (q Query) WithSort(sort Sort) Query {
	q.Sort = sort
	return q
}

// WithPage sets the page, floored at 1.
func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// ClampTo bounds the page to the server's reported page count.
func (q Query) ClampTo(pages int) Query {
	if pages >= 1 && q.Page > pages {
		q.Page = pages
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// Params renders the query as upstream request parameters.
func (q Query) Params(limit int) map[string]string {
	return map[string]string{
		"search":    q.Search,
		"page":      strconv.Itoa(q.Page),
		"limit":     strconv.Itoa(limit),
		"sortOrder": string(q.Sort),
	}
}

// Pager drives the previous/next controls. It is derived purely from the
// server's page count; the client never extrapolates beyond it.
type Pager struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

func NewPager(page, pages int) Pager {
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return Pager{
		Page:    page,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}
