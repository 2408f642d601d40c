package models

// Pagination is the server's paging metadata. Pages is the sole source of
// truth for how far the catalog may page forward.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
}
