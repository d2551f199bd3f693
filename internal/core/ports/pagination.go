package ports

// Page carries list-endpoint paging parameters.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps paging parameters to sane values (page >= 1,
// 1 <= limit <= 100) mirroring the admin UI defaults.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

// Offset is the number of documents to skip for this page.
func (p Page) Offset() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Pagination is the paging envelope returned alongside every list.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination derives the envelope from the requested page and total count.
func NewPagination(p Page, total int64) Pagination {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
