package models

// Pagination carries the page arithmetic shared by every listing endpoint.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Previous    bool  `json:"previous"`
	Next        bool  `json:"next"`
}

// NewPagination computes page flags for a result set of total rows.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Previous:    page > 1,
		Next:        page < totalPages,
	}
}
