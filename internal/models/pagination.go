package models

import "math"

// PageMeta is the pagination envelope returned by every list operation.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageMeta computes the envelope for an offset-based page.
// hasNext = page*pageSize < total; totalPages = ceil(total/pageSize).
func NewPageMeta(page, pageSize int, total int64) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(pageSize) < total,
		HasPrev:    page > 1,
	}
}
