package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     PageMeta
	}{
		{
			name: "empty set", page: 1, pageSize: 10, total: 0,
			want: PageMeta{Total: 0, Page: 1, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "partial last page", page: 2, pageSize: 10, total: 13,
			want: PageMeta{Total: 13, Page: 2, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "exact boundary", page: 1, pageSize: 10, total: 10,
			want: PageMeta{Total: 10, Page: 1, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "middle page", page: 2, pageSize: 5, total: 22,
			want: PageMeta{Total: 22, Page: 2, TotalPages: 5, HasNext: true, HasPrev: true},
		},
		{
			name: "page past the end", page: 9, pageSize: 10, total: 13,
			want: PageMeta{Total: 13, Page: 9, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPageMeta(tc.page, tc.pageSize, tc.total))
		})
	}
}
