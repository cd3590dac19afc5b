package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantErr   error
	}{
		{name: "defaults", wantPage: 1, wantLimit: DefaultPageSize},
		{name: "explicit", page: "3", limit: "50", wantPage: 3, wantLimit: 50},
		{name: "zero page", page: "0", wantErr: ErrInvalidPage},
		{name: "bad page", page: "x", wantErr: ErrInvalidPage},
		{name: "limit too large", limit: "101", wantErr: ErrInvalidPageSize},
		{name: "limit zero", limit: "0", wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, err := ParsePagination(tt.page, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}

	assert.Equal(t, 40, Offset(3, 20))
}
