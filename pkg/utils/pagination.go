package utils

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page/limit query values, applying defaults for empty input.
func ParsePagination(pageStr, limitStr string) (int, int, error) {
	page, limit := 1, DefaultPageSize

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, ErrInvalidPage
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > MaxPageSize {
			return 0, 0, ErrInvalidPageSize
		}
		limit = l
	}

	return page, limit, nil
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}
