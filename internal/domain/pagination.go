package domain

// Pagination bounds shared by list operations.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page is one slice of a paginated listing. Total counts all matching rows.
type Page[T any] struct {
	Items []T
	Total int
}

// PageBounds resolves optional limit and offset to concrete values.
// Range checks happen in input validation; this only fills defaults.
func PageBounds(limit, offset *int) (int, int) {
	l, o := DefaultPageLimit, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	return l, o
}
