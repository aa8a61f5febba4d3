package paginator

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// PaginateQuery carries pagination parameters from the request.
type PaginateQuery struct {
	Page  int64 `form:"page"`
	Limit int64 `form:"limit"`
}

// Adjust clamps the query to sane defaults.
func (q *PaginateQuery) Adjust() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

// Offset returns the row offset for the current page.
func (q PaginateQuery) Offset() int64 {
	return (q.Page - 1) * q.Limit
}

// Paginator describes one page of a result set.
type Paginator struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// New builds a Paginator from a query and the total row count.
func New(q PaginateQuery, total int64) Paginator {
	q.Adjust()
	pages := total / q.Limit
	if total%q.Limit != 0 {
		pages++
	}
	return Paginator{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
