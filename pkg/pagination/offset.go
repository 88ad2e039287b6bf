package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 20

// PageMaxSize is the maximum allowed page size
const PageMaxSize = 100

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page  int `json:"page" query:"page" validate:"min=1"`
	Limit int `json:"limit" query:"limit" validate:"min=1,max=100"`
}

// Normalize clamps out-of-range values instead of rejecting them.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = PageDefaultSize
	}
	if r.Limit > PageMaxSize {
		r.Limit = PageMaxSize
	}
}

func (r *OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// OffsetResult is one page of an offset-paginated listing. HasMore is
// derived by overfetching one extra row rather than counting.
type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

// NewOffsetResult trims an overfetched slice down to the page size.
func NewOffsetResult[T any](items []T, req *OffsetRequest) *OffsetResult[T] {
	hasMore := len(items) > req.Limit
	if hasMore {
		items = items[:req.Limit]
	}
	return &OffsetResult[T]{
		Items:   items,
		Page:    req.Page,
		Limit:   req.Limit,
		HasMore: hasMore,
	}
}
