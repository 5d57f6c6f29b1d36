package models

// PageMeta describes an offset-paginated listing.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPageMeta fills TotalPages from total and limit.
func NewPageMeta(total, page, limit int) PageMeta {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PageMeta{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// CursorMeta describes a cursor-paginated listing.
type CursorMeta struct {
	Total      int    `json:"total"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// Page is the common {data, meta} envelope.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// Result is the {success, error?} acknowledgement most mutations return.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
