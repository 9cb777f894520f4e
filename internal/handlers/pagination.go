package handlers

// PageQuery is embedded by every list operation's input.
type PageQuery struct {
	Page  int `query:"page" doc:"Page number, 1-based, defaults to 1"`
	Limit int `query:"limit" doc:"Page size, defaults to 20, max 100"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func (q PageQuery) normalize() (page, limit int) {
	page = q.Page
	if page < 1 {
		page = 1
	}
	limit = q.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// paginate clamps the requested page into [1, totalPages] and returns
// the meta plus the row offset to fetch. Callers count first, then
// fetch with the returned offset.
func paginate(q PageQuery, total int64) (PageMeta, int) {
	page, limit := q.normalize()
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}
	meta := PageMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
	return meta, (page - 1) * limit
}
