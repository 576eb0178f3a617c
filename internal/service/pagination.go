package service

// DefaultPerPage is the fixed page size used by every listing
const DefaultPerPage = 20

// Pagination describes one page of a listing
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

func paginate(page int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	pages := int((total + DefaultPerPage - 1) / DefaultPerPage)
	return Pagination{
		Page:    page,
		PerPage: DefaultPerPage,
		Total:   total,
		Pages:   pages,
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
