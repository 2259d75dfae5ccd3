package search

// Pagination reports totals for one result page.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// Paginate slices the fully ordered list. A page beyond the end yields
// an empty items slice, not an error.
func Paginate(items []RankedVenue, page, limit int) ([]RankedVenue, Pagination) {
	total := len(items)
	pg := Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: (total + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []RankedVenue{}, pg
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], pg
}
