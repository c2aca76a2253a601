package search

type Metadata struct {
	Total       int
	Page        int
	Limit       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// Paginate counts the full candidate set, then slices out one page.
// A page past the end returns an empty (non-nil) slice with the
// metadata still populated from the full count.
func Paginate(candidates []Candidate, page, limit int) ([]Candidate, Metadata) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(candidates)
	totalPages := (total + limit - 1) / limit

	md := Metadata{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	start := (page - 1) * limit
	if start >= total {
		return []Candidate{}, md
	}
	end := start + limit
	if end > total {
		end = total
	}
	return candidates[start:end], md
}
