package domain

// NormalizePaging coerces page below 1 to the first page, per_page below 1 to the
// default and per_page above the maximum to the maximum
func NormalizePaging(page, perPage int) (normPage, normPerPage int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, min(perPage, MaxPerPage)
}

// TotalPages returns the number of pages needed for total items
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
