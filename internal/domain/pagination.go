package domain

// PaginationInfo server-driven pagination metadata of the appointment list
type PaginationInfo struct {
	Page       int
	TotalPages int
	Total      int
	Limit      int
}

// HasPrevious returns true if there is a page before the current one
func (p PaginationInfo) HasPrevious() bool {
	return p.Page > 1
}

// HasNext returns true if there is a page after the current one
func (p PaginationInfo) HasNext() bool {
	return p.Page < p.TotalPages
}

// PreviousPage returns the previous page number, or the current page on the first page
func (p PaginationInfo) PreviousPage() int {
	if !p.HasPrevious() {
		return p.Page
	}
	return p.Page - 1
}

// NextPage returns the next page number, or the current page on the last page
func (p PaginationInfo) NextPage() int {
	if !p.HasNext() {
		return p.Page
	}
	return p.Page + 1
}
