package handlers

// PaginationInfo is the pagination metadata block returned by list endpoints.
type PaginationInfo struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
}
