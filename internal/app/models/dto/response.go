package dto

// APIResponse is the envelope for all API responses
type APIResponse struct {
	Success bool         `json:"success" example:"true"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response with the given data
func NewSuccessResponse(data any) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response with the given error detail
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success: false,
		Error:   detail,
	}
}

// PaginationInfo holds pagination metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"20"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"3"`
}

// NewPaginationInfo computes pagination metadata
func NewPaginationInfo(page, pageSize int, totalItems int64) PaginationInfo {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationInfo{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}
