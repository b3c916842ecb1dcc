// Package response contains the HTTP response payloads.
package response

// ApiResponse is the generic envelope for all API responses
type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccess creates a success response without data
func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: true,
		Message: message,
	}
}

// NewSuccessWithData creates a success response with data
func NewSuccessWithData[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewError creates an error response
func NewError(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Error:   message,
	}
}

// NewErrorWithDetails creates an error response with a detail message
func NewErrorWithDetails(message, details string) ApiResponse[any] {
	return ApiResponse[any]{
		Success: false,
		Message: message,
		Error:   details,
	}
}

// PageInfo holds pagination metadata
type PageInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// PagedResponse is the envelope for paginated list responses
type PagedResponse[T any] struct {
	Success bool     `json:"success"`
	Data    []T      `json:"data"`
	Page    PageInfo `json:"pageInfo"`
}

// NewPagedResponse creates a paginated response
func NewPagedResponse[T any](items []T, page, size int, total int64) PagedResponse[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	if items == nil {
		items = []T{}
	}
	return PagedResponse[T]{
		Success: true,
		Data:    items,
		Page: PageInfo{
			Page:       page,
			Size:       size,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}
}
