package utils

// Application constants
const (
	AppName    = "HazardWatch"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 50
	MaxPageSize     = 100
	MinPageSize     = 1

	DefaultSortField = "created_at"

	// File upload
	MaxUploadSize = 10 * 1024 * 1024 // 10MB
)

// Error messages
const (
	ErrHazardNotFoundMsg  = "Hazard not found"
	ErrInvalidHazardIDMsg = "Invalid hazard ID"
	ErrFileTooLargeMsg    = "File too large. Max 10MB."
	ErrInternalServerMsg  = "Internal server error"
)
