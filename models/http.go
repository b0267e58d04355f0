package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	// Email must match the account email pattern and be at most 255 bytes.
	Email string `json:"email" validate:"required,max=255,account_email"`

	// Password has at least 8 characters and at most 72 bytes, the longest
	// input bcrypt accepts.
	Password string `json:"password" validate:"required,min=8,password_bytes"`

	// DisplayName is required and at most 100 bytes.
	DisplayName string `json:"displayName" validate:"required,max=100"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every single-message error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries field-level validation failures.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// FileURLResponse is returned by POST /api/files/upload.
type FileURLResponse struct {
	URL string `json:"url"`
}

// FileURLsResponse is returned by POST /api/files/upload-multiple.
type FileURLsResponse struct {
	URLs []string `json:"urls"`
}
