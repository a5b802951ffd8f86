package models

// StatusResponse is the generic `{status, message}` envelope used by
// registration, password-reset, and other acknowledgment-style endpoints.
type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. Message carries a
// client-safe description only; internal error detail stays in the logs.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LoginResponse is the body of a successful POST /api/auth/login.
type LoginResponse struct {
	Status            string `json:"status"`
	Token             string `json:"token"`
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// ProfileResponse is the body of GET /api/profile and the echo of a
// successful profile update.
type ProfileResponse struct {
	Status            string `json:"status"`
	UserID            int64  `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// BookListResponse is the body of GET /api/books.
type BookListResponse struct {
	Status     string         `json:"status"`
	Books      []BookResponse `json:"books"`
	TotalCount int            `json:"total_count"`
	Message    string         `json:"message,omitempty"`
}

// BookResponse is one catalogue entry with boundary-built asset URLs.
type BookResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	PDFFileURL    string `json:"pdf_file_url,omitempty"`
	TotalChunks   int    `json:"total_chunks"`
	ActualChunks  int    `json:"actual_chunks"`
	IsComplete    bool   `json:"is_complete"`
	CreatedAt     string `json:"created_at"`
}

// BookContentResponse is the body of GET /api/books/{bookID}/contents.
// Data holds either a single chunk (when ?chunk= is given) or the full
// ordered chunk list.
type BookContentResponse struct {
	Status      string `json:"status"`
	Data        any    `json:"data"`
	TotalChunks int    `json:"total_chunks"`
}
