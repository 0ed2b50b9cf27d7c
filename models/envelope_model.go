package models

// Every backend response follows one of two envelope shapes: the plain
// envelope below, or the paginated form {data: [...], pagination: {...}}.

// Envelope is the fixed wrapper around non-paginated response bodies. The
// message and error fields carry the server-provided failure text.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Pagination is the page cursor the backend returns alongside paginated
// collections. Page 1 results replace a store's collection; later pages
// append to it.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// AuthResult is the payload of a successful login, register or OAuth
// exchange.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
