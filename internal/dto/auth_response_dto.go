package dto

// TokenRequest exchanges the admin API key for a bearer token.
type TokenRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// TokenResponse represents the response for a successful token exchange.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of requests that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}
