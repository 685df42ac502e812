package models

// ExcuseRequest is the body of POST /api/generate-excuse.
type ExcuseRequest struct {
	Category  string `json:"category"`
	Tone      string `json:"tone"`
	UserInput string `json:"userInput,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Timeframe string `json:"timeframe,omitempty"`
}

// GeneratedExcuse is what the generator hands back: the text plus the
// resolved category (never "random") and the echoed tone.
type GeneratedExcuse struct {
	Excuse   string `json:"excuse"`
	Category string `json:"category"`
	Tone     string `json:"tone"`
}

// ExcuseResponse is the body returned by POST /api/generate-excuse.
type ExcuseResponse struct {
	ID       int64  `json:"id"`
	Excuse   string `json:"excuse"`
	Category string `json:"category"`
	Tone     string `json:"tone"`
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user returned by the auth endpoints.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BookmarkRequest is the body of PATCH /api/excuses/{id}/bookmark.
type BookmarkRequest struct {
	Bookmarked bool `json:"bookmarked"`
}

// MessageResponse carries a single localized message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse pairs a localized message with the public user view.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
