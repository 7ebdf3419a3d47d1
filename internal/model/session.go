package model

// Session is the admin identity carried in the session cookie.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
