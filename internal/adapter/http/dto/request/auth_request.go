package request

import "strings"

// LoginRequest accepts the e-mail or the user name in Login. Email is kept
// for clients that post {"email", "password"}.
type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveLogin() string {
	if v := strings.TrimSpace(r.Login); v != "" {
		return v
	}
	return strings.TrimSpace(r.Email)
}
