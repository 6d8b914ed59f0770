package response

import (
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"
	"time"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		TokenType: "Bearer",
		ExpiresAt: r.ExpiresAt,
		User:      FromUser(r.User),
	}
}
