package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type IAuthUseCase interface {
	Login(ctx context.Context, login, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserDirectory
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserDirectory, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Login accepts the e-mail or the display name of the user.
func (u *AuthUseCase) Login(_ context.Context, login, password string) (LoginResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	user, ok := u.users.FindByLogin(login)
	if !ok || !u.users.CheckPassword(user, password) {
		log.Warn().Str("login", login).Msg("[auth][usecase] login refused")
		return LoginResult{}, ErrInvalidCredentials
	}
	token, expiresAt, err := u.tokens.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}
	log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("[auth][usecase] login")
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (u *AuthUseCase) Authenticate(_ context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrUnauthorized
	}
	userID, role, err := u.tokens.Parse(token)
	if err != nil {
		log.Debug().Err(err).Msg("[auth][usecase] token rejected")
		return entities.User{}, ErrUnauthorized
	}
	user, ok := u.users.FindByID(userID)
	if !ok || user.Role != role {
		return entities.User{}, ErrUnauthorized
	}
	return user, nil
}
