package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_assistencia/internal/domain/entities"
	mock_interfaces "crm_assistencia/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	admin := entities.User{ID: "1", Name: "Administrador", Email: "admin@crm.com", Role: entities.RoleAdmin}

	t.Run("blank credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Login(context.Background(), " ", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := uc.Login(context.Background(), "admin@crm.com", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().FindByLogin("ghost").Return(entities.User{}, false)

		if _, err := uc.Login(context.Background(), "ghost", "nova123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewAuthUseCase(users, nil)
		users.EXPECT().FindByLogin("admin@crm.com").Return(admin, true)
		users.EXPECT().CheckPassword(admin, "wrong").Return(false)

		if _, err := uc.Login(context.Background(), "admin@crm.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token issue failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(users, tokens)
		users.EXPECT().FindByLogin("admin@crm.com").Return(admin, true)
		users.EXPECT().CheckPassword(admin, "nova123").Return(true)
		tokens.EXPECT().Issue(admin).Return("", time.Time{}, errors.New("sign"))

		if _, err := uc.Login(context.Background(), "admin@crm.com", "nova123"); err == nil || err.Error() != "sign" {
			t.Fatalf("expected sign error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(users, tokens)
		exp := time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)
		users.EXPECT().FindByLogin("admin@crm.com").Return(admin, true)
		users.EXPECT().CheckPassword(admin, "nova123").Return(true)
		tokens.EXPECT().Issue(admin).Return("tok", exp, nil)

		res, err := uc.Login(context.Background(), " admin@crm.com ", "nova123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok" || !res.ExpiresAt.Equal(exp) || res.User.ID != "1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	tech := entities.User{ID: "2", Name: "Técnico João", Role: entities.RoleTechnician}

	cases := []struct {
		name    string
		setup   func(users *mock_interfaces.MockIUserDirectory, tokens *mock_interfaces.MockITokenIssuer)
		token   string
		wantErr bool
	}{
		{name: "empty token", token: "", wantErr: true},
		{
			name:  "bad token",
			token: "bad",
			setup: func(_ *mock_interfaces.MockIUserDirectory, tokens *mock_interfaces.MockITokenIssuer) {
				tokens.EXPECT().Parse("bad").Return("", entities.Role(""), errors.New("signature"))
			},
			wantErr: true,
		},
		{
			name:  "user removed",
			token: "tok",
			setup: func(users *mock_interfaces.MockIUserDirectory, tokens *mock_interfaces.MockITokenIssuer) {
				tokens.EXPECT().Parse("tok").Return("2", entities.RoleTechnician, nil)
				users.EXPECT().FindByID("2").Return(entities.User{}, false)
			},
			wantErr: true,
		},
		{
			name:  "role changed since issue",
			token: "tok",
			setup: func(users *mock_interfaces.MockIUserDirectory, tokens *mock_interfaces.MockITokenIssuer) {
				tokens.EXPECT().Parse("tok").Return("2", entities.RoleAdmin, nil)
				users.EXPECT().FindByID("2").Return(tech, true)
			},
			wantErr: true,
		},
		{
			name:  "valid",
			token: "tok",
			setup: func(users *mock_interfaces.MockIUserDirectory, tokens *mock_interfaces.MockITokenIssuer) {
				tokens.EXPECT().Parse("tok").Return("2", entities.RoleTechnician, nil)
				users.EXPECT().FindByID("2").Return(tech, true)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			users := mock_interfaces.NewMockIUserDirectory(ctrl)
			tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
			if tc.setup != nil {
				tc.setup(users, tokens)
			}
			user, err := NewAuthUseCase(users, tokens).Authenticate(context.Background(), tc.token)
			if tc.wantErr {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("expected ErrUnauthorized, got %v", err)
				}
				return
			}
			if err != nil || user.ID != tech.ID {
				t.Fatalf("unexpected result err=%v user=%+v", err, user)
			}
		})
	}
}
