package auth

import (
	"errors"
	"testing"
	"time"

	"crm_assistencia/internal/domain/entities"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDirectory(t *testing.T) *UserDirectory {
	t.Helper()
	d, err := NewUserDirectory(DemoAccounts(), bcrypt.MinCost)
	require.NoError(t, err)
	return d
}

func TestUserDirectory_FindByLogin(t *testing.T) {
	d := newDirectory(t)

	tests := []struct {
		login  string
		wantID string
		found  bool
	}{
		{login: "admin@crm.com", wantID: "1", found: true},
		{login: "ADMIN@CRM.COM", wantID: "1", found: true},
		{login: "técnico joão", wantID: "2", found: true},
		{login: "  Atendente Maria ", wantID: "3", found: true},
		{login: "ghost@crm.com", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			u, ok := d.FindByLogin(tt.login)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestUserDirectory_CheckPassword(t *testing.T) {
	d := newDirectory(t)
	u, ok := d.FindByID("2")
	require.True(t, ok)

	assert.NotEqual(t, []byte(DemoPassword), u.PasswordHash)
	assert.True(t, d.CheckPassword(u, DemoPassword))
	assert.False(t, d.CheckPassword(u, "wrong"))
	assert.False(t, d.CheckPassword(entities.User{}, DemoPassword))

	_, ok = d.FindByID("99")
	assert.False(t, ok)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := entities.User{ID: "2", Email: "joao@crm.com", Role: entities.RoleTechnician}

	token, exp, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, role, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "2", id)
	assert.Equal(t, entities.RoleTechnician, role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := entities.User{ID: "1", Role: entities.RoleAdmin}

	t.Run("other key", func(t *testing.T) {
		token, _, err := NewTokenIssuer("other", time.Hour).Issue(user)
		require.NoError(t, err)
		_, _, err = issuer.Parse(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenIssuer("secret", time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := old.Issue(user)
		require.NoError(t, err)
		_, _, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := &Claims{ID: "1", Role: "root", StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, _, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
