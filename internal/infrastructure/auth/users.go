package auth

import (
	"strings"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "nova123"

// Account is a user plus the plain password it is seeded with.
type Account struct {
	User     entities.User
	Password string
}

func DemoAccounts() []Account {
	return []Account{
		{User: entities.User{ID: "1", Name: "Admin User", Email: "admin@crm.com", Role: entities.RoleAdmin}, Password: DemoPassword},
		{User: entities.User{ID: "2", Name: "Técnico João", Email: "joao@crm.com", Role: entities.RoleTechnician}, Password: DemoPassword},
		{User: entities.User{ID: "3", Name: "Atendente Maria", Email: "maria@crm.com", Role: entities.RoleAttendant}, Password: DemoPassword},
	}
}

// UserDirectory is a fixed set of users whose passwords are kept as bcrypt
// hashes only.
type UserDirectory struct {
	users []entities.User
}

var _ interfaces.IUserDirectory = (*UserDirectory)(nil)

// NewUserDirectory hashes every account password with the given bcrypt cost.
// A cost below bcrypt.MinCost uses bcrypt.DefaultCost.
func NewUserDirectory(accounts []Account, cost int) (*UserDirectory, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	d := &UserDirectory{users: make([]entities.User, 0, len(accounts))}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, err
		}
		u := a.User
		u.PasswordHash = hash
		d.users = append(d.users, u)
	}
	log.Info().Int("users", len(d.users)).Msg("[auth][directory] loaded")
	return d, nil
}

// FindByLogin matches the e-mail or the display name, ignoring case.
func (d *UserDirectory) FindByLogin(login string) (entities.User, bool) {
	login = strings.TrimSpace(login)
	for _, u := range d.users {
		if strings.EqualFold(u.Email, login) || strings.EqualFold(u.Name, login) {
			return u, true
		}
	}
	return entities.User{}, false
}

func (d *UserDirectory) FindByID(id string) (entities.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return entities.User{}, false
}

func (d *UserDirectory) CheckPassword(user entities.User, password string) bool {
	return bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) == nil
}
