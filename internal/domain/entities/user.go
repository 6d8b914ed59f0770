package entities

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleAttendant  Role = "attendant"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleAttendant:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash []byte `json:"-"`
}
