package domain

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// Identity is the per-request caller resolved from a verified token.
type Identity struct {
	UserID uint
	Role   Role
}
