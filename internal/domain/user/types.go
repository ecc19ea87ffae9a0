package user

// Role is the back-office permission level. Staff can manage bookings,
// admins can additionally rewrite the schedule.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
