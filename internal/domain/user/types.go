package user

type Role string

const (
	RoleUser      Role = "user"
	RoleExecutive Role = "executive"
	RoleOfficer   Role = "officer"
	RoleAdmin     Role = "admin"
)

var roleRank = map[Role]int{
	RoleUser:      1,
	RoleExecutive: 2,
	RoleOfficer:   3,
	RoleAdmin:     4,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[min]
}

// CanDecide reports whether the role may approve or reject reservations.
func (r Role) CanDecide() bool {
	return r.AtLeast(RoleOfficer)
}

// CanOverrideCancel reports whether the role may cancel reservations it does not own.
func (r Role) CanOverrideCancel() bool {
	return r.AtLeast(RoleOfficer)
}

func (r Role) CanViewStats() bool {
	return r.AtLeast(RoleExecutive)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
