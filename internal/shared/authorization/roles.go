package authorization

// Role identifies the kind of authenticated caller. Staff manage terminals
// and history for their tenant; members can only mint their own credentials.
type Role string

const (
	RoleStaff  Role = "staff"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsStaff() bool {
	return r == RoleStaff
}

func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleMember
}

// ParseRole maps a claim value to a Role, defaulting to the least
// privileged role for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}
