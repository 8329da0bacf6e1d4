package models

// Identity is the authenticated caller as seen by the service layer
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccess reports whether the caller owns the resource or is an admin
func (i Identity) CanAccess(owner string) bool {
	return i.IsAdmin() || (i.Username != "" && i.Username == owner)
}
