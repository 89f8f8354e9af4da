package models

import "github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"

// AuthenticatedUser is the profile persisted alongside the bearer token for
// the lifetime of a session. Roles is never nil after normalization.
type AuthenticatedUser struct {
	ID       string           `json:"id,omitempty"`
	Username string           `json:"username"`
	Roles    []enums.RoleType `json:"roles"`
}

// HasRole reports whether the user carries the given role tag
func (u AuthenticatedUser) HasRole(role enums.RoleType) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
