package models

import "time"

// Role is a team member's permission level. The owner of a team has RoleOwner
// implicitly.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Team groups users that share access to sites.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	OwnerID   string       `json:"owner_id"`
	Members   []TeamMember `json:"members"`
	CreatedAt time.Time    `json:"created_at"`
}

// TeamMember is a user with a role in a team.
type TeamMember struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	AddedAt time.Time `json:"added_at"`
}

// RoleOf returns the role of userID in t, if any.
func (t Team) RoleOf(userID string) (Role, bool) {
	if t.OwnerID == userID {
		return RoleOwner, true
	}
	for _, m := range t.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// TeamRequest is the payload for creating a team.
type TeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// MemberRequest is the payload for adding a team member.
type MemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,oneof=admin editor viewer"`
}
