package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is a back-office operator account. Active/locked state is derived from
// the lockout timestamp; online presence is a separate server-reported fact
// that is never derived client-side.
type User struct {
	ID         string
	Username   string
	Email      string
	Role       string
	LockoutEnd *time.Time
	IsOnline   bool
	CreatedAt  time.Time
}

// IsActive holds exactly when no lockout is in place.
func (u User) IsActive() bool {
	return u.LockoutEnd == nil
}
