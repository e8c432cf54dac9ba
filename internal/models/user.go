package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID          string
	PhoneNumber string
	// Password holds the argon2id hash, never the plain text.
	Password  string
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
	}
}

func (u *User) AuthUser() AuthUser {
	return AuthUser{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Name:        u.Name,
	}
}

type UserSummary struct {
	ID          string
	Name        string
	PhoneNumber string
}

// AuthUser is the identity carried by a verified token.
type AuthUser struct {
	ID          string
	PhoneNumber string
	Role        string
	Name        string
}

func (u AuthUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
