package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	WorkOSID  *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the request-scoped view of an authenticated user.
type Identity struct {
	UserID int64
	Email  string
	Name   string
}

func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
}
