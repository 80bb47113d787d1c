package model

import "time"

// User represents a user account
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Hash        *string   `json:"-"` // Never expose password hash
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// UserSummary is the resolved-owner shape embedded in Speaker responses.
// Only the identifier and display attribute are exposed.
type UserSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Summary returns the public summary of a user
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:          u.ID,
		DisplayName: u.DisplayName,
	}
}
