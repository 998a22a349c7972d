package models

import "time"

// User is sourced from the auth store and treated as read-mostly.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"dateJoined,omitempty"`
}
