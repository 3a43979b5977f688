package domain

import "github.com/google/uuid"

// User is a Calendula user as reported by the upstream directory.
type User struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
}
