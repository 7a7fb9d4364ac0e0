package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AuthSubject string    `json:"-" db:"auth_subject"`
	FirstName   *string   `json:"first_name,omitempty" db:"first_name"`
	LastName    *string   `json:"last_name,omitempty" db:"last_name"`
	Department  *string   `json:"department,omitempty" db:"department"`
	Email       *string   `json:"email,omitempty" db:"email"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is what the identity provider vouches for at sign-in.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Department *string
}
