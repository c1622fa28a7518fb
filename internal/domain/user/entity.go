package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory entry for a person who can book or decide on rooms.
// Accounts are provisioned by the identity provider; this service only reads them.
type User struct {
	id        uuid.UUID
	email     Email
	name      string
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(email Email, name string, role Role) *User {
	return &User{
		id:       uuid.New(),
		email:    email,
		name:     name,
		role:     role,
		isActive: true,
	}
}

func ReconstructUser(id uuid.UUID, email Email, name string, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
