package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Age          int
	// NoteIDs is the append-only sequence of note ids created by this user.
	// Notes overwritten through the title path are never added here.
	NoteIDs   []int64
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users.
//
// Email is the lookup key but is not unique in storage: duplicate sign-ups
// are accepted and GetByEmail resolves to the earliest matching record.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	AppendNote(ctx context.Context, userID, noteID int64) error
}
