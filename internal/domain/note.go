package domain

import (
	"context"
	"time"
)

// Note is a text note belonging to the user that created it. UserID is set
// once at creation; the title-overwrite path rewrites content without ever
// touching it.
type Note struct {
	ID        int64
	Title     string
	Content   string
	UserID    *int64
	CreatedAt time.Time
}

// NoteRepository defines persistence operations for notes.
//
// Titles are not unique in storage; title-addressed operations act on the
// earliest matching note.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, id int64) (*Note, error)
	ListByOwner(ctx context.Context, userID int64) ([]Note, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	UpdateByTitle(ctx context.Context, title, newTitle, newContent string) error
	// DeleteByID is a silent no-op when the id does not exist.
	DeleteByID(ctx context.Context, id int64) error
}
