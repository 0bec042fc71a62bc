package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msette/notedrop/internal/domain"
)

// NoteRepository implements domain.NoteRepository using SQLite.
type NoteRepository struct {
	db *sql.DB
}

var _ domain.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, user_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		note.Title, note.Content, note.UserID, now,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	note.ID = id
	note.CreatedAt = now
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	note := &domain.Note{}
	var userID sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, user_id, created_at
		 FROM notes WHERE id = ?`, id,
	).Scan(&note.ID, &note.Title, &note.Content, &userID, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query note by id: %w", err)
	}
	if userID.Valid {
		note.UserID = &userID.Int64
	}
	return note, nil
}

// ListByOwner returns the user's notes in insertion order.
func (r *NoteRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, user_id, created_at
		 FROM notes WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query notes by owner: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var note domain.Note
		var owner sql.NullInt64
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &owner, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		if owner.Valid {
			note.UserID = &owner.Int64
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM notes WHERE title = ?)", title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query note exists by title: %w", err)
	}
	return exists, nil
}

// UpdateByTitle rewrites the earliest note carrying title. The owner column
// is left untouched.
func (r *NoteRepository) UpdateByTitle(ctx context.Context, title, newTitle, newContent string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?
		 WHERE id = (SELECT id FROM notes WHERE title = ? ORDER BY id LIMIT 1)`,
		newTitle, newContent, title,
	)
	if err != nil {
		return fmt.Errorf("update note by title: %w", err)
	}
	return nil
}

// DeleteByID removes the note. A missing id is not an error. Owned-note
// sequence entries are append-only and keep pointing at the deleted id.
func (r *NoteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
