package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msette/notedrop/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

var _ domain.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, age, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, user.Age, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	user.ID = id
	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, age, created_at
		 FROM users WHERE id = ?`, id)
}

// GetByEmail returns the earliest user carrying the given email. Duplicate
// emails are allowed in storage, so later sign-ups with the same address are
// shadowed here.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx,
		`SELECT id, username, email, password_hash, age, created_at
		 FROM users WHERE email = ? ORDER BY id LIMIT 1`, email)
}

// AppendNote adds the note id to the end of the user's owned-note sequence.
func (r *UserRepository) AppendNote(ctx context.Context, userID, noteID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_notes (user_id, note_id, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM user_notes WHERE user_id = ?))`,
		userID, noteID, userID,
	)
	if err != nil {
		return fmt.Errorf("append note %d to user %d: %w", noteID, userID, err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Age, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	noteIDs, err := r.noteIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.NoteIDs = noteIDs
	return user, nil
}

func (r *UserRepository) noteIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT note_id FROM user_notes WHERE user_id = ? ORDER BY position", userID)
	if err != nil {
		return nil, fmt.Errorf("query user note ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan note id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
