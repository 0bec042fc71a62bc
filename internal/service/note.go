package service

import (
	"context"
	"fmt"

	"github.com/msette/notedrop/internal/domain"
)

// NoteService handles note reads and writes. Titles are treated as
// first-match unique: the create path branches on existence, and the
// replace path acts on the earliest note carrying the title.
type NoteService struct {
	notes domain.NoteRepository
	users domain.UserRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes domain.NoteRepository, users domain.UserRepository) *NoteService {
	return &NoteService{notes: notes, users: users}
}

func (s *NoteService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return s.notes.ExistsByTitle(ctx, title)
}

// ReplaceByTitle overwrites the content of the earliest note carrying the
// title. The caller's identity is never consulted and the note keeps its
// original owner.
func (s *NoteService) ReplaceByTitle(ctx context.Context, title, content string) error {
	return s.notes.UpdateByTitle(ctx, title, title, content)
}

// CreateForOwner inserts the note and then appends its id to the owner's
// note sequence. The two writes are separate statements: a failure after
// the insert leaves the note in place with no sequence entry.
func (s *NoteService) CreateForOwner(ctx context.Context, owner *domain.User, title, content string) (*domain.Note, error) {
	ownerID := owner.ID
	note := &domain.Note{Title: title, Content: content, UserID: &ownerID}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	if err := s.users.AppendNote(ctx, owner.ID, note.ID); err != nil {
		return nil, fmt.Errorf("append note to owner: %w", err)
	}
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *NoteService) ListByOwner(ctx context.Context, userID int64) ([]domain.Note, error) {
	return s.notes.ListByOwner(ctx, userID)
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.notes.DeleteByID(ctx, id)
}
