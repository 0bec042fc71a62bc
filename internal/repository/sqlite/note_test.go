package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msette/notedrop/internal/domain"
)

func TestNoteRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}

	note := &domain.Note{Title: "T1", Content: "hello", UserID: &owner.ID}
	if err := db.Notes().Create(ctx, note); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if note.ID == 0 {
		t.Fatal("expected note ID to be set")
	}

	got, err := db.Notes().GetByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "T1" || got.Content != "hello" {
		t.Fatalf("unexpected note: %+v", got)
	}
	if got.UserID == nil || *got.UserID != owner.ID {
		t.Fatalf("expected owner %d, got %v", owner.ID, got.UserID)
	}
}

func TestNoteRepository_GetByID_Absent(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Notes().GetByID(context.Background(), 12345)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNoteRepository_ListByOwner_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	other := &domain.User{Username: "bob", Email: "b@x.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		note := &domain.Note{Title: title, Content: "c", UserID: &owner.ID}
		if err := db.Notes().Create(ctx, note); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}
	// A note from someone else must not appear in the listing.
	stranger := &domain.Note{Title: "other", Content: "c", UserID: &other.ID}
	if err := db.Notes().Create(ctx, stranger); err != nil {
		t.Fatalf("create stranger note: %v", err)
	}

	notes, err := db.Notes().ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(notes) != len(titles) {
		t.Fatalf("expected %d notes, got %d", len(titles), len(notes))
	}
	for i, title := range titles {
		if notes[i].Title != title {
			t.Fatalf("note %d: expected %q, got %q", i, title, notes[i].Title)
		}
	}
}

func TestNoteRepository_UpdateByTitle_FirstMatchOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}

	first := &domain.Note{Title: "dup", Content: "one", UserID: &owner.ID}
	second := &domain.Note{Title: "dup", Content: "two", UserID: &owner.ID}
	for _, n := range []*domain.Note{first, second} {
		if err := db.Notes().Create(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := db.Notes().UpdateByTitle(ctx, "dup", "dup", "rewritten"); err != nil {
		t.Fatalf("UpdateByTitle: %v", err)
	}

	got1, err := db.Notes().GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if got1.Content != "rewritten" {
		t.Fatalf("expected first note rewritten, got %q", got1.Content)
	}
	// The owner must survive the rewrite.
	if got1.UserID == nil || *got1.UserID != owner.ID {
		t.Fatalf("expected owner %d after rewrite, got %v", owner.ID, got1.UserID)
	}

	got2, err := db.Notes().GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("get second: %v", err)
	}
	if got2.Content != "two" {
		t.Fatalf("expected second note untouched, got %q", got2.Content)
	}
}

func TestNoteRepository_ExistsByTitle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exists, err := db.Notes().ExistsByTitle(ctx, "missing")
	if err != nil {
		t.Fatalf("ExistsByTitle: %v", err)
	}
	if exists {
		t.Fatal("expected missing title to not exist")
	}

	note := &domain.Note{Title: "present", Content: "c"}
	if err := db.Notes().Create(ctx, note); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = db.Notes().ExistsByTitle(ctx, "present")
	if err != nil {
		t.Fatalf("ExistsByTitle: %v", err)
	}
	if !exists {
		t.Fatal("expected title to exist")
	}
}

func TestNoteRepository_DeleteByID_AbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	if err := db.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	note := &domain.Note{Title: "T", Content: "c", UserID: &owner.ID}
	if err := db.Notes().Create(ctx, note); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Notes().DeleteByID(ctx, 99999); err != nil {
		t.Fatalf("delete absent id: %v", err)
	}

	notes, err := db.Notes().ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected collection unchanged, got %d notes", len(notes))
	}

	if err := db.Notes().DeleteByID(ctx, note.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := db.Notes().GetByID(ctx, note.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
