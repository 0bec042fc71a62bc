package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msette/notedrop/internal/domain"
	"github.com/msette/notedrop/internal/service"
	"github.com/msette/notedrop/internal/view"
)

// NoteHandler handles note creation, viewing, and deletion.
type NoteHandler struct {
	auth  *service.AuthService
	notes *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(auth *service.AuthService, notes *service.NoteService) *NoteHandler {
	return &NoteHandler{auth: auth, notes: notes}
}

// HandleCreate creates a note, or overwrites one by title.
// POST /create (title, content)
//
// The title lookup runs before the session is read: when the title already
// exists its content is replaced without consulting the caller's identity,
// and the note keeps its original owner. Only the fresh-title branch
// requires a valid session.
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	content := r.FormValue("content")

	exists, err := h.notes.ExistsByTitle(r.Context(), title)
	if err != nil {
		slog.Error("check note title", "error", err)
		http.Error(w, "Failed to create or update note", http.StatusInternalServerError)
		return
	}

	if exists {
		if err := h.notes.ReplaceByTitle(r.Context(), title, content); err != nil {
			slog.Error("replace note by title", "error", err)
			http.Error(w, "Failed to create or update note", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	state, email := resolveSession(r, h.auth)
	if state != sessionValid {
		w.WriteHeader(http.StatusUnauthorized)
		view.SignInPage("Invalid token").Render(r.Context(), w)
		return
	}

	user, err := h.auth.UserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Unauthorized: User not found", http.StatusUnauthorized)
			return
		}
		slog.Error("get user for note create", "error", err)
		http.Error(w, "Failed to create or update note", http.StatusInternalServerError)
		return
	}

	if _, err := h.notes.CreateForOwner(r.Context(), user, title, content); err != nil {
		slog.Error("create note", "error", err)
		http.Error(w, "Failed to create or update note", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleDelete deletes a note by id. There is no session or ownership
// check, and deleting an id that no longer exists is a no-op.
// GET /delete/{id}
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		slog.Error("delete note", "error", err)
		http.Error(w, "Failed to delete note", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleView renders a single note by id. There is no ownership check.
// GET /notes/{id}
func (h *NoteHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	note, err := h.notes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		slog.Error("get note", "error", err)
		http.Error(w, "Failed to retrieve note", http.StatusInternalServerError)
		return
	}

	view.NotePage(note.Title, note.Content).Render(r.Context(), w)
}
