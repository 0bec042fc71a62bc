package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msette/notedrop/internal/domain"
	"github.com/msette/notedrop/internal/service"
	"github.com/msette/notedrop/internal/view"
)

// HomeHandler renders the landing page: the sign-in form for anonymous
// visitors, the note listing for a valid session.
type HomeHandler struct {
	auth  *service.AuthService
	notes *service.NoteService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(auth *service.AuthService, notes *service.NoteService) *HomeHandler {
	return &HomeHandler{auth: auth, notes: notes}
}

// HandleHome renders the home page.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	state, email := resolveSession(r, h.auth)
	switch state {
	case sessionNone:
		view.SignInPage("").Render(r.Context(), w)
		return
	case sessionInvalid:
		w.WriteHeader(http.StatusUnauthorized)
		view.SignInPage("Invalid or expired token").Render(r.Context(), w)
		return
	}

	user, err := h.auth.UserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Valid token for a user record that no longer exists.
			http.Error(w, "Unauthorized: Invalid user", http.StatusUnauthorized)
			return
		}
		slog.Error("get user for home", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	notes, err := h.notes.ListByOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("list notes", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view.HomePage(user.Username, notes).Render(r.Context(), w)
}
