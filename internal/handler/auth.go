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

// AuthHandler handles sign-up, sign-in, and sign-out.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignIn processes the sign-in form.
// POST /signin (email, password)
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	token, err := h.auth.SignIn(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			view.SignUpPage("User not found, please sign up").Render(r.Context(), w)
		case errors.Is(err, domain.ErrWrongPassword):
			w.WriteHeader(http.StatusUnauthorized)
			view.SignInPage("Incorrect password").Render(r.Context(), w)
		default:
			slog.Error("sign in", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	setTokenCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleSignUp processes the registration form. No duplicate-email check
// and no field validation: whatever is submitted becomes a user record.
// POST /signup (username, email, password, age)
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")
	age, _ := strconv.Atoi(r.FormValue("age"))

	_, token, err := h.auth.SignUp(r.Context(), username, email, password, age)
	if err != nil {
		slog.Error("sign up", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setTokenCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleSignOut clears the token cookie. No session validation: signing
// out an absent or invalid session still redirects home.
// POST /signout
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
