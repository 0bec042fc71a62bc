package handler

import (
	"net/http"

	"github.com/msette/notedrop/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, notes *service.NoteService) {
	home := NewHomeHandler(auth, notes)
	authHandler := NewAuthHandler(auth)
	noteHandler := NewNoteHandler(auth, notes)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /{$}", home.HandleHome)

	mux.HandleFunc("POST /signin", authHandler.HandleSignIn)
	mux.HandleFunc("POST /signup", authHandler.HandleSignUp)
	mux.HandleFunc("POST /signout", authHandler.HandleSignOut)

	mux.HandleFunc("POST /create", noteHandler.HandleCreate)
	mux.HandleFunc("GET /delete/{id}", noteHandler.HandleDelete)
	mux.HandleFunc("GET /notes/{id}", noteHandler.HandleView)
}
