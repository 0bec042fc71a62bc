package handler

import (
	"net/http"
	"time"

	"github.com/msette/notedrop/internal/service"
)

// tokenCookie names the cookie carrying the session token.
const tokenCookie = "token"

type sessionState int

const (
	// sessionNone: no token cookie on the request.
	sessionNone sessionState = iota
	// sessionValid: the cookie's token verified; the email is known.
	sessionValid
	// sessionInvalid: a cookie was present but its token failed verification.
	sessionInvalid
)

// resolveSession classifies the request's session from the token cookie.
// Every handler that needs identity applies this same rule.
func resolveSession(r *http.Request, auth *service.AuthService) (sessionState, string) {
	cookie, err := r.Cookie(tokenCookie)
	if err != nil {
		return sessionNone, ""
	}
	email, err := auth.VerifyToken(cookie.Value)
	if err != nil {
		return sessionInvalid, ""
	}
	return sessionValid, email
}

// setTokenCookie stores the session token. No Secure/HttpOnly/SameSite
// attributes are set.
func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:  tokenCookie,
		Value: token,
		Path:  "/",
	})
}

// clearTokenCookie overwrites the cookie with an empty value and an
// already-past expiry.
func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    tokenCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
	})
}
