package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msette/notedrop/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-up, sign-in, and session token operations.
// Identity is the user's email: tokens carry it as their only claim, and
// every authenticated request resolves it back to a user record.
type AuthService struct {
	users      domain.UserRepository
	secret     []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, secret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		bcryptCost: bcryptCost,
	}
}

// SignUp hashes the password, creates the user record, and issues a token
// for the new email. There is no duplicate-email check and no field
// validation: repeated sign-ups with the same address all succeed.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string, age int) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Age:          age,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.IssueToken(email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// SignIn verifies credentials and returns a signed token. It returns
// domain.ErrNotFound when no user carries the email and
// domain.ErrWrongPassword on a hash mismatch, so callers can distinguish
// the two.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrWrongPassword
	}

	return s.IssueToken(email)
}

// IssueToken signs an HS256 token whose only claim is the email. No expiry
// is set: a token stays valid for the lifetime of the signing secret.
func (s *AuthService) IssueToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email})
	return token.SignedString(s.secret)
}

// VerifyToken validates the signature and returns the email claim. Any
// parse, signature, or claim failure is domain.ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", domain.ErrInvalidToken
	}
	return email, nil
}

// UserByEmail resolves a session email to its user record.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}
