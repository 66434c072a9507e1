// Package auth backs the /api/auth endpoints with the users table: bcrypt
// password hashing and HS256 JWTs.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"reservio/internal/domain"
	"reservio/internal/domain/models"
	"reservio/internal/storage"
)

type Service struct {
	Store  storage.RoomStore
	Secret []byte
}

func NewService(store storage.RoomStore, secret []byte) *Service {
	return &Service{Store: store, Secret: secret}
}

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// Register creates a user with role "user" and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	if _, exists, err := s.Store.UserByEmail(ctx, in.Email); err != nil {
		return models.User{}, "", err
	} else if exists {
		return models.User{}, "", domain.ConflictError{Resource: "user", Msg: "email is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.Store.CreateUser(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         "user",
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token. Bad
// email and bad password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, found, err := s.Store.UserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if !found {
		return models.User{}, "", domain.ValidationError{Msg: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", domain.ValidationError{Msg: "invalid email or password"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *Service) issueToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// VerifyToken parses and validates a token, returning the user id claim.
func (s *Service) VerifyToken(token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, domain.ValidationError{Msg: "invalid token", Err: err}
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ValidationError{Msg: "invalid token"}
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ValidationError{Msg: "invalid token"}
	}
	return int64(id), nil
}
