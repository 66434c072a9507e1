package auth

import (
	"context"
	"testing"

	"reservio/internal/domain"
	"reservio/internal/storage/memstore"
)

func newTestService() *Service {
	return NewService(memstore.NewRooms(), []byte("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	in := RegisterInput{
		Username: "dana",
		Email:    "dana@example.com",
		FullName: "Dana Reyes",
		Password: "correct horse battery",
	}
	user, token, err := s.Register(ctx, in)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 || user.Role != "user" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == in.Password {
		t.Fatalf("password stored in plain text")
	}
	if token == "" {
		t.Fatalf("no token issued")
	}

	id, err := s.VerifyToken(token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if id != user.ID {
		t.Fatalf("token user id = %d, want %d", id, user.ID)
	}

	_, loginToken, err := s.Login(ctx, in.Email, in.Password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginToken == "" {
		t.Fatalf("no token on login")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	in := RegisterInput{Username: "dana", Email: "dana@example.com", FullName: "Dana Reyes", Password: "secret password"}
	if _, _, err := s.Register(ctx, in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := s.Register(ctx, in); !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, _, err := s.Register(ctx, RegisterInput{
		Username: "dana", Email: "dana@example.com", FullName: "Dana Reyes", Password: "secret password",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := s.Login(ctx, "dana@example.com", "wrong")
	_, _, unknownEmail := s.Login(ctx, "nobody@example.com", "secret password")

	if !domain.IsValidation(wrongPassword) || !domain.IsValidation(unknownEmail) {
		t.Fatalf("expected validation errors, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestVerifyToken_RejectsTampering(t *testing.T) {
	s := newTestService()
	other := NewService(memstore.NewRooms(), []byte("other-secret"))
	ctx := context.Background()

	_, token, err := s.Register(ctx, RegisterInput{
		Username: "dana", Email: "dana@example.com", FullName: "Dana Reyes", Password: "secret password",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := other.VerifyToken(token); !domain.IsValidation(err) {
		t.Fatalf("token signed with another secret should not verify, got %v", err)
	}
	if _, err := s.VerifyToken("not.a.token"); !domain.IsValidation(err) {
		t.Fatalf("garbage token should not verify, got %v", err)
	}
}
