package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

func TestSignIn_UnknownEmailAndWrongPassword(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email == "known@example.com" {
				return &domain.User{ID: 1, Email: email, Password: utils.HashPassword("secret123"), Role: domain.RoleMember}, nil
			}
			return nil, nil
		},
	}
	atomic := newAtomic(users, nil, nil)
	svc := NewAuthService(atomic, NewUserService(atomic), &mockIssuer{})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret123"},
		{"wrong password", "known@example.com", "wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SignIn(context.Background(), tc.email, tc.password)
			if got := domain.StatusOf(err); got != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", got)
			}
			if err.Error() != "Incorrect email or password." {
				t.Errorf("message = %q, want the single shared message", err.Error())
			}
		})
	}
}

func TestSignIn_IssuesTokenAndRecordsAttempt(t *testing.T) {
	var saved *domain.User
	users := &mockUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 5, Email: email, Password: utils.HashPassword("secret123"), Role: domain.RoleAdmin}, nil
		},
		saveFn: func(_ context.Context, u *domain.User) error {
			saved = u
			return nil
		},
	}
	var issuedID uint
	var issuedRole domain.Role
	issuer := &mockIssuer{issueFn: func(userID uint, role domain.Role) (string, error) {
		issuedID, issuedRole = userID, role
		return "signed-token", nil
	}}
	atomic := newAtomic(users, nil, nil)
	svc := NewAuthService(atomic, NewUserService(atomic), issuer)

	res, err := svc.SignIn(context.Background(), "known@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if res.AccessToken != "signed-token" {
		t.Errorf("AccessToken = %q, want %q", res.AccessToken, "signed-token")
	}
	if issuedID != 5 || issuedRole != domain.RoleAdmin {
		t.Errorf("issued for %d/%s, want 5/admin", issuedID, issuedRole)
	}
	if saved == nil {
		t.Fatal("expected the login attempt to be saved")
	}
	if time.Since(saved.LatestTryLoginDate) > time.Minute {
		t.Errorf("LatestTryLoginDate not refreshed: %v", saved.LatestTryLoginDate)
	}
}

func TestSignUp_CreatesUserAndIssuesToken(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(_ context.Context, u *domain.User) error {
			u.ID = 9
			return nil
		},
	}
	atomic := newAtomic(users, nil, nil)
	svc := NewAuthService(atomic, NewUserService(atomic), &mockIssuer{issueFn: func(userID uint, role domain.Role) (string, error) {
		if userID != 9 || role != domain.RoleMember {
			t.Errorf("issued for %d/%s, want 9/member", userID, role)
		}
		return "fresh", nil
	}})

	res, err := svc.SignUp(context.Background(), CreateUserInput{Email: "new@example.com", Password: "secret123", Role: domain.RoleMember})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if res.AccessToken != "fresh" {
		t.Errorf("AccessToken = %q, want %q", res.AccessToken, "fresh")
	}
}

func TestVerifyPassword(t *testing.T) {
	users := &mockUserRepo{
		findByIDFn: func(_ context.Context, id uint) (*domain.User, error) {
			if id == 1 {
				return &domain.User{ID: 1, Password: utils.HashPassword("secret123")}, nil
			}
			return nil, nil
		},
	}
	atomic := newAtomic(users, nil, nil)
	svc := NewAuthService(atomic, NewUserService(atomic), &mockIssuer{})

	res, err := svc.VerifyPassword(context.Background(), 1, "secret123")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !res.Success || res.Message != "Password verified successfully." {
		t.Errorf("got %+v, want success", res)
	}

	res, err = svc.VerifyPassword(context.Background(), 1, "wrong")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if res.Success || res.Message != "Incorrect password." {
		t.Errorf("got %+v, want failure without an error", res)
	}

	_, err = svc.VerifyPassword(context.Background(), 99, "secret123")
	if got := domain.StatusOf(err); got != http.StatusNotFound {
		t.Errorf("missing user: status = %d, want 404", got)
	}
}
