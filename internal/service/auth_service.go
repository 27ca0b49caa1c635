package service

import (
	"context"
	"time"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

// TokenIssuer mints a signed token for an authenticated user.
type TokenIssuer interface {
	Issue(userID uint, role domain.Role) (string, error)
}

type AuthService struct {
	atomic domain.Atomic
	users  *UserService
	issuer TokenIssuer
}

func NewAuthService(atomic domain.Atomic, users *UserService, issuer TokenIssuer) *AuthService {
	return &AuthService{atomic: atomic, users: users, issuer: issuer}
}

type TokenResult struct {
	AccessToken string `json:"accessToken"`
}

// SignIn checks credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (TokenResult, error) {
	var user *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		u, err := r.Users.FindByEmail(ctx, email)
		if err != nil {
			return domain.ErrStorage("find user by email", err)
		}
		if u == nil {
			return domain.ErrBadRequest("Incorrect email or password.")
		}
		if !utils.CheckPassword(password, u.Password) {
			return domain.ErrBadRequest("Incorrect email or password.")
		}
		u.LatestTryLoginDate = time.Now()
		if err := r.Users.Save(ctx, u); err != nil {
			return domain.ErrStorage("save user", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return TokenResult{}, err
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return TokenResult{}, domain.ErrStorage("issue token", err)
	}
	return TokenResult{AccessToken: token}, nil
}

func (s *AuthService) SignUp(ctx context.Context, in CreateUserInput) (TokenResult, error) {
	user, err := s.users.Create(ctx, in)
	if err != nil {
		return TokenResult{}, err
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return TokenResult{}, domain.ErrStorage("issue token", err)
	}
	return TokenResult{AccessToken: token}, nil
}

type VerifyPasswordResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *AuthService) VerifyPassword(ctx context.Context, userID uint, confirmPassword string) (VerifyPasswordResult, error) {
	var user *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		u, err := r.Users.FindByID(ctx, userID)
		if err != nil {
			return domain.ErrStorage("find user", err)
		}
		if u == nil {
			return domain.ErrNotFound("Not found user entity.")
		}
		user = u
		return nil
	})
	if err != nil {
		return VerifyPasswordResult{}, err
	}

	if utils.CheckPassword(confirmPassword, user.Password) {
		return VerifyPasswordResult{Success: true, Message: "Password verified successfully."}, nil
	}
	return VerifyPasswordResult{Success: false, Message: "Incorrect password."}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
