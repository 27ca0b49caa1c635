package service

import (
	"context"
	"time"

	"go-blog-api/internal/domain"
	"go-blog-api/pkg/utils"
)

// UserService owns user persistence. Route-level role gating (admin only)
// has already run by the time these are called.
type UserService struct {
	atomic domain.Atomic
}

func NewUserService(atomic domain.Atomic) *UserService {
	return &UserService{atomic: atomic}
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     domain.Role
}

type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *domain.Role
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	var created *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		existing, err := r.Users.FindByEmail(ctx, in.Email)
		if err != nil {
			return domain.ErrStorage("find user by email", err)
		}
		if existing != nil {
			return domain.ErrBadRequest("Email is already exists.")
		}

		u := &domain.User{
			Email:              in.Email,
			Password:           utils.HashPassword(in.Password),
			Role:               in.Role,
			LatestTryLoginDate: time.Now(),
		}
		if err := r.Users.Create(ctx, u); err != nil {
			return domain.ErrStorage("create user", err)
		}
		created = u
		return nil
	})
	return created, err
}

func (s *UserService) GetByQuery(ctx context.Context, f domain.UserFilter, q domain.Query) (domain.Page[domain.User], error) {
	var page domain.Page[domain.User]
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		users, total, err := r.Users.FindByQuery(ctx, f, q)
		if err != nil {
			return domain.ErrStorage("list users", err)
		}
		page = domain.NewPage(total, q, users)
		return nil
	})
	return page, err
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		u, err := r.Users.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find user", err)
		}
		if u == nil {
			return domain.ErrNotFound("Not found user entity.")
		}
		user = u
		return nil
	})
	return user, err
}

func (s *UserService) UpdateByID(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error) {
	var user *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		u, err := r.Users.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find user", err)
		}
		if u == nil {
			return domain.ErrNotFound("Not found user entity.")
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Password != nil {
			u.Password = utils.HashPassword(*in.Password)
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if err := r.Users.Save(ctx, u); err != nil {
			return domain.ErrStorage("save user", err)
		}
		user = u
		return nil
	})
	return user, err
}

// DeleteByID hard-deletes a user. Owned posts and comments go with it via
// the storage-level cascade.
func (s *UserService) DeleteByID(ctx context.Context, id uint) (*domain.User, error) {
	var user *domain.User
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		u, err := r.Users.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find user", err)
		}
		if u == nil {
			return domain.ErrNotFound("Not found user entity.")
		}
		if err := r.Users.Delete(ctx, u); err != nil {
			return domain.ErrStorage("delete user", err)
		}
		user = u
		return nil
	})
	return user, err
}
