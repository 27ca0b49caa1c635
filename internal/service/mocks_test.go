package service

import (
	"context"

	"go-blog-api/internal/domain"
)

// mockAtomic hands the callback a fixed repository set; there is no real
// transaction in unit tests.
type mockAtomic struct{ repos domain.Repositories }

func (a *mockAtomic) InTx(_ context.Context, fn func(r domain.Repositories) error) error {
	return fn(a.repos)
}

type mockUserRepo struct {
	createFn      func(ctx context.Context, u *domain.User) error
	findByIDFn    func(ctx context.Context, id uint) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByQueryFn func(ctx context.Context, f domain.UserFilter, q domain.Query) ([]domain.User, int64, error)
	saveFn        func(ctx context.Context, u *domain.User) error
	deleteFn      func(ctx context.Context, u *domain.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByQuery(ctx context.Context, f domain.UserFilter, q domain.Query) ([]domain.User, int64, error) {
	if m.findByQueryFn != nil {
		return m.findByQueryFn(ctx, f, q)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) Save(ctx context.Context, u *domain.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, u *domain.User) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, u)
	}
	return nil
}

type mockPostRepo struct {
	createFn      func(ctx context.Context, p *domain.Post) error
	findByIDFn    func(ctx context.Context, id uint) (*domain.Post, error)
	findByQueryFn func(ctx context.Context, f domain.PostFilter, q domain.Query) ([]domain.Post, int64, error)
	saveFn        func(ctx context.Context, p *domain.Post) error
	deleteFn      func(ctx context.Context, p *domain.Post) error
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) FindByQuery(ctx context.Context, f domain.PostFilter, q domain.Query) ([]domain.Post, int64, error) {
	if m.findByQueryFn != nil {
		return m.findByQueryFn(ctx, f, q)
	}
	return nil, 0, nil
}

func (m *mockPostRepo) Save(ctx context.Context, p *domain.Post) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, p *domain.Post) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, p)
	}
	return nil
}

type mockCommentRepo struct {
	createFn      func(ctx context.Context, c *domain.Comment) error
	findByIDFn    func(ctx context.Context, id uint) (*domain.Comment, error)
	findByQueryFn func(ctx context.Context, f domain.CommentFilter, q domain.Query) ([]domain.Comment, int64, error)
	saveFn        func(ctx context.Context, c *domain.Comment) error
	deleteFn      func(ctx context.Context, c *domain.Comment) error
}

func (m *mockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepo) FindByQuery(ctx context.Context, f domain.CommentFilter, q domain.Query) ([]domain.Comment, int64, error) {
	if m.findByQueryFn != nil {
		return m.findByQueryFn(ctx, f, q)
	}
	return nil, 0, nil
}

func (m *mockCommentRepo) Save(ctx context.Context, c *domain.Comment) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, c)
	}
	return nil
}

func (m *mockCommentRepo) Delete(ctx context.Context, c *domain.Comment) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, c)
	}
	return nil
}

type mockIssuer struct {
	issueFn func(userID uint, role domain.Role) (string, error)
}

func (m *mockIssuer) Issue(userID uint, role domain.Role) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(userID, role)
	}
	return "token", nil
}

// compile-time interface checks
var _ domain.Atomic = (*mockAtomic)(nil)
var _ domain.UserRepository = (*mockUserRepo)(nil)
var _ domain.PostRepository = (*mockPostRepo)(nil)
var _ domain.CommentRepository = (*mockCommentRepo)(nil)
var _ TokenIssuer = (*mockIssuer)(nil)

func newAtomic(users *mockUserRepo, posts *mockPostRepo, comments *mockCommentRepo) *mockAtomic {
	if users == nil {
		users = &mockUserRepo{}
	}
	if posts == nil {
		posts = &mockPostRepo{}
	}
	if comments == nil {
		comments = &mockCommentRepo{}
	}
	return &mockAtomic{repos: domain.Repositories{Users: users, Posts: posts, Comments: comments}}
}
