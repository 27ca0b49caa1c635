package service

import (
	"context"
	"fmt"
	"time"

	"go-blog-api/internal/core/cache"
	"go-blog-api/internal/domain"
)

const postCacheTTL = 5 * time.Minute

func postCacheKey(id uint) string { return fmt.Sprintf("post:%d", id) }

// PostService owns post persistence and the ownership rules guarding
// mutations. The role gate and identity resolver have already run; the
// caller's identity arrives as an explicit parameter.
type PostService struct {
	atomic domain.Atomic
	cache  *cache.Cache // optional read-through cache for post-by-id
}

func NewPostService(atomic domain.Atomic, c *cache.Cache) *PostService {
	return &PostService{atomic: atomic, cache: c}
}

type CreatePostInput struct {
	Title     string
	Contents  string
	Published *bool
}

type UpdatePostInput struct {
	Title     *string
	Contents  *string
	Published *bool
}

// Create inserts a post authored by the caller. AuthorID always comes
// from the resolved identity, never from client input. Published
// defaults to true when absent.
func (s *PostService) Create(ctx context.Context, ident domain.Identity, in CreatePostInput) (*domain.Post, error) {
	published := true
	if in.Published != nil {
		published = *in.Published
	}

	post := &domain.Post{
		Title:     in.Title,
		Contents:  in.Contents,
		Published: published,
		AuthorID:  ident.UserID,
	}
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		if err := r.Posts.Create(ctx, post); err != nil {
			return domain.ErrStorage("create post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetByQuery(ctx context.Context, f domain.PostFilter, q domain.Query) (domain.Page[domain.Post], error) {
	var page domain.Page[domain.Post]
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		posts, total, err := r.Posts.FindByQuery(ctx, f, q)
		if err != nil {
			return domain.ErrStorage("list posts", err)
		}
		page = domain.NewPage(total, q, posts)
		return nil
	})
	return page, err
}

func (s *PostService) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	if s.cache == nil {
		return s.loadPost(ctx, id)
	}
	post, err := cache.GetOrLoadJSON(s.cache, ctx, postCacheKey(id), postCacheTTL, func(ctx context.Context) (*domain.Post, error) {
		return s.loadPost(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound("Not found post entity.")
	}
	return post, nil
}

func (s *PostService) loadPost(ctx context.Context, id uint) (*domain.Post, error) {
	var post *domain.Post
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		p, err := r.Posts.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find post", err)
		}
		if p == nil {
			return domain.ErrNotFound("Not found post entity.")
		}
		post = p
		return nil
	})
	return post, err
}

func (s *PostService) UpdateByID(ctx context.Context, ident domain.Identity, id uint, in UpdatePostInput) (*domain.Post, error) {
	var post *domain.Post
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		p, err := r.Posts.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find post", err)
		}
		if p == nil {
			return domain.ErrNotFound("Not found post entity.")
		}
		if p.AuthorID != ident.UserID {
			return domain.ErrForbidden("Access is denied.")
		}
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Contents != nil {
			p.Contents = *in.Contents
		}
		if in.Published != nil {
			p.Published = *in.Published
		}
		if err := r.Posts.Save(ctx, p); err != nil {
			return domain.ErrStorage("save post", err)
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return post, nil
}

// DeleteByID requires the caller to be the author and hold the admin
// role. Both conditions, not either.
func (s *PostService) DeleteByID(ctx context.Context, ident domain.Identity, id uint) (*domain.Post, error) {
	var post *domain.Post
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		p, err := r.Posts.FindByID(ctx, id)
		if err != nil {
			return domain.ErrStorage("find post", err)
		}
		if p == nil {
			return domain.ErrNotFound("Not found post entity.")
		}
		if p.AuthorID != ident.UserID || ident.Role != domain.RoleAdmin {
			return domain.ErrForbidden("Access is denied.")
		}
		if err := r.Posts.Delete(ctx, p); err != nil {
			return domain.ErrStorage("delete post", err)
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return post, nil
}

func (s *PostService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, postCacheKey(id))
	}
}
