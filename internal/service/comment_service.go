package service

import (
	"context"

	"go-blog-api/internal/domain"
)

// Comment operations are always reached through a post, so they live on
// PostService. Each one resolves the post first; whenever a commentId is
// present the cross-reference check runs before anything else: a comment
// that exists but hangs off a different post is a conflict, not a miss.

type CreateCommentInput struct {
	Contents  string
	Published *bool
}

type UpdateCommentInput struct {
	Contents  *string
	Published *bool
}

func (s *PostService) CreateComment(ctx context.Context, ident domain.Identity, postID uint, in CreateCommentInput) (*domain.Comment, error) {
	published := true
	if in.Published != nil {
		published = *in.Published
	}

	var comment *domain.Comment
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		post, err := findPost(ctx, r, postID)
		if err != nil {
			return err
		}
		c := &domain.Comment{
			Contents:  in.Contents,
			Published: published,
			AuthorID:  ident.UserID,
			PostID:    post.ID,
		}
		if err := r.Comments.Create(ctx, c); err != nil {
			return domain.ErrStorage("create comment", err)
		}
		comment = c
		return nil
	})
	return comment, err
}

func (s *PostService) GetCommentsByQuery(ctx context.Context, postID uint, f domain.CommentFilter, q domain.Query) (domain.Page[domain.Comment], error) {
	var page domain.Page[domain.Comment]
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		post, err := findPost(ctx, r, postID)
		if err != nil {
			return err
		}
		f.PostID = post.ID
		comments, total, err := r.Comments.FindByQuery(ctx, f, q)
		if err != nil {
			return domain.ErrStorage("list comments", err)
		}
		page = domain.NewPage(total, q, comments)
		return nil
	})
	return page, err
}

func (s *PostService) GetCommentByID(ctx context.Context, postID, commentID uint) (*domain.Comment, error) {
	var comment *domain.Comment
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		c, err := findPostComment(ctx, r, postID, commentID)
		if err != nil {
			return err
		}
		comment = c
		return nil
	})
	return comment, err
}

func (s *PostService) UpdateCommentByID(ctx context.Context, ident domain.Identity, postID, commentID uint, in UpdateCommentInput) (*domain.Comment, error) {
	var comment *domain.Comment
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		c, err := findPostComment(ctx, r, postID, commentID)
		if err != nil {
			return err
		}
		if c.AuthorID != ident.UserID {
			return domain.ErrForbidden("Access is denied.")
		}
		if in.Contents != nil {
			c.Contents = *in.Contents
		}
		if in.Published != nil {
			c.Published = *in.Published
		}
		if err := r.Comments.Save(ctx, c); err != nil {
			return domain.ErrStorage("save comment", err)
		}
		comment = c
		return nil
	})
	return comment, err
}

// DeleteCommentByID applies the same author-and-admin rule as post
// deletion.
func (s *PostService) DeleteCommentByID(ctx context.Context, ident domain.Identity, postID, commentID uint) (*domain.Comment, error) {
	var comment *domain.Comment
	err := s.atomic.InTx(ctx, func(r domain.Repositories) error {
		c, err := findPostComment(ctx, r, postID, commentID)
		if err != nil {
			return err
		}
		if c.AuthorID != ident.UserID || ident.Role != domain.RoleAdmin {
			return domain.ErrForbidden("Access is denied.")
		}
		if err := r.Comments.Delete(ctx, c); err != nil {
			return domain.ErrStorage("delete comment", err)
		}
		comment = c
		return nil
	})
	return comment, err
}

func findPost(ctx context.Context, r domain.Repositories, postID uint) (*domain.Post, error) {
	post, err := r.Posts.FindByID(ctx, postID)
	if err != nil {
		return nil, domain.ErrStorage("find post", err)
	}
	if post == nil {
		return nil, domain.ErrNotFound("Not found post entity.")
	}
	return post, nil
}

// findPostComment resolves the (postId, commentId) pair: missing post or
// comment is 404, a comment attached to a different post is 409.
func findPostComment(ctx context.Context, r domain.Repositories, postID, commentID uint) (*domain.Comment, error) {
	post, err := findPost(ctx, r, postID)
	if err != nil {
		return nil, err
	}
	comment, err := r.Comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, domain.ErrStorage("find comment", err)
	}
	if comment == nil {
		return nil, domain.ErrNotFound("Not found comment entity.")
	}
	if comment.PostID != post.ID {
		return nil, domain.ErrConflict("The postId provided does not match the postId of the associated comment.")
	}
	return comment, nil
}
