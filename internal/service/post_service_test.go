package service

import (
	"context"
	"net/http"
	"testing"

	"go-blog-api/internal/domain"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCreatePost_AuthorComesFromIdentity(t *testing.T) {
	var created *domain.Post
	posts := &mockPostRepo{
		createFn: func(_ context.Context, p *domain.Post) error {
			p.ID = 7
			created = p
			return nil
		},
	}
	svc := NewPostService(newAtomic(nil, posts, nil), nil)

	ident := domain.Identity{UserID: 42, Role: domain.RoleMember}
	post, err := svc.Create(context.Background(), ident, CreatePostInput{Title: "T", Contents: "C", Published: boolPtr(true)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.AuthorID != 42 {
		t.Errorf("AuthorID = %d, want 42", post.AuthorID)
	}
	if created == nil || created.ID != 7 {
		t.Errorf("expected the repository create to run")
	}
}

func TestCreatePost_PublishedDefaultsTrue(t *testing.T) {
	svc := NewPostService(newAtomic(nil, &mockPostRepo{}, nil), nil)

	post, err := svc.Create(context.Background(), domain.Identity{UserID: 1, Role: domain.RoleMember}, CreatePostInput{Title: "T", Contents: "C"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !post.Published {
		t.Error("Published = false, want default true")
	}

	post, err = svc.Create(context.Background(), domain.Identity{UserID: 1, Role: domain.RoleMember}, CreatePostInput{Title: "T", Contents: "C", Published: boolPtr(false)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.Published {
		t.Error("Published = true, want explicit false kept")
	}
}

func TestGetPostByID_NotFound(t *testing.T) {
	svc := NewPostService(newAtomic(nil, &mockPostRepo{}, nil), nil)

	_, err := svc.GetByID(context.Background(), 999)
	if got := domain.StatusOf(err); got != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got)
	}
}

func TestUpdatePost_OnlyAuthorMayUpdate(t *testing.T) {
	posts := &mockPostRepo{
		findByIDFn: func(_ context.Context, id uint) (*domain.Post, error) {
			return &domain.Post{ID: id, Title: "old", AuthorID: 1}, nil
		},
	}
	svc := NewPostService(newAtomic(nil, posts, nil), nil)

	_, err := svc.UpdateByID(context.Background(), domain.Identity{UserID: 2, Role: domain.RoleAdmin}, 5, UpdatePostInput{Title: strPtr("new")})
	if got := domain.StatusOf(err); got != http.StatusForbidden {
		t.Errorf("non-author update: status = %d, want 403", got)
	}

	post, err := svc.UpdateByID(context.Background(), domain.Identity{UserID: 1, Role: domain.RoleMember}, 5, UpdatePostInput{Title: strPtr("new")})
	if err != nil {
		t.Fatalf("author update: error = %v", err)
	}
	if post.Title != "new" {
		t.Errorf("Title = %q, want %q", post.Title, "new")
	}
}

func TestDeletePost_RequiresAuthorAndAdmin(t *testing.T) {
	posts := &mockPostRepo{
		findByIDFn: func(_ context.Context, id uint) (*domain.Post, error) {
			return &domain.Post{ID: id, AuthorID: 1}, nil
		},
	}
	svc := NewPostService(newAtomic(nil, posts, nil), nil)

	cases := []struct {
		name   string
		ident  domain.Identity
		status int
	}{
		{"author admin", domain.Identity{UserID: 1, Role: domain.RoleAdmin}, 0},
		{"author member", domain.Identity{UserID: 1, Role: domain.RoleMember}, http.StatusForbidden},
		{"other admin", domain.Identity{UserID: 2, Role: domain.RoleAdmin}, http.StatusForbidden},
		{"other member", domain.Identity{UserID: 2, Role: domain.RoleMember}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.DeleteByID(context.Background(), tc.ident, 5)
			if tc.status == 0 {
				if err != nil {
					t.Fatalf("error = %v, want nil", err)
				}
				return
			}
			if got := domain.StatusOf(err); got != tc.status {
				t.Errorf("status = %d, want %d", got, tc.status)
			}
		})
	}
}

func TestDeletePost_NotFoundBeforeOwnership(t *testing.T) {
	svc := NewPostService(newAtomic(nil, &mockPostRepo{}, nil), nil)

	_, err := svc.DeleteByID(context.Background(), domain.Identity{UserID: 1, Role: domain.RoleAdmin}, 5)
	if got := domain.StatusOf(err); got != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got)
	}
}

func TestGetPostsByQuery_PageEnvelope(t *testing.T) {
	posts := &mockPostRepo{
		findByQueryFn: func(_ context.Context, _ domain.PostFilter, _ domain.Query) ([]domain.Post, int64, error) {
			return []domain.Post{{ID: 1}, {ID: 2}, {ID: 3}}, 3, nil
		},
	}
	svc := NewPostService(newAtomic(nil, posts, nil), nil)

	q := domain.DefaultQuery()
	q.Limit = 10
	page, err := svc.GetByQuery(context.Background(), domain.PostFilter{}, q)
	if err != nil {
		t.Fatalf("GetByQuery() error = %v", err)
	}
	if page.Limit != 3 {
		t.Errorf("Limit = %d, want clamped to total 3", page.Limit)
	}
	if len(page.Data) != 3 || page.Total != 3 {
		t.Errorf("unexpected page: total=%d len=%d", page.Total, len(page.Data))
	}
}
