package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

type CommentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepo) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepo) FindByQuery(ctx context.Context, f domain.CommentFilter, q domain.Query) ([]domain.Comment, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Comment{})
	if f.AuthorID != 0 {
		tx = tx.Where("author_id = ?", f.AuthorID)
	}
	if f.PostID != 0 {
		tx = tx.Where("post_id = ?", f.PostID)
	}
	if f.Published != nil {
		tx = tx.Where("published = ?", *f.Published)
	}
	tx = withRange(tx, q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var comments []domain.Comment
	if err := page(tx, q).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepo) Save(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CommentRepo) Delete(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

var _ domain.CommentRepository = (*CommentRepo)(nil)
