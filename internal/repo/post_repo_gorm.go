package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepo) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var p domain.Post
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) FindByQuery(ctx context.Context, f domain.PostFilter, q domain.Query) ([]domain.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Post{})
	if f.AuthorID != 0 {
		tx = tx.Where("author_id = ?", f.AuthorID)
	}
	if f.Published != nil {
		tx = tx.Where("published = ?", *f.Published)
	}
	tx = withRange(tx, q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []domain.Post
	if err := page(tx, q).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepo) Save(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PostRepo) Delete(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

var _ domain.PostRepository = (*PostRepo)(nil)
