package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Post belongs to its author. AuthorID is set from the caller's identity
// at creation and never from client input.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Contents  string    `gorm:"type:text;not null" json:"contents"`
	Published bool      `gorm:"not null" json:"published"`
	AuthorID  uint      `gorm:"index;not null" json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string { return "posts" }

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}

func (p *Post) BeforeUpdate(*gorm.DB) error {
	p.Version++
	return nil
}

type PostFilter struct {
	AuthorID  uint
	Published *bool
}

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	FindByQuery(ctx context.Context, f PostFilter, q Query) ([]Post, int64, error)
	Save(ctx context.Context, p *Post) error
	Delete(ctx context.Context, p *Post) error
}
