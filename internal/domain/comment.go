package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Comment belongs to a post and to its author.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Contents  string    `gorm:"type:text;not null" json:"contents"`
	Published bool      `gorm:"not null" json:"published"`
	AuthorID  uint      `gorm:"index;not null" json:"authorId"`
	PostID    uint      `gorm:"index;not null" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}

func (c *Comment) BeforeUpdate(*gorm.DB) error {
	c.Version++
	return nil
}

type CommentFilter struct {
	AuthorID  uint
	PostID    uint
	Published *bool
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	FindByID(ctx context.Context, id uint) (*Comment, error)
	FindByQuery(ctx context.Context, f CommentFilter, q Query) ([]Comment, int64, error)
	Save(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, c *Comment) error
}

// Repositories bundles the per-entity repositories so a service can run a
// multi-step sequence against one transaction.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
}

// Atomic runs fn inside a single storage transaction. Every read in fn
// sees the same snapshot the writes land in.
type Atomic interface {
	InTx(ctx context.Context, fn func(r Repositories) error) error
}
