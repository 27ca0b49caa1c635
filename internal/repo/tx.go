package repo

import (
	"context"

	"gorm.io/gorm"

	"go-blog-api/internal/domain"
)

// GormAtomic opens one transaction per call and hands the callback a set
// of repositories bound to it, so multi-step read-then-write sequences
// cannot interleave with concurrent deletes.
type GormAtomic struct{ db *gorm.DB }

func NewAtomic(db *gorm.DB) *GormAtomic { return &GormAtomic{db: db} }

func (a *GormAtomic) InTx(ctx context.Context, fn func(r domain.Repositories) error) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domain.Repositories{
			Users:    NewUserRepo(tx),
			Posts:    NewPostRepo(tx),
			Comments: NewCommentRepo(tx),
		})
	})
}

var _ domain.Atomic = (*GormAtomic)(nil)

// withRange narrows a statement to the creation-date range when both
// bounds are present: createdAt > start AND createdAt <= end.
func withRange(tx *gorm.DB, q domain.Query) *gorm.DB {
	if q.HasRange() {
		tx = tx.Where("created_at > ? AND created_at <= ?", *q.StartDate, *q.EndDate)
	}
	return tx
}

// page applies sorting and paging. Count runs on the statement before
// this is called.
func page(tx *gorm.DB, q domain.Query) *gorm.DB {
	return tx.Order(q.OrderClause()).Limit(q.Limit).Offset(q.Offset)
}
