package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// User owns posts and comments. The password column holds a bcrypt hash
// and is never serialized.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;size:60;not null" json:"email"`
	Password           string    `gorm:"size:100;not null" json:"-"`
	Role               Role      `gorm:"size:16;not null" json:"role"`
	LatestTryLoginDate time.Time `json:"latestTryLoginDate"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	Version            int       `json:"version"`

	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

func (u *User) BeforeUpdate(*gorm.DB) error {
	u.Version++
	return nil
}

// UserFilter narrows list queries; zero values mean "no filter".
type UserFilter struct {
	Role Role
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByQuery(ctx context.Context, f UserFilter, q Query) ([]User, int64, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, u *User) error
}
