package domain

import (
	"context"
	"time"
)

type UserCategory int

const (
	CategoryClient UserCategory = iota + 1
	CategoryStaff
	CategoryAdmin
)

func (c UserCategory) String() string {
	switch c {
	case CategoryClient:
		return "Client"
	case CategoryStaff:
		return "Staff"
	case CategoryAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

func (c UserCategory) Valid() bool {
	return c >= CategoryClient && c <= CategoryAdmin
}

func UserCategories() []UserCategory {
	return []UserCategory{CategoryClient, CategoryStaff, CategoryAdmin}
}

type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:120;not null" json:"name"`
	Email        string       `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string       `gorm:"size:100;not null" json:"-"`
	Category     UserCategory `gorm:"not null" json:"category"`
	Active       bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	SetActive(ctx context.Context, id uint, active bool) error
	List(ctx context.Context, activeOnly bool) ([]User, error)
}
