package domain

import (
	"context"
	"time"
)

// Service 理发店服务目录项。停用走 Active 标记（可恢复），
// 历史预约还要按 ID 查到它，所以不用物理删除。
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string    `gorm:"size:255" json:"description"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Service) TableName() string { return "services" }

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	Update(ctx context.Context, s *Service) error
	SetActive(ctx context.Context, id uint, active bool) error
	List(ctx context.Context, activeOnly bool) ([]Service, error)
}
