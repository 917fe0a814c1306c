package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barber-booking-api/internal/domain"
)

type ServiceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) *ServiceRepo { return &ServiceRepo{db: db} }

func (r *ServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindByID 停用的服务也要能查到（历史预约展示用）
func (r *ServiceRepo) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	var s domain.Service
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *ServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepo) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ?", id).Update("active", active).Error
}

func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	var services []domain.Service
	q := r.db.WithContext(ctx).Model(&domain.Service{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Order("id").Find(&services).Error
	return services, err
}
