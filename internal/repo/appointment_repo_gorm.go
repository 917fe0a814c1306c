package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"barber-booking-api/internal/domain"
)

type AppointmentRepo struct{ db *gorm.DB }

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

func (r *AppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Omit("Service", "User").Create(a).Error
}

func (r *AppointmentRepo) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("User").
		First(&a, "appointments.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AppointmentRepo) Update(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Omit("Service", "User").Save(a).Error
}

// ListActive 取消之外的全部预约，按时间升序
func (r *AppointmentRepo) ListActive(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("User").
		Where("status <> ?", domain.StatusCancelled).
		Order("scheduled_at").
		Find(&out).Error
	return out, err
}

func (r *AppointmentRepo) ListRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("User").
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Order("scheduled_at").
		Find(&out).Error
	return out, err
}
