package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if IsDuplicateKey(err) {
		return apperr.Invalid("email already registered")
	}
	return err
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Save(u).Error
	if IsDuplicateKey(err) {
		return apperr.Invalid("email already registered")
	}
	return err
}

func (r *UserRepo) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).Update("active", active).Error
}

func (r *UserRepo) List(ctx context.Context, activeOnly bool) ([]domain.User, error) {
	var users []domain.User
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Order("id").Find(&users).Error
	return users, err
}
