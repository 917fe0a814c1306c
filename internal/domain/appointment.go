package domain

import (
	"context"
	"fmt"
	"time"

	"barber-booking-api/internal/apperr"
)

type AppointmentStatus int

// 初始状态必须显式赋值，不依赖零值。
const (
	StatusScheduled AppointmentStatus = iota + 1
	StatusConfirmed
	StatusCancelled
	StatusCompleted
)

func (s AppointmentStatus) String() string {
	switch s {
	case StatusScheduled:
		return "Scheduled"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

func (s AppointmentStatus) Valid() bool {
	return s >= StatusScheduled && s <= StatusCompleted
}

// Terminal 取消与完成都是终态
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted}
}

type Appointment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	ScheduledAt time.Time         `gorm:"not null;index" json:"scheduledAt"`
	ServiceID   uint              `gorm:"not null" json:"serviceId"`
	Service     Service           `gorm:"foreignKey:ServiceID" json:"service"`
	UserID      uint              `gorm:"not null" json:"userId"`
	User        User              `gorm:"foreignKey:UserID" json:"user"`
	Status      AppointmentStatus `gorm:"not null" json:"status"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string { return "appointments" }

// Confirm 只允许 Scheduled → Confirmed
func (a *Appointment) Confirm() error {
	if a.Status != StatusScheduled {
		return apperr.Transition(fmt.Sprintf("cannot confirm appointment in status %s", a.Status))
	}
	a.Status = StatusConfirmed
	return nil
}

// Cancel 允许 Scheduled/Confirmed → Cancelled；
// 已取消的再取消按失败处理，不做幂等。
func (a *Appointment) Cancel() error {
	if a.Status != StatusScheduled && a.Status != StatusConfirmed {
		return apperr.Transition(fmt.Sprintf("cannot cancel appointment in status %s", a.Status))
	}
	a.Status = StatusCancelled
	return nil
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	FindByID(ctx context.Context, id uint) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	ListActive(ctx context.Context) ([]Appointment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Appointment, error)
}
