package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

// Scheduler 预约生命周期的唯一入口：创建、确认、取消、改期、查询。
// 状态流转规则在 domain.Appointment 上，这里负责加载、校验引用、落库。
type Scheduler struct {
	appts    domain.AppointmentRepository
	users    domain.UserRepository
	services domain.ServiceRepository
	log      *zap.Logger
}

func NewScheduler(appts domain.AppointmentRepository, users domain.UserRepository, services domain.ServiceRepository, log *zap.Logger) *Scheduler {
	return &Scheduler{appts: appts, users: users, services: services, log: log}
}

// Edit 普通改期字段；状态不在其中。
// 直接改状态走 Override，那是管理端的特权路径。
type Edit struct {
	ScheduledAt time.Time
	ServiceID   uint
	UserID      uint
}

func (s *Scheduler) Create(ctx context.Context, userID, serviceID uint, at time.Time) (*domain.Appointment, error) {
	if at.IsZero() {
		return nil, apperr.Invalid("scheduled time is required")
	}
	user, svc, err := s.resolveRefs(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	a := &domain.Appointment{
		ScheduledAt: at.UTC(),
		ServiceID:   serviceID,
		UserID:      userID,
		Status:      domain.StatusScheduled,
	}
	if err := s.appts.Create(ctx, a); err != nil {
		return nil, apperr.Internal("create appointment failed", err)
	}
	a.User = *user
	a.Service = *svc
	s.log.Info("appointment created",
		zap.Uint("id", a.ID), zap.Uint("user", userID), zap.Uint("service", serviceID),
		zap.Time("at", a.ScheduledAt))
	return a, nil
}

func (s *Scheduler) GetByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	a, err := s.appts.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load appointment failed", err)
	}
	if a == nil {
		return nil, apperr.NotFound("appointment not found")
	}
	return a, nil
}

func (s *Scheduler) Confirm(ctx context.Context, id uint) (*domain.Appointment, error) {
	return s.transition(ctx, id, (*domain.Appointment).Confirm)
}

func (s *Scheduler) Cancel(ctx context.Context, id uint) (*domain.Appointment, error) {
	return s.transition(ctx, id, (*domain.Appointment).Cancel)
}

func (s *Scheduler) transition(ctx context.Context, id uint, step func(*domain.Appointment) error) (*domain.Appointment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := step(a); err != nil {
		return nil, err
	}
	if err := s.appts.Update(ctx, a); err != nil {
		return nil, apperr.Internal("update appointment failed", err)
	}
	s.log.Info("appointment status changed", zap.Uint("id", a.ID), zap.Stringer("status", a.Status))
	return a, nil
}

// Update 改期/换服务/换客户，状态保持不变。
func (s *Scheduler) Update(ctx context.Context, id uint, in Edit) (*domain.Appointment, error) {
	return s.apply(ctx, id, in, nil)
}

// Override 管理端全量覆盖，含直接指定状态，绕过流转限制。
func (s *Scheduler) Override(ctx context.Context, id uint, in Edit, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, apperr.Invalid("unknown appointment status")
	}
	return s.apply(ctx, id, in, &status)
}

func (s *Scheduler) apply(ctx context.Context, id uint, in Edit, status *domain.AppointmentStatus) (*domain.Appointment, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ScheduledAt.IsZero() {
		return nil, apperr.Invalid("scheduled time is required")
	}
	user, svc, err := s.resolveRefs(ctx, in.UserID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	a.ScheduledAt = in.ScheduledAt.UTC()
	a.ServiceID = in.ServiceID
	a.UserID = in.UserID
	if status != nil {
		a.Status = *status
	}
	if err := s.appts.Update(ctx, a); err != nil {
		return nil, apperr.Internal("update appointment failed", err)
	}
	a.User = *user
	a.Service = *svc
	return a, nil
}

func (s *Scheduler) ListActive(ctx context.Context) ([]domain.Appointment, error) {
	out, err := s.appts.ListActive(ctx)
	if err != nil {
		return nil, apperr.Internal("list appointments failed", err)
	}
	return out, nil
}

// ListForDay 给定日历日（UTC）内的预约
func (s *Scheduler) ListForDay(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	out, err := s.appts.ListRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, apperr.Internal("list appointments failed", err)
	}
	return out, nil
}

func (s *Scheduler) Statuses() []EnumItem {
	statuses := domain.AppointmentStatuses()
	out := make([]EnumItem, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, EnumItem{ID: int(st), Name: st.String()})
	}
	return out
}

func (s *Scheduler) resolveRefs(ctx context.Context, userID, serviceID uint) (*domain.User, *domain.Service, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, apperr.Internal("load user failed", err)
	}
	if user == nil {
		return nil, nil, apperr.NotFound("user not found")
	}
	if !user.Active {
		return nil, nil, apperr.Invalid("user is inactive")
	}
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, nil, apperr.Internal("load service failed", err)
	}
	if svc == nil {
		return nil, nil, apperr.NotFound("service not found")
	}
	if !svc.Active {
		return nil, nil, apperr.Invalid("service is inactive")
	}
	return user, svc, nil
}
