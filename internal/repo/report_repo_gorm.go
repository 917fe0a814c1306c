package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"barber-booking-api/internal/domain"
)

// ReportRepo 报表聚合查询，替代原有的存储过程。
type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) AttendanceSummary(ctx context.Context, from, to time.Time) (*domain.AttendanceSummary, error) {
	var out domain.AttendanceSummary
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Appointment{}).
			Where("scheduled_at >= ? AND scheduled_at < ?", from, to)
	}
	if err := base().Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", domain.StatusConfirmed).Count(&out.Confirmed).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReportRepo) RevenueSummary(ctx context.Context, from, to time.Time) (*domain.RevenueSummary, error) {
	var out domain.RevenueSummary
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Appointment{}).
			Joins("JOIN services ON services.id = appointments.service_id").
			Where("appointments.scheduled_at >= ? AND appointments.scheduled_at < ?", from, to)
	}
	if err := base().
		Where("appointments.status <> ?", domain.StatusCancelled).
		Select("COALESCE(SUM(services.price), 0)").
		Scan(&out.Projected).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("appointments.status = ?", domain.StatusCompleted).
		Select("COALESCE(SUM(services.price), 0)").
		Scan(&out.Realized).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// WeeklyPerformance 本周（周一起）每天的预约量，取消的不计
func (r *ReportRepo) WeeklyPerformance(ctx context.Context, now time.Time) ([]domain.WeekdayCount, error) {
	now = now.UTC()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 7)

	var appts []domain.Appointment
	if err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Where("status <> ?", domain.StatusCancelled).
		Find(&appts).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]int64, 7)
	for _, a := range appts {
		wd := int(a.ScheduledAt.Weekday())
		if wd == 0 {
			wd = 7
		}
		counts[wd]++
	}
	out := make([]domain.WeekdayCount, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		out = append(out, domain.WeekdayCount{Weekday: wd, Count: counts[wd]})
	}
	return out, nil
}
