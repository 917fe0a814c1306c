package service

import (
	"context"
	"time"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

// Reports 经营报表，只读。
type Reports struct {
	repo domain.ReportRepository
	now  func() time.Time
}

func NewReports(repo domain.ReportRepository) *Reports {
	return &Reports{repo: repo, now: time.Now}
}

func (s *Reports) Attendance(ctx context.Context, from, to time.Time) (*domain.AttendanceSummary, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	out, err := s.repo.AttendanceSummary(ctx, from, to)
	if err != nil {
		return nil, apperr.Internal("attendance summary failed", err)
	}
	return out, nil
}

func (s *Reports) Revenue(ctx context.Context, from, to time.Time) (*domain.RevenueSummary, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	out, err := s.repo.RevenueSummary(ctx, from, to)
	if err != nil {
		return nil, apperr.Internal("revenue summary failed", err)
	}
	return out, nil
}

func (s *Reports) WeeklyPerformance(ctx context.Context) ([]domain.WeekdayCount, error) {
	out, err := s.repo.WeeklyPerformance(ctx, s.now())
	if err != nil {
		return nil, apperr.Internal("weekly performance failed", err)
	}
	return out, nil
}

func checkRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return apperr.Invalid("date range is required")
	}
	if !to.After(from) {
		return apperr.Invalid("range end must be after start")
	}
	return nil
}
