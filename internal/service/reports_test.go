package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

type fakeReportRepo struct {
	attendance domain.AttendanceSummary
	revenue    domain.RevenueSummary
	weekly     []domain.WeekdayCount
	gotRef     time.Time
}

func (r *fakeReportRepo) AttendanceSummary(_ context.Context, _, _ time.Time) (*domain.AttendanceSummary, error) {
	out := r.attendance
	return &out, nil
}

func (r *fakeReportRepo) RevenueSummary(_ context.Context, _, _ time.Time) (*domain.RevenueSummary, error) {
	out := r.revenue
	return &out, nil
}

func (r *fakeReportRepo) WeeklyPerformance(_ context.Context, ref time.Time) ([]domain.WeekdayCount, error) {
	r.gotRef = ref
	return r.weekly, nil
}

func TestReportsRangeValidation(t *testing.T) {
	s := NewReports(&fakeReportRepo{})
	ctx := context.Background()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Attendance(ctx, time.Time{}, from)
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
	_, err = s.Attendance(ctx, from, from)
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
	_, err = s.Revenue(ctx, from.AddDate(0, 1, 0), from)
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
}

func TestReportsPassThrough(t *testing.T) {
	repo := &fakeReportRepo{
		attendance: domain.AttendanceSummary{Total: 12, Confirmed: 7},
		revenue:    domain.RevenueSummary{Projected: 420, Realized: 180},
	}
	s := NewReports(repo)
	ctx := context.Background()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	at, err := s.Attendance(ctx, from, to)
	require.NoError(t, err)
	require.Equal(t, int64(12), at.Total)

	rev, err := s.Revenue(ctx, from, to)
	require.NoError(t, err)
	require.Equal(t, 420.0, rev.Projected)
}

func TestWeeklyPerformanceUsesClock(t *testing.T) {
	repo := &fakeReportRepo{weekly: []domain.WeekdayCount{{Weekday: 1, Count: 3}}}
	s := NewReports(repo)
	ref := time.Date(2026, 9, 16, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return ref }

	out, err := s.WeeklyPerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, ref, repo.gotRef)
}
