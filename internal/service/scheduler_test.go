package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

func newSchedulerForTest(t *testing.T) (*Scheduler, uint, uint) {
	t.Helper()
	users := newFakeUserRepo()
	services := newFakeServiceRepo()
	appts := newFakeApptRepo()

	u := &domain.User{Name: "Joana", Email: "joana@example.com", Category: domain.CategoryClient, Active: true}
	require.NoError(t, users.Create(context.Background(), u))
	svc := &domain.Service{Name: "Corte", Price: 25, Active: true}
	require.NoError(t, services.Create(context.Background(), svc))

	return NewScheduler(appts, users, services, zap.NewNop()), u.ID, svc.ID
}

func TestSchedulerCreate(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	at := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	a, err := s.Create(context.Background(), uid, sid, at)
	require.NoError(t, err)
	require.Equal(t, domain.StatusScheduled, a.Status)
	require.Equal(t, at, a.ScheduledAt)
	require.Equal(t, "Corte", a.Service.Name)

	got, err := s.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusScheduled, got.Status)
}

func TestSchedulerCreateRejectsZeroTime(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	_, err := s.Create(context.Background(), uid, sid, time.Time{})
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
}

func TestSchedulerCreateUnknownRefs(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	at := time.Now().UTC().Add(time.Hour)

	_, err := s.Create(context.Background(), 999, sid, at)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = s.Create(context.Background(), uid, 999, at)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSchedulerCreateInactiveService(t *testing.T) {
	users := newFakeUserRepo()
	services := newFakeServiceRepo()
	u := &domain.User{Name: "Rui", Email: "rui@example.com", Category: domain.CategoryClient, Active: true}
	require.NoError(t, users.Create(context.Background(), u))
	svc := &domain.Service{Name: "Barba", Price: 10, Active: false}
	require.NoError(t, services.Create(context.Background(), svc))
	s := NewScheduler(newFakeApptRepo(), users, services, zap.NewNop())

	_, err := s.Create(context.Background(), u.ID, svc.ID, time.Now().UTC().Add(time.Hour))
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
}

func TestSchedulerConfirmAndCancel(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	a, err := s.Create(context.Background(), uid, sid, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	a, err = s.Confirm(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusConfirmed, a.Status)

	// 已确认不能再确认
	_, err = s.Confirm(context.Background(), a.ID)
	require.True(t, apperr.IsKind(err, apperr.KindTransition))

	// 已确认可以取消
	a, err = s.Cancel(context.Background(), a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, a.Status)

	// 再取消按失败处理
	_, err = s.Cancel(context.Background(), a.ID)
	require.True(t, apperr.IsKind(err, apperr.KindTransition))
}

func TestSchedulerTransitionUnknownID(t *testing.T) {
	s, _, _ := newSchedulerForTest(t)
	_, err := s.Confirm(context.Background(), 42)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
	_, err = s.Cancel(context.Background(), 42)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSchedulerUpdateKeepsStatus(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	a, err := s.Create(context.Background(), uid, sid, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	_, err = s.Confirm(context.Background(), a.ID)
	require.NoError(t, err)

	newAt := time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC)
	got, err := s.Update(context.Background(), a.ID, Edit{ScheduledAt: newAt, ServiceID: sid, UserID: uid})
	require.NoError(t, err)
	require.Equal(t, newAt, got.ScheduledAt)
	require.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestSchedulerOverrideSetsStatus(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	a, err := s.Create(context.Background(), uid, sid, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	// 管理端直接标记完成，绕过流转限制
	got, err := s.Override(context.Background(), a.ID, Edit{ScheduledAt: a.ScheduledAt, ServiceID: sid, UserID: uid}, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)

	_, err = s.Override(context.Background(), a.ID, Edit{ScheduledAt: a.ScheduledAt, ServiceID: sid, UserID: uid}, domain.AppointmentStatus(99))
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
}

func TestSchedulerListActiveExcludesCancelled(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	a1, err := s.Create(context.Background(), uid, sid, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.Create(context.Background(), uid, sid, time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.Cancel(context.Background(), a1.ID)
	require.NoError(t, err)

	out, err := s.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotEqual(t, a1.ID, out[0].ID)
}

func TestSchedulerListForDay(t *testing.T) {
	s, uid, sid := newSchedulerForTest(t)
	_, err := s.Create(context.Background(), uid, sid, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.Create(context.Background(), uid, sid, time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = s.Create(context.Background(), uid, sid, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	out, err := s.ListForDay(context.Background(), time.Date(2026, 9, 14, 18, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestSchedulerStatuses(t *testing.T) {
	s, _, _ := newSchedulerForTest(t)
	items := s.Statuses()
	require.Len(t, items, 4)
	require.Equal(t, EnumItem{ID: 1, Name: "Scheduled"}, items[0])
	require.Equal(t, EnumItem{ID: 3, Name: "Cancelled"}, items[2])
}
