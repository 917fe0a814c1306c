package service

import (
	"context"
	"sort"
	"time"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/domain"
)

// 内存仓储替身，不碰数据库。

type fakeUserRepo struct {
	seq   uint
	users map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return apperr.Invalid("email already registered")
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uint, active bool) error {
	if u, ok := r.users[id]; ok {
		u.Active = active
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, activeOnly bool) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeServiceRepo struct {
	seq      uint
	services map[uint]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[uint]*domain.Service{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *domain.Service) error {
	r.seq++
	s.ID = r.seq
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uint) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *domain.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) SetActive(_ context.Context, id uint, active bool) error {
	if s, ok := r.services[id]; ok {
		s.Active = active
	}
	return nil
}

func (r *fakeServiceRepo) List(_ context.Context, activeOnly bool) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(r.services))
	for _, s := range r.services {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeApptRepo struct {
	seq   uint
	appts map[uint]*domain.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: map[uint]*domain.Appointment{}}
}

func (r *fakeApptRepo) Create(_ context.Context, a *domain.Appointment) error {
	r.seq++
	a.ID = r.seq
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeApptRepo) FindByID(_ context.Context, id uint) (*domain.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApptRepo) Update(_ context.Context, a *domain.Appointment) error {
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeApptRepo) ListActive(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		if a.Status == domain.StatusCancelled {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeApptRepo) ListRange(_ context.Context, from, to time.Time) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		if a.ScheduledAt.Before(from) || !a.ScheduledAt.Before(to) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// fakeStore 记录失效调用的缓存替身
type fakeStore struct {
	data        map[string][]byte
	invalidated []string
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string][]byte{}} }

func (s *fakeStore) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, ok := s.data[key]; ok {
		return b, nil
	}
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.data[key] = b
	return b, nil
}

func (s *fakeStore) Invalidate(_ context.Context, keys ...string) {
	for _, k := range keys {
		delete(s.data, k)
		s.invalidated = append(s.invalidated, k)
	}
}
