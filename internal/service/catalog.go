package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"barber-booking-api/internal/apperr"
	"barber-booking-api/internal/core/cache"
	"barber-booking-api/internal/domain"
)

const (
	catalogKeyActive = "catalog:list:active"
	catalogKeyAll    = "catalog:list:all"
	catalogTTL       = 5 * time.Minute
)

// Catalog 服务目录：增改查 + 软删/恢复，列表走 redis 读穿缓存。
type Catalog struct {
	Lifecycle[domain.Service]
	services domain.ServiceRepository
	cache    cache.Store // 可为 nil（测试或未配置 redis）
	log      *zap.Logger
}

func NewCatalog(services domain.ServiceRepository, c cache.Store, log *zap.Logger) *Catalog {
	return &Catalog{
		Lifecycle: NewLifecycle[domain.Service](services, "service"),
		services:  services,
		cache:     c,
		log:       log,
	}
}

func (s *Catalog) Create(ctx context.Context, name string, price float64, description string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if price < 0 {
		return nil, apperr.Invalid("price must not be negative")
	}
	svc := &domain.Service{Name: name, Price: price, Description: description, Active: true}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, apperr.Internal("create service failed", err)
	}
	s.invalidate(ctx)
	s.log.Info("service created", zap.Uint("id", svc.ID), zap.String("name", svc.Name))
	return svc, nil
}

func (s *Catalog) GetByID(ctx context.Context, id uint) (*domain.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load service failed", err)
	}
	if svc == nil {
		return nil, apperr.NotFound("service not found")
	}
	return svc, nil
}

func (s *Catalog) Update(ctx context.Context, id uint, name string, price float64, description string) (*domain.Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if price < 0 {
		return nil, apperr.Invalid("price must not be negative")
	}
	svc.Name = name
	svc.Price = price
	svc.Description = description
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, apperr.Internal("update service failed", err)
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *Catalog) Deactivate(ctx context.Context, id uint) error {
	if err := s.Lifecycle.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Catalog) Restore(ctx context.Context, id uint) error {
	if err := s.Lifecycle.Restore(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Catalog) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	load := func(ctx context.Context) ([]domain.Service, error) {
		out, err := s.services.List(ctx, activeOnly)
		if err != nil {
			return nil, apperr.Internal("list services failed", err)
		}
		return out, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	key := catalogKeyAll
	if activeOnly {
		key = catalogKeyActive
	}
	return cache.GetOrLoadJSON(s.cache, ctx, key, catalogTTL, load)
}

func (s *Catalog) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, catalogKeyActive, catalogKeyAll)
	}
}
