package service

import (
	"context"

	"barber-booking-api/internal/apperr"
)

// EnumItem 枚举列表响应项（状态、用户类别）
type EnumItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LifecycleRepo 有 Active 标记的实体仓储都满足这个最小接口。
type LifecycleRepo[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

// Lifecycle 软删/恢复的通用实现，User 和 Service 共用。
// 约定：先确认实体存在，再改标记。
type Lifecycle[T any] struct {
	repo  LifecycleRepo[T]
	label string // 错误消息里的实体名
}

func NewLifecycle[T any](repo LifecycleRepo[T], label string) Lifecycle[T] {
	return Lifecycle[T]{repo: repo, label: label}
}

func (l Lifecycle[T]) Deactivate(ctx context.Context, id uint) error {
	return l.setActive(ctx, id, false)
}

func (l Lifecycle[T]) Restore(ctx context.Context, id uint) error {
	return l.setActive(ctx, id, true)
}

func (l Lifecycle[T]) setActive(ctx context.Context, id uint, active bool) error {
	e, err := l.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("load "+l.label+" failed", err)
	}
	if e == nil {
		return apperr.NotFound(l.label + " not found")
	}
	if err := l.repo.SetActive(ctx, id, active); err != nil {
		return apperr.Internal("update "+l.label+" failed", err)
	}
	return nil
}
