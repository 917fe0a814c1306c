package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barber-booking-api/internal/apperr"
)

func newCatalogForTest() (*Catalog, *fakeStore) {
	store := newFakeStore()
	return NewCatalog(newFakeServiceRepo(), store, zap.NewNop()), store
}

func TestCatalogCreateValidation(t *testing.T) {
	s, _ := newCatalogForTest()
	ctx := context.Background()

	_, err := s.Create(ctx, "  ", 10, "")
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))
	_, err = s.Create(ctx, "Corte", -1, "")
	require.True(t, apperr.IsKind(err, apperr.KindInvalid))

	svc, err := s.Create(ctx, "Corte", 25, "corte clássico")
	require.NoError(t, err)
	require.True(t, svc.Active)
	require.NotZero(t, svc.ID)
}

func TestCatalogUpdate(t *testing.T) {
	s, _ := newCatalogForTest()
	ctx := context.Background()
	svc, err := s.Create(ctx, "Corte", 25, "")
	require.NoError(t, err)

	got, err := s.Update(ctx, svc.ID, "Corte e Barba", 35, "combo")
	require.NoError(t, err)
	require.Equal(t, "Corte e Barba", got.Name)
	require.Equal(t, 35.0, got.Price)

	_, err = s.Update(ctx, 999, "X", 1, "")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCatalogListUsesCache(t *testing.T) {
	s, store := newCatalogForTest()
	ctx := context.Background()
	_, err := s.Create(ctx, "Corte", 25, "")
	require.NoError(t, err)

	out, err := s.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, store.data, catalogKeyActive)

	// Create 会失效缓存，重新回源后两条都在
	_, err = s.Create(ctx, "Barba", 10, "")
	require.NoError(t, err)
	out, err = s.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestCatalogDeactivateRestore(t *testing.T) {
	s, store := newCatalogForTest()
	ctx := context.Background()
	svc, err := s.Create(ctx, "Corte", 25, "")
	require.NoError(t, err)

	// 预热两个列表缓存
	_, err = s.List(ctx, true)
	require.NoError(t, err)
	_, err = s.List(ctx, false)
	require.NoError(t, err)

	require.NoError(t, s.Deactivate(ctx, svc.ID))
	require.Contains(t, store.invalidated, catalogKeyActive)
	require.Contains(t, store.invalidated, catalogKeyAll)

	// 停用后按 ID 仍可查到（历史预约展示）
	got, err := s.GetByID(ctx, svc.ID)
	require.NoError(t, err)
	require.False(t, got.Active)

	active, err := s.List(ctx, true)
	require.NoError(t, err)
	require.Empty(t, active)
	all, err := s.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, s.Restore(ctx, svc.ID))
	active, err = s.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.True(t, apperr.IsKind(s.Deactivate(ctx, 999), apperr.KindNotFound))
}

func TestCatalogWithoutCache(t *testing.T) {
	s := NewCatalog(newFakeServiceRepo(), nil, zap.NewNop())
	ctx := context.Background()
	_, err := s.Create(ctx, "Corte", 25, "")
	require.NoError(t, err)

	out, err := s.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, out, 1)
}
