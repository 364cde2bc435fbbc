//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTenantStore struct {
	tenant *queries.TenantView
}

func (f *fakeTenantStore) FindBySlug(_ context.Context, slug string) (*queries.TenantView, error) {
	if f.tenant == nil || f.tenant.Slug != slug {
		return nil, infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return f.tenant, nil
}

func (f *fakeTenantStore) ListServices(_ context.Context, _ uuid.UUID) ([]*queries.ServiceView, error) {
	return []*queries.ServiceView{}, nil
}

func (f *fakeTenantStore) ListStaff(_ context.Context, _ uuid.UUID) ([]*queries.StaffView, error) {
	return []*queries.StaffView{}, nil
}

type fakeStaffStore struct {
	staff *queries.StaffView
}

func (f *fakeStaffStore) FindByID(_ context.Context, id uuid.UUID) (*queries.StaffView, error) {
	if f.staff == nil || f.staff.ID != id {
		return nil, infra.WrapRepoErr("staff not found", nil, infra.KindNotFound)
	}
	return f.staff, nil
}

func activeTenant() *queries.TenantView {
	return &queries.TenantView{ID: uuid.New(), Slug: "fadehouse", Name: "Fade House", IsActive: true}
}

func TestAvailabilityCalendar(t *testing.T) {
	ctx := context.Background()
	// 2026-08-31 is a Monday.
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

	t.Run("今日起点で日付文字列を返す", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeTenantStore{tenant: activeTenant()}, &fakeStaffStore{}, clk)

		calendar, err := q.Calendar(ctx, "fadehouse", 7)
		require.NoError(t, err)
		require.Len(t, calendar, 7)
		assert.Equal(t, "2026-08-31", calendar[0].Date)
		assert.Equal(t, 85, calendar[0].Capacity)
		// Sunday 2026-09-06 is closed
		assert.Equal(t, "2026-09-06", calendar[6].Date)
		assert.True(t, calendar[6].Closed)
		assert.Equal(t, 0, calendar[6].Capacity)
	})

	t.Run("未知のスラッグはErrTenantNotFound", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeTenantStore{}, &fakeStaffStore{}, clk)

		_, err := q.Calendar(ctx, "nosuch", 7)
		assert.ErrorIs(t, err, queries.ErrTenantNotFound)
	})

	t.Run("休止テナントもErrTenantNotFound", func(t *testing.T) {
		tenant := activeTenant()
		tenant.IsActive = false
		q := queries.NewAvailabilityQueries(&fakeTenantStore{tenant: tenant}, &fakeStaffStore{}, clk)

		_, err := q.Calendar(ctx, "fadehouse", 7)
		assert.ErrorIs(t, err, queries.ErrTenantNotFound)
	})
}

func TestAvailabilitySlots(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("スタッフの勤務時間から枠を計算する", func(t *testing.T) {
		tenant := activeTenant()
		member := &queries.StaffView{ID: uuid.New(), TenantID: tenant.ID, Name: "Alex", StartHour: 9, EndHour: 17, BusyHours: []int{12, 13}}
		q := queries.NewAvailabilityQueries(&fakeTenantStore{tenant: tenant}, &fakeStaffStore{staff: member}, clk)

		slots, err := q.Slots(ctx, "fadehouse", member.ID, saturday)
		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, 9, slots[0].Hour)
		assert.Equal(t, "9:00 AM", slots[0].Display)
		assert.Equal(t, 14, slots[3].Hour)
		assert.Equal(t, "2:00 PM", slots[3].Display)
	})

	t.Run("他テナントのスタッフは空リストに落とす", func(t *testing.T) {
		tenant := activeTenant()
		foreign := &queries.StaffView{ID: uuid.New(), TenantID: uuid.New(), Name: "Alex", StartHour: 9, EndHour: 17, BusyHours: []int{}}
		q := queries.NewAvailabilityQueries(&fakeTenantStore{tenant: tenant}, &fakeStaffStore{staff: foreign}, clk)

		slots, err := q.Slots(ctx, "fadehouse", foreign.ID, saturday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("未知のスタッフは空リストに落とす", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeTenantStore{tenant: activeTenant()}, &fakeStaffStore{}, clk)

		slots, err := q.Slots(ctx, "fadehouse", uuid.New(), saturday)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("未知のスラッグはErrTenantNotFound", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeTenantStore{}, &fakeStaffStore{}, clk)

		_, err := q.Slots(ctx, "nosuch", uuid.New(), saturday)
		assert.ErrorIs(t, err, queries.ErrTenantNotFound)
	})
}
