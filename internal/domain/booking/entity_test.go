//go:build unit

package booking_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func validInput() booking.NewBookingInput {
	return booking.NewBookingInput{
		TenantID:      uuid.New(),
		CustomerID:    uuid.New(),
		ServiceID:     uuid.New(),
		StaffID:       uuid.New(),
		CustomerEmail: "customer@example.com",
		ServiceName:   "Haircut",
		StaffName:     "Alex",
		AppointmentAt: fixedNow.Add(48 * time.Hour),
		DisplayDate:   "2026-09-03",
		DisplayTime:   "10:00 AM",
		DepositCents:  2500,
	}
}

func TestNewBooking(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*booking.NewBookingInput)
		errIs  error
	}

	cases := []testCase{
		{
			name:   "基本成功ケース",
			mutate: func(in *booking.NewBookingInput) {},
		},
		{
			name:   "デポジット0もOK",
			mutate: func(in *booking.NewBookingInput) { in.DepositCents = 0 },
		},
		{
			name:   "テナント参照なしはNG",
			mutate: func(in *booking.NewBookingInput) { in.TenantID = uuid.Nil },
			errIs:  booking.ErrMissingReference,
		},
		{
			name:   "スタッフ参照なしはNG",
			mutate: func(in *booking.NewBookingInput) { in.StaffID = uuid.Nil },
			errIs:  booking.ErrMissingReference,
		},
		{
			name:   "表示用日時なしはNG",
			mutate: func(in *booking.NewBookingInput) { in.DisplayTime = "" },
			errIs:  booking.ErrMissingDisplayTimes,
		},
		{
			name:   "過去の予約はNG",
			mutate: func(in *booking.NewBookingInput) { in.AppointmentAt = fixedNow.Add(-time.Hour) },
			errIs:  booking.ErrAppointmentInPast,
		},
		{
			name:   "現在時刻ちょうどもNG",
			mutate: func(in *booking.NewBookingInput) { in.AppointmentAt = fixedNow },
			errIs:  booking.ErrAppointmentInPast,
		},
		{
			name:   "負のデポジットはNG",
			mutate: func(in *booking.NewBookingInput) { in.DepositCents = -1 },
			errIs:  booking.ErrNegativeDeposit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			b, err := booking.NewBooking(fixedNow, in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusConfirmed, b.Status())
			assert.NotEqual(t, uuid.Nil, b.ID())
			assert.Equal(t, in.ServiceName, b.ServiceName())
			assert.Equal(t, fixedNow, b.CreatedAt())
			assert.Nil(t, b.CancelledAt())
		})
	}
}

func TestBookingCancel(t *testing.T) {
	newBooking := func(t *testing.T, lead time.Duration) *booking.Booking {
		in := validInput()
		in.AppointmentAt = fixedNow.Add(lead)
		b, err := booking.NewBooking(fixedNow, in)
		require.NoError(t, err)
		return b
	}

	t.Run("24時間以上前ならキャンセルできる", func(t *testing.T) {
		b := newBooking(t, 48*time.Hour)
		err := b.Cancel(fixedNow, booking.CancelledByCustomer)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, fixedNow, *b.CancelledAt())
		require.NotNil(t, b.CancelledBy())
		assert.Equal(t, booking.CancelledByCustomer, *b.CancelledBy())
	})

	t.Run("ちょうど24時間前はキャンセルできる", func(t *testing.T) {
		b := newBooking(t, booking.CancelWindow)
		assert.NoError(t, b.Cancel(fixedNow, booking.CancelledByTenant))
	})

	t.Run("24時間を切ると拒否され状態は変わらない", func(t *testing.T) {
		b := newBooking(t, 23*time.Hour)
		err := b.Cancel(fixedNow, booking.CancelledByCustomer)
		assert.ErrorIs(t, err, booking.ErrCancelWindowClosed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.CancelledAt())
	})

	t.Run("二重キャンセルはNG", func(t *testing.T) {
		b := newBooking(t, 48*time.Hour)
		require.NoError(t, b.Cancel(fixedNow, booking.CancelledByCustomer))
		assert.ErrorIs(t, b.Cancel(fixedNow, booking.CancelledByCustomer), booking.ErrAlreadyCancelled)
	})

	t.Run("完了済みはNG", func(t *testing.T) {
		b := newBooking(t, time.Hour)
		require.NoError(t, b.Complete(fixedNow.Add(2*time.Hour)))
		assert.ErrorIs(t, b.Cancel(fixedNow, booking.CancelledByCustomer), booking.ErrBookingCompleted)
	})

	t.Run("不明なアクターはNG", func(t *testing.T) {
		b := newBooking(t, 48*time.Hour)
		assert.ErrorIs(t, b.Cancel(fixedNow, booking.CancelActor("admin")), booking.ErrInvalidCancelActor)
	})
}

func TestBookingComplete(t *testing.T) {
	t.Run("予約時刻を過ぎたら完了できる", func(t *testing.T) {
		in := validInput()
		b, err := booking.NewBooking(fixedNow, in)
		require.NoError(t, err)

		assert.ErrorIs(t, b.Complete(fixedNow), booking.ErrNotYetFinished)
		require.NoError(t, b.Complete(in.AppointmentAt))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})
}

func TestIsUpcoming(t *testing.T) {
	in := validInput()
	b, err := booking.NewBooking(fixedNow, in)
	require.NoError(t, err)

	assert.True(t, b.IsUpcoming(fixedNow))
	assert.False(t, b.IsUpcoming(in.AppointmentAt.Add(time.Minute)))

	require.NoError(t, b.Cancel(fixedNow, booking.CancelledByCustomer))
	assert.False(t, b.IsUpcoming(fixedNow))
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.False(t, booking.Status("pending").IsValid())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.True(t, booking.StatusCompleted.IsTerminal())
}
