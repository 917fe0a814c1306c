package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"barber-booking-api/internal/apperr"
)

func TestAppointmentConfirm(t *testing.T) {
	cases := []struct {
		from AppointmentStatus
		ok   bool
	}{
		{StatusScheduled, true},
		{StatusConfirmed, false},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			a := &Appointment{Status: tc.from}
			err := a.Confirm()
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, StatusConfirmed, a.Status)
				return
			}
			require.Error(t, err)
			require.True(t, apperr.IsKind(err, apperr.KindTransition))
			require.Equal(t, tc.from, a.Status)
		})
	}
}

func TestAppointmentCancel(t *testing.T) {
	cases := []struct {
		from AppointmentStatus
		ok   bool
	}{
		{StatusScheduled, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			a := &Appointment{Status: tc.from}
			err := a.Cancel()
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, StatusCancelled, a.Status)
				return
			}
			require.Error(t, err)
			require.True(t, apperr.IsKind(err, apperr.KindTransition))
			require.Equal(t, tc.from, a.Status)
		})
	}
}

func TestAppointmentCancelTwice(t *testing.T) {
	a := &Appointment{Status: StatusScheduled}
	require.NoError(t, a.Cancel())
	err := a.Cancel()
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindTransition))
}

func TestStatusTerminal(t *testing.T) {
	require.False(t, StatusScheduled.Terminal())
	require.False(t, StatusConfirmed.Terminal())
	require.True(t, StatusCancelled.Terminal())
	require.True(t, StatusCompleted.Terminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range AppointmentStatuses() {
		require.True(t, s.Valid())
	}
	require.False(t, AppointmentStatus(0).Valid())
	require.False(t, AppointmentStatus(5).Valid())
}
