package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReservationTransition(t *testing.T) {
	cases := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationCreated, ReservationConfirmed, true},
		{ReservationCreated, ReservationCancelled, true},
		{ReservationCreated, ReservationCheckedin, false},
		{ReservationConfirmed, ReservationCheckedin, true},
		{ReservationConfirmed, ReservationCancelled, true},
		{ReservationConfirmed, ReservationCreated, false},
		{ReservationCheckedin, ReservationCancelled, false},
		{ReservationCancelled, ReservationConfirmed, false},
		{ReservationStatus("Lạ"), ReservationConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ValidReservationTransition(tc.from, tc.to),
			"%s → %s", tc.from, tc.to)
	}
}

func TestIsAssignedUsesLegacyTableId(t *testing.T) {
	// danh sách xếp bàn không tính, chỉ trường tableId quyết định
	r := Reservation{
		TableAssignReservations: []TableAssignReservation{{TableId: "t1"}},
	}
	assert.False(t, r.IsAssigned())

	r.TableId = "t1"
	assert.True(t, r.IsAssigned())
}
