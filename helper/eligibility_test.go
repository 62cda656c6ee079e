package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_manager/model"
)

func confirmedAt(id string, t time.Time) model.Reservation {
	return model.Reservation{
		ID:           id,
		CustomerName: "Khách " + id,
		BookingTime:  bookingAt(t),
		Status:       model.ReservationConfirmed,
	}
}

func TestEligibleReservationsWindowBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)
	window := 60 * time.Minute

	reservations := []model.Reservation{
		confirmedAt("past", now.Add(-time.Minute)),
		confirmedAt("at-now", now),
		confirmedAt("in-window", now.Add(59*time.Minute)),
		confirmedAt("at-deadline", now.Add(60*time.Minute)),
		confirmedAt("beyond", now.Add(61*time.Minute)),
	}

	got := EligibleReservations(reservations, now, window)
	// cả hai biên đều tính, quá giờ hoặc quá cửa sổ đều loại
	assert.Equal(t, []string{"at-now", "in-window", "at-deadline"}, idsOf(got))
}

func TestEligibleReservationsExcludesWrongStatusAndAssigned(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)
	inWindow := now.Add(30 * time.Minute)

	created := confirmedAt("created", inWindow)
	created.Status = model.ReservationCreated
	cancelled := confirmedAt("cancelled", inWindow)
	cancelled.Status = model.ReservationCancelled
	assigned := confirmedAt("assigned", inWindow)
	assigned.TableId = "t9"
	invalid := confirmedAt("invalid", inWindow)
	invalid.BookingTime = "hỏng"
	ok := confirmedAt("ok", inWindow)

	got := EligibleReservations([]model.Reservation{created, cancelled, assigned, invalid, ok}, now, time.Hour)
	assert.Equal(t, []string{"ok"}, idsOf(got))
}

func TestEligibleReservationsSortedSoonestFirst(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)
	got := EligibleReservations([]model.Reservation{
		confirmedAt("later", now.Add(50*time.Minute)),
		confirmedAt("soon", now.Add(10*time.Minute)),
		confirmedAt("mid", now.Add(30*time.Minute)),
	}, now, time.Hour)

	assert.Equal(t, []string{"soon", "mid", "later"}, idsOf(got))
}

func TestEligibleTablesMatchesCapacityAndStatus(t *testing.T) {
	tables := []model.Table{
		{ID: "a", Code: "A", Status: model.TableClosing, Capacity: 4},
		{ID: "b", Code: "B", Status: model.TableClosing, Capacity: 2},
		{ID: "c", Code: "C", Status: model.TableOpening, Capacity: 8},
		{ID: "d", Code: "D", Status: model.TableLocked, Capacity: 6},
	}

	// nhóm 4 người: chỉ bàn trống đủ chỗ, bàn đang mở/khóa không tính
	got := EligibleTables(tables, 4)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestEligibleTablesPrefersTightestFit(t *testing.T) {
	tables := []model.Table{
		{ID: "big", Code: "B10", Status: model.TableClosing, Capacity: 10},
		{ID: "snug", Code: "B04", Status: model.TableClosing, Capacity: 4},
		{ID: "mid", Code: "B06", Status: model.TableClosing, Capacity: 6},
	}

	got := EligibleTables(tables, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"snug", "mid", "big"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestAssignedTableBadges(t *testing.T) {
	tables := []model.Table{
		{ID: "t1", Code: "B01"},
		{ID: "t2", Code: "B02"},
	}
	r := model.Reservation{
		Status: model.ReservationConfirmed,
		TableAssignReservations: []model.TableAssignReservation{
			{TableId: "t1"},
			{TableId: "t2"},
			{TableId: "t-đã-xóa"}, // không resolve được thì hiện id
		},
	}

	assert.Equal(t, []string{"B01", "B02", "t-đã-xóa"}, AssignedTableBadges(r, tables))
}

func TestAssignedTableBadgesCancelledHidesHistory(t *testing.T) {
	r := model.Reservation{
		Status:                  model.ReservationCancelled,
		TableAssignReservations: []model.TableAssignReservation{{TableId: "t1"}},
	}
	assert.Nil(t, AssignedTableBadges(r, nil))
}
