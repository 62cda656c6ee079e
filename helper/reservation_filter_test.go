package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_manager/model"
)

func sampleReservations() []model.Reservation {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	return []model.Reservation{
		{
			ID: "r1", CustomerName: "Nguyen Van An", PhoneNumber: "0909123456",
			NumberOfPeople: 4, BookingTime: bookingAt(day.Add(19 * time.Hour)),
			Status: model.ReservationConfirmed, ReservationPriorityStatus: model.NonPriorityCustomer,
		},
		{
			ID: "r2", CustomerName: "Tran Thi Binh", PhoneNumber: "0912345678",
			NumberOfPeople: 2, BookingTime: bookingAt(day.Add(18 * time.Hour)),
			Status: model.ReservationCreated, ReservationPriorityStatus: model.PriorityCustomer,
		},
		{
			ID: "r3", CustomerName: "Le Hoang Cuong", PhoneNumber: "0987654321",
			NumberOfPeople: 6, BookingTime: bookingAt(day.Add(44 * time.Hour)),
			Status: model.ReservationCheckedin, ReservationPriorityStatus: model.NonPriorityCustomer,
		},
		{
			ID: "r4", CustomerName: "Pham Thu Dung", PhoneNumber: "0933222111",
			NumberOfPeople: 8, BookingTime: "hỏng",
			Status: model.ReservationCancelled, ReservationPriorityStatus: model.NonPriorityCustomer,
		},
	}
}

func idsOf(list []model.Reservation) []string {
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterByStatusCaseInsensitive(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{Status: "confirmed"})
	assert.Equal(t, []string{"r1"}, idsOf(got))

	all := FilterAndSortReservations(sampleReservations(), ReservationFilter{Status: "all"})
	assert.Len(t, all, 4)
}

func TestFilterByDateMatchesLocalDay(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{Date: "2026-03-14"})
	// r3 rơi sang ngày 15, r4 không parse được nên bị loại
	assert.ElementsMatch(t, []string{"r1", "r2"}, idsOf(got))
}

func TestFilterBySearchNameAndPhone(t *testing.T) {
	byName := FilterAndSortReservations(sampleReservations(), ReservationFilter{Search: "van a"})
	assert.Equal(t, []string{"r1"}, idsOf(byName))

	byPhone := FilterAndSortReservations(sampleReservations(), ReservationFilter{Search: "9123"})
	assert.Equal(t, []string{"r1"}, idsOf(byPhone))

	none := FilterAndSortReservations(sampleReservations(), ReservationFilter{Search: "xyz"})
	assert.Empty(t, none)
}

func TestFiltersCombineWithAnd(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{
		Status: "Created",
		Date:   "2026-03-14",
		Search: "binh",
	})
	assert.Equal(t, []string{"r2"}, idsOf(got))

	got = FilterAndSortReservations(sampleReservations(), ReservationFilter{
		Status: "Created",
		Search: "van a", // r1 nhưng status không khớp
	})
	assert.Empty(t, got)
}

func TestSortNewestIsDefaultAndSinksInvalidTimes(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{})
	// r4 có bookingTime hỏng, coi như epoch 0 nên chìm xuống cuối
	assert.Equal(t, []string{"r3", "r1", "r2", "r4"}, idsOf(got))
}

func TestSortByStatusRank(t *testing.T) {
	input := []model.Reservation{
		{ID: "a", Status: model.ReservationCancelled},
		{ID: "b", Status: model.ReservationCreated},
		{ID: "c", Status: model.ReservationConfirmed},
		{ID: "d", Status: model.ReservationCheckedin},
	}
	got := FilterAndSortReservations(input, ReservationFilter{Sort: SortStatusAsc})
	assert.Equal(t, []string{"b", "c", "d", "a"}, idsOf(got))

	got = FilterAndSortReservations(input, ReservationFilter{Sort: SortStatusDesc})
	assert.Equal(t, []string{"a", "d", "c", "b"}, idsOf(got))
}

func TestSortByPriorityPutsPriorityFirst(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{Sort: SortPriority})
	require.NotEmpty(t, got)
	assert.Equal(t, "r2", got[0].ID)
}

func TestSortByPeople(t *testing.T) {
	got := FilterAndSortReservations(sampleReservations(), ReservationFilter{Sort: SortPeopleAsc})
	assert.Equal(t, []string{"r2", "r1", "r3", "r4"}, idsOf(got))
}

func TestFilterIsPureAndIdempotent(t *testing.T) {
	input := sampleReservations()
	snapshot := sampleReservations()
	filter := ReservationFilter{Status: "all", Sort: SortNameAsc}

	first := FilterAndSortReservations(input, filter)
	second := FilterAndSortReservations(input, filter)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, input, "không được sửa slice đầu vào")
}

func TestUnknownStatusSortsLast(t *testing.T) {
	input := []model.Reservation{
		{ID: "weird", Status: model.ReservationStatus("Mystery")},
		{ID: "ok", Status: model.ReservationCreated},
	}
	got := FilterAndSortReservations(input, ReservationFilter{Sort: SortStatusAsc})
	assert.Equal(t, []string{"ok", "weird"}, idsOf(got))
}
