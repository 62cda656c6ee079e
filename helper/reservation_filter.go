package helper

import (
	"sort"
	"strings"
	"time"

	"pizza_manager/model"
)

type ReservationFilter struct {
	Status string `json:"status"` // "all" hoặc một trạng thái cụ thể
	Date   string `json:"date"`   // "2006-01-02", so theo ngày địa phương
	Search string `json:"search"` // tên (không phân biệt hoa thường) hoặc số điện thoại
	Sort   string `json:"sort"`
}

const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortPeopleAsc  = "people-asc"
	SortPeopleDesc = "people-desc"
	SortStatusAsc  = "status-asc"
	SortStatusDesc = "status-desc"
	SortPriority   = "priorityStatus"
)

var SortOptions = []string{
	SortNewest, SortOldest, SortNameAsc, SortNameDesc,
	SortPeopleAsc, SortPeopleDesc, SortStatusAsc, SortStatusDesc, SortPriority,
}

// Bảng rank để sort theo trạng thái không bao giờ hòa nhau
var statusRank = map[model.ReservationStatus]int{
	model.ReservationCreated:   1,
	model.ReservationConfirmed: 2,
	model.ReservationCheckedin: 3,
	model.ReservationCancelled: 4,
}

var priorityRank = map[model.ReservationPriority]int{
	model.PriorityCustomer:    1,
	model.NonPriorityCustomer: 2,
}

const unknownRank = 99

// FilterAndSortReservations lọc AND các tiêu chí rồi sort ổn định.
// Không sửa slice đầu vào; cùng đầu vào luôn cho cùng đầu ra.
func FilterAndSortReservations(reservations []model.Reservation, filter ReservationFilter) []model.Reservation {
	result := make([]model.Reservation, 0, len(reservations))

	filterDate, hasDate := time.Time{}, false
	if filter.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", filter.Date, time.Local); err == nil {
			filterDate, hasDate = d, true
		}
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, r := range reservations {
		if filter.Status != "" && filter.Status != "all" &&
			!strings.EqualFold(string(r.Status), filter.Status) {
			continue
		}
		if hasDate {
			booked, ok := ParseBookingTime(r.BookingTime)
			if !ok || !SameLocalDate(booked, filterDate) {
				continue
			}
		}
		if search != "" {
			byName := strings.Contains(strings.ToLower(r.CustomerName), search)
			byPhone := strings.Contains(r.PhoneNumber, strings.TrimSpace(filter.Search))
			if !byName && !byPhone {
				continue
			}
		}
		result = append(result, r)
	}

	sortReservations(result, filter.Sort)
	return result
}

// bookingEpoch: thời gian không parse được coi như epoch 0 để chìm
// xuống cuối danh sách khi sort newest
func bookingEpoch(r model.Reservation) int64 {
	t, ok := ParseBookingTime(r.BookingTime)
	if !ok {
		return 0
	}
	return t.Unix()
}

func rankOf(r model.Reservation) int {
	if rank, ok := statusRank[r.Status]; ok {
		return rank
	}
	return unknownRank
}

func priorityOf(r model.Reservation) int {
	if rank, ok := priorityRank[r.ReservationPriorityStatus]; ok {
		return rank
	}
	return unknownRank
}

func sortReservations(list []model.Reservation, sortOption string) {
	switch sortOption {
	case SortOldest:
		sort.SliceStable(list, func(i, j int) bool { return bookingEpoch(list[i]) < bookingEpoch(list[j]) })
	case SortNameAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].CustomerName) < strings.ToLower(list[j].CustomerName)
		})
	case SortNameDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].CustomerName) > strings.ToLower(list[j].CustomerName)
		})
	case SortPeopleAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].NumberOfPeople < list[j].NumberOfPeople })
	case SortPeopleDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].NumberOfPeople > list[j].NumberOfPeople })
	case SortStatusAsc:
		sort.SliceStable(list, func(i, j int) bool { return rankOf(list[i]) < rankOf(list[j]) })
	case SortStatusDesc:
		sort.SliceStable(list, func(i, j int) bool { return rankOf(list[i]) > rankOf(list[j]) })
	case SortPriority:
		sort.SliceStable(list, func(i, j int) bool { return priorityOf(list[i]) < priorityOf(list[j]) })
	default: // newest
		sort.SliceStable(list, func(i, j int) bool { return bookingEpoch(list[i]) > bookingEpoch(list[j]) })
	}
}
