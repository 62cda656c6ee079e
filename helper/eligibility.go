package helper

import (
	"sort"
	"time"

	"pizza_manager/model"
)

// EligibleReservations trả các đặt bàn có thể xếp bàn ngay lúc này:
// đã xác nhận, chưa có bàn (theo trường legacy tableId), và giờ đặt nằm
// trong [now, now + window] tính cả hai biên. Gần giờ nhất đứng trước.
func EligibleReservations(reservations []model.Reservation, now time.Time, window time.Duration) []model.Reservation {
	deadline := now.Add(window)

	eligible := make([]model.Reservation, 0)
	for _, r := range reservations {
		if r.Status != model.ReservationConfirmed || r.IsAssigned() {
			continue
		}
		booked, ok := ParseBookingTime(r.BookingTime)
		if !ok {
			continue
		}
		if booked.Before(now) || booked.After(deadline) {
			continue
		}
		eligible = append(eligible, r)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return bookingEpoch(eligible[i]) < bookingEpoch(eligible[j])
	})
	return eligible
}

// EligibleTables trả các bàn xếp được cho một đặt bàn: bàn trống
// (Closing) và đủ chỗ cho số khách
func EligibleTables(tables []model.Table, numberOfPeople int) []model.Table {
	eligible := make([]model.Table, 0)
	for _, t := range tables {
		if t.Status != model.TableClosing {
			continue
		}
		if t.Capacity < numberOfPeople {
			continue
		}
		eligible = append(eligible, t)
	}

	// Bàn vừa khít đứng trước để hạn chế lãng phí chỗ
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Capacity != eligible[j].Capacity {
			return eligible[i].Capacity < eligible[j].Capacity
		}
		return eligible[i].Code < eligible[j].Code
	})
	return eligible
}

// AssignedTableBadges trả danh sách mã bàn hiển thị trong dialog chi
// tiết đặt bàn. Đặt bàn đã hủy luôn hiển thị "Đã hủy" bất kể lịch sử
// xếp bàn.
func AssignedTableBadges(r model.Reservation, tables []model.Table) []string {
	if r.Status == model.ReservationCancelled {
		return nil
	}

	codeById := make(map[string]string, len(tables))
	for _, t := range tables {
		codeById[t.ID] = t.Code
	}

	badges := make([]string, 0, len(r.TableAssignReservations))
	for _, assign := range r.TableAssignReservations {
		if code, ok := codeById[assign.TableId]; ok && code != "" {
			badges = append(badges, code)
		} else {
			badges = append(badges, assign.TableId)
		}
	}
	return badges
}
