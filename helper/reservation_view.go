package helper

import (
	"log"

	"github.com/jinzhu/copier"

	"pizza_manager/constants"
	"pizza_manager/model"
)

type ReservationView struct {
	ID                        string                    `json:"id"`
	CustomerName              string                    `json:"customerName"`
	PhoneNumber               string                    `json:"phoneNumber"`
	NumberOfPeople            int                       `json:"numberOfPeople"`
	BookingTime               string                    `json:"bookingTime"`
	Status                    model.ReservationStatus   `json:"status"`
	ReservationPriorityStatus model.ReservationPriority `json:"reservationPriorityStatus"`
	BookingDate               string                    `json:"bookingDate"`
	BookingHour               string                    `json:"bookingHour"`
	TableBadges               []string                  `json:"tableBadges"`
	CancelledLabel            string                    `json:"cancelledLabel,omitempty"`
}

// BuildReservationViews gắn thêm phần hiển thị lên danh sách đặt bàn đã
// lọc/sắp: ngày giờ định dạng sẵn và badge mã bàn. Đặt bàn đã hủy hiển
// thị "Đã hủy" thay cho mã bàn, kể cả khi còn lịch sử xếp bàn.
func BuildReservationViews(reservations []model.Reservation, tables []model.Table) []ReservationView {
	views := make([]ReservationView, 0, len(reservations))
	for _, r := range reservations {
		var view ReservationView
		if err := copier.Copy(&view, &r); err != nil {
			log.Printf("Lỗi map đặt bàn %s sang view: %v", r.ID, err)
			continue
		}
		view.BookingDate = FormatDate(r.BookingTime)
		view.BookingHour = FormatTimeOfDay(r.BookingTime)
		if r.Status == model.ReservationCancelled {
			view.CancelledLabel = constants.DISPLAY_CANCELLED
		} else {
			view.TableBadges = AssignedTableBadges(r, tables)
		}
		views = append(views, view)
	}
	return views
}
