package model

type ReservationStatus string

const (
	ReservationCreated   ReservationStatus = "Created"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCheckedin ReservationStatus = "Checkedin"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// Đặt bàn chỉ tiến, không lùi: Created → Confirmed → Checkedin,
// hủy được từ Created/Confirmed. Cancelled và Checkedin là trạng thái cuối.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationCreated:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCheckedin, ReservationCancelled},
}

func ValidReservationTransition(from, to ReservationStatus) bool {
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type ReservationPriority string

const (
	PriorityCustomer    ReservationPriority = "Priority"
	NonPriorityCustomer ReservationPriority = "NonPriority"
)

type TableAssignReservation struct {
	TableId string `json:"tableId"`
}

// Reservation giữ nguyên hai trường xếp bàn của backend: TableId là trường
// legacy "bàn chính", TableAssignReservations là danh sách bàn đã xếp.
// Điều kiện đủ để xếp bàn kiểm tra TableId, không kiểm tra danh sách.
type Reservation struct {
	ID                        string                   `json:"id"`
	CustomerName              string                   `json:"customerName"`
	PhoneNumber               string                   `json:"phoneNumber"`
	NumberOfPeople            int                      `json:"numberOfPeople" validate:"omitempty,min=1"`
	BookingTime               string                   `json:"bookingTime"`
	Status                    ReservationStatus        `json:"status"`
	ReservationPriorityStatus ReservationPriority      `json:"reservationPriorityStatus"`
	TableId                   string                   `json:"tableId"`
	TableAssignReservations   []TableAssignReservation `json:"tableAssignReservations"`
}

// IsAssigned theo trường legacy, dùng cho cửa sổ xếp bàn
func (r Reservation) IsAssigned() bool {
	return r.TableId != ""
}

type AssignTableInput struct {
	ReservationId string `json:"reservationId" validate:"required"`
	TableId       string `json:"tableId" validate:"required"`
}

type CancelAssignTableInput struct {
	ReservationId string   `json:"reservationId" validate:"required"`
	TableIds      []string `json:"tableIds" validate:"required,min=1,dive,required"`
}

type CreateReservationInput struct {
	CustomerName   string `json:"customerName" validate:"required,min=2,max=100"`
	PhoneNumber    string `json:"phoneNumber" validate:"required,min=8,max=15"`
	NumberOfPeople int    `json:"numberOfPeople" validate:"required,min=1"`
	BookingTime    string `json:"bookingTime" validate:"required"`
}
