package model

import "encoding/json"

type TableStatus string

const (
	TableOpening  TableStatus = "Opening"
	TableClosing  TableStatus = "Closing"
	TableReserved TableStatus = "Reserved"
	TableLocked   TableStatus = "Locked"
)

// ParseTableStatus chuẩn hóa status từ backend (một số bản ghi cũ dùng "Booked")
func ParseTableStatus(raw string) (TableStatus, bool) {
	switch raw {
	case "Opening":
		return TableOpening, true
	case "Closing":
		return TableClosing, true
	case "Reserved", "Booked":
		return TableReserved, true
	case "Locked":
		return TableLocked, true
	}
	return TableStatus(raw), false
}

type Table struct {
	ID                   string       `json:"id"`
	Code                 string       `json:"code"`
	Capacity             int          `json:"capacity" validate:"omitempty,min=1"`
	ZoneId               string       `json:"zoneId"`
	Status               TableStatus  `json:"status"`
	CurrentOrderId       *string      `json:"currentOrderId"`
	CurrentReservationId *string      `json:"currentReservationId"`
	CurrentReservation   *Reservation `json:"currentReservation"`
	TableMergeId         *string      `json:"tableMergeId"`
	TableMergeName       *string      `json:"tableMergeName"`
	Note                 string       `json:"note"`
}

// UnmarshalJSON chuẩn hóa status ngay khi decode: backend còn trả
// "Booked" cho bàn đã đặt, phần phân loại chỉ biết bốn trạng thái
// chính tắc
func (t *Table) UnmarshalJSON(data []byte) error {
	type tableJSON Table
	var decoded tableJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	decoded.Status, _ = ParseTableStatus(string(decoded.Status))
	*t = Table(decoded)
	return nil
}

// IsMerged: bàn thuộc một nhóm ghép khi tableMergeId khác null
func (t Table) IsMerged() bool {
	return t.TableMergeId != nil && *t.TableMergeId != ""
}

func (t Table) HasOrder() bool {
	return t.CurrentOrderId != nil && *t.CurrentOrderId != ""
}

func (t Table) HasReservation() bool {
	return t.CurrentReservation != nil
}

type Zone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type LockTableInput struct {
	Note string `json:"note" validate:"required,min=2,max=255"`
}

type MergeTableInput struct {
	TableIds     []string `json:"tableIds" validate:"required,min=2,dive,required"`
	CustomerName string   `json:"customerName" validate:"required,min=2,max=100"`
}
