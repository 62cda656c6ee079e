package helper

import (
	"time"

	"pizza_manager/constants"
)

// Backend trả bookingTime theo ISO 8601 nhưng không thống nhất
// (có khi thiếu timezone, có khi kèm mili giây)
var bookingTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseBookingTime parse phòng thủ, không bao giờ panic
func ParseBookingTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range bookingTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate trả về dd/MM/yyyy, lỗi parse trả về "N/A"
func FormatDate(raw string) string {
	t, ok := ParseBookingTime(raw)
	if !ok {
		return constants.DISPLAY_NA
	}
	return t.Format("02/01/2006")
}

// FormatTimeOfDay trả về HH:mm, lỗi parse trả về "N/A"
func FormatTimeOfDay(raw string) string {
	t, ok := ParseBookingTime(raw)
	if !ok {
		return constants.DISPLAY_NA
	}
	return t.Format("15:04")
}

// FormatDateTime trả về "HH:mm dd/MM/yyyy", lỗi parse trả về "N/A"
func FormatDateTime(raw string) string {
	t, ok := ParseBookingTime(raw)
	if !ok {
		return constants.DISPLAY_NA
	}
	return t.Format("15:04 02/01/2006")
}

// SameLocalDate so sánh theo ngày dương lịch địa phương, bỏ qua giờ
func SameLocalDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
