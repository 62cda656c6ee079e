package constants

// Thông báo lỗi chung
const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	ERROR_UPSTREAM           = "Có lỗi xảy ra khi kết nối máy chủ"
	ERROR_ACTION_IN_FLIGHT   = "Thao tác đang được xử lý, vui lòng đợi"
)

// Thông báo thao tác bàn
const (
	TABLE_OPEN_SUCCESS    = "Mở bàn thành công"
	TABLE_CLOSE_SUCCESS   = "Đóng bàn thành công"
	TABLE_LOCK_SUCCESS    = "Khóa bàn thành công"
	TABLE_UNLOCK_SUCCESS  = "Mở khóa bàn thành công"
	TABLE_MERGE_SUCCESS   = "Ghép bàn thành công"
	TABLE_UNMERGE_SUCCESS = "Tách bàn thành công"
)

// Thông báo thao tác đặt bàn
const (
	RESERVATION_CONFIRM_SUCCESS       = "Xác nhận đặt bàn thành công"
	RESERVATION_CANCEL_SUCCESS        = "Hủy đặt bàn thành công"
	RESERVATION_CHECKIN_SUCCESS       = "Khách đã nhận bàn"
	RESERVATION_ASSIGN_SUCCESS        = "Xếp bàn thành công"
	RESERVATION_CANCEL_ASSIGN_SUCCESS = "Hủy xếp bàn thành công"
)

// Thông báo cấu hình
const (
	SETTING_UPDATE_SUCCESS = "Cập nhật cấu hình thành công"
)

// Hiển thị
const (
	DISPLAY_NA            = "N/A"
	DISPLAY_EXPIRED       = "Hết hạn"
	DISPLAY_CANCELLED     = "Đã hủy"
	DISPLAY_UNNAMED_GROUP = "Nhóm không tên"
	DISPLAY_UNKNOWN_ZONE  = "Khu vực không xác định"
)

// Mặc định cấu hình
const (
	DEFAULT_COUNTDOWN_MINUTES   = 30
	DEFAULT_ELIGIBILITY_MINUTES = 60
	DEFAULT_REFRESH_SECONDS     = 60
)
