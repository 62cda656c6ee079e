package helper

import (
	"pizza_manager/constants"
	"pizza_manager/model"
)

type TableAction string

const (
	ActionOpen              TableAction = "open"
	ActionClose             TableAction = "close"
	ActionLock              TableAction = "lock"
	ActionReserve           TableAction = "reserve"
	ActionSwap              TableAction = "swap"
	ActionCancelOrder       TableAction = "cancel-order"
	ActionUnmerge           TableAction = "unmerge"
	ActionCancelReservation TableAction = "cancel-reservation"
)

type MergeBadge struct {
	GroupId   string `json:"groupId"`
	GroupName string `json:"groupName"`
}

type TableView struct {
	Table          model.Table    `json:"table"`
	BadgeVariant   string         `json:"badgeVariant"`
	BadgeLabel     string         `json:"badgeLabel"`
	Icon           string         `json:"icon"`
	Note           string         `json:"note,omitempty"`
	MergeBadge     *MergeBadge    `json:"mergeBadge,omitempty"`
	EnabledActions []TableAction  `json:"enabledActions"`
	Countdown      *CountdownView `json:"countdown,omitempty"`
}

// ClassifyTable suy ra trạng thái hiển thị từ bàn: status là nguồn
// quyết định, order và nhóm ghép chỉ là bổ nghĩa. Hàm thuần, không
// đụng tới backend.
func ClassifyTable(t model.Table) TableView {
	view := TableView{Table: t}

	switch t.Status {
	case model.TableOpening:
		view.BadgeVariant = "success"
		view.Icon = "utensils"
		if t.HasOrder() {
			view.BadgeLabel = "Đang phục vụ"
		} else {
			view.BadgeLabel = "Mở bàn, chưa có đơn"
		}
		view.EnabledActions = append(view.EnabledActions, ActionClose, ActionLock)
		if t.HasOrder() {
			view.EnabledActions = append(view.EnabledActions, ActionSwap, ActionCancelOrder)
		}
	case model.TableClosing:
		view.BadgeVariant = "secondary"
		view.BadgeLabel = "Bàn trống"
		view.Icon = "circle-check"
		view.EnabledActions = append(view.EnabledActions, ActionOpen, ActionReserve)
	case model.TableReserved:
		view.BadgeVariant = "warning"
		view.BadgeLabel = "Đã đặt trước"
		view.Icon = "calendar-clock"
		if t.HasReservation() {
			view.EnabledActions = append(view.EnabledActions, ActionCancelReservation)
		}
	case model.TableLocked:
		view.BadgeVariant = "destructive"
		view.BadgeLabel = "Đang khóa"
		view.Icon = "lock"
		view.Note = t.Note
		view.EnabledActions = append(view.EnabledActions, ActionOpen, ActionClose)
	default:
		view.BadgeVariant = "secondary"
		view.BadgeLabel = constants.DISPLAY_NA
		view.Icon = "circle-help"
	}

	// Badge nhóm ghép độc lập với status
	if t.IsMerged() {
		name := constants.DISPLAY_UNNAMED_GROUP
		if t.TableMergeName != nil && *t.TableMergeName != "" {
			name = *t.TableMergeName
		}
		view.MergeBadge = &MergeBadge{GroupId: *t.TableMergeId, GroupName: name}
		view.EnabledActions = appendUnique(view.EnabledActions, ActionUnmerge)
	}

	return view
}

func appendUnique(actions []TableAction, action TableAction) []TableAction {
	for _, a := range actions {
		if a == action {
			return actions
		}
	}
	return append(actions, action)
}

// ActionEnabled kiểm tra một thao tác có được phép trên bàn không,
// dùng chặn mutation gửi lên backend khi UI lẽ ra phải disable nút
func ActionEnabled(t model.Table, action TableAction) bool {
	for _, a := range ClassifyTable(t).EnabledActions {
		if a == action {
			return true
		}
	}
	return false
}
