package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/client"
	"pizza_manager/constants"
	"pizza_manager/helper"
	"pizza_manager/model"
	"pizza_manager/utils"
)

type TableHandler struct {
	tables     *client.TableService
	snap       *helper.Snapshot
	locks      *ActionLocks
	countdowns *helper.CountdownManager
}

func NewTableHandler(tables *client.TableService, snap *helper.Snapshot, locks *ActionLocks, countdowns *helper.CountdownManager) *TableHandler {
	return &TableHandler{tables: tables, snap: snap, locks: locks, countdowns: countdowns}
}

// GetTables trả danh sách bàn đã phân loại, nhóm theo khu vực hoặc
// nhóm ghép (?groupBy=merge)
func (h *TableHandler) GetTables(c *fiber.Ctx) error {
	tables := h.snap.Tables()

	var groups []helper.TableGroup
	if c.Query("groupBy") == "merge" {
		groups = helper.GroupTablesByMerge(tables)
	} else {
		groups = helper.GroupTablesByZone(tables, h.snap.Zones())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"groups":     groups,
		"totalCount": len(tables),
	})
}

func (h *TableHandler) GetZones(c *fiber.Ctx) error {
	zones := h.snap.Zones()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"zones":      zones,
		"totalCount": len(zones),
	})
}

func (h *TableHandler) GetTableById(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	table, ok := h.snap.TableById(tableId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không tồn tại", nil)
	}

	view := helper.ClassifyTable(table)
	if cd, running := h.countdowns.View(tableId); running {
		view.Countdown = &cd
	}
	return utils.SuccessResponse(c, fiber.StatusOK, view)
}

// GetCountdown trả trạng thái đếm ngược của một bàn đang gắn đặt bàn
func (h *TableHandler) GetCountdown(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	table, ok := h.snap.TableById(tableId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không tồn tại", nil)
	}

	if view, running := h.countdowns.View(tableId); running {
		return utils.SuccessResponse(c, fiber.StatusOK, view)
	}

	// bàn chưa có bộ đếm đang chạy: tính một phát tại chỗ với cùng khoảng
	// chờ đã cấu hình cho manager, không giữ ticker
	if table.Status == model.TableReserved && table.HasReservation() {
		cd := helper.NewCountdown(table.CurrentReservation.BookingTime, h.countdowns.DurationMinutes(), false, nil)
		return utils.SuccessResponse(c, fiber.StatusOK, cd.Tick())
	}
	return utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không có đếm ngược", nil)
}

func (h *TableHandler) guardAction(c *fiber.Ctx, tableId string, action helper.TableAction) (model.Table, error) {
	table, ok := h.snap.TableById(tableId)
	if !ok {
		return model.Table{}, utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không tồn tại", nil)
	}
	if !helper.ActionEnabled(table, action) {
		return model.Table{}, utils.ErrorResponse(c, fiber.StatusBadRequest, "Thao tác không hợp lệ với trạng thái bàn hiện tại", errors.New("action disabled"))
	}
	return table, nil
}

func (h *TableHandler) OpenTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	if _, err := h.guardAction(c, tableId, helper.ActionOpen); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "open", constants.TABLE_OPEN_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Open(ctx, tableId)
		})
}

func (h *TableHandler) CloseTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	if _, err := h.guardAction(c, tableId, helper.ActionClose); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "close", constants.TABLE_CLOSE_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Close(ctx, tableId)
		})
}

func (h *TableHandler) LockTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	input := c.Locals("lockInput").(model.LockTableInput)
	if _, err := h.guardAction(c, tableId, helper.ActionLock); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "lock", constants.TABLE_LOCK_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Lock(ctx, tableId, input.Note)
		})
}

func (h *TableHandler) UnlockTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	table, ok := h.snap.TableById(tableId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không tồn tại", nil)
	}
	if table.Status != model.TableLocked {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bàn không ở trạng thái khóa", nil)
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "unlock", constants.TABLE_UNLOCK_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Unlock(ctx, tableId)
		})
}

func (h *TableHandler) MergeTables(c *fiber.Ctx) error {
	input := c.Locals("mergeInput").(model.MergeTableInput)
	// khóa theo bàn đầu tiên trong nhóm, đủ để chặn double-submit từ một dialog
	return dispatchAction(c, h.locks, h.snap, input.TableIds[0], "merge", constants.TABLE_MERGE_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Merge(ctx, input)
		})
}

func (h *TableHandler) UnmergeTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	if _, err := h.guardAction(c, tableId, helper.ActionUnmerge); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "unmerge", constants.TABLE_UNMERGE_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.Unmerge(ctx, tableId)
		})
}

func (h *TableHandler) SwapOrder(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	targetTableId := c.Locals("targetTableId").(string)
	if _, err := h.guardAction(c, tableId, helper.ActionSwap); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "swap", "Chuyển bàn thành công",
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.SwapOrder(ctx, tableId, targetTableId)
		})
}

func (h *TableHandler) CancelOrder(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(string)
	if _, err := h.guardAction(c, tableId, helper.ActionCancelOrder); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, tableId, "cancel-order", "Hủy đơn thành công",
		func(ctx context.Context) (client.Envelope, error) {
			return h.tables.CancelOrder(ctx, tableId)
		})
}
