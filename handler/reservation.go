package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/client"
	"pizza_manager/constants"
	"pizza_manager/helper"
	"pizza_manager/model"
	"pizza_manager/utils"
)

type ReservationHandler struct {
	reservations *client.ReservationService
	snap         *helper.Snapshot
	locks        *ActionLocks
}

func NewReservationHandler(reservations *client.ReservationService, snap *helper.Snapshot, locks *ActionLocks) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, snap: snap, locks: locks}
}

// GetReservations trả danh sách đã lọc/sắp kèm phần hiển thị,
// phân trang sau khi lọc nên totalCount là tổng khớp bộ lọc
func (h *ReservationHandler) GetReservations(c *fiber.Ctx) error {
	filter := c.Locals("listFilter").(helper.ReservationFilter)
	pagination := c.Locals("pagination").(model.Pagination)

	filtered := helper.FilterAndSortReservations(h.snap.Reservations(), filter)
	views := helper.BuildReservationViews(filtered, h.snap.Tables())

	total := int64(len(views))
	if pagination.Limit != nil {
		limit := *pagination.Limit
		page := 1
		if pagination.Page != nil {
			page = *pagination.Page
		}
		start := (page - 1) * limit
		if start >= len(views) {
			views = nil
		} else if end := start + limit; end < len(views) {
			views = views[start:end]
		} else {
			views = views[start:]
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       views,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}

// GetEligible trả các đặt bàn xếp được ngay bây giờ, tính lại mỗi lần
// dialog mở (không live-update)
func (h *ReservationHandler) GetEligible(c *fiber.Ctx) error {
	windowMinutes := constants.DEFAULT_ELIGIBILITY_MINUTES
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		windowMinutes = parsed
	}

	eligible := helper.EligibleReservations(
		h.snap.Reservations(),
		time.Now(),
		time.Duration(windowMinutes)*time.Minute,
	)
	views := helper.BuildReservationViews(eligible, h.snap.Tables())

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       views,
		TotalCount: int64(len(views)),
	})
}

// GetEligibleTables trả các bàn xếp được cho một đặt bàn cụ thể
func (h *ReservationHandler) GetEligibleTables(c *fiber.Ctx) error {
	reservationId := c.Locals("inputId").(string)
	reservation, ok := h.snap.ReservationById(reservationId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Đặt bàn không tồn tại", nil)
	}

	tables := helper.EligibleTables(h.snap.Tables(), reservation.NumberOfPeople)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservation": reservation,
		"tables":      tables,
	})
}

func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateReservationInput)
	return dispatchAction(c, h.locks, h.snap, input.PhoneNumber, "create-reservation", "Tạo đặt bàn thành công",
		func(ctx context.Context) (client.Envelope, error) {
			return h.reservations.Create(ctx, input)
		})
}

func (h *ReservationHandler) guardTransition(c *fiber.Ctx, reservationId string, to model.ReservationStatus) (model.Reservation, error) {
	reservation, ok := h.snap.ReservationById(reservationId)
	if !ok {
		return model.Reservation{}, utils.ErrorResponse(c, fiber.StatusNotFound, "Đặt bàn không tồn tại", nil)
	}
	if !model.ValidReservationTransition(reservation.Status, to) {
		return model.Reservation{}, utils.ErrorResponse(c, fiber.StatusBadRequest, "Trạng thái đặt bàn không cho phép thao tác này", nil)
	}
	return reservation, nil
}

func (h *ReservationHandler) ConfirmReservation(c *fiber.Ctx) error {
	reservationId := c.Locals("inputId").(string)
	reservation, err := h.guardTransition(c, reservationId, model.ReservationConfirmed)
	if err != nil {
		return err
	}

	return dispatchAction(c, h.locks, h.snap, reservationId, "confirm", constants.RESERVATION_CONFIRM_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			env, err := h.reservations.Confirm(ctx, reservationId)
			if err == nil && env.Success {
				utils.SendReservationNoticeEmail(utils.ReservationNoticeData{
					CustomerName:   reservation.CustomerName,
					PhoneNumber:    reservation.PhoneNumber,
					NumberOfPeople: reservation.NumberOfPeople,
					BookingTime:    helper.FormatDateTime(reservation.BookingTime),
					TableCodes:     strings.Join(helper.AssignedTableBadges(reservation, h.snap.Tables()), ", "),
				})
			}
			return env, err
		})
}

func (h *ReservationHandler) CancelReservation(c *fiber.Ctx) error {
	reservationId := c.Locals("inputId").(string)
	if _, err := h.guardTransition(c, reservationId, model.ReservationCancelled); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, reservationId, "cancel", constants.RESERVATION_CANCEL_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.reservations.Cancel(ctx, reservationId)
		})
}

func (h *ReservationHandler) CheckInReservation(c *fiber.Ctx) error {
	reservationId := c.Locals("inputId").(string)
	if _, err := h.guardTransition(c, reservationId, model.ReservationCheckedin); err != nil {
		return err
	}
	return dispatchAction(c, h.locks, h.snap, reservationId, "check-in", constants.RESERVATION_CHECKIN_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.reservations.CheckIn(ctx, reservationId)
		})
}

func (h *ReservationHandler) AssignTable(c *fiber.Ctx) error {
	input := c.Locals("assignInput").(model.AssignTableInput)

	reservation, ok := h.snap.ReservationById(input.ReservationId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Đặt bàn không tồn tại", nil)
	}
	if reservation.Status != model.ReservationConfirmed {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chỉ xếp bàn cho đặt bàn đã xác nhận", nil)
	}
	table, ok := h.snap.TableById(input.TableId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bàn không tồn tại", nil)
	}
	if table.Status != model.TableClosing || table.Capacity < reservation.NumberOfPeople {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Bàn không khả dụng cho đặt bàn này", nil)
	}

	return dispatchAction(c, h.locks, h.snap, input.ReservationId, "assign-table", constants.RESERVATION_ASSIGN_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.reservations.AssignTable(ctx, input)
		})
}

func (h *ReservationHandler) CancelAssignTable(c *fiber.Ctx) error {
	input := c.Locals("cancelAssignInput").(model.CancelAssignTableInput)
	if _, ok := h.snap.ReservationById(input.ReservationId); !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Đặt bàn không tồn tại", nil)
	}
	return dispatchAction(c, h.locks, h.snap, input.ReservationId, "cancel-assign-table", constants.RESERVATION_CANCEL_ASSIGN_SUCCESS,
		func(ctx context.Context) (client.Envelope, error) {
			return h.reservations.CancelAssignTable(ctx, input)
		})
}
