package validate

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/constants"
	"pizza_manager/helper"
	"pizza_manager/model"
	"pizza_manager/utils"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if _, ok := helper.ParseBookingTime(input.BookingTime); !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Giờ đặt bàn không hợp lệ", errors.New("invalid bookingTime"))
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func AssignTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("assignInput", input)
		return c.Next()
	}
}

func CancelAssignTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancelAssignTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("cancelAssignInput", input)
		return c.Next()
	}
}

// ListFilter đọc query lọc/sắp/phân trang và chặn sort option lạ từ đầu
func ListFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := helper.ReservationFilter{
			Status: c.Query("status", "all"),
			Date:   c.Query("date"),
			Search: c.Query("search"),
			Sort:   c.Query("sort", helper.SortNewest),
		}
		if !utils.IsValidValueOfConstant(filter.Sort, helper.SortOptions) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Kiểu sắp xếp không hợp lệ", errors.New("invalid sort option"))
		}

		var pagination model.Pagination
		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
			}
			pagination.Limit = utils.Ptr(limit)
		}
		if raw := c.Query("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil || page <= 0 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
			}
			pagination.Page = utils.Ptr(page)
		}

		c.Locals("listFilter", filter)
		c.Locals("pagination", pagination)
		return c.Next()
	}
}
