package validate

import (
	"github.com/gofiber/fiber/v2"

	"pizza_manager/constants"
	"pizza_manager/model"
	"pizza_manager/utils"
)

func LockTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LockTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("lockInput", input)
		return c.Next()
	}
}

func MergeTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MergeTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("mergeInput", input)
		return c.Next()
	}
}

func SwapOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			TargetTableId string `json:"targetTableId" validate:"required"`
		}
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("targetTableId", input.TargetTableId)
		return c.Next()
	}
}
