package validate

import (
	"github.com/gofiber/fiber/v2"

	"pizza_manager/constants"
	"pizza_manager/model"
	"pizza_manager/utils"
)

func UpdateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}
