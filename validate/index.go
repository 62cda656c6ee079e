package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pizza_manager/constants"
	"pizza_manager/utils"
)

var validate = validator.New()

// GetId kiểm tra param là uuid hợp lệ rồi lưu vào locals
func GetId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		if _, err := uuid.Parse(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", params)

		// Continue to next handler
		return c.Next()
	}
}
