package validate

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/constants"
	"pizza_manager/model"
	"pizza_manager/utils"
)

// CreateProduct đọc từng field từ multipart form (ảnh là phần tùy chọn,
// handler tự lấy)
func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		price, err := strconv.ParseFloat(c.FormValue("price"), 64)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		input := model.CreateProductInput{
			Name:        c.FormValue("name"),
			Price:       price,
			Description: c.FormValue("description"),
			CategoryId:  c.FormValue("categoryId"),
			ProductType: model.ProductType(c.FormValue("productType")),
			ProductRole: model.ProductRole(c.FormValue("productRole")),
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProductInput
		if v := c.FormValue("name"); v != "" {
			input.Name = utils.Ptr(v)
		}
		if v := c.FormValue("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
			}
			input.Price = utils.Ptr(price)
		}
		if v := c.FormValue("description"); v != "" {
			input.Description = utils.Ptr(v)
		}
		if v := c.FormValue("categoryId"); v != "" {
			input.CategoryId = utils.Ptr(v)
		}
		if v := c.FormValue("productType"); v != "" {
			input.ProductType = utils.Ptr(model.ProductType(v))
		}
		if v := c.FormValue("productStatus"); v != "" {
			input.Status = utils.Ptr(model.ProductStatus(v))
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}
