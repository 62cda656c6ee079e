package handler

import (
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/client"
	"pizza_manager/constants"
	"pizza_manager/model"
	"pizza_manager/utils"
)

type SettingHandler struct {
	settings *client.SettingService
	locks    *ActionLocks
}

func NewSettingHandler(settings *client.SettingService, locks *ActionLocks) *SettingHandler {
	return &SettingHandler{settings: settings, locks: locks}
}

// GetSettings trả cấu hình gộp theo configType để màn hình dựng từng nhóm
func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	items, err := h.settings.GetAll(c.Context())
	if err != nil {
		log.Printf("Lỗi lấy danh sách cấu hình: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}

	grouped := make(map[string][]model.Setting)
	for _, item := range items {
		grouped[item.ConfigType] = append(grouped[item.ConfigType], item)
	}
	for _, group := range grouped {
		sort.Slice(group, func(i, j int) bool { return group[i].Key < group[j].Key })
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"groups":     grouped,
		"totalCount": len(items),
	})
}

func (h *SettingHandler) UpdateSetting(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateSettingInput)

	release, ok := h.locks.Acquire(c.Context(), input.ID, "update-setting")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_ACTION_IN_FLIGHT, nil)
	}
	defer release()

	env, err := h.settings.Update(c.Context(), input)
	if err != nil {
		log.Printf("Lỗi cập nhật cấu hình %s: %v", input.ID, err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = constants.ERROR_UPSTREAM
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.SETTING_UPDATE_SUCCESS,
	})
}
