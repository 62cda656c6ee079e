package handler

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/client"
	"pizza_manager/constants"
	"pizza_manager/helper"
	"pizza_manager/utils"
)

// dispatchAction là khung chung cho mọi thao tác ghi: khóa id+action,
// gọi backend, rẽ nhánh theo vỏ {success, message}, refetch toàn bộ khi
// thành công. Không giữ lại state dở dang khi thất bại — lần refetch kế
// tiếp là nguồn sự thật duy nhất.
func dispatchAction(c *fiber.Ctx, locks *ActionLocks, snap *helper.Snapshot, entityId, action, successMsg string, call func(ctx context.Context) (client.Envelope, error)) error {
	release, ok := locks.Acquire(c.Context(), entityId, action)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_ACTION_IN_FLIGHT, nil)
	}
	defer release()

	env, err := call(c.Context())
	if err != nil {
		log.Printf("Lỗi gọi backend cho thao tác %s trên %s: %v", action, entityId, err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = constants.ERROR_UPSTREAM
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}

	refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := snap.Refresh(refreshCtx); err != nil {
		log.Printf("Lỗi refetch sau thao tác %s: %v", action, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": successMsg,
	})
}
