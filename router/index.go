package router

import (
	"pizza_manager/handler"
	"pizza_manager/middleware"
	"pizza_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Handlers struct {
	Table       *handler.TableHandler
	Reservation *handler.ReservationHandler
	Product     *handler.ProductHandler
	Setting     *handler.SettingHandler
}

func SetupRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), h.Table.GetTables)
	table.Get("/zones", middleware.Protected(), h.Table.GetZones)
	table.Get("/:tableId", middleware.Protected(), validate.GetId("tableId"), h.Table.GetTableById)
	table.Get("/:tableId/countdown", middleware.Protected(), validate.GetId("tableId"), h.Table.GetCountdown)
	table.Put("/:tableId/open", middleware.Protected(), validate.GetId("tableId"), h.Table.OpenTable)
	table.Put("/:tableId/close", middleware.Protected(), validate.GetId("tableId"), h.Table.CloseTable)
	table.Put("/:tableId/lock", middleware.Protected(), validate.GetId("tableId"), validate.LockTable(), h.Table.LockTable)
	table.Put("/:tableId/unlock", middleware.Protected(), validate.GetId("tableId"), h.Table.UnlockTable)
	table.Post("/merge", middleware.Protected(), validate.MergeTable(), h.Table.MergeTables)
	table.Put("/:tableId/unmerge", middleware.Protected(), validate.GetId("tableId"), h.Table.UnmergeTable)
	table.Put("/:tableId/swap-order", middleware.Protected(), validate.GetId("tableId"), validate.SwapOrder(), h.Table.SwapOrder)
	table.Put("/:tableId/cancel-order", middleware.Protected(), validate.GetId("tableId"), h.Table.CancelOrder)

	reservation := v1.Group("/reservation", logger.New())
	reservation.Get("/", middleware.Protected(), validate.ListFilter(), h.Reservation.GetReservations)
	reservation.Get("/eligible", middleware.Protected(), h.Reservation.GetEligible)
	reservation.Get("/:reservationId/eligible-tables", middleware.Protected(), validate.GetId("reservationId"), h.Reservation.GetEligibleTables)
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), h.Reservation.CreateReservation)
	reservation.Put("/:reservationId/confirm", middleware.Protected(), validate.GetId("reservationId"), h.Reservation.ConfirmReservation)
	reservation.Put("/:reservationId/cancel", middleware.Protected(), validate.GetId("reservationId"), h.Reservation.CancelReservation)
	reservation.Put("/:reservationId/check-in", middleware.Protected(), validate.GetId("reservationId"), h.Reservation.CheckInReservation)
	reservation.Post("/assign-table", middleware.Protected(), validate.AssignTable(), h.Reservation.AssignTable)
	reservation.Post("/cancel-assign-table", middleware.Protected(), validate.CancelAssignTable(), h.Reservation.CancelAssignTable)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), h.Product.GetProducts)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), h.Product.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.GetId("productId"), validate.UpdateProduct(), h.Product.UpdateProduct)
	product.Post("/:productId/image", middleware.Protected(), validate.GetId("productId"), h.Product.UploadProductImage)
	product.Post("/generate-signature", middleware.Protected(), h.Product.GenerateSignature)

	setting := v1.Group("/setting", logger.New())
	setting.Get("/", middleware.Protected(), h.Setting.GetSettings)
	setting.Put("/", middleware.Protected(), validate.UpdateSetting(), h.Setting.UpdateSetting)
}
