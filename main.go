package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"pizza_manager/client"
	"pizza_manager/config"
	"pizza_manager/constants"
	"pizza_manager/handler"
	"pizza_manager/helper"
	"pizza_manager/router"
)

func intConfig(key string, fallback int) int {
	raw := config.Config(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		log.Printf("Giá trị %s không hợp lệ (%q), dùng mặc định %d", key, raw, fallback)
		return fallback
	}
	return parsed
}

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // đủ cho upload ảnh món
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	api := client.New(config.ConfigOrDefault("BACKEND_API_URL", "http://localhost:8000/api/v1"))
	tableSvc := client.NewTableService(api)
	zoneSvc := client.NewZoneService(api)
	reservationSvc := client.NewReservationService(api)
	productSvc := client.NewProductService(api)
	settingSvc := client.NewSettingService(api)

	snap := helper.NewSnapshot(tableSvc, zoneSvc, reservationSvc)

	countdownMinutes := intConfig("COUNTDOWN_MINUTES", constants.DEFAULT_COUNTDOWN_MINUTES)
	countdowns := helper.NewCountdownManager(countdownMinutes, func(tableId string) {
		log.Printf("Đặt bàn trên bàn %s đã hết hạn giữ", tableId)
	})
	snap.OnRefresh(countdowns.Sync)
	defer countdowns.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := snap.Refresh(ctx); err != nil {
		log.Printf("Không tải được dữ liệu ban đầu từ backend: %v", err)
	}
	cancel()

	refreshSeconds := intConfig("REFRESH_SECONDS", constants.DEFAULT_REFRESH_SECONDS)
	if err := snap.StartScheduler(refreshSeconds); err != nil {
		log.Fatalf("Không khởi động được scheduler refresh: %v", err)
	}
	defer snap.StopScheduler()

	locks := handler.NewActionLocks(config.ConfigOrDefault("REDIS_ADDR", "localhost:6379"))

	uploader, err := helper.NewImageUploader()
	if err != nil {
		log.Printf("Upload ảnh bị tắt: %v", err)
	}

	router.SetupRoutes(app, router.Handlers{
		Table:       handler.NewTableHandler(tableSvc, snap, locks, countdowns),
		Reservation: handler.NewReservationHandler(reservationSvc, snap, locks),
		Product:     handler.NewProductHandler(productSvc, locks, uploader),
		Setting:     handler.NewSettingHandler(settingSvc, locks),
	})

	log.Fatal(app.Listen(":" + config.ConfigOrDefault("PORT", "8002")))
}
