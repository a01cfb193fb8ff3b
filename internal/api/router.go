package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/shs/smart-home-system/docs"
	"github.com/shs/smart-home-system/internal/api/handler"
	"github.com/shs/smart-home-system/internal/core/service"
	"github.com/shs/smart-home-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("smarthome"))

	// --- Dependencies ---
	userService := service.NewUserService(postgres.NewUserRepository(db), log)
	houseService := service.NewHouseService(postgres.NewHouseRepository(db), log)
	roomService := service.NewRoomService(postgres.NewRoomRepository(db), log)
	deviceService := service.NewDeviceService(postgres.NewDeviceRepository(db), log)

	userHandler := handler.NewUserHandler(userService)
	houseHandler := handler.NewHouseHandler(houseService, roomService)
	roomHandler := handler.NewRoomHandler(roomService, deviceService)
	deviceHandler := handler.NewDeviceHandler(deviceService)

	// --- Entity routes ---
	v1 := e.Group("/v1")

	v1.POST("/users", userHandler.Create)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	v1.POST("/houses", houseHandler.Create)
	v1.GET("/houses/:id", houseHandler.Get)
	v1.GET("/houses/:id/rooms", houseHandler.ListRooms)
	v1.PUT("/houses/:id", houseHandler.Update)
	v1.DELETE("/houses/:id", houseHandler.Delete)

	v1.POST("/rooms", roomHandler.Create)
	v1.GET("/rooms/:id", roomHandler.Get)
	v1.GET("/rooms/:id/devices", roomHandler.ListDevices)
	v1.PUT("/rooms/:id", roomHandler.Update)
	v1.DELETE("/rooms/:id", roomHandler.Delete)

	v1.POST("/devices", deviceHandler.Create)
	v1.GET("/devices/:id", deviceHandler.Get)
	v1.PUT("/devices/:id", deviceHandler.Update)
	v1.PATCH("/devices/:id/settings", deviceHandler.UpdateSettings)
	v1.PATCH("/devices/:id/status", deviceHandler.UpdateStatus)
	v1.DELETE("/devices/:id", deviceHandler.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
