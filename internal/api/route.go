package api

import (
	"github.com/gofiber/fiber/v2"
	v1 "github.com/somonplay/payment-service/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Post("/v1/orders", handler.CreateOrder)
	app.Get("/v1/orders/:id", handler.GetOrder)
	app.Post("/v1/payments/confirm", handler.ConfirmPayment)
}
