package router

import (
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Quote(c *ginext.Context)
	StartCheckout(c *ginext.Context)
	SubmitPayment(c *ginext.Context)
	SubmitBilling(c *ginext.Context)
	StepBack(c *ginext.Context)
	Pay(c *ginext.Context)
	CancelCheckout(c *ginext.Context)
	SubmitReservation(c *ginext.Context)
	EventStream(c *ginext.Context)
	Health(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/booking")
	{
		api.POST("/quote", h.Quote)

		api.POST("/checkout", h.StartCheckout)
		api.POST("/checkout/:id/payment", h.SubmitPayment)
		api.POST("/checkout/:id/billing", h.SubmitBilling)
		api.POST("/checkout/:id/back", h.StepBack)
		api.POST("/checkout/:id/pay", h.Pay)
		api.DELETE("/checkout/:id", h.CancelCheckout)

		api.POST("/reservations", h.SubmitReservation)
	}

	router.GET("/ws", h.EventStream)
	router.GET("/health", h.Health)

	return router
}
