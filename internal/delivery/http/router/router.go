// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"handoff/internal/delivery/http/middleware"
	"handoff/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Gatherer        prometheus.Gatherer
	AddressHandler  *handler.AddressHandler
	PlaceHandler    *handler.PlaceHandler
	MeetupHandler   *handler.MeetupHandler
	DeliveryHandler *handler.DeliveryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	gatherer        prometheus.Gatherer
	addressHandler  *handler.AddressHandler
	placeHandler    *handler.PlaceHandler
	meetupHandler   *handler.MeetupHandler
	deliveryHandler *handler.DeliveryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		gatherer:        params.Gatherer,
		addressHandler:  params.AddressHandler,
		placeHandler:    params.PlaceHandler,
		meetupHandler:   params.MeetupHandler,
		deliveryHandler: params.DeliveryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Authenticate)

	addressGroup := v1.Group("/addresses")
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
	}

	placeGroup := v1.Group("/places")
	{
		placeGroup.GET("/autocomplete", r.placeHandler.Autocomplete)
		placeGroup.GET("/:placeID", r.placeHandler.ResolvePlace)
	}

	v1.GET("/meetup-point", r.meetupHandler.GetMeetupPoint)

	exchangeGroup := v1.Group("/exchanges/:exchangeID")
	{
		exchangeGroup.PUT("/delivery", r.deliveryHandler.DecideDelivery)
		exchangeGroup.GET("/delivery", r.deliveryHandler.GetDelivery)
	}
}
