package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/ecfan/internal/controller"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId      = "id"
	indentationChar = "  "

	metricsSubsystem = "ecfan_api"
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// FanService gives access to the sampled state of all fans and serializes modifications
type FanService interface {
	State() []controller.FanState
	FanState(name string) (controller.FanState, error)
	Update(name string, fn func(fan *fans.Fan) error) error
}

// CreateRestService creates the REST api. Request metrics are registered with registerer,
// the /metrics/ endpoint serves everything collected by gatherer.
func CreateRestService(service FanService, registerer prometheus.Registerer, gatherer prometheus.Gatherer) *echo.Echo {
	echoRest := CreateWebserver()

	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)
	echoRest.GET("/metrics/", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	registerFanEndpoints(echoRest, service)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad request",
		Message: e.Error(),
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}

// picks the response matching the kind of error
func handleError(c echo.Context, id string, e error) error {
	switch {
	case errors.Is(e, controller.ErrFanNotFound):
		return returnNotFound(c, id)
	case errors.Is(e, ec.ErrInvalidValue), errors.Is(e, ec.ErrOutOfRange):
		return returnBadRequest(c, e)
	default:
		return returnError(c, e)
	}
}
