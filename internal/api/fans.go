package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/ecfan/internal/controller"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/sparkline"
)

type SpeedRequest struct {
	Speed *float64 `json:"speed"`
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

type fanHandler struct {
	service FanService
}

func registerFanEndpoints(rest *echo.Echo, service FanService) {
	handler := &fanHandler{service: service}
	group := rest.Group("/fan")

	group.GET("/", handler.getFans)
	group.GET("/:"+urlParamId+"/", handler.getFan)
	group.GET("/:"+urlParamId+"/chart/", handler.getFanChart)
	group.POST("/:"+urlParamId+"/speed/", handler.setFanSpeed)
	group.POST("/:"+urlParamId+"/mode/", handler.setFanMode)
}

// returns a list of all currently configured fans
func (h *fanHandler) getFans(c echo.Context) error {
	data := h.service.State()
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h *fanHandler) getFan(c echo.Context) error {
	id := c.Param(urlParamId)
	data, err := h.service.FanState(id)
	if err != nil {
		return handleError(c, id, err)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

// returns the sampled history of a fan as block charts
func (h *fanHandler) getFanChart(c echo.Context) error {
	id := c.Param(urlParamId)
	data, err := h.service.FanState(id)
	if err != nil {
		return handleError(c, id, err)
	}
	return c.String(http.StatusOK, renderChart(data))
}

func (h *fanHandler) setFanSpeed(c echo.Context) error {
	id := c.Param(urlParamId)
	request := new(SpeedRequest)
	if err := c.Bind(request); err != nil {
		return returnBadRequest(c, err)
	}
	if request.Speed == nil {
		return returnBadRequest(c, fmt.Errorf("missing speed: %w", ec.ErrInvalidValue))
	}

	err := h.service.Update(id, func(fan *fans.Fan) error {
		return fan.SetSpeed(*request.Speed)
	})
	if err != nil {
		return handleError(c, id, err)
	}
	return h.getFan(c)
}

func (h *fanHandler) setFanMode(c echo.Context) error {
	id := c.Param(urlParamId)
	request := new(ModeRequest)
	if err := c.Bind(request); err != nil {
		return returnBadRequest(c, err)
	}
	mode, err := ec.ParseControlMode(request.Mode)
	if err != nil {
		return returnBadRequest(c, err)
	}

	err = h.service.Update(id, func(fan *fans.Fan) error {
		return fan.SetMode(mode)
	})
	if err != nil {
		return handleError(c, id, err)
	}
	return h.getFan(c)
}

func renderChart(state controller.FanState) string {
	var sb strings.Builder
	sb.WriteString(state.Name + "\n")
	sb.WriteString("temperature:\n")
	sb.WriteString(sparkline.Render(state.Temperature.History, state.Temperature.Min, state.Temperature.Max, fans.Resolution))
	sb.WriteString("\n")
	for i, speed := range state.Speeds {
		sb.WriteString(fmt.Sprintf("fan %d:\n", i+1))
		sb.WriteString(sparkline.Render(speed.History, speed.Min, speed.Max, fans.Resolution))
		sb.WriteString("\n")
	}
	return sb.String()
}
