package api

import (
	"errors"
	"net/http"

	"TrendPull/internal/channel"
	models "TrendPull/internal/domain/models"
	"TrendPull/internal/handler/ws"
	"TrendPull/internal/usecase"
	xhttp "TrendPull/pkg/http"
	xlogger "TrendPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChannelHandler implements Echo-based HTTP handlers for the channel API.
type ChannelHandler struct {
	logger *xlogger.Logger
	uc     *usecase.ChannelUseCase
	hub    *ws.Hub
}

func NewChannelHandler(logger *xlogger.Logger, uc *usecase.ChannelUseCase, hub *ws.Hub) *ChannelHandler {
	return &ChannelHandler{logger: logger, uc: uc, hub: hub}
}

func (h *ChannelHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/channel", h.Analyze)
	g.GET("/healthz", h.Health)

	if h.hub != nil {
		e.GET("/ws/channel", h.hub.ServeWS)
	}
}

func (h *ChannelHandler) Analyze(c echo.Context) error {
	req := &models.ChannelRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:     req.Symbol,
		Prices:     req.Prices,
		Multiplier: req.Multiplier,
		Source:     "http",
	})
	if err != nil {
		h.logger.Error("channel usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapEngineError(err))
	}

	return xhttp.SuccessResponse(c, models.NewChannelResponse(req.Symbol, res))
}

func (h *ChannelHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"ws_clients": h.clientCount(),
	})
}

func (h *ChannelHandler) clientCount() int {
	if h.hub == nil {
		return 0
	}
	return h.hub.ClientCount()
}

// mapEngineError translates engine sentinels into the API error taxonomy.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, channel.ErrInsufficientData):
		return xhttp.UnprocessableError("ERR_INSUFFICIENT_DATA", "at least 2 price points are required").WithError(err)
	case errors.Is(err, channel.ErrInvalidInput):
		return xhttp.UnprocessableError("ERR_INVALID_INPUT", "price series is malformed").WithError(err)
	default:
		return xhttp.InternalError("analysis failed").WithError(err)
	}
}
