package api

import (
	"errors"

	"StockScope/internal/domain/models"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler exposes the analysis pipeline over HTTP.
type AnalyzeHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
}

func NewAnalyzeHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalyzeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analyze", h.Analyze)
	g.GET("/suggest", h.Suggest)
	g.POST("/symbols/reload", h.ReloadSymbols)

	e.GET("/healthz", h.Health)
}

func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), req.Query, req.Interval)
	if err != nil {
		h.logger.Error("analyze usecase error",
			xlogger.String("query", req.Query),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeHandler) Suggest(c echo.Context) error {
	req := &models.SuggestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Suggest(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		h.logger.Error("suggest usecase error",
			xlogger.String("query", req.Query),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalyzeHandler) ReloadSymbols(c echo.Context) error {
	if err := h.analyzer.ReloadSymbols(c.Request().Context()); err != nil {
		h.logger.Error("symbol reload failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "reloaded"})
}

func (h *AnalyzeHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// mapDomainError translates pipeline sentinels into transport errors.
// Anything unrecognized stays internal.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, models.ErrSymbolNotFound):
		return xhttp.NotFoundError("symbol not found").WithError(err)
	case errors.Is(err, models.ErrInsufficientData), errors.Is(err, models.ErrEmptySeries):
		return xhttp.UnprocessableError("INSUFFICIENT_DATA", "not enough price history for analysis").WithError(err)
	case errors.Is(err, models.ErrMalformedSnapshot):
		return xhttp.BadGatewayError("upstream returned an unusable response").WithError(err)
	case errors.Is(err, models.ErrGatewayTimeout):
		return xhttp.GatewayTimeoutError("market data provider timed out").WithError(err)
	case errors.Is(err, models.ErrGatewayUnavailable):
		return xhttp.BadGatewayError("market data provider unavailable").WithError(err)
	default:
		return xhttp.InternalError("internal error").WithError(err)
	}
}
