package usecase

import (
	"context"
	"errors"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	"StockScope/internal/indicator"
	"StockScope/internal/screener"
	"StockScope/pkg/cache"
	xlogger "StockScope/pkg/logger"
)

// Analyzer runs the analysis pipeline for one request:
// resolve -> fetch history (with one fallback-interval retry) ->
// screen fundamentals (degrading on failure) -> compute indicators.
// Nothing persists past the request beyond the freshness cache.
type Analyzer struct {
	resolver repository.SymbolResolver
	market   repository.MarketData
	screener *screener.Screener
	engine   *indicator.Engine
	cache    cache.Service
	metrics  repository.Metrics
	logger   *xlogger.Logger

	historyTTL     time.Duration
	fundamentalTTL time.Duration
}

func NewAnalyzer(
	resolver repository.SymbolResolver,
	market repository.MarketData,
	scr *screener.Screener,
	engine *indicator.Engine,
	c cache.Service,
	metrics repository.Metrics,
	logger *xlogger.Logger,
	historyTTL, fundamentalTTL time.Duration,
) *Analyzer {
	return &Analyzer{
		resolver:       resolver,
		market:         market,
		screener:       scr,
		engine:         engine,
		cache:          c,
		metrics:        metrics,
		logger:         logger,
		historyTTL:     historyTTL,
		fundamentalTTL: fundamentalTTL,
	}
}

// Analyze resolves the query and produces the full analysis result.
func (a *Analyzer) Analyze(ctx context.Context, query, rawInterval string) (*models.AnalyzeResponse, error) {
	iv := repository.NormalizeInterval(rawInterval)

	symbol, err := a.resolver.Resolve(ctx, query)
	if err != nil {
		a.metrics.RecordRequest("symbol_not_found")
		return nil, err
	}

	series, err := a.fetchWithFallback(ctx, symbol, iv)
	if err != nil {
		a.metrics.RecordRequest(outcome(err))
		a.metrics.RecordError(errKind(err))
		return nil, err
	}

	// Screening degrades to a weak verdict on gateway failure; technical
	// analysis proceeds without a fundamentals verdict.
	verdict := a.screen(ctx, symbol)

	plan, err := a.engine.Compute(series)
	if err != nil {
		a.metrics.RecordRequest(outcome(err))
		a.metrics.RecordError(errKind(err))
		return nil, err
	}

	a.metrics.RecordRequest("ok")
	a.metrics.RecordLastClose(symbol, plan.LastClose)
	a.logger.Info("analysis complete",
		xlogger.String("symbol", symbol),
		xlogger.String("interval", series.Interval),
		xlogger.Int("bars", series.Len()),
		xlogger.Bool("strong", verdict.Strong),
	)

	return models.NewAnalyzeResponse(plan, verdict, a.resolver.Name(ctx, symbol), series), nil
}

// Suggest returns ranked did-you-mean hits for an unresolved query.
func (a *Analyzer) Suggest(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	return a.market.Search(ctx, query, limit)
}

// ReloadSymbols refreshes the resolver's constituents table.
func (a *Analyzer) ReloadSymbols(ctx context.Context) error {
	return a.resolver.Reload(ctx)
}

// fetchWithFallback fetches history for the requested interval and,
// when the series comes back empty or below the indicator minimum,
// retries exactly once with the coarser fallback interval. A second
// shortfall is terminal for the request.
func (a *Analyzer) fetchWithFallback(ctx context.Context, symbol string, iv repository.Interval) (*models.OHLCSeries, error) {
	period := iv.DefaultPeriod()

	series, err := a.history(ctx, symbol, iv, period)
	if err == nil && series.Len() >= indicator.MinBars {
		return series, nil
	}
	if err != nil && !errors.Is(err, models.ErrEmptySeries) {
		return nil, err
	}

	fb, ok := iv.Fallback()
	if !ok {
		return nil, insufficient(symbol, err)
	}

	a.logger.Warn("history short, retrying with fallback interval",
		xlogger.String("symbol", symbol),
		xlogger.String("interval", string(iv)),
		xlogger.String("fallback", string(fb)),
	)

	series, err = a.history(ctx, symbol, fb, period)
	if err != nil {
		if errors.Is(err, models.ErrEmptySeries) {
			return nil, insufficient(symbol, err)
		}
		return nil, err
	}
	if series.Len() < indicator.MinBars {
		return nil, insufficient(symbol, nil)
	}
	return series, nil
}

func insufficient(symbol string, cause error) error {
	if cause != nil {
		return errors.Join(models.ErrInsufficientData, cause)
	}
	return models.ErrInsufficientData
}

func (a *Analyzer) history(ctx context.Context, symbol string, iv repository.Interval, period string) (*models.OHLCSeries, error) {
	key := cache.Key("hist", symbol, string(iv), period)

	var cached models.OHLCSeries
	if err := cache.GetJSON(ctx, a.cache, key, &cached); err == nil && cached.Len() > 0 {
		return &cached, nil
	}

	start := time.Now()
	series, err := a.market.FetchHistory(ctx, symbol, iv, period)
	a.metrics.RecordLatency("fetch_history", time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, a.cache, key, series, a.historyTTL); err != nil {
		a.logger.Warn("history cache write failed", xlogger.Error(err))
	}
	return series, nil
}

func (a *Analyzer) screen(ctx context.Context, symbol string) models.Verdict {
	key := cache.Key("fund", symbol)

	var snapshot models.FundamentalsSnapshot
	if err := cache.GetJSON(ctx, a.cache, key, &snapshot); err == nil && snapshot.Symbol != "" {
		return a.screener.Screen(&snapshot)
	}

	start := time.Now()
	snap, err := a.market.FetchFundamentals(ctx, symbol)
	a.metrics.RecordLatency("fetch_fundamentals", time.Since(start).Seconds())
	if err != nil {
		a.metrics.RecordError(errKind(err))
		a.logger.Warn("fundamentals unavailable, screening degraded",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
		return models.Verdict{}
	}

	if err := cache.SetJSON(ctx, a.cache, key, snap, a.fundamentalTTL); err != nil {
		a.logger.Warn("fundamentals cache write failed", xlogger.Error(err))
	}
	return a.screener.Screen(snap)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, models.ErrSymbolNotFound):
		return "symbol_not_found"
	case errors.Is(err, models.ErrInsufficientData), errors.Is(err, models.ErrEmptySeries):
		return "insufficient_data"
	case errors.Is(err, models.ErrGatewayTimeout), errors.Is(err, models.ErrGatewayUnavailable):
		return "gateway_error"
	default:
		return "error"
	}
}

func errKind(err error) string {
	switch {
	case errors.Is(err, models.ErrGatewayTimeout):
		return "gateway_timeout"
	case errors.Is(err, models.ErrGatewayUnavailable):
		return "gateway_unavailable"
	case errors.Is(err, models.ErrEmptySeries):
		return "empty_series"
	case errors.Is(err, models.ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, models.ErrMalformedSnapshot):
		return "malformed_snapshot"
	default:
		return "other"
	}
}
