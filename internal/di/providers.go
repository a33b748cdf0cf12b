package di

import (
	"fmt"

	"StockScope/internal/domain/repository"
	"StockScope/internal/handler/api"
	"StockScope/internal/indicator"
	"StockScope/internal/screener"
	"StockScope/internal/service/yahoo"
	"StockScope/internal/symbols"
	"StockScope/internal/usecase"
	"StockScope/pkg/cache"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
	"StockScope/pkg/metrics"
	"StockScope/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the market-data gateway.
func ProvideMarketData(cfg *config.Config, logger *xlogger.Logger) repository.MarketData {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Yahoo.Timeout))
	return yahoo.New(client, logger,
		yahoo.WithEndpoints(cfg.Yahoo.ChartURL, cfg.Yahoo.SummaryURL, cfg.Yahoo.SearchURL),
	)
}

// ProvideSymbolResolver creates the resolver over the configured
// constituents source. An empty source URL means builtin-table-only.
func ProvideSymbolResolver(cfg *config.Config, logger *xlogger.Logger) repository.SymbolResolver {
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Symbols.Timeout))
	source := symbols.NewCSVSource(cfg.Symbols.SourceURL, client)
	return symbols.NewResolver(source, logger)
}

// ProvideScreener creates the fundamental screener.
func ProvideScreener(cfg *config.Config) (*screener.Screener, error) {
	strategy, err := screener.ParseStrategy(cfg.Analysis.ScreenerStrategy)
	if err != nil {
		return nil, fmt.Errorf("screener: %w", err)
	}
	return screener.New(strategy), nil
}

// ProvideEngine creates the indicator engine.
func ProvideEngine(cfg *config.Config) (*indicator.Engine, error) {
	policy, err := indicator.ParseBandPolicy(cfg.Analysis.BandPolicy)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return indicator.NewEngine(policy), nil
}

// ProvideCache creates the freshness cache backend.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		c, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideAnalyzer creates the analysis pipeline.
func ProvideAnalyzer(
	resolver repository.SymbolResolver,
	market repository.MarketData,
	scr *screener.Screener,
	engine *indicator.Engine,
	c cache.Service,
	m repository.Metrics,
	logger *xlogger.Logger,
	cfg *config.Config,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(resolver, market, scr, engine, c, m, logger,
		cfg.Cache.HistoryTTL, cfg.Cache.FundamentalTTL)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) xhttp.Handler {
	return api.NewAnalyzeHandler(logger, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *xlogger.Logger, handler xhttp.Handler, c cache.Service) *server.App {
	return server.New(cfg, logger, handler, c)
}
