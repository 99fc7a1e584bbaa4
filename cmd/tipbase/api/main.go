package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/metrics"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/events"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/repository/ledger"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/service"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/transport"
)

type config struct {
	HTTPAddr      string `long:"http-addr" env:"TIPBASE_HTTP_ADDR" description:"API listen address" default:":8080"`
	MetricsAddr   string `long:"metrics-addr" env:"TIPBASE_METRICS_ADDR" description:"Optional dedicated metrics listen address; /metrics is always served by the API"`
	LogProduction bool   `long:"log-production" env:"TIPBASE_LOG_PRODUCTION" description:"Use production (JSON) logging"`

	LedgerDriver          string        `long:"ledger-driver" env:"TIPBASE_LEDGER_DRIVER" description:"Ledger database driver" choice:"mysql" choice:"sqlite" default:"sqlite"`
	LedgerDSN             string        `long:"ledger-dsn" env:"TIPBASE_LEDGER_DSN" description:"Ledger database DSN" default:"file:tipbase.db?_pragma=busy_timeout(5000)"`
	LedgerMaxIdleConns    int           `long:"ledger-max-idle-conns" env:"TIPBASE_LEDGER_MAX_IDLE_CONNS" description:"Ledger idle connection pool size" default:"5"`
	LedgerMaxOpenConns    int           `long:"ledger-max-open-conns" env:"TIPBASE_LEDGER_MAX_OPEN_CONNS" description:"Ledger open connection limit" default:"20"`
	LedgerConnMaxLifetime time.Duration `long:"ledger-conn-max-lifetime" env:"TIPBASE_LEDGER_CONN_MAX_LIFETIME" description:"Ledger connection max lifetime" default:"30m"`
	LedgerConnectAttempts int           `long:"ledger-connect-attempts" env:"TIPBASE_LEDGER_CONNECT_ATTEMPTS" description:"Ledger connect attempts at startup" default:"5"`
	LedgerConnectBackoff  time.Duration `long:"ledger-connect-backoff" env:"TIPBASE_LEDGER_CONNECT_BACKOFF" description:"Initial backoff between ledger connect attempts" default:"1s"`
	LedgerAutoMigrate     bool          `long:"ledger-auto-migrate" env:"TIPBASE_LEDGER_AUTO_MIGRATE" description:"Create or update ledger tables at startup"`

	Verifier    string `long:"verifier" env:"TIPBASE_VERIFIER" description:"Transaction verifier (bitquery, rpc, clickhouse, none)" default:"bitquery"`
	StatsSource string `long:"stats-source" env:"TIPBASE_STATS_SOURCE" description:"On-chain analytics source (bitquery, clickhouse, none)" default:"bitquery"`

	BitqueryURL     string `long:"bitquery-url" env:"TIPBASE_BITQUERY_URL" description:"Bitquery GraphQL endpoint" default:"https://graphql.bitquery.io"`
	BitqueryAPIKey  string `long:"bitquery-api-key" env:"BITQUERY_API_KEY" description:"Bitquery API key; chain features degrade to database-only when empty"`
	BitqueryNetwork string `long:"bitquery-network" env:"TIPBASE_BITQUERY_NETWORK" description:"Bitquery network name" default:"base"`
	BitqueryRPS     int    `long:"bitquery-rps" env:"TIPBASE_BITQUERY_RPS" description:"Bitquery request rate limit (0 disables)" default:"5"`

	RPCURL string `long:"rpc-url" env:"TIPBASE_RPC_URL" description:"EVM JSON-RPC endpoint for the rpc verifier"`

	ClickhouseDSN     string `long:"clickhouse-dsn" env:"TIPBASE_CLICKHOUSE_DSN" description:"Transfer index ClickHouse DSN"`
	ClickhouseNetwork string `long:"clickhouse-network" env:"TIPBASE_CLICKHOUSE_NETWORK" description:"Network name in the transfer index" default:"base"`

	TokenAddress  string `long:"token-address" env:"TIPBASE_TOKEN_ADDRESS" description:"Tip token contract address" default:"0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"`
	TokenSymbol   string `long:"token-symbol" env:"TIPBASE_TOKEN_SYMBOL" description:"Tip token symbol" default:"USDC"`
	TokenDecimals int32  `long:"token-decimals" env:"TIPBASE_TOKEN_DECIMALS" description:"Tip token decimals" default:"6"`

	ChainTimeout  time.Duration `long:"chain-timeout" env:"TIPBASE_CHAIN_TIMEOUT" description:"Timeout for chain indexer calls" default:"5s"`
	LedgerTimeout time.Duration `long:"ledger-timeout" env:"TIPBASE_LEDGER_TIMEOUT" description:"Timeout for ledger calls" default:"10s"`

	KafkaBrokers []string `long:"kafka-broker" env:"TIPBASE_KAFKA_BROKERS" env-delim:"," description:"Kafka broker address; event publishing is disabled when none are set"`
	KafkaTopic   string   `long:"kafka-topic" env:"TIPBASE_KAFKA_TOPIC" description:"Kafka topic for tip events" default:"tipbase.tips"`
}

func main() {
	dotenvErr := godotenv.Load()

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogProduction)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(dotenvErr))
	}
	if cfg.LogProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("tipbase api failed", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	db, err := ledger.Open(ctx, ledger.Config{
		Driver:          cfg.LedgerDriver,
		DSN:             cfg.LedgerDSN,
		MaxIdleConns:    cfg.LedgerMaxIdleConns,
		MaxOpenConns:    cfg.LedgerMaxOpenConns,
		ConnMaxLifetime: cfg.LedgerConnMaxLifetime,
		ConnectAttempts: cfg.LedgerConnectAttempts,
		ConnectBackoff:  cfg.LedgerConnectBackoff,
	}, logger)
	if err != nil {
		return err
	}
	if cfg.LedgerAutoMigrate {
		if err := ledger.AutoMigrate(db); err != nil {
			return err
		}
	}
	repo, err := ledger.NewRepository(db, metrics.NewLedgerRepository())
	if err != nil {
		return fmt.Errorf("init ledger repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close ledger", zap.Error(err))
		}
	}()

	token := model.Token{Address: cfg.TokenAddress, Symbol: cfg.TokenSymbol, Decimals: cfg.TokenDecimals}
	providers, err := newChainProviders(ctx, cfg, token, logger)
	if err != nil {
		return err
	}
	defer providers.Close()

	var publisher service.TipEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(
			events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic),
			metrics.NewEventPublisher(),
			logger,
			events.Config{},
		)
		if err != nil {
			return fmt.Errorf("init event publisher: %w", err)
		}
		// Queued events are flushed by Close after the server stops.
		kafkaPublisher.Start(context.WithoutCancel(ctx))
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("failed to close event publisher", zap.Error(err))
			}
		}()
		publisher = kafkaPublisher
	} else {
		logger.Info("no kafka brokers configured, tip events disabled")
	}

	timeouts := service.Timeouts{Chain: cfg.ChainTimeout, Ledger: cfg.LedgerTimeout}
	recorder, err := service.NewTipRecorder(repo, providers.verifier, publisher, metrics.NewTipRecorder(), logger, timeouts)
	if err != nil {
		return err
	}
	history, err := service.NewTipHistory(repo, timeouts)
	if err != nil {
		return err
	}
	reconciler, err := service.NewAnalyticsReconciler(repo, providers.stats, token, metrics.NewAnalyticsReconciler(), logger, timeouts)
	if err != nil {
		return err
	}
	profiles, err := service.NewProfileResolver(repo, logger, timeouts)
	if err != nil {
		return err
	}
	handler, err := transport.NewHandler(recorder, history, reconciler, profiles, repo, logger)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	return serve(ctx, cfg.HTTPAddr, transport.NewRouter(handler, metrics.NewHTTPServer(), logger), logger)
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	<-shutdownDone
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
