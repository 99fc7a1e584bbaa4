package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/metrics"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/bitquery"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/chain"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/evmrpc"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/repository/clickhouse"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/service"
)

// chainProviders holds the configured chain adapters. A nil field means the
// feature runs database-only.
type chainProviders struct {
	verifier service.TransactionVerifier
	stats    service.TransferStatsSource

	logger     *zap.Logger
	bitquery   *bitquery.Client
	clickhouse *clickhouse.Repository
	eth        *ethclient.Client
}

func newChainProviders(ctx context.Context, cfg config, token model.Token, logger *zap.Logger) (*chainProviders, error) {
	verifierKind, err := chain.ParseProvider(cfg.Verifier)
	if err != nil {
		return nil, fmt.Errorf("verifier: %w", err)
	}
	statsKind, err := chain.ParseProvider(cfg.StatsSource)
	if err != nil {
		return nil, fmt.Errorf("stats source: %w", err)
	}
	if statsKind == chain.ProviderRPC {
		return nil, errors.New("stats source: rpc cannot aggregate transfers, use bitquery or clickhouse")
	}

	p := &chainProviders{logger: logger}

	switch verifierKind {
	case chain.ProviderBitquery:
		c, err := p.bitqueryClient(cfg)
		if err != nil {
			return nil, err
		}
		if c != nil {
			p.verifier = c
		}
	case chain.ProviderClickhouse:
		r, err := p.clickhouseRepository(cfg)
		if err != nil {
			return nil, err
		}
		p.verifier = r
	case chain.ProviderRPC:
		v, err := p.rpcVerifier(ctx, cfg, token)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.verifier = v
	}

	switch statsKind {
	case chain.ProviderBitquery:
		c, err := p.bitqueryClient(cfg)
		if err != nil {
			p.Close()
			return nil, err
		}
		if c != nil {
			p.stats = c
		}
	case chain.ProviderClickhouse:
		r, err := p.clickhouseRepository(cfg)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.stats = r
	}

	logger.Info("chain providers configured",
		zap.String("verifier", providerName(verifierKind, p.verifier != nil)),
		zap.String("stats_source", providerName(statsKind, p.stats != nil)),
	)
	return p, nil
}

func providerName(kind chain.Provider, enabled bool) string {
	if !enabled {
		return string(chain.ProviderNone)
	}
	return string(kind)
}

// bitqueryClient returns nil without an API key.
func (p *chainProviders) bitqueryClient(cfg config) (*bitquery.Client, error) {
	if p.bitquery != nil {
		return p.bitquery, nil
	}
	if cfg.BitqueryAPIKey == "" {
		p.logger.Warn("bitquery api key not set, chain features run database-only")
		return nil, nil
	}
	c, err := bitquery.NewClient(
		&http.Client{Timeout: cfg.ChainTimeout},
		bitquery.Config{
			Endpoint: cfg.BitqueryURL,
			APIKey:   cfg.BitqueryAPIKey,
			Network:  cfg.BitqueryNetwork,
			RPS:      cfg.BitqueryRPS,
		},
		metrics.NewChainClient(string(chain.ProviderBitquery)),
	)
	if err != nil {
		return nil, fmt.Errorf("init bitquery client: %w", err)
	}
	p.bitquery = c
	return c, nil
}

func (p *chainProviders) clickhouseRepository(cfg config) (*clickhouse.Repository, error) {
	if p.clickhouse != nil {
		return p.clickhouse, nil
	}
	r, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.ClickhouseNetwork, metrics.NewChainClient(string(chain.ProviderClickhouse)))
	if err != nil {
		return nil, fmt.Errorf("init transfer index: %w", err)
	}
	p.clickhouse = r
	return r, nil
}

func (p *chainProviders) rpcVerifier(ctx context.Context, cfg config, token model.Token) (*evmrpc.Verifier, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("rpc verifier requires --rpc-url")
	}
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	p.eth = eth
	v, err := evmrpc.NewVerifier(eth, metrics.NewChainClient(string(chain.ProviderRPC)), token)
	if err != nil {
		return nil, fmt.Errorf("init rpc verifier: %w", err)
	}
	return v, nil
}

// Close releases provider connections.
func (p *chainProviders) Close() {
	if p.clickhouse != nil {
		if err := p.clickhouse.Close(); err != nil {
			p.logger.Error("failed to close transfer index", zap.Error(err))
		}
	}
	if p.eth != nil {
		p.eth.Close()
	}
}
