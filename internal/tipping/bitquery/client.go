// Package bitquery queries the Bitquery GraphQL API for transaction status and
// received-transfer aggregates.
package bitquery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"go.uber.org/ratelimit"
)

const (
	DefaultEndpoint = "https://graphql.bitquery.io"
	DefaultNetwork  = "base"

	maxResponseBytes = 1 << 20
)

// Config configures a Client.
type Config struct {
	Endpoint string
	APIKey   string
	Network  string
	// RPS caps outgoing requests per second. Zero disables the limit.
	RPS int
}

// Client is a Bitquery GraphQL client.
type Client struct {
	http     HTTPDoer
	endpoint string
	apiKey   string
	network  string
	limiter  ratelimit.Limiter
	metrics  Metrics
}

// NewClient builds a client. httpClient carries the transport timeouts.
func NewClient(httpClient HTTPDoer, cfg Config, metrics Metrics) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("bitquery http client is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("bitquery api key is required")
	}
	if metrics == nil {
		return nil, errors.New("bitquery metrics is required")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		http:     httpClient,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		network:  cfg.Network,
		limiter:  limiter,
		metrics:  metrics,
	}, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// query posts a GraphQL document and decodes its data object into out.
func (c *Client) query(ctx context.Context, document string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode graphql request: %w", err)
	}

	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post graphql query: %w: %w", model.ErrUpstreamUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read graphql response: %w: %w", model.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphql status %d: %w", resp.StatusCode, model.ErrUpstreamUnavailable)
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w: %w", model.ErrMalformedResponse, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error %q: %w", envelope.Errors[0].Message, model.ErrMalformedResponse)
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return fmt.Errorf("graphql response has no data: %w", model.ErrMalformedResponse)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w: %w", model.ErrMalformedResponse, err)
	}
	return nil
}

// waitTurn blocks until the limiter admits a request or ctx ends. An abandoned
// wait still consumes its slot once the limiter releases it.
func (c *Client) waitTurn(ctx context.Context) error {
	admitted := make(chan struct{})
	go func() {
		c.limiter.Take()
		close(admitted)
	}()

	select {
	case <-admitted:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for rate limit: %w: %w", model.ErrUpstreamUnavailable, ctx.Err())
	}
}

// Bitquery matches addresses and hashes in lower case.
func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
