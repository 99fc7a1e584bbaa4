package evmrpc

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// rpcClient wraps a node client with metrics instrumentation.
type rpcClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

func newRPCClient(client RPCClient, rpcMetrics RPCMetrics) *rpcClient {
	return &rpcClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// TransactionReceipt returns the receipt of a mined transaction.
func (r *rpcClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return r.client.TransactionReceipt(ctx, txHash)
}

// HeaderByHash returns the block header for a hash.
func (r *rpcClient) HeaderByHash(ctx context.Context, hash common.Hash) (header *types.Header, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("header_by_hash", err, started)
	}()
	return r.client.HeaderByHash(ctx, hash)
}
