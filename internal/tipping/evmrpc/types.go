package evmrpc

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of ethclient.Client the verifier reads from.
	RPCClient interface {
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
