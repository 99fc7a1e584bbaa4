// Package evmrpc verifies tip transactions against an EVM node's receipts.
package evmrpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/chain"
	"github.com/vistara-apps/tipbase-acd2-17568614/internal/tipping/model"
	"github.com/vistara-apps/tipbase-acd2-17568614/pkg/safe"
)

// Verifier reads transaction outcomes from receipts. It has no aggregate view
// of transfers, so it cannot serve analytics.
type Verifier struct {
	rpc      RPCClient
	token    common.Address
	decimals int32
}

// NewVerifier builds a verifier that reports the first transfer of token found
// in a receipt.
func NewVerifier(client RPCClient, rpcMetrics RPCMetrics, token model.Token) (*Verifier, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if !common.IsHexAddress(token.Address) {
		return nil, fmt.Errorf("invalid token address %q", token.Address)
	}
	return &Verifier{
		rpc:      newRPCClient(client, rpcMetrics),
		token:    common.HexToAddress(token.Address),
		decimals: token.Decimals,
	}, nil
}

// VerifyTransaction looks up the receipt for txHash. A transaction that is
// unknown or still pending yields model.ErrTransactionNotFound.
func (v *Verifier) VerifyTransaction(ctx context.Context, txHash string) (*model.TransactionVerification, error) {
	hash := common.HexToHash(txHash)

	receipt, err := v.rpc.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("transaction receipt %s: %w", hash.Hex(), classify(err))
	}
	if receipt == nil {
		return nil, fmt.Errorf("transaction receipt %s: empty receipt: %w", hash.Hex(), model.ErrMalformedResponse)
	}

	header, err := v.rpc.HeaderByHash(ctx, receipt.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", receipt.BlockHash.Hex(), classify(err))
	}
	if header == nil {
		return nil, fmt.Errorf("header %s: empty header: %w", receipt.BlockHash.Hex(), model.ErrMalformedResponse)
	}
	blockTime, err := safe.Int64(header.Time)
	if err != nil {
		return nil, fmt.Errorf("header %s time: %w: %w", receipt.BlockHash.Hex(), model.ErrMalformedResponse, err)
	}

	res := &model.TransactionVerification{
		Hash:      hash.Hex(),
		Value:     decimal.Zero,
		Success:   receipt.Status == types.ReceiptStatusSuccessful,
		Timestamp: time.Unix(blockTime, 0).UTC(),
	}
	for _, log := range receipt.Logs {
		transfer, ok := chain.DecodeTransfer(log)
		if !ok || transfer.Token != v.token {
			continue
		}
		res.From = transfer.From.Hex()
		res.To = transfer.To.Hex()
		res.Value = chain.FromBaseUnits(transfer.Value, v.decimals)
		break
	}

	return res, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, ethereum.NotFound):
		return fmt.Errorf("%w: %w", model.ErrTransactionNotFound, err)
	default:
		return fmt.Errorf("%w: %w", model.ErrUpstreamUnavailable, err)
	}
}
