package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/rpc"
)

// CometClient talks JSON-RPC 2.0 to a CometBFT node
type CometClient struct {
	client *rpc.Client
	log    *slog.Logger

	// PollInterval and ConfirmTimeout bound WaitForTx
	PollInterval   time.Duration
	ConfirmTimeout time.Duration
}

// DialComet connects to the node at url
func DialComet(ctx context.Context, url string, log *slog.Logger) (*CometClient, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", url, err)
	}
	return &CometClient{
		client:         client,
		log:            log.With("component", "CometClient"),
		PollInterval:   time.Second,
		ConfirmTimeout: 2 * time.Minute,
	}, nil
}

// Status returns the node status
func (c *CometClient) Status(ctx context.Context) (*statusResult, error) {
	var res statusResult
	if err := c.client.CallContext(ctx, &res, "status"); err != nil {
		return nil, fmt.Errorf("failed to query node status: %w", err)
	}
	return &res, nil
}

// CheckChainID verifies the node serves the expected chain
func (c *CometClient) CheckChainID(ctx context.Context, chainID string) error {
	status, err := c.Status(ctx)
	if err != nil {
		return err
	}
	if status.NodeInfo.Network != chainID {
		return fmt.Errorf("chain ID mismatch: expected %s, got %s", chainID, status.NodeInfo.Network)
	}
	return nil
}

// Tx looks up a committed transaction by its hex hash
func (c *CometClient) Tx(ctx context.Context, txHash string) (*txQueryResult, error) {
	hash, err := hex.DecodeString(strings.TrimPrefix(txHash, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid tx hash %q: %w", txHash, err)
	}

	var res txQueryResult
	// []byte marshals as base64, which is what the node expects for hash
	if err := c.client.CallContext(ctx, &res, "tx", hash, false); err != nil {
		return nil, err
	}
	return &res, nil
}

// WaitForTx polls until txHash is committed, ConfirmTimeout passes or ctx ends.
// A committed transaction with a non-zero code is returned as an error.
func (c *CometClient) WaitForTx(ctx context.Context, txHash string) (*txQueryResult, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.PollInterval
	policy.MaxInterval = 5 * c.PollInterval
	policy.MaxElapsedTime = c.ConfirmTimeout

	var attempts int
	res, err := backoff.RetryWithData(func() (*txQueryResult, error) {
		attempts++
		res, err := c.Tx(ctx, txHash)
		if err != nil {
			if strings.Contains(err.Error(), "invalid tx hash") {
				return nil, backoff.Permanent(err)
			}
			c.log.Debug("transaction not yet committed", "tx", txHash, "attempt", attempts, "error", err)
			return nil, err
		}
		return res, nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("transaction %s not confirmed after %d attempts: %w", txHash, attempts, err)
	}

	if res.TxResult.Code != 0 {
		return res, fmt.Errorf("transaction %s failed with code %d (%s): %s",
			txHash, res.TxResult.Code, res.TxResult.Codespace, res.TxResult.Log)
	}
	return res, nil
}

// Close closes the underlying connection
func (c *CometClient) Close() {
	c.client.Close()
}
