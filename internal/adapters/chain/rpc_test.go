package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fakeNode serves CometBFT JSON-RPC from handle
type fakeNode struct {
	chainID string
	txs     map[string]string // upper case hex hash -> tx result JSON
	misses  atomic.Int32      // number of tx lookups answered with "not found" before serving txs
	calls   atomic.Int32
}

func newFakeNode(t *testing.T, chainID string) (*fakeNode, *httptest.Server) {
	t.Helper()
	node := &fakeNode{chainID: chainID, txs: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(node.serve))
	t.Cleanup(srv.Close)
	return node, srv
}

func (n *fakeNode) serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var result string
	var rpcErr *rpcError
	switch req.Method {
	case "status":
		result = `{"node_info":{"network":"` + n.chainID + `","moniker":"test"},"sync_info":{"latest_block_height":"100","catching_up":false}}`
	case "tx":
		n.calls.Add(1)
		var hash []byte
		if len(req.Params) > 0 {
			_ = json.Unmarshal(req.Params[0], &hash)
		}
		key := strings.ToUpper(hex.EncodeToString(hash))
		tx, ok := n.txs[key]
		if !ok || n.misses.Add(-1) >= 0 {
			rpcErr = &rpcError{Code: -32603, Message: "tx (" + key + ") not found"}
		} else {
			result = tx
		}
	default:
		rpcErr = &rpcError{Code: -32601, Message: "method not found"}
	}

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = json.RawMessage(result)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dialTestNode(t *testing.T, url string) *CometClient {
	t.Helper()
	client, err := DialComet(context.Background(), url, discardLogger())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	client.PollInterval = 5 * time.Millisecond
	client.ConfirmTimeout = time.Second
	return client
}

func TestCometClientStatus(t *testing.T) {
	_, srv := newFakeNode(t, "uni-5")
	client := dialTestNode(t, srv.URL)
	ctx := context.Background()

	status, err := client.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "uni-5", status.NodeInfo.Network)
	assert.Equal(t, int64(100), parseInt64(status.SyncInfo.LatestBlockHeight))

	assert.NoError(t, client.CheckChainID(ctx, "uni-5"))
	assert.ErrorContains(t, client.CheckChainID(ctx, "osmo-test-4"), "chain ID mismatch")
}

func TestCometClientWaitForTx(t *testing.T) {
	ctx := context.Background()

	t.Run("committed after retries", func(t *testing.T) {
		node, srv := newFakeNode(t, "uni-5")
		node.txs["AB12"] = `{"hash":"AB12","height":"55","tx_result":{"code":0,"gas_used":"1000","events":[]}}`
		node.misses.Store(2)
		client := dialTestNode(t, srv.URL)

		res, err := client.WaitForTx(ctx, "AB12")
		require.NoError(t, err)
		assert.Equal(t, int64(55), parseInt64(res.Height))
		assert.Equal(t, int32(3), node.calls.Load())
	})

	t.Run("failed transaction", func(t *testing.T) {
		node, srv := newFakeNode(t, "uni-5")
		node.txs["CD34"] = `{"hash":"CD34","height":"56","tx_result":{"code":5,"codespace":"sdk","log":"insufficient funds"}}`
		client := dialTestNode(t, srv.URL)

		res, err := client.WaitForTx(ctx, "CD34")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
		require.NotNil(t, res)
		assert.Equal(t, uint32(5), res.TxResult.Code)
	})

	t.Run("never committed", func(t *testing.T) {
		_, srv := newFakeNode(t, "uni-5")
		client := dialTestNode(t, srv.URL)
		client.ConfirmTimeout = 50 * time.Millisecond

		_, err := client.WaitForTx(ctx, "EF56")
		assert.ErrorContains(t, err, "not confirmed")
	})

	t.Run("invalid hash is not retried", func(t *testing.T) {
		node, srv := newFakeNode(t, "uni-5")
		client := dialTestNode(t, srv.URL)

		_, err := client.WaitForTx(ctx, "not-hex")
		assert.ErrorContains(t, err, "invalid tx hash")
		assert.Equal(t, int32(0), node.calls.Load())
	})

	t.Run("cancelled context", func(t *testing.T) {
		_, srv := newFakeNode(t, "uni-5")
		client := dialTestNode(t, srv.URL)
		client.ConfirmTimeout = time.Minute

		cctx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()
		_, err := client.WaitForTx(cctx, "EF56")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
