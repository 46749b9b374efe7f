package chain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// abciEvent is a CometBFT transaction event
type abciEvent struct {
	Type       string           `json:"type"`
	Attributes []eventAttribute `json:"attributes"`
}

type eventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// txResponse is the daemon's broadcast output (`--output json`)
type txResponse struct {
	Height    json.Number `json:"height"`
	TxHash    string      `json:"txhash"`
	Codespace string      `json:"codespace"`
	Code      uint32      `json:"code"`
	RawLog    string      `json:"raw_log"`
}

// txQueryResult is the result of the CometBFT `tx` RPC method
type txQueryResult struct {
	Hash     string      `json:"hash"`
	Height   json.Number `json:"height"`
	TxResult struct {
		Code      uint32      `json:"code"`
		Codespace string      `json:"codespace"`
		Log       string      `json:"log"`
		GasWanted json.Number `json:"gas_wanted"`
		GasUsed   json.Number `json:"gas_used"`
		Events    []abciEvent `json:"events"`
	} `json:"tx_result"`
}

// statusResult is the result of the CometBFT `status` RPC method
type statusResult struct {
	NodeInfo struct {
		Network string `json:"network"`
		Moniker string `json:"moniker"`
	} `json:"node_info"`
	SyncInfo struct {
		LatestBlockHeight json.Number `json:"latest_block_height"`
		CatchingUp        bool        `json:"catching_up"`
	} `json:"sync_info"`
}

// findAttribute returns the first value of key in events of eventType.
// Older nodes base64 encode attribute keys and values; both forms are accepted.
func findAttribute(events []abciEvent, eventType, key string) (string, bool) {
	for _, ev := range events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			k, v := attr.Key, attr.Value
			if k != key {
				k, v = decodeAttr(attr.Key), decodeAttr(attr.Value)
			}
			if k == key {
				return v, true
			}
		}
	}
	return "", false
}

func decodeAttr(s string) string {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || !utf8.Valid(raw) {
		return s
	}
	return string(raw)
}

// codeIDFromEvents extracts the stored code id of a wasm store transaction
func codeIDFromEvents(events []abciEvent) (uint64, error) {
	raw, ok := findAttribute(events, "store_code", "code_id")
	if !ok {
		return 0, fmt.Errorf("no store_code.code_id event in transaction")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid code id %q in store_code event", raw)
	}
	return id, nil
}

// contractAddressFromEvents extracts the address of an instantiated contract
func contractAddressFromEvents(events []abciEvent) (string, error) {
	addr, ok := findAttribute(events, "instantiate", "_contract_address")
	if !ok || addr == "" {
		return "", fmt.Errorf("no instantiate._contract_address event in transaction")
	}
	return addr, nil
}

func parseInt64(n json.Number) int64 {
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return v
}
