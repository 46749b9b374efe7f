package chain

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestCodeIDFromEvents(t *testing.T) {
	tests := []struct {
		name    string
		events  []abciEvent
		want    uint64
		wantErr bool
	}{
		{
			name: "plain attributes",
			events: []abciEvent{
				{Type: "message", Attributes: []eventAttribute{{Key: "action", Value: "/cosmwasm.wasm.v1.MsgStoreCode"}}},
				{Type: "store_code", Attributes: []eventAttribute{{Key: "code_checksum", Value: "abcd"}, {Key: "code_id", Value: "42"}}},
			},
			want: 42,
		},
		{
			name: "base64 attributes",
			events: []abciEvent{
				{Type: "store_code", Attributes: []eventAttribute{{Key: b64("code_id"), Value: b64("7")}}},
			},
			want: 7,
		},
		{
			name:    "missing event",
			events:  []abciEvent{{Type: "message"}},
			wantErr: true,
		},
		{
			name: "zero code id",
			events: []abciEvent{
				{Type: "store_code", Attributes: []eventAttribute{{Key: "code_id", Value: "0"}}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codeIDFromEvents(tt.events)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContractAddressFromEvents(t *testing.T) {
	addr, err := contractAddressFromEvents([]abciEvent{
		{Type: "instantiate", Attributes: []eventAttribute{{Key: "_contract_address", Value: "juno1contract"}, {Key: "code_id", Value: "42"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "juno1contract", addr)

	addr, err = contractAddressFromEvents([]abciEvent{
		{Type: "instantiate", Attributes: []eventAttribute{{Key: b64("_contract_address"), Value: b64("osmo1contract")}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "osmo1contract", addr)

	_, err = contractAddressFromEvents(nil)
	assert.Error(t, err)
}

func TestTxQueryResultDecoding(t *testing.T) {
	raw := `{
		"hash": "AB12",
		"height": "1234",
		"tx_result": {
			"code": 0,
			"gas_wanted": "200000",
			"gas_used": "150321",
			"events": [{"type": "store_code", "attributes": [{"key": "code_id", "value": "42", "index": true}]}]
		}
	}`

	var res txQueryResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	assert.Equal(t, int64(1234), parseInt64(res.Height))
	assert.Equal(t, int64(150321), parseInt64(res.TxResult.GasUsed))

	id, err := codeIDFromEvents(res.TxResult.Events)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	assert.Equal(t, int64(0), parseInt64(""))
}
