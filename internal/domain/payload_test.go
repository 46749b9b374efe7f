package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestBuildUpload(t *testing.T) {
	t.Run("empty artifact", func(t *testing.T) {
		_, err := domain.BuildUpload(nil)
		assert.ErrorIs(t, err, domain.ErrEmptyArtifact)
	})

	t.Run("bytes are copied", func(t *testing.T) {
		artifact := append([]byte{}, wasmMagic...)
		req, err := domain.BuildUpload(artifact)
		require.NoError(t, err)

		artifact[0] = 0xff
		assert.Equal(t, wasmMagic, req.Artifact)
		assert.Equal(t, domain.PayloadUpload, req.Kind())
	})
}

func TestBuildInstantiate(t *testing.T) {
	proxy := bech32Address(t, "juno", 7)
	token := domain.FeeToken{Denom: "ujunox", Decimals: 6}

	t.Run("zero code id", func(t *testing.T) {
		_, err := domain.BuildInstantiate(domain.InstantiateParams{CodeID: 0, ProxyAddress: proxy, FeeToken: token})
		assert.ErrorIs(t, err, domain.ErrInvalidCodeID)
	})

	t.Run("missing proxy", func(t *testing.T) {
		_, err := domain.BuildInstantiate(domain.InstantiateParams{CodeID: 1, FeeToken: token})
		assert.ErrorIs(t, err, domain.ErrMissingTarget)
	})

	t.Run("default lottery parameters", func(t *testing.T) {
		payload, err := domain.BuildInstantiate(domain.InstantiateParams{
			CodeID:       1,
			ProxyAddress: proxy,
			FeeToken:     token,
			Admin:        true,
		})
		require.NoError(t, err)

		assert.Equal(t, uint64(1), payload.CodeID)
		assert.Equal(t, domain.DefaultLabel, payload.Label)
		assert.True(t, payload.Admin)
		assert.Equal(t, domain.PayloadInstantiate, payload.Kind())

		msg, err := payload.Encode()
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"lottery_interval": {"time": 3600},
			"max_tickets_per_user": 100,
			"nois_proxy": "`+proxy+`",
			"percentage_per_match": [3, 6, 8, 15, 25, 40],
			"ticket_price": {"denom": "ujunox", "amount": "1000000"},
			"treasury_fee": {"denom": "ujunox", "amount": "1000000"}
		}`, string(msg))
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		params := domain.InstantiateParams{CodeID: 9, ProxyAddress: proxy, FeeToken: token, Label: "custom"}
		a, err := domain.BuildInstantiate(params)
		require.NoError(t, err)
		b, err := domain.BuildInstantiate(params)
		require.NoError(t, err)

		first, err := a.Encode()
		require.NoError(t, err)
		second, err := b.Encode()
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, "custom", a.Label)
	})
}

func TestBuildExecuteUpdate(t *testing.T) {
	contract := bech32Address(t, "juno", 3)

	payload, err := domain.BuildExecuteUpdate(contract, 1800)
	require.NoError(t, err)
	assert.Equal(t, contract, payload.Contract)

	msg, err := payload.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"update_config":{"new_config":{"interval":{"time":1800}}}}`, string(msg))

	_, err = domain.BuildExecuteUpdate(contract, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)

	_, err = domain.BuildExecuteUpdate(" ", 1800)
	assert.ErrorIs(t, err, domain.ErrMissingTarget)
}

func TestBuildMigrate(t *testing.T) {
	contract := bech32Address(t, "juno", 3)

	_, err := domain.BuildMigrate("", 4)
	assert.ErrorIs(t, err, domain.ErrMissingTarget)

	_, err = domain.BuildMigrate(contract, 0)
	assert.ErrorIs(t, err, domain.ErrMissingTarget)

	payload, err := domain.BuildMigrate(contract, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), payload.CodeID)

	msg, err := payload.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(msg))
}

func TestParseCodeID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "42", want: 42},
		{raw: " 7 ", want: 7},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseCodeID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCodeID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCoin(t *testing.T) {
	token := domain.FeeToken{Denom: "uosmo", Decimals: 6}

	coin, err := domain.NewCoin(token, decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	assert.Equal(t, domain.Coin{Denom: "uosmo", Amount: "500000"}, coin)

	_, err = domain.NewCoin(token, decimal.RequireFromString("0.0000001"))
	assert.Error(t, err)

	_, err = domain.NewCoin(token, decimal.NewFromInt(-1))
	assert.Error(t, err)

	_, err = domain.NewCoin(domain.FeeToken{}, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidFeeToken)
}
