package domain_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

func junoProfile() domain.NetworkProfile {
	return domain.NetworkProfile{
		ChainID:         "uni-5",
		Name:            "juno_testnet",
		PrettyName:      "Juno Testnet",
		AddressPrefix:   "juno",
		CoinType:        118,
		RPCURL:          "https://rpc.uni.juno.deuslabs.fi:443",
		DefaultFeeToken: "ujunox",
		FeeTokens:       []domain.FeeToken{{Denom: "ujunox", Decimals: 6}},
		StakingToken:    "ujunox",
		DefaultGasPrice: decimal.RequireFromString("0.04"),
		GasPriceStep: domain.GasPriceStep{
			Low:     decimal.RequireFromString("0.03"),
			Average: decimal.RequireFromString("0.04"),
			High:    decimal.RequireFromString("0.05"),
		},
		Daemon: "junod",
	}
}

// bech32Address encodes a 20 byte account made of fill with the given prefix
func bech32Address(t *testing.T, prefix string, fill byte) string {
	t.Helper()
	data, err := bech32.ConvertBits(bytes.Repeat([]byte{fill}, 20), 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode(prefix, data)
	require.NoError(t, err)
	return addr
}

func TestNetworkProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.NetworkProfile)
		wantErr string
	}{
		{
			name:   "valid profile",
			mutate: func(p *domain.NetworkProfile) {},
		},
		{
			name:    "missing name",
			mutate:  func(p *domain.NetworkProfile) { p.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing chain id",
			mutate:  func(p *domain.NetworkProfile) { p.ChainID = "" },
			wantErr: "chain id is required",
		},
		{
			name:    "missing rpc url",
			mutate:  func(p *domain.NetworkProfile) { p.RPCURL = "" },
			wantErr: "rpc url is required",
		},
		{
			name:    "low above average",
			mutate:  func(p *domain.NetworkProfile) { p.GasPriceStep.Low = decimal.RequireFromString("0.045") },
			wantErr: "low <= average <= high",
		},
		{
			name:    "default gas price above high",
			mutate:  func(p *domain.NetworkProfile) { p.DefaultGasPrice = decimal.RequireFromString("0.06") },
			wantErr: "outside",
		},
		{
			name:    "default fee token not supported",
			mutate:  func(p *domain.NetworkProfile) { p.DefaultFeeToken = "uatom" },
			wantErr: "not a supported fee token",
		},
		{
			name:    "negative decimals",
			mutate:  func(p *domain.NetworkProfile) { p.FeeTokens[0].Decimals = -1 },
			wantErr: "invalid fee token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := junoProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidProfile)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNetworkProfileFeeToken(t *testing.T) {
	p := junoProfile()

	token, ok := p.FeeToken("ujunox")
	require.True(t, ok)
	assert.Equal(t, int32(6), token.Decimals)

	_, ok = p.FeeToken("uosmo")
	assert.False(t, ok)

	token, err := p.DefaultToken()
	require.NoError(t, err)
	assert.Equal(t, "ujunox", token.Denom)
}

func TestNetworkProfileClone(t *testing.T) {
	p := junoProfile()
	c := p.Clone()
	c.FeeTokens[0].Denom = "changed"

	assert.Equal(t, "ujunox", p.FeeTokens[0].Denom)
}
