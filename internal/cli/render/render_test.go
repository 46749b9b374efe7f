package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

func init() {
	color.NoColor = true
}

func partialResult() *usecase.LifecycleResult {
	return &usecase.LifecycleResult{
		Flow:        domain.FlowDeploy,
		Stage:       domain.StageFailed,
		FailedStage: domain.StageInstantiating,
		Gas:         domain.GasSpecification{Rate: decimal.RequireFromString("0.04"), Denom: "ujunox"},
		Label:       domain.DefaultLabel,
		Deployment: domain.DeploymentResult{
			Network:      "juno_testnet",
			ChainID:      "uni-5",
			Sender:       "juno1sender",
			CodeID:       42,
			Transactions: []domain.TxResult{{TxHash: "AB12", Height: 10, GasUsed: 1500000}},
		},
	}
}

func TestLifecycleRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewLifecycleRenderer(&buf, true).Render(partialResult(), errors.New("instantiate rejected"))
	require.NoError(t, err)

	var out LifecycleOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "partial", out.Status)
	assert.Equal(t, domain.StageInstantiating, out.FailedStage)
	assert.Equal(t, uint64(42), out.CodeID)
	assert.Equal(t, "0.04ujunox", out.GasPrice)
	assert.Equal(t, "instantiate rejected", out.Error)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, "AB12", out.Transactions[0].TxHash)
}

func TestLifecycleRendererHuman(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		result := partialResult()
		result.Stage = domain.StageDone
		result.FailedStage = ""
		result.Deployment.ContractAddress = "juno1contract"

		var buf bytes.Buffer
		require.NoError(t, NewLifecycleRenderer(&buf, false).Render(result, nil))

		out := buf.String()
		assert.Contains(t, out, "Deploy completed on juno_testnet")
		assert.Contains(t, out, "juno_testnet (uni-5)")
		assert.Contains(t, out, "juno1contract")
		assert.Contains(t, out, "42")
		assert.Contains(t, out, "AB12")
	})

	t.Run("partial", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewLifecycleRenderer(&buf, false).Render(partialResult(), errors.New("boom")))
		assert.Contains(t, buf.String(), "partially completed on juno_testnet (failed while instantiating)")
	})

	t.Run("failed before any transaction", func(t *testing.T) {
		result := partialResult()
		result.Deployment.Transactions = nil

		var buf bytes.Buffer
		require.NoError(t, NewLifecycleRenderer(&buf, false).Render(result, errors.New("boom")))
		assert.Empty(t, buf.String())

		buf.Reset()
		require.NoError(t, NewLifecycleRenderer(&buf, true).Render(result, errors.New("boom")))
		assert.Contains(t, buf.String(), `"status": "failed"`)
		assert.Contains(t, buf.String(), `"transactions": []`)
	})
}

func TestRenderNetworkYAML(t *testing.T) {
	profile := &domain.NetworkProfile{
		Name:            "juno_testnet",
		ChainID:         "uni-5",
		DefaultFeeToken: "ujunox",
		FeeTokens:       []domain.FeeToken{{Denom: "ujunox", Decimals: 6}},
		DefaultGasPrice: decimal.RequireFromString("0.04"),
		GasPriceStep: domain.GasPriceStep{
			Low:     decimal.RequireFromString("0.03"),
			Average: decimal.RequireFromString("0.04"),
			High:    decimal.RequireFromString("0.05"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf, false).RenderNetwork(profile))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "uni-5", decoded["chainId"])
	assert.Equal(t, "0.04", decoded["defaultGasPrice"])
	assert.Equal(t, map[string]any{"low": "0.03", "average": "0.04", "high": "0.05"}, decoded["gasPriceStep"])
	assert.Equal(t, []any{map[string]any{"denom": "ujunox", "decimals": 6}}, decoded["feeTokens"])
	assert.Contains(t, decoded, "addressPrefix")
	assert.NotContains(t, decoded, "ChainID")
}

func TestTitleFlow(t *testing.T) {
	tests := map[domain.Flow]string{
		domain.FlowDeploy:      "Deploy",
		domain.FlowInstantiate: "Instantiate",
		domain.FlowMigrate:     "Migrate",
		"":                     "",
	}
	for flow, want := range tests {
		assert.Equal(t, want, titleFlow(flow))
	}
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Unknown network", FormatError("unknown network"))
}
