package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

// executeCommand runs the root command in a fresh project directory
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CHAIN", "")
	t.Setenv("MNEMONIC", "")
	t.Setenv("CODE_ID", "")
	t.Setenv("CONTRACT_ADDR", "")
	t.Setenv("GAS_PRICE", "")
	t.Setenv("STARDEPLOY_NETWORK", "")
	t.Setenv("STARDEPLOY_GAS_PRICE", "")
	return dir
}

func TestNetworksCommand(t *testing.T) {
	newProjectDir(t)

	out, err := executeCommand(t, "networks", "--json")
	require.NoError(t, err)

	var profiles []domain.NetworkProfile
	require.NoError(t, json.Unmarshal([]byte(out), &profiles))
	require.Len(t, profiles, 2)
	assert.Equal(t, "juno_testnet", profiles[0].Name)
	assert.Equal(t, "osmosis_testnet", profiles[1].Name)

	out, err = executeCommand(t, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "uni-5")
	assert.Contains(t, out, "missing")

	out, err = executeCommand(t, "networks", "show", "osmosis_testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "chainId: osmo-test-4")

	_, err = executeCommand(t, "networks", "show", "cosmoshub")
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
}

func TestConfigCommands(t *testing.T) {
	dir := newProjectDir(t)

	out, err := executeCommand(t, "config", "set", "network", "osmosis_testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "osmosis_testnet")

	data, err := os.ReadFile(filepath.Join(dir, ".stardeploy", "config.local.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"network": "osmosis_testnet"`)

	out, err = executeCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "osmosis_testnet (from config.local.json)")

	out, err = executeCommand(t, "config", "--network", "juno_testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "juno_testnet (from flag)")

	_, err = executeCommand(t, "config", "set", "network", "cosmoshub")
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)

	_, err = executeCommand(t, "config", "remove", "network")
	require.NoError(t, err)
}

func TestLifecycleCommandsFailBeforeSigning(t *testing.T) {
	newProjectDir(t)

	t.Run("no network", func(t *testing.T) {
		_, err := executeCommand(t, "update", "--non-interactive", "--contract", "juno1abc")
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	})

	t.Run("gas price outside band", func(t *testing.T) {
		out, err := executeCommand(t, "migrate", "--json", "--network", "juno_testnet", "--gas-price", "1", "--contract", "juno1abc", "--code-id", "3")
		assert.ErrorIs(t, err, domain.ErrInvalidGasPrice)
		assert.Contains(t, out, `"status": "failed"`)
	})

	t.Run("bad code id", func(t *testing.T) {
		_, err := executeCommand(t, "instantiate", "--network", "juno_testnet", "--code-id", "zero")
		assert.ErrorIs(t, err, domain.ErrInvalidCodeID)
	})

	t.Run("upload without artifact", func(t *testing.T) {
		_, err := executeCommand(t, "upload", "--network", "juno_testnet")
		assert.ErrorContains(t, err, "build the contract first")
	})
}

func TestDeploymentsCommand(t *testing.T) {
	newProjectDir(t)

	out, err := executeCommand(t, "deployments", "--json")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = executeCommand(t, "deployments", "--status", "bogus")
	assert.ErrorContains(t, err, "unknown status")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stardeploy version")
}
