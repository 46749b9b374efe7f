package domain_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSecretPhraseNeverPrints(t *testing.T) {
	secret := domain.SecretPhrase(testMnemonic)

	assert.NotContains(t, fmt.Sprintf("%s %v", secret, secret), "abandon")

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("opening session", "secret", secret)
	assert.NotContains(t, buf.String(), "abandon")
	assert.Contains(t, buf.String(), "[REDACTED]")

	assert.Equal(t, testMnemonic, secret.Reveal())
	assert.False(t, secret.Empty())
	assert.True(t, domain.SecretPhrase("").Empty())
}

func TestStageTerminal(t *testing.T) {
	assert.True(t, domain.StageDone.Terminal())
	assert.True(t, domain.StageFailed.Terminal())
	assert.False(t, domain.StageIdle.Terminal())
	assert.False(t, domain.StageUploading.Terminal())
}

func TestStageError(t *testing.T) {
	err := &domain.StageError{
		Network: "juno_testnet",
		Stage:   domain.StageInstantiating,
		Err:     fmt.Errorf("%w: node unreachable", domain.ErrTransport),
	}

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, "juno_testnet: instantiating failed: transport error: node unreachable", err.Error())

	var stageErr *domain.StageError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &stageErr))
	assert.Equal(t, domain.StageInstantiating, stageErr.Stage)
}

func TestUnknownNetworkError(t *testing.T) {
	err := &domain.UnknownNetworkError{Name: "cosmoshub", Known: []string{"juno_testnet", "osmosis_testnet"}}
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	assert.Equal(t, `unknown network "cosmoshub" (available: juno_testnet, osmosis_testnet)`, err.Error())

	empty := &domain.UnknownNetworkError{Known: []string{"juno_testnet"}}
	assert.Equal(t, "no network selected (available: juno_testnet)", empty.Error())
}
