package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testAddress(t *testing.T, prefix string, fill byte) string {
	t.Helper()
	data, err := bech32.ConvertBits(bytes.Repeat([]byte{fill}, 20), 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode(prefix, data)
	require.NoError(t, err)
	return addr
}

func junoProfile() domain.NetworkProfile {
	return domain.NetworkProfile{
		ChainID:         "uni-5",
		Name:            "juno_testnet",
		AddressPrefix:   "juno",
		CoinType:        118,
		RPCURL:          "http://localhost:26657",
		DefaultFeeToken: "ujunox",
		FeeTokens:       []domain.FeeToken{{Denom: "ujunox", Decimals: 6}},
		DefaultGasPrice: decimal.RequireFromString("0.04"),
		GasPriceStep: domain.GasPriceStep{
			Low:     decimal.RequireFromString("0.03"),
			Average: decimal.RequireFromString("0.04"),
			High:    decimal.RequireFromString("0.05"),
		},
		Daemon: "junod",
	}
}

// fakeNetworks is a map backed NetworkRegistry
type fakeNetworks map[string]domain.NetworkProfile

func (f fakeNetworks) Resolve(name string) (domain.NetworkProfile, error) {
	p, ok := f[name]
	if !ok {
		return domain.NetworkProfile{}, &domain.UnknownNetworkError{Name: name, Known: f.Names()}
	}
	return p.Clone(), nil
}

func (f fakeNetworks) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// fakeProxies maps network names to proxy addresses
type fakeProxies map[string]string

func (f fakeProxies) Lookup(profile domain.NetworkProfile) (string, error) {
	addr, ok := f[profile.Name]
	if !ok {
		return "", domain.ErrMissingProxy
	}
	return addr, nil
}

type fakeArtifacts struct {
	data []byte
	err  error
}

func (f fakeArtifacts) ReadArtifact(ctx context.Context, path string) ([]byte, error) {
	return f.data, f.err
}

// recordingProgress keeps every event and error message
type recordingProgress struct {
	events []usecase.ProgressEvent
	errors []string
}

func (r *recordingProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.events = append(r.events, event)
}

func (r *recordingProgress) Info(message string) {}

func (r *recordingProgress) Error(message string) {
	r.errors = append(r.errors, message)
}

// MockSessionFactory is a mock implementation of SessionFactory
type MockSessionFactory struct {
	mock.Mock
}

func (m *MockSessionFactory) Open(ctx context.Context, req usecase.SessionRequest) (usecase.SigningSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.SigningSession), args.Error(1)
}

// MockSigningSession is a mock implementation of SigningSession
type MockSigningSession struct {
	mock.Mock
}

func (m *MockSigningSession) Info() domain.Session {
	args := m.Called()
	return args.Get(0).(domain.Session)
}

func (m *MockSigningSession) Upload(ctx context.Context, req domain.UploadRequest) (*usecase.UploadResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UploadResult), args.Error(1)
}

func (m *MockSigningSession) Instantiate(ctx context.Context, payload domain.InstantiatePayload) (*usecase.InstantiateResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.InstantiateResult), args.Error(1)
}

func (m *MockSigningSession) Execute(ctx context.Context, payload domain.ExecutePayload) (*domain.TxResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxResult), args.Error(1)
}

func (m *MockSigningSession) Migrate(ctx context.Context, payload domain.MigratePayload) (*domain.TxResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TxResult), args.Error(1)
}

func (m *MockSigningSession) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, network string) ([]*models.Deployment, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

// memoryConfigStore is an in-memory LocalConfigRepository
type memoryConfigStore struct {
	cfg     *config.LocalConfig
	saveErr error
}

func (s *memoryConfigStore) Exists() bool { return s.cfg != nil }

func (s *memoryConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if s.cfg == nil {
		return config.DefaultLocalConfig(), nil
	}
	c := *s.cfg
	return &c, nil
}

func (s *memoryConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	c := *cfg
	s.cfg = &c
	return nil
}

func (s *memoryConfigStore) GetPath() string { return ".stardeploy/config.local.json" }

var errBoom = errors.New("boom")
