package usecase

import (
	"context"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
)

// NetworkRegistry resolves network names to profiles
type NetworkRegistry interface {
	Resolve(name string) (domain.NetworkProfile, error)
	Names() []string
}

// ProxyDirectory looks up the auxiliary nois proxy address of a network
type ProxyDirectory interface {
	Lookup(profile domain.NetworkProfile) (string, error)
}

// ArtifactReader reads the compiled contract
type ArtifactReader interface {
	ReadArtifact(ctx context.Context, path string) ([]byte, error)
}

// SessionRequest carries everything needed to open a signing session
type SessionRequest struct {
	Profile domain.NetworkProfile
	Secret  domain.SecretPhrase
	Gas     domain.GasSpecification
}

// SessionFactory opens signing sessions against a network
type SessionFactory interface {
	Open(ctx context.Context, req SessionRequest) (SigningSession, error)
}

// UploadResult is returned by a successful code upload
type UploadResult struct {
	CodeID uint64
	Tx     domain.TxResult
}

// InstantiateResult is returned by a successful instantiation
type InstantiateResult struct {
	ContractAddress string
	Tx              domain.TxResult
}

// SigningSession submits signed lifecycle operations for one run.
// A transaction that was committed but failed on chain is returned
// together with the error so its hash is not lost.
type SigningSession interface {
	Info() domain.Session
	Upload(ctx context.Context, req domain.UploadRequest) (*UploadResult, error)
	Instantiate(ctx context.Context, payload domain.InstantiatePayload) (*InstantiateResult, error)
	Execute(ctx context.Context, payload domain.ExecutePayload) (*domain.TxResult, error)
	Migrate(ctx context.Context, payload domain.MigratePayload) (*domain.TxResult, error)
	Close() error
}

// DeploymentRepository persists lifecycle run records
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	ListDeployments(ctx context.Context, network string) ([]*models.Deployment, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkSelector picks a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
