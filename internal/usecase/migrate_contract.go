package usecase

import (
	"context"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// MigrateContractParams contains parameters for a migration
type MigrateContractParams struct {
	Contract string // falls back to CONTRACT_ADDR
	CodeID   string // falls back to CODE_ID
}

// MigrateContract moves a deployed contract to a new code id
type MigrateContract struct {
	runner lifecycleRunner
}

// NewMigrateContract creates a new MigrateContract use case
func NewMigrateContract(
	cfg *config.RuntimeConfig,
	lifecycle *Lifecycle,
	networks NetworkRegistry,
	selector NetworkSelector,
	repo DeploymentRepository,
	progress ProgressSink,
) *MigrateContract {
	return &MigrateContract{
		runner: newLifecycleRunner(cfg, lifecycle, networks, selector, repo, progress),
	}
}

// Run executes the use case
func (uc *MigrateContract) Run(ctx context.Context, params MigrateContractParams) (*LifecycleResult, error) {
	codeID, err := uc.runner.resolveCodeID(params.CodeID)
	if err != nil {
		return nil, err
	}

	return uc.runner.run(ctx, LifecycleRequest{
		Flow:     domain.FlowMigrate,
		Contract: uc.runner.resolveContract(params.Contract),
		CodeID:   codeID,
	})
}
