package usecase

import (
	"context"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// UpdateContractParams contains parameters for the config update
type UpdateContractParams struct {
	Contract        string // falls back to CONTRACT_ADDR
	IntervalSeconds int64
}

// UpdateContract changes the lottery interval of a deployed contract
type UpdateContract struct {
	runner lifecycleRunner
}

// NewUpdateContract creates a new UpdateContract use case
func NewUpdateContract(
	cfg *config.RuntimeConfig,
	lifecycle *Lifecycle,
	networks NetworkRegistry,
	selector NetworkSelector,
	repo DeploymentRepository,
	progress ProgressSink,
) *UpdateContract {
	return &UpdateContract{
		runner: newLifecycleRunner(cfg, lifecycle, networks, selector, repo, progress),
	}
}

// Run executes the use case
func (uc *UpdateContract) Run(ctx context.Context, params UpdateContractParams) (*LifecycleResult, error) {
	return uc.runner.run(ctx, LifecycleRequest{
		Flow:            domain.FlowUpdate,
		Contract:        uc.runner.resolveContract(params.Contract),
		IntervalSeconds: params.IntervalSeconds,
	})
}
