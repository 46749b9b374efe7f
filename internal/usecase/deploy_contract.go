package usecase

import (
	"context"
	"fmt"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
)

// DeployContractParams contains parameters for the deploy, upload and instantiate flows
type DeployContractParams struct {
	Flow         domain.Flow // FlowDeploy, FlowUpload or FlowInstantiate
	ArtifactPath string
	CodeID       string // instantiate only; falls back to CODE_ID
	Label        string
	NoAdmin      bool
}

// DeployContract uploads and/or instantiates the contract
type DeployContract struct {
	runner lifecycleRunner
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	lifecycle *Lifecycle,
	networks NetworkRegistry,
	selector NetworkSelector,
	repo DeploymentRepository,
	progress ProgressSink,
) *DeployContract {
	return &DeployContract{
		runner: newLifecycleRunner(cfg, lifecycle, networks, selector, repo, progress),
	}
}

// Run executes the use case
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*LifecycleResult, error) {
	req := LifecycleRequest{
		Flow:    params.Flow,
		Label:   uc.runner.resolveLabel(params.Label),
		NoAdmin: params.NoAdmin,
	}

	switch params.Flow {
	case domain.FlowDeploy, domain.FlowUpload:
		req.ArtifactPath = uc.runner.resolveArtifactPath(params.ArtifactPath)
	case domain.FlowInstantiate:
		codeID, err := uc.runner.resolveCodeID(params.CodeID)
		if err != nil {
			return nil, err
		}
		req.CodeID = codeID
	default:
		return nil, fmt.Errorf("unsupported deploy flow %q", params.Flow)
	}

	return uc.runner.run(ctx, req)
}
