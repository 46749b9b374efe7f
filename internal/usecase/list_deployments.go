package usecase

import (
	"context"
	"sort"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Network string // empty lists every network
	Status  models.DeploymentStatus
}

// DeploymentListResult contains the recorded runs and a summary
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary counts records per network and status
type DeploymentSummary struct {
	Total     int
	ByNetwork map[string]int
	ByStatus  map[models.DeploymentStatus]int
}

// ListDeployments is the use case for listing recorded runs
type ListDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
	sink   ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		config: cfg,
		repo:   repo,
		sink:   sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	network := params.Network
	if network == "" {
		network = uc.config.Network
	}

	deployments, err := uc.repo.ListDeployments(ctx, network)
	if err != nil {
		return nil, err
	}

	if params.Status != "" {
		filtered := deployments[:0]
		for _, d := range deployments {
			if d.Status == params.Status {
				filtered = append(filtered, d)
			}
		}
		deployments = filtered
	}

	sortDeployments(deployments)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}, nil
}

// sortDeployments sorts by network, then newest first
func sortDeployments(deployments []*models.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].Network != deployments[j].Network {
			return deployments[i].Network < deployments[j].Network
		}
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})
}

func calculateSummary(deployments []*models.Deployment) DeploymentSummary {
	summary := DeploymentSummary{
		Total:     len(deployments),
		ByNetwork: make(map[string]int),
		ByStatus:  make(map[models.DeploymentStatus]int),
	}
	for _, d := range deployments {
		summary.ByNetwork[d.Network]++
		summary.ByStatus[d.Status]++
	}
	return summary
}
