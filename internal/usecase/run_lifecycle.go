package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
)

// lifecycleRunner is shared by the deploy, update and migrate use cases: it
// fills a request from the runtime config, runs it and records the outcome.
type lifecycleRunner struct {
	config    *config.RuntimeConfig
	lifecycle *Lifecycle
	networks  NetworkRegistry
	selector  NetworkSelector
	repo      DeploymentRepository
	progress  ProgressSink
	now       func() time.Time
}

func newLifecycleRunner(
	cfg *config.RuntimeConfig,
	lifecycle *Lifecycle,
	networks NetworkRegistry,
	selector NetworkSelector,
	repo DeploymentRepository,
	progress ProgressSink,
) lifecycleRunner {
	return lifecycleRunner{
		config:    cfg,
		lifecycle: lifecycle,
		networks:  networks,
		selector:  selector,
		repo:      repo,
		progress:  progress,
		now:       time.Now,
	}
}

// run completes req with the configured network, secret and gas override,
// executes it and records the result, partial or not.
func (lr lifecycleRunner) run(ctx context.Context, req LifecycleRequest) (*LifecycleResult, error) {
	network, err := lr.networkName(ctx)
	if err != nil {
		return nil, err
	}

	req.Network = network
	req.Secret = lr.config.Secret
	req.Gas = domain.GasOverride{Rate: lr.config.GasPrice, Denom: lr.config.FeeDenom}

	result, runErr := lr.lifecycle.Run(ctx, req)

	if reachedNetwork(result) {
		record := models.NewDeployment(req.Flow, result.Deployment, result.Label, result.FailedStage, runErr, lr.now())
		if err := lr.repo.SaveDeployment(ctx, record); err != nil {
			lr.progress.Error(fmt.Sprintf("Warning: failed to record deployment: %v", err))
		}
	}

	return result, runErr
}

// reachedNetwork reports whether a run got past local validation. Runs that
// failed while resolving never touched the chain and are not recorded.
func reachedNetwork(result *LifecycleResult) bool {
	if len(result.Deployment.Transactions) > 0 {
		return true
	}
	switch result.FailedStage {
	case "", domain.StageIdle, domain.StageResolving:
		return false
	}
	return true
}

// networkName returns the configured network, prompting for one when none is
// set and the session is interactive
func (lr lifecycleRunner) networkName(ctx context.Context) (string, error) {
	if lr.config.Network != "" || lr.config.NonInteractive || lr.selector == nil {
		return lr.config.Network, nil
	}

	name, err := lr.selector.SelectNetwork(ctx, lr.networks.Names(), "Select network")
	if err != nil {
		if errors.Is(err, ErrSelectionUnavailable) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// ErrSelectionUnavailable is returned by selectors that cannot prompt
var ErrSelectionUnavailable = errors.New("interactive selection unavailable")

// resolveCodeID prefers an explicit value over the CODE_ID environment value
func (lr lifecycleRunner) resolveCodeID(explicit string) (uint64, error) {
	if explicit == "" {
		explicit = lr.config.CodeID
	}
	return domain.ParseCodeID(explicit)
}

// resolveContract prefers an explicit address over the CONTRACT_ADDR environment value
func (lr lifecycleRunner) resolveContract(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return lr.config.Contract
}

// resolveArtifactPath makes the artifact path absolute against the project root
func (lr lifecycleRunner) resolveArtifactPath(explicit string) string {
	path := explicit
	if path == "" && lr.config.Project != nil {
		path = lr.config.Project.Artifact
	}
	if path == "" {
		path = config.DefaultArtifactPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(lr.config.ProjectRoot, path)
	}
	return path
}

// resolveLabel prefers an explicit label over the project label
func (lr lifecycleRunner) resolveLabel(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if lr.config.Project != nil && lr.config.Project.Label != "" {
		return lr.config.Project.Label
	}
	return domain.DefaultLabel
}
