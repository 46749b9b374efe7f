package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

// LifecycleRequest describes one orchestration run
type LifecycleRequest struct {
	Flow    domain.Flow
	Network string
	Secret  domain.SecretPhrase
	Gas     domain.GasOverride

	// Upload inputs
	ArtifactPath string

	// Instantiate / migrate inputs
	CodeID  uint64
	Label   string
	NoAdmin bool

	// Execute / migrate inputs
	Contract        string
	IntervalSeconds int64
}

// LifecycleResult is the outcome of a run. On failure it still carries
// everything captured before the failing stage.
type LifecycleResult struct {
	Flow        domain.Flow
	Stage       domain.Stage
	FailedStage domain.Stage
	Transitions []domain.Stage
	Gas         domain.GasSpecification
	Label       string
	Deployment  domain.DeploymentResult
}

// transitions lists the legal moves of the orchestrator; any non-terminal
// stage may additionally move to StageFailed.
var transitions = map[domain.Stage][]domain.Stage{
	domain.StageIdle:          {domain.StageResolving},
	domain.StageResolving:     {domain.StageSigning},
	domain.StageSigning:       {domain.StageUploading, domain.StageInstantiating, domain.StageExecuting, domain.StageMigrating},
	domain.StageUploading:     {domain.StageInstantiating, domain.StageDone},
	domain.StageInstantiating: {domain.StageDone},
	domain.StageExecuting:     {domain.StageDone},
	domain.StageMigrating:     {domain.StageDone},
}

// Lifecycle sequences payload builders and the signing session
type Lifecycle struct {
	networks  NetworkRegistry
	proxies   ProxyDirectory
	artifacts ArtifactReader
	sessions  SessionFactory
	progress  ProgressSink
	log       *slog.Logger
}

// NewLifecycle creates a new Lifecycle orchestrator
func NewLifecycle(
	networks NetworkRegistry,
	proxies ProxyDirectory,
	artifacts ArtifactReader,
	sessions SessionFactory,
	progress ProgressSink,
	log *slog.Logger,
) *Lifecycle {
	return &Lifecycle{
		networks:  networks,
		proxies:   proxies,
		artifacts: artifacts,
		sessions:  sessions,
		progress:  progress,
		log:       log.With("component", "Lifecycle"),
	}
}

// lifecycleRun holds the run-local state; nothing in it outlives Run
type lifecycleRun struct {
	lc     *Lifecycle
	req    LifecycleRequest
	result *LifecycleResult

	profile domain.NetworkProfile

	upload      *domain.UploadRequest
	instantiate *domain.InstantiateParams
	execute     *domain.ExecutePayload
	migrate     *domain.MigratePayload
}

// Run executes the requested flow. Validation happens before the session is
// opened; each submission is attempted once.
func (l *Lifecycle) Run(ctx context.Context, req LifecycleRequest) (*LifecycleResult, error) {
	r := &lifecycleRun{
		lc:  l,
		req: req,
		result: &LifecycleResult{
			Flow:        req.Flow,
			Stage:       domain.StageIdle,
			Transitions: []domain.Stage{domain.StageIdle},
			Deployment:  domain.DeploymentResult{Network: req.Network},
		},
	}

	if err := r.run(ctx); err != nil {
		failedAt := r.result.Stage
		r.result.FailedStage = failedAt
		r.result.Stage = domain.StageFailed
		r.result.Transitions = append(r.result.Transitions, domain.StageFailed)

		l.progress.OnProgress(ctx, ProgressEvent{
			Stage:   string(domain.StageFailed),
			Message: fmt.Sprintf("%s failed", failedAt),
		})
		l.log.Debug("lifecycle failed", "network", req.Network, "flow", req.Flow, "stage", failedAt, "error", err)

		return r.result, &domain.StageError{Network: req.Network, Stage: failedAt, Err: err}
	}

	return r.result, nil
}

func (r *lifecycleRun) run(ctx context.Context) error {
	if err := r.advance(ctx, domain.StageResolving, fmt.Sprintf("Resolving %s", r.req.Network)); err != nil {
		return err
	}
	if err := r.resolve(ctx); err != nil {
		return err
	}

	if err := r.advance(ctx, domain.StageSigning, fmt.Sprintf("Connecting to %s", r.profile.ChainID)); err != nil {
		return err
	}
	session, err := r.lc.sessions.Open(ctx, SessionRequest{
		Profile: r.profile,
		Secret:  r.req.Secret,
		Gas:     r.result.Gas,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuth, err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			r.lc.log.Warn("failed to close signing session", "error", cerr)
		}
	}()
	r.result.Deployment.Sender = session.Info().Address

	switch r.req.Flow {
	case domain.FlowDeploy:
		codeID, err := r.submitUpload(ctx, session)
		if err != nil {
			return err
		}
		if err := r.submitInstantiate(ctx, session, codeID); err != nil {
			return err
		}
	case domain.FlowUpload:
		if _, err := r.submitUpload(ctx, session); err != nil {
			return err
		}
	case domain.FlowInstantiate:
		if err := r.submitInstantiate(ctx, session, r.req.CodeID); err != nil {
			return err
		}
	case domain.FlowUpdate:
		if err := r.submitExecute(ctx, session); err != nil {
			return err
		}
	case domain.FlowMigrate:
		if err := r.submitMigrate(ctx, session); err != nil {
			return err
		}
	}

	return r.advance(ctx, domain.StageDone, "Done")
}

// resolve looks up the profile and gas specification and builds every payload
// that does not depend on a later stage's output
func (r *lifecycleRun) resolve(ctx context.Context) error {
	profile, err := r.lc.networks.Resolve(r.req.Network)
	if err != nil {
		return err
	}
	r.profile = profile
	r.result.Deployment.Network = profile.Name
	r.result.Deployment.ChainID = profile.ChainID

	gas, err := domain.ResolveGasSpecification(profile, r.req.Gas)
	if err != nil {
		return err
	}
	r.result.Gas = gas

	switch r.req.Flow {
	case domain.FlowDeploy, domain.FlowUpload:
		artifact, err := r.lc.artifacts.ReadArtifact(ctx, r.req.ArtifactPath)
		if err != nil {
			return fmt.Errorf("failed to read artifact: %w", err)
		}
		upload, err := domain.BuildUpload(artifact)
		if err != nil {
			return fmt.Errorf("%s: %w", r.req.ArtifactPath, err)
		}
		r.upload = &upload
	case domain.FlowInstantiate, domain.FlowUpdate, domain.FlowMigrate:
	default:
		return fmt.Errorf("unsupported flow %q", r.req.Flow)
	}

	switch r.req.Flow {
	case domain.FlowDeploy, domain.FlowInstantiate:
		params, err := r.instantiateParams()
		if err != nil {
			return err
		}
		if r.req.Flow == domain.FlowInstantiate {
			// the code id is known up front, so the whole payload is validated now
			if _, err := domain.BuildInstantiate(params); err != nil {
				return err
			}
		}
		r.instantiate = &params
		r.result.Label = params.Label
	case domain.FlowUpdate:
		payload, err := domain.BuildExecuteUpdate(r.req.Contract, r.req.IntervalSeconds)
		if err != nil {
			return err
		}
		if err := domain.ValidateAddress(payload.Contract, profile.AddressPrefix); err != nil {
			return err
		}
		r.execute = &payload
		r.result.Deployment.ContractAddress = payload.Contract
	case domain.FlowMigrate:
		payload, err := domain.BuildMigrate(r.req.Contract, r.req.CodeID)
		if err != nil {
			return err
		}
		if err := domain.ValidateAddress(payload.Contract, profile.AddressPrefix); err != nil {
			return err
		}
		r.migrate = &payload
		r.result.Deployment.ContractAddress = payload.Contract
	}

	return nil
}

func (r *lifecycleRun) instantiateParams() (domain.InstantiateParams, error) {
	token, err := r.profile.DefaultToken()
	if err != nil {
		return domain.InstantiateParams{}, err
	}
	proxy, err := r.lc.proxies.Lookup(r.profile)
	if err != nil {
		return domain.InstantiateParams{}, err
	}

	label := r.req.Label
	if label == "" {
		label = domain.DefaultLabel
	}

	return domain.InstantiateParams{
		CodeID:       r.req.CodeID,
		ProxyAddress: proxy,
		FeeToken:     token,
		Label:        label,
		Admin:        !r.req.NoAdmin,
	}, nil
}

func (r *lifecycleRun) submitUpload(ctx context.Context, session SigningSession) (uint64, error) {
	msg := fmt.Sprintf("Uploading %d bytes to %s", len(r.upload.Artifact), r.profile.Name)
	if err := r.advance(ctx, domain.StageUploading, msg); err != nil {
		return 0, err
	}

	res, err := session.Upload(ctx, *r.upload)
	if err != nil {
		if res != nil {
			r.record(res.Tx)
		}
		return 0, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	r.record(res.Tx)
	if res.CodeID == 0 {
		return 0, fmt.Errorf("%w: upload %s returned no code id", domain.ErrTransport, res.Tx.TxHash)
	}

	r.result.Deployment.CodeID = res.CodeID
	r.lc.log.Info("code uploaded", "network", r.profile.Name, "codeId", res.CodeID, "tx", res.Tx.TxHash)
	return res.CodeID, nil
}

func (r *lifecycleRun) submitInstantiate(ctx context.Context, session SigningSession, codeID uint64) error {
	params := *r.instantiate
	params.CodeID = codeID

	if err := r.advance(ctx, domain.StageInstantiating, fmt.Sprintf("Instantiating code %d", codeID)); err != nil {
		return err
	}

	payload, err := domain.BuildInstantiate(params)
	if err != nil {
		return err
	}
	if r.result.Deployment.CodeID == 0 {
		r.result.Deployment.CodeID = codeID
	}

	res, err := session.Instantiate(ctx, payload)
	if err != nil {
		if res != nil {
			r.record(res.Tx)
		}
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	r.record(res.Tx)
	if res.ContractAddress == "" {
		return fmt.Errorf("%w: instantiate %s returned no contract address", domain.ErrTransport, res.Tx.TxHash)
	}
	r.result.Deployment.ContractAddress = res.ContractAddress

	r.lc.log.Info("contract instantiated", "network", r.profile.Name, "codeId", codeID, "contract", res.ContractAddress)
	return nil
}

func (r *lifecycleRun) submitExecute(ctx context.Context, session SigningSession) error {
	if err := r.advance(ctx, domain.StageExecuting, fmt.Sprintf("Updating config of %s", r.execute.Contract)); err != nil {
		return err
	}

	tx, err := session.Execute(ctx, *r.execute)
	if tx != nil {
		r.record(*tx)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	return nil
}

func (r *lifecycleRun) submitMigrate(ctx context.Context, session SigningSession) error {
	msg := fmt.Sprintf("Migrating %s to code %d", r.migrate.Contract, r.migrate.CodeID)
	if err := r.advance(ctx, domain.StageMigrating, msg); err != nil {
		return err
	}

	tx, err := session.Migrate(ctx, *r.migrate)
	if tx != nil {
		r.record(*tx)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	r.result.Deployment.CodeID = r.migrate.CodeID
	return nil
}

// record keeps a submitted transaction, whether or not it succeeded on chain
func (r *lifecycleRun) record(tx domain.TxResult) {
	if tx.TxHash == "" {
		return
	}
	r.result.Deployment.Transactions = append(r.result.Deployment.Transactions, tx)
}

// advance moves the run to the next stage. A cancelled context stops the run
// before the next submission starts.
func (r *lifecycleRun) advance(ctx context.Context, to domain.Stage, message string) error {
	from := r.result.Stage
	if !slices.Contains(transitions[from], to) {
		return fmt.Errorf("illegal lifecycle transition %s -> %s", from, to)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.result.Stage = to
	r.result.Transitions = append(r.result.Transitions, to)
	r.lc.log.Debug("lifecycle transition", "network", r.req.Network, "from", from, "to", to)
	r.lc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   string(to),
		Message: message,
		Spinner: !to.Terminal(),
	})
	return nil
}
