package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/superstar-lottery/stardeploy/internal/domain/config"
	"github.com/superstar-lottery/stardeploy/internal/domain/models"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

// DeploymentsFile holds every recorded lifecycle run, keyed by id
const DeploymentsFile = "deployments.json"

// RegistryStoreAdapter persists deployment records as JSON in the data dir
type RegistryStoreAdapter struct {
	path string
	mu   sync.Mutex
}

// NewRegistryStoreAdapter creates a registry store rooted at the data dir
func NewRegistryStoreAdapter(cfg *config.RuntimeConfig) *RegistryStoreAdapter {
	return &RegistryStoreAdapter{
		path: filepath.Join(cfg.DataDir, DeploymentsFile),
	}
}

// SaveDeployment adds or replaces a record and rewrites the file
func (r *RegistryStoreAdapter) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deployments, err := r.load()
	if err != nil {
		return err
	}
	deployments[deployment.ID] = deployment

	return r.save(deployments)
}

// ListDeployments returns the records of one network, or all when network is empty
func (r *RegistryStoreAdapter) ListDeployments(ctx context.Context, network string) ([]*models.Deployment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deployments, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*models.Deployment, 0, len(deployments))
	for _, dep := range deployments {
		if network != "" && dep.Network != network {
			continue
		}
		result = append(result, dep)
	}
	return result, nil
}

func (r *RegistryStoreAdapter) load() (map[string]*models.Deployment, error) {
	deployments := make(map[string]*models.Deployment)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return deployments, nil
		}
		return nil, fmt.Errorf("failed to read deployments: %w", err)
	}

	if err := json.Unmarshal(data, &deployments); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return deployments, nil
}

// save writes through a temp file so an interrupted write never truncates the registry
func (r *RegistryStoreAdapter) save(deployments map[string]*models.Deployment) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(deployments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployments: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write deployments: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace deployments: %w", err)
	}
	return nil
}

var _ usecase.DeploymentRepository = (*RegistryStoreAdapter)(nil)
