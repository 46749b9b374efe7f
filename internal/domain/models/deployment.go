package models

import (
	"fmt"
	"time"

	"github.com/superstar-lottery/stardeploy/internal/domain"
)

// DeploymentStatus represents how far a recorded run got
type DeploymentStatus string

// A run that failed without committing a transaction is FAILED, one that
// committed at least one is PARTIAL.
const (
	DeploymentStatusCompleted DeploymentStatus = "COMPLETED"
	DeploymentStatusPartial   DeploymentStatus = "PARTIAL"
	DeploymentStatusFailed    DeploymentStatus = "FAILED"
)

// Deployment represents one recorded lifecycle run
type Deployment struct {
	ID              string            `json:"id"` // <network>/<flow>/<unix nanos>
	Network         string            `json:"network"`
	ChainID         string            `json:"chainId"`
	Flow            domain.Flow       `json:"flow"`
	Status          DeploymentStatus  `json:"status"`
	Sender          string            `json:"sender,omitempty"`
	CodeID          uint64            `json:"codeId,omitempty"`
	ContractAddress string            `json:"contractAddress,omitempty"`
	Label           string            `json:"label,omitempty"`
	Transactions    []domain.TxResult `json:"transactions,omitempty"`
	FailedStage     domain.Stage      `json:"failedStage,omitempty"`
	Error           string            `json:"error,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// NewDeployment builds a record from a lifecycle outcome
func NewDeployment(flow domain.Flow, result domain.DeploymentResult, label string, failedStage domain.Stage, runErr error, at time.Time) *Deployment {
	d := &Deployment{
		ID:              fmt.Sprintf("%s/%s/%d", result.Network, flow, at.UnixNano()),
		Network:         result.Network,
		ChainID:         result.ChainID,
		Flow:            flow,
		Status:          DeploymentStatusCompleted,
		Sender:          result.Sender,
		CodeID:          result.CodeID,
		ContractAddress: result.ContractAddress,
		Label:           label,
		Transactions:    result.Transactions,
		CreatedAt:       at.UTC(),
	}

	if runErr != nil {
		d.Error = runErr.Error()
		d.FailedStage = failedStage
		d.Status = DeploymentStatusFailed
		if len(result.Transactions) > 0 {
			d.Status = DeploymentStatusPartial
		}
	}

	return d
}
