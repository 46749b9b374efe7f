package domain

import "log/slog"

// Stage is a state of the lifecycle orchestrator
type Stage string

const (
	StageIdle          Stage = "idle"
	StageResolving     Stage = "resolving"
	StageSigning       Stage = "signing"
	StageUploading     Stage = "uploading"
	StageInstantiating Stage = "instantiating"
	StageExecuting     Stage = "executing"
	StageMigrating     Stage = "migrating"
	StageDone          Stage = "done"
	StageFailed        Stage = "failed"
)

// Terminal reports whether no further transition can happen from s
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// Flow selects which lifecycle operations a run performs
type Flow string

const (
	FlowDeploy      Flow = "deploy"      // upload then instantiate
	FlowUpload      Flow = "upload"      // upload only
	FlowInstantiate Flow = "instantiate" // instantiate an existing code id
	FlowUpdate      Flow = "update"      // execute update_config
	FlowMigrate     Flow = "migrate"
)

// SecretPhrase is a mnemonic. It never prints or logs its value.
type SecretPhrase string

func (SecretPhrase) String() string { return "[REDACTED]" }

func (SecretPhrase) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// Reveal returns the phrase itself for the key import
func (s SecretPhrase) Reveal() string { return string(s) }

// Empty reports whether no phrase was provided
func (s SecretPhrase) Empty() bool { return s == "" }

// Session describes an open, network-bound signing identity
type Session struct {
	Address string
	Profile NetworkProfile
	Gas     GasSpecification
}

// TxResult is the confirmed outcome of a submitted transaction
type TxResult struct {
	TxHash  string `json:"txHash"`
	Height  int64  `json:"height"`
	GasUsed int64  `json:"gasUsed,omitempty"`
}

// DeploymentResult is what a run produced, possibly partially
type DeploymentResult struct {
	Network         string     `json:"network"`
	ChainID         string     `json:"chainId"`
	Sender          string     `json:"sender,omitempty"`
	CodeID          uint64     `json:"codeId,omitempty"`
	ContractAddress string     `json:"contractAddress,omitempty"`
	Transactions    []TxResult `json:"transactions,omitempty"`
}
