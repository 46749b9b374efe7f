package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Defaults for the super_star contract
const (
	DefaultLabel             = "super_star.v1"
	DefaultLotteryInterval   = int64(60 * 60)
	DefaultUpdateInterval    = int64(60 * 30)
	DefaultMaxTicketsPerUser = uint32(100)
)

// DefaultPercentagePerMatch is the prize split per number of matched digits
var DefaultPercentagePerMatch = [6]uint8{3, 6, 8, 15, 25, 40}

// PayloadKind tags the LifecyclePayload variants
type PayloadKind string

const (
	PayloadUpload      PayloadKind = "upload"
	PayloadInstantiate PayloadKind = "instantiate"
	PayloadExecute     PayloadKind = "execute"
	PayloadMigrate     PayloadKind = "migrate"
)

// LifecyclePayload is one ledger operation ready to be signed and submitted
type LifecyclePayload interface {
	Kind() PayloadKind
}

// Coin is an amount in a token's smallest unit
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// NewCoin converts a whole-token amount into the token's smallest unit.
// The result must be a non-negative integer.
func NewCoin(token FeeToken, whole decimal.Decimal) (Coin, error) {
	if token.Denom == "" {
		return Coin{}, fmt.Errorf("%w: denom is required", ErrInvalidFeeToken)
	}
	amount := whole.Shift(token.Decimals)
	if amount.IsNegative() {
		return Coin{}, fmt.Errorf("amount %s%s is negative", whole, token.Denom)
	}
	if !amount.Equal(amount.Truncate(0)) {
		return Coin{}, fmt.Errorf("amount %s exceeds the %d decimals of %s", whole, token.Decimals, token.Denom)
	}
	return Coin{Denom: token.Denom, Amount: amount.StringFixed(0)}, nil
}

// Duration is a time-based cw_utils duration in seconds
type Duration struct {
	Time int64 `json:"time"`
}

// InstantiateMsg initialises a super_star lottery
type InstantiateMsg struct {
	LotteryInterval    Duration `json:"lottery_interval"`
	MaxTicketsPerUser  uint32   `json:"max_tickets_per_user"`
	NoisProxy          string   `json:"nois_proxy"`
	PercentagePerMatch [6]uint8 `json:"percentage_per_match"`
	TicketPrice        Coin     `json:"ticket_price"`
	TreasuryFee        Coin     `json:"treasury_fee"`
}

// ConfigUpdate lists the contract settings an update may change; nil fields are left untouched
type ConfigUpdate struct {
	Owner              *string   `json:"owner,omitempty"`
	TicketPrice        *Coin     `json:"ticket_price,omitempty"`
	TreasuryFee        *Coin     `json:"treasury_fee,omitempty"`
	Interval           *Duration `json:"interval,omitempty"`
	NoisProxy          *string   `json:"nois_proxy,omitempty"`
	MaxTicketsPerUser  *uint32   `json:"max_tickets_per_user,omitempty"`
	PercentagePerMatch *[6]uint8 `json:"percentage_per_match,omitempty"`
}

// UpdateConfigMsg is the body of the update_config action
type UpdateConfigMsg struct {
	NewConfig ConfigUpdate `json:"new_config"`
}

// ExecuteMsg is the contract's execute action union
type ExecuteMsg struct {
	UpdateConfig *UpdateConfigMsg `json:"update_config,omitempty"`
}

// MigrateMsg carries migration parameters; the contract takes none
type MigrateMsg struct{}

// UploadRequest stores a wasm artifact on chain
type UploadRequest struct {
	Artifact []byte
}

func (UploadRequest) Kind() PayloadKind { return PayloadUpload }

// InstantiatePayload creates a contract instance from a stored code id
type InstantiatePayload struct {
	CodeID uint64
	Msg    InstantiateMsg
	Label  string
	// Admin sets the signer as contract admin so the instance can be migrated later
	Admin bool
}

func (InstantiatePayload) Kind() PayloadKind { return PayloadInstantiate }

// Encode returns the JSON instantiate message
func (p InstantiatePayload) Encode() ([]byte, error) { return encodeMsg(p.Msg) }

// ExecutePayload runs an action against a contract
type ExecutePayload struct {
	Contract string
	Msg      ExecuteMsg
}

func (ExecutePayload) Kind() PayloadKind { return PayloadExecute }

// Encode returns the JSON execute message
func (p ExecutePayload) Encode() ([]byte, error) { return encodeMsg(p.Msg) }

// MigratePayload moves a contract to a new code id
type MigratePayload struct {
	Contract string
	CodeID   uint64
	Msg      MigrateMsg
}

func (MigratePayload) Kind() PayloadKind { return PayloadMigrate }

// Encode returns the JSON migrate message
func (p MigratePayload) Encode() ([]byte, error) { return encodeMsg(p.Msg) }

// InstantiateParams are the inputs of BuildInstantiate
type InstantiateParams struct {
	CodeID       uint64
	ProxyAddress string
	FeeToken     FeeToken
	Label        string
	Admin        bool
}

// BuildUpload wraps the artifact bytes in an UploadRequest
func BuildUpload(artifact []byte) (UploadRequest, error) {
	if len(artifact) == 0 {
		return UploadRequest{}, ErrEmptyArtifact
	}
	return UploadRequest{Artifact: bytes.Clone(artifact)}, nil
}

// BuildInstantiate composes the default lottery parameters for a code id.
// Ticket price and treasury fee are one whole fee token each.
func BuildInstantiate(params InstantiateParams) (InstantiatePayload, error) {
	if params.CodeID == 0 {
		return InstantiatePayload{}, fmt.Errorf("%w: code id must be positive", ErrInvalidCodeID)
	}
	if strings.TrimSpace(params.ProxyAddress) == "" {
		return InstantiatePayload{}, fmt.Errorf("%w: proxy address is required", ErrMissingTarget)
	}

	oneToken, err := NewCoin(params.FeeToken, decimal.NewFromInt(1))
	if err != nil {
		return InstantiatePayload{}, err
	}

	label := params.Label
	if label == "" {
		label = DefaultLabel
	}

	return InstantiatePayload{
		CodeID: params.CodeID,
		Msg: InstantiateMsg{
			LotteryInterval:    Duration{Time: DefaultLotteryInterval},
			MaxTicketsPerUser:  DefaultMaxTicketsPerUser,
			NoisProxy:          params.ProxyAddress,
			PercentagePerMatch: DefaultPercentagePerMatch,
			TicketPrice:        oneToken,
			TreasuryFee:        oneToken,
		},
		Label: label,
		Admin: params.Admin,
	}, nil
}

// BuildExecuteUpdate wraps a lottery interval change in an update_config action
func BuildExecuteUpdate(contract string, intervalSeconds int64) (ExecutePayload, error) {
	if intervalSeconds <= 0 {
		return ExecutePayload{}, fmt.Errorf("%w: %d seconds", ErrInvalidInterval, intervalSeconds)
	}
	if strings.TrimSpace(contract) == "" {
		return ExecutePayload{}, fmt.Errorf("%w: contract address is required", ErrMissingTarget)
	}

	return ExecutePayload{
		Contract: contract,
		Msg: ExecuteMsg{
			UpdateConfig: &UpdateConfigMsg{
				NewConfig: ConfigUpdate{
					Interval: &Duration{Time: intervalSeconds},
				},
			},
		},
	}, nil
}

// BuildMigrate targets a contract with a new code id
func BuildMigrate(contract string, codeID uint64) (MigratePayload, error) {
	if strings.TrimSpace(contract) == "" {
		return MigratePayload{}, fmt.Errorf("%w: contract address is required", ErrMissingTarget)
	}
	if codeID == 0 {
		return MigratePayload{}, fmt.Errorf("%w: code id is required", ErrMissingTarget)
	}
	return MigratePayload{Contract: contract, CodeID: codeID}, nil
}

// ParseCodeID parses a code id given as text. An empty string yields 0 (unset).
func ParseCodeID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodeID, raw)
	}
	return uint64(id), nil
}

func encodeMsg(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return data, nil
}
