package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lifecycle operations
var (
	// ErrUnknownNetwork is returned when a network name is not in the registry
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrInvalidProfile is returned when a network profile breaks its invariants
	ErrInvalidProfile = errors.New("invalid network profile")

	// ErrInvalidGasPrice is returned when a gas price override is malformed or out of bounds
	ErrInvalidGasPrice = errors.New("invalid gas price")

	// ErrAuth is returned when a signing session cannot be opened
	ErrAuth = errors.New("authentication failed")

	// ErrEmptyArtifact is returned when the contract artifact has no bytes
	ErrEmptyArtifact = errors.New("empty artifact")

	// ErrInvalidCodeID is returned when a code identifier is not positive
	ErrInvalidCodeID = errors.New("invalid code id")

	// ErrInvalidInterval is returned when a lottery interval is not positive
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrMissingTarget is returned when a contract address or code id is missing
	ErrMissingTarget = errors.New("missing target")

	// ErrMissingProxy is returned when no auxiliary proxy address is configured for a network
	ErrMissingProxy = errors.New("missing proxy address")

	// ErrInvalidFeeToken is returned when a denom is not a fee token of the active network
	ErrInvalidFeeToken = errors.New("invalid fee token")

	// ErrInvalidAddress is returned when a bech32 address is malformed or has the wrong prefix
	ErrInvalidAddress = errors.New("invalid address")

	// ErrTransport wraps any failure reported by the signing/transport layer
	ErrTransport = errors.New("transport error")
)

// UnknownNetworkError reports a network name that is not registered
type UnknownNetworkError struct {
	Name  string
	Known []string
}

func (e *UnknownNetworkError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("no network selected (available: %s)", strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("unknown network %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownNetworkError) Unwrap() error {
	return ErrUnknownNetwork
}

// StageError carries the network and lifecycle stage at which a run failed
type StageError struct {
	Network string
	Stage   Stage
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Network, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
