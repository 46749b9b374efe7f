package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// FeeToken is a denomination accepted for transaction fees on a network
type FeeToken struct {
	Denom    string `json:"denom" yaml:"denom"`
	Decimals int32  `json:"decimals" yaml:"decimals"`
}

// GasPriceStep holds the low/average/high gas price band of a network
type GasPriceStep struct {
	Low     decimal.Decimal `json:"low" yaml:"low"`
	Average decimal.Decimal `json:"average" yaml:"average"`
	High    decimal.Decimal `json:"high" yaml:"high"`
}

// NetworkProfile describes one target network's connection and fee parameters
type NetworkProfile struct {
	ChainID         string          `json:"chainId" yaml:"chainId"`
	Name            string          `json:"name" yaml:"name"`
	PrettyName      string          `json:"prettyName" yaml:"prettyName"`
	AddressPrefix   string          `json:"addressPrefix" yaml:"addressPrefix"`
	CoinType        uint32          `json:"coinType" yaml:"coinType"`
	RPCURL          string          `json:"rpcUrl" yaml:"rpcUrl"`
	RESTURL         string          `json:"restUrl" yaml:"restUrl"`
	DefaultFeeToken string          `json:"defaultFeeToken" yaml:"defaultFeeToken"`
	FeeTokens       []FeeToken      `json:"feeTokens" yaml:"feeTokens"`
	StakingToken    string          `json:"stakingToken" yaml:"stakingToken"`
	DefaultGasPrice decimal.Decimal `json:"defaultGasPrice" yaml:"defaultGasPrice"`
	GasPriceStep    GasPriceStep    `json:"gasPriceStep" yaml:"gasPriceStep"`

	// Daemon is the chain CLI binary used to sign and broadcast (e.g. junod)
	Daemon string `json:"daemon" yaml:"daemon"`
}

// FeeToken returns the fee token with the given denom
func (p NetworkProfile) FeeToken(denom string) (FeeToken, bool) {
	idx := slices.IndexFunc(p.FeeTokens, func(t FeeToken) bool { return t.Denom == denom })
	if idx < 0 {
		return FeeToken{}, false
	}
	return p.FeeTokens[idx], true
}

// DefaultToken returns the profile's default fee token
func (p NetworkProfile) DefaultToken() (FeeToken, error) {
	token, ok := p.FeeToken(p.DefaultFeeToken)
	if !ok {
		return FeeToken{}, fmt.Errorf("%w: default fee token %s is not a supported fee token of %s",
			ErrInvalidProfile, p.DefaultFeeToken, p.Name)
	}
	return token, nil
}

// Clone returns a copy that shares no memory with p
func (p NetworkProfile) Clone() NetworkProfile {
	p.FeeTokens = slices.Clone(p.FeeTokens)
	return p
}

// Validate checks the profile invariants
func (p NetworkProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if p.ChainID == "" {
		return fmt.Errorf("%w: %s: chain id is required", ErrInvalidProfile, p.Name)
	}
	if p.AddressPrefix == "" {
		return fmt.Errorf("%w: %s: address prefix is required", ErrInvalidProfile, p.Name)
	}
	if p.RPCURL == "" {
		return fmt.Errorf("%w: %s: rpc url is required", ErrInvalidProfile, p.Name)
	}

	step := p.GasPriceStep
	if step.Low.IsNegative() {
		return fmt.Errorf("%w: %s: gas price low %s is negative", ErrInvalidProfile, p.Name, step.Low)
	}
	if step.Low.GreaterThan(step.Average) || step.Average.GreaterThan(step.High) {
		return fmt.Errorf("%w: %s: gas price step must satisfy low <= average <= high (got %s/%s/%s)",
			ErrInvalidProfile, p.Name, step.Low, step.Average, step.High)
	}
	if p.DefaultGasPrice.LessThan(step.Low) || p.DefaultGasPrice.GreaterThan(step.High) {
		return fmt.Errorf("%w: %s: default gas price %s outside [%s, %s]",
			ErrInvalidProfile, p.Name, p.DefaultGasPrice, step.Low, step.High)
	}

	for _, token := range p.FeeTokens {
		if token.Denom == "" || token.Decimals < 0 {
			return fmt.Errorf("%w: %s: invalid fee token %+v", ErrInvalidProfile, p.Name, token)
		}
	}
	if _, err := p.DefaultToken(); err != nil {
		return err
	}

	return nil
}
