package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GasSpecification is the gas price every signed transaction of a run pays
type GasSpecification struct {
	Rate  decimal.Decimal `json:"rate"`
	Denom string          `json:"denom"`
}

// String renders the specification the way chain CLIs expect it, e.g. "0.04ujunox"
func (g GasSpecification) String() string {
	return g.Rate.String() + g.Denom
}

// GasOverride carries optional caller input for the gas specification.
// Empty fields fall back to the profile defaults.
type GasOverride struct {
	Rate  string
	Denom string
}

// ResolveGasSpecification derives the gas specification for a profile.
// An overridden rate must lie within the profile's [low, high] gas price band
// and an overridden denom must be one of the profile's fee tokens.
func ResolveGasSpecification(profile NetworkProfile, override GasOverride) (GasSpecification, error) {
	spec := GasSpecification{
		Rate:  profile.DefaultGasPrice,
		Denom: profile.DefaultFeeToken,
	}

	if denom := strings.TrimSpace(override.Denom); denom != "" {
		if _, ok := profile.FeeToken(denom); !ok {
			return GasSpecification{}, fmt.Errorf("%w: denom %s is not a fee token of %s",
				ErrInvalidGasPrice, denom, profile.Name)
		}
		spec.Denom = denom
	}

	if raw := strings.TrimSpace(override.Rate); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return GasSpecification{}, fmt.Errorf("%w: %q is not a decimal: %v", ErrInvalidGasPrice, raw, err)
		}
		step := profile.GasPriceStep
		if rate.LessThan(step.Low) || rate.GreaterThan(step.High) {
			return GasSpecification{}, fmt.Errorf("%w: %s outside [%s, %s] for %s",
				ErrInvalidGasPrice, rate, step.Low, step.High, profile.Name)
		}
		spec.Rate = rate
	}

	return spec, nil
}
