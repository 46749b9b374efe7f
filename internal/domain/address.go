package domain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ValidateAddress checks that addr is a bech32 address with the given human readable prefix
func ValidateAddress(addr, prefix string) error {
	hrp, _, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidAddress, addr, err)
	}
	if hrp != prefix {
		return fmt.Errorf("%w: %s has prefix %q, expected %q", ErrInvalidAddress, addr, hrp, prefix)
	}
	return nil
}
