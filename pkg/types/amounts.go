// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a base-unit amount. Exponent notation is accepted as long as the value is a
// whole number, e.g. "5e17".
func ParseAmount(amount string) (*big.Int, error) {
	if amount == "" {
		return nil, errors.New("amount is empty")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount: '%s'", amount)
	}
	if !d.IsInteger() {
		return nil, errors.Errorf("amount is not a whole number of base units: '%s'", amount)
	}
	if d.IsNegative() {
		return nil, errors.Errorf("amount is negative: '%s'", amount)
	}
	return d.BigInt(), nil
}

// ParseAmounts parses every amount in order and fails on the first bad one.
func ParseAmounts(amounts []string) ([]*big.Int, error) {
	values := make([]*big.Int, 0, len(amounts))
	for i, a := range amounts {
		v, err := ParseAmount(a)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		values = append(values, v)
	}
	return values, nil
}

func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}

// FormatUnits renders a base-unit amount in whole units of a currency with the given decimals.
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}
