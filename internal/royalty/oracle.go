// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package royalty

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RateDenominator is the fixed-point denominator of every 8-bit rate.
const RateDenominator = 255

// Oracle answers royalty questions for assets held by a custodian.
// Implementations must not change any state.
type Oracle interface {
	// SupportsRoyalties reports whether custodian's assets carry royalty information at all.
	SupportsRoyalties(ctx context.Context, custodian common.Address) (bool, error)
	// RoyaltyInfo returns who is owed royalty on a sale of unitID for salePrice, and how much.
	RoyaltyInfo(ctx context.Context, custodian common.Address, unitID, salePrice *big.Int) (common.Address, *big.Int, error)
}

// ApplyRate returns floor(amount * rate / 255).
func ApplyRate(amount *big.Int, rate uint8) *big.Int {
	v := new(big.Int).Mul(amount, big.NewInt(int64(rate)))
	return v.Quo(v, big.NewInt(RateDenominator))
}

// NoRoyalties never reports royalty support.
type NoRoyalties struct{}

func (NoRoyalties) SupportsRoyalties(context.Context, common.Address) (bool, error) {
	return false, nil
}

func (NoRoyalties) RoyaltyInfo(context.Context, common.Address, *big.Int, *big.Int) (common.Address, *big.Int, error) {
	return common.Address{}, new(big.Int), nil
}

type Rule struct {
	Recipient common.Address
	Rate      uint8
}

// StaticOracle holds one royalty rule per custodian, applied to every unit it holds.
type StaticOracle struct {
	rules map[common.Address]Rule
}

func NewStaticOracle(rules map[common.Address]Rule) *StaticOracle {
	o := &StaticOracle{rules: make(map[common.Address]Rule, len(rules))}
	for custodian, rule := range rules {
		o.rules[custodian] = rule
	}
	return o
}

func (o *StaticOracle) SupportsRoyalties(_ context.Context, custodian common.Address) (bool, error) {
	_, ok := o.rules[custodian]
	return ok, nil
}

func (o *StaticOracle) RoyaltyInfo(_ context.Context, custodian common.Address, _ *big.Int, salePrice *big.Int) (common.Address, *big.Int, error) {
	rule, ok := o.rules[custodian]
	if !ok {
		return common.Address{}, new(big.Int), nil
	}
	return rule.Recipient, ApplyRate(salePrice, rule.Rate), nil
}
