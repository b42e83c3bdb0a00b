// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package royalty

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/patrickmn/go-cache"
)

// CachedOracle remembers SupportsRoyalties answers per custodian.
// RoyaltyInfo depends on the sale price and is always forwarded.
type CachedOracle struct {
	Oracle
	cache *cache.Cache
}

func NewCachedOracle(o Oracle, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		Oracle: o,
		cache:  cache.New(ttl, 2*ttl),
	}
}

func (c *CachedOracle) SupportsRoyalties(ctx context.Context, custodian common.Address) (bool, error) {
	if supported, found := c.cache.Get(custodian.Hex()); found {
		return supported.(bool), nil
	}

	supported, err := c.Oracle.SupportsRoyalties(ctx, custodian)
	if err != nil {
		return false, err
	}
	c.cache.Set(custodian.Hex(), supported, cache.DefaultExpiration)
	return supported, nil
}
