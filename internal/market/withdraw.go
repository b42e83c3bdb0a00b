// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/common"
)

// Withdraw returns unsold units to the seller's chosen recipient. It does not look at the
// application at all: sellers can always take their inventory back.
func (m *Manager) Withdraw(ctx context.Context, request *WithdrawRequest) error {
	if err := requireAddress(request.To, "recipient"); err != nil {
		return err
	}

	return m.update(ctx, "Withdraw", func(tx *txContext) error {
		record, err := tx.getListing(request.ListingID)
		if err != nil {
			return err
		}
		listing := record.toListing()

		if request.Caller != listing.Seller {
			return common.NewErrPermission(common.ReasonNotSeller, "caller [%s] is not the seller of listing [%s]", request.Caller.Hex(), record.ListingID)
		}

		quantity, err := positive(request.Quantity, "quantity")
		if err != nil {
			return err
		}
		if listing.Stock.Cmp(quantity) < 0 {
			return common.NewErrInvalid(common.ReasonInsufficientStock,
				"listing [%s] has %s units, requested %s", record.ListingID, listing.Stock, quantity)
		}

		record.Stock = new(big.Int).Sub(listing.Stock, quantity)
		if err = tx.putListing(record); err != nil {
			return err
		}

		if err = m.custody.Release(tx.ctx, listing.Asset, request.To, new(big.Int).Set(quantity)); err != nil {
			return common.WrapErrTransfer(err, "failed to release %s units of [%s] to [%s]", quantity, listing.Asset, request.To.Hex())
		}

		tx.emit(ListingWithdrawn{
			ListingID: listing.ID,
			To:        request.To,
			Quantity:  quantity,
			Stock:     new(big.Int).Set(record.Stock),
		})
		return nil
	})
}
