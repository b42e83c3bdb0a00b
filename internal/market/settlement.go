// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/royalty"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// settlement carries one purchase through the stages of the pipeline.
type settlement struct {
	listing *listingRecord
	app     *appConfigRecord
	receipt *PurchaseReceipt
}

type settlementStage func(tx *txContext, s *settlement) error

// Purchase settles a purchase in strict stages, all inside one transaction:
//
//  1. validate the request against the listing and its application
//  2. decrement stock
//  3. split the payment: royalty, application fee and gratitude, seller remainder
//  4. disburse every non-zero share
//  5. release the units to the buyer
//
// Stock is final before any value moves, and custody is released only after all value moved.
// If any stage fails nothing is kept.
func (m *Manager) Purchase(ctx context.Context, request *PurchaseRequest) (*PurchaseReceipt, error) {
	var receipt *PurchaseReceipt
	err := m.update(ctx, "Purchase", func(tx *txContext) error {
		s, err := m.validatePurchase(tx, request)
		if err != nil {
			return err
		}

		for _, stage := range []settlementStage{m.reserveStock, m.splitProceeds, m.disburse, m.releaseUnits} {
			if err = stage(tx, s); err != nil {
				return err
			}
		}

		tx.emit(ListingPurchased{Receipt: *s.receipt})
		receipt = s.receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (m *Manager) validatePurchase(tx *txContext, request *PurchaseRequest) (*settlement, error) {
	if err := requireAddress(request.Buyer, "buyer"); err != nil {
		return nil, err
	}

	listing, err := tx.getListing(request.ListingID)
	if err != nil {
		return nil, err
	}
	listed := listing.toListing()

	app, err := tx.getAppConfig(listed.Application)
	if err != nil {
		return nil, err
	}
	if err = m.checkEligible(app); err != nil {
		return nil, err
	}

	quantity, err := positive(request.Quantity, "quantity")
	if err != nil {
		return nil, err
	}
	payment, err := uint256(request.Payment, "payment")
	if err != nil {
		return nil, err
	}

	if listed.Stock.Cmp(quantity) < 0 {
		return nil, common.NewErrInvalid(common.ReasonInsufficientStock,
			"listing [%s] has %s units, requested %s", listing.ListingID, listed.Stock, quantity)
	}

	price := new(big.Int).Mul(listed.UnitPrice, quantity)
	if payment.Cmp(price) != 0 {
		return nil, common.NewErrInvalid(common.ReasonInvalidValue,
			"payment %s does not match price %s for %s units", payment, price, quantity)
	}

	receiptUUID, err := uuid.NewRandom()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt ID")
	}

	return &settlement{
		listing: listing,
		app:     app,
		receipt: &PurchaseReceipt{
			ReceiptID:     receiptUUID.String(),
			ListingID:     listed.ID,
			Asset:         listed.Asset,
			Buyer:         request.Buyer,
			Quantity:      quantity,
			Payment:       payment,
			RoyaltyAmount: new(big.Int),
			Application:   listed.Application,
			AppFee:        new(big.Int),
			Gratitude:     new(big.Int),
			Seller:        listed.Seller,
			SellerProfit:  new(big.Int),
		},
	}, nil
}

func (m *Manager) reserveStock(tx *txContext, s *settlement) error {
	// validatePurchase guarantees Stock >= Quantity
	s.listing.Stock = new(big.Int).Sub(s.listing.Stock, s.receipt.Quantity)
	return tx.putListing(s.listing)
}

// splitProceeds computes every share. Rounding residue of the floor divisions stays in the
// seller's remainder, so the shares always add up to the payment.
func (m *Manager) splitProceeds(tx *txContext, s *settlement) error {
	r := s.receipt
	remaining := new(big.Int).Set(r.Payment)

	supported, err := m.royalty.SupportsRoyalties(tx.ctx, r.Asset.Custodian)
	if err != nil {
		return common.WrapErrTransfer(err, "royalty support query for [%s] failed", r.Asset.Custodian.Hex())
	}
	if supported {
		recipient, amount, err := m.royalty.RoyaltyInfo(tx.ctx, r.Asset.Custodian, r.Asset.UnitID, new(big.Int).Set(remaining))
		if err != nil {
			return common.WrapErrTransfer(err, "royalty query for [%s] failed", r.Asset)
		}
		// No royalty is paid to the seller or to the zero address.
		if recipient != r.Seller && recipient != (ethcommon.Address{}) && amount != nil && amount.Sign() > 0 {
			if amount.Cmp(remaining) > 0 {
				return common.NewErrTransfer(common.ReasonRoyaltyExceedsProceeds,
					"royalty %s for [%s] exceeds proceeds %s", amount, r.Asset, remaining)
			}
			remaining.Sub(remaining, amount)
			r.RoyaltyRecipient = recipient
			r.RoyaltyAmount = new(big.Int).Set(amount)
		}
	}

	if remaining.Sign() > 0 {
		fee := royalty.ApplyRate(remaining, s.app.FeeRate)
		gratitude := new(big.Int)
		if s.app.GratitudeRate != 0 {
			gratitude = royalty.ApplyRate(fee, s.app.GratitudeRate)
		}
		remaining.Sub(remaining, fee)
		r.Gratitude = gratitude
		r.AppFee = fee.Sub(fee, gratitude)
	}

	r.SellerProfit = remaining
	return nil
}

func (m *Manager) disburse(tx *txContext, s *settlement) error {
	r := s.receipt
	payouts := []struct {
		to     ethcommon.Address
		amount *big.Int
		tag    string
	}{
		{r.RoyaltyRecipient, r.RoyaltyAmount, "royalty"},
		{m.operator, r.Gratitude, "gratitude"},
		{r.Application, r.AppFee, "application fee"},
		{r.Seller, r.SellerProfit, "seller profit"},
	}

	for _, p := range payouts {
		if p.amount.Sign() == 0 {
			continue
		}
		if err := m.payments.Pay(tx.ctx, p.to, new(big.Int).Set(p.amount)); err != nil {
			return common.WrapErrTransfer(err, "failed to pay %s of %s to [%s]", p.tag, p.amount, p.to.Hex())
		}
		tx.lg.Debugf("Paid %s of %s to [%s], listing: %s", p.tag, p.amount, p.to.Hex(), r.ListingID.Hex())
	}
	return nil
}

func (m *Manager) releaseUnits(tx *txContext, s *settlement) error {
	r := s.receipt
	if err := m.custody.Release(tx.ctx, r.Asset, r.Buyer, new(big.Int).Set(r.Quantity)); err != nil {
		return common.WrapErrTransfer(err, "failed to release %s units of [%s] to [%s]", r.Quantity, r.Asset, r.Buyer.Hex())
	}
	return nil
}
