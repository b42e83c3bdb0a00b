// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// resolveOrCreate returns the listing of asset by seller under app, creating it with zero
// stock and zero price when it does not exist yet.
func (tx *txContext) resolveOrCreate(asset AssetRef, seller, app ethcommon.Address) (record *listingRecord, created bool, err error) {
	listingId := ListingID(asset, seller, app)
	record, existed, err := tx.getListingRecord(listingId)
	if err != nil {
		return nil, false, err
	}
	if existed {
		return record, false, nil
	}

	record = &listingRecord{
		ListingID:   listingId.Hex(),
		Custodian:   asset.Custodian.Hex(),
		UnitID:      new(big.Int).Set(bigOrZero(asset.UnitID)),
		Seller:      seller.Hex(),
		Application: app.Hex(),
		UnitPrice:   new(big.Int),
		Stock:       new(big.Int),
	}
	if err = tx.putListing(record); err != nil {
		return nil, false, err
	}
	return record, true, nil
}

// Deposit lists units that are already in custody. It is called by custody notifications
// after the units moved into escrow, and is not exposed over HTTP: a listing's stock must
// always be backed by escrowed units.
// The first listing of an asset under an application is its primary listing and may require
// seller approval; later listings of the same asset under the same application never do.
func (m *Manager) Deposit(ctx context.Context, request *DepositRequest) (ethcommon.Hash, error) {
	var listingId ethcommon.Hash
	err := m.update(ctx, "Deposit", func(tx *txContext) (err error) {
		listingId, err = m.deposit(tx, request)
		return
	})
	if err != nil {
		return ethcommon.Hash{}, err
	}
	return listingId, nil
}

func (m *Manager) deposit(tx *txContext, request *DepositRequest) (ethcommon.Hash, error) {
	app := request.Config.Application
	appRecord, err := tx.getAppConfig(app)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if err = m.checkEligible(appRecord); err != nil {
		return ethcommon.Hash{}, err
	}

	quantity, err := positive(request.Quantity, "quantity")
	if err != nil {
		return ethcommon.Hash{}, err
	}
	price, err := uint256(request.Config.UnitPrice, "unit price")
	if err != nil {
		return ethcommon.Hash{}, err
	}
	unitID, err := uint256(request.Asset.UnitID, "unit ID")
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if err = requireAddress(request.Asset.Custodian, "custodian"); err != nil {
		return ethcommon.Hash{}, err
	}
	asset := AssetRef{Custodian: request.Asset.Custodian, UnitID: unitID}

	seller := request.Config.Seller
	if seller == (ethcommon.Address{}) || (seller != request.Operator && seller != request.From) {
		return ethcommon.Hash{}, common.NewErrPermission(common.ReasonInvalidSeller,
			"seller [%s] is neither the operator [%s] nor the source [%s] of the deposit", seller.Hex(), request.Operator.Hex(), request.From.Hex())
	}

	listingId := ListingID(asset, seller, app)

	_, hasPrimary, err := tx.getPrimaryListing(app, asset)
	if err != nil {
		return ethcommon.Hash{}, err
	}
	if !hasPrimary {
		if appRecord.SellerApprovalRequired {
			approved, err := tx.getSellerApproval(app, seller)
			if err != nil {
				return ethcommon.Hash{}, err
			}
			if !approved {
				return ethcommon.Hash{}, common.NewErrPermission(common.ReasonSellerNotApproved,
					"seller [%s] is not approved by application [%s]", seller.Hex(), app.Hex())
			}
		}
		if err = tx.putPrimaryListing(app, asset, listingId); err != nil {
			return ethcommon.Hash{}, err
		}
		tx.lg.Infof("Primary listing of [%s] under [%s]: %s", asset, app.Hex(), listingId.Hex())
	}

	record, created, err := tx.resolveOrCreate(asset, seller, app)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	stock := new(big.Int).Add(record.Stock, quantity)
	if stock.Cmp(maxUint256) > 0 {
		return ethcommon.Hash{}, common.NewErrInvalid(common.ReasonInvalidAmount, "stock of listing [%s] would overflow", record.ListingID)
	}
	// The price applies to all remaining stock, including units deposited at an older price.
	record.UnitPrice = price
	record.Stock = stock
	if err = tx.putListing(record); err != nil {
		return ethcommon.Hash{}, err
	}

	if created {
		tx.emit(ListingCreated{Listing: *record.toListing()})
	}
	tx.emit(ListingReplenished{
		ListingID: listingId,
		Quantity:  quantity,
		UnitPrice: new(big.Int).Set(price),
		Stock:     new(big.Int).Set(stock),
	})
	return listingId, nil
}

// GetListing returns a listing, also when its stock is exhausted.
func (m *Manager) GetListing(ctx context.Context, listingId ethcommon.Hash) (*Listing, error) {
	var listing *Listing
	err := m.view(ctx, func(tx *txContext) error {
		record, err := tx.getListing(listingId)
		if err != nil {
			return err
		}
		listing = record.toListing()
		return nil
	})
	return listing, err
}

// QueryListings finds listings by seller, by application, or by both.
func (m *Manager) QueryListings(ctx context.Context, seller ethcommon.Address, app ethcommon.Address) ([]*Listing, error) {
	var listings []*Listing
	err := m.view(ctx, func(tx *txContext) (err error) {
		listings, err = tx.findListings(seller, app)
		return
	})
	return listings, err
}
