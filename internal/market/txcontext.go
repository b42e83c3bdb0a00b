// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
	"math/big"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/dgraph-io/badger/v4"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/timshannon/badgerhold/v4"
)

// The four tables. badgerhold keeps each record type under its own key prefix.

type listingRecord struct {
	ListingID   string
	Custodian   string
	UnitID      *big.Int
	Seller      string `badgerhold:"index"`
	Application string `badgerhold:"index"`
	UnitPrice   *big.Int
	Stock       *big.Int
}

type appConfigRecord struct {
	Application            string
	Enabled                bool
	Active                 bool
	FeeRate                uint8
	GratitudeRate          uint8
	SellerApprovalRequired bool
}

type sellerApprovalRecord struct {
	Application string
	Seller      string
	Approved    bool
}

type primaryListingRecord struct {
	Application string
	Custodian   string
	UnitID      *big.Int
	ListingID   string
}

func approvalKey(app, seller ethcommon.Address) string {
	return fmt.Sprintf("%s:%s", app.Hex(), seller.Hex())
}

func primaryKey(app ethcommon.Address, asset AssetRef) string {
	return fmt.Sprintf("%s:%s:%s", app.Hex(), asset.Custodian.Hex(), bigOrZero(asset.UnitID).Text(16))
}

func (r *listingRecord) toListing() *Listing {
	return &Listing{
		ID: ethcommon.HexToHash(r.ListingID),
		Asset: AssetRef{
			Custodian: ethcommon.HexToAddress(r.Custodian),
			UnitID:    new(big.Int).Set(bigOrZero(r.UnitID)),
		},
		Seller:      ethcommon.HexToAddress(r.Seller),
		Application: ethcommon.HexToAddress(r.Application),
		UnitPrice:   new(big.Int).Set(bigOrZero(r.UnitPrice)),
		Stock:       new(big.Int).Set(bigOrZero(r.Stock)),
	}
}

func (r *appConfigRecord) toAppConfig() *AppConfig {
	return &AppConfig{
		Application:            ethcommon.HexToAddress(r.Application),
		Enabled:                r.Enabled,
		Active:                 r.Active,
		FeeRate:                r.FeeRate,
		GratitudeRate:          r.GratitudeRate,
		SellerApprovalRequired: r.SellerApprovalRequired,
	}
}

// txContext handles one marketplace transaction from start to finish.
// All reads and writes go through the same badger transaction.
type txContext struct {
	ctx   context.Context
	lg    *logger.SugarLogger
	store *badgerhold.Store
	txn   *badger.Txn

	// emitted after the transaction commits
	events []Event
}

func (tx *txContext) emit(ev Event) {
	tx.events = append(tx.events, ev)
}

func (tx *txContext) getMarshal(key string, record interface{}) (existed bool, err error) {
	err = tx.store.TxGet(tx.txn, key, record)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, common.WrapErrInternal(err, "failed to get key [%s]", key)
	}
	return true, nil
}

func (tx *txContext) putMarshal(key string, record interface{}) error {
	if err := tx.store.TxUpsert(tx.txn, key, record); err != nil {
		return common.WrapErrInternal(err, "failed to put key [%s]", key)
	}
	return nil
}

func (tx *txContext) getListingRecord(listingId ethcommon.Hash) (*listingRecord, bool, error) {
	record := &listingRecord{}
	existed, err := tx.getMarshal(listingId.Hex(), record)
	if err != nil || !existed {
		return nil, false, err
	}
	return record, true, nil
}

// getListing returns the listing or a NotFound error. A record that never got an
// application is treated as absent.
func (tx *txContext) getListing(listingId ethcommon.Hash) (*listingRecord, error) {
	record, existed, err := tx.getListingRecord(listingId)
	if err != nil {
		return nil, err
	}
	if !existed || record.Application == "" || ethcommon.HexToAddress(record.Application) == (ethcommon.Address{}) {
		return nil, common.NewErrNotFound(common.ReasonListingNotFound, "listing [%s] was not found", listingId.Hex())
	}
	return record, nil
}

func (tx *txContext) putListing(record *listingRecord) error {
	tx.lg.Debugf("putListing: key=%s, seller=%s, app=%s, price=%s, stock=%s",
		record.ListingID, record.Seller, record.Application, record.UnitPrice, record.Stock)
	return tx.putMarshal(record.ListingID, record)
}

// getAppConfig returns the stored configuration, or zero-valued defaults for an unknown application.
func (tx *txContext) getAppConfig(app ethcommon.Address) (*appConfigRecord, error) {
	record := &appConfigRecord{}
	existed, err := tx.getMarshal(app.Hex(), record)
	if err != nil {
		return nil, err
	}
	if !existed {
		return &appConfigRecord{Application: app.Hex()}, nil
	}
	return record, nil
}

func (tx *txContext) putAppConfig(record *appConfigRecord) error {
	tx.lg.Debugf("putAppConfig: %+v", *record)
	return tx.putMarshal(record.Application, record)
}

func (tx *txContext) getSellerApproval(app, seller ethcommon.Address) (bool, error) {
	record := &sellerApprovalRecord{}
	existed, err := tx.getMarshal(approvalKey(app, seller), record)
	if err != nil {
		return false, err
	}
	return existed && record.Approved, nil
}

func (tx *txContext) putSellerApproval(app, seller ethcommon.Address, approved bool) error {
	return tx.putMarshal(approvalKey(app, seller), &sellerApprovalRecord{
		Application: app.Hex(),
		Seller:      seller.Hex(),
		Approved:    approved,
	})
}

func (tx *txContext) getPrimaryListing(app ethcommon.Address, asset AssetRef) (ethcommon.Hash, bool, error) {
	record := &primaryListingRecord{}
	existed, err := tx.getMarshal(primaryKey(app, asset), record)
	if err != nil || !existed {
		return ethcommon.Hash{}, false, err
	}
	return ethcommon.HexToHash(record.ListingID), true, nil
}

// putPrimaryListing records the first listing of asset under app. It never overwrites.
func (tx *txContext) putPrimaryListing(app ethcommon.Address, asset AssetRef, listingId ethcommon.Hash) error {
	key := primaryKey(app, asset)
	err := tx.store.TxInsert(tx.txn, key, &primaryListingRecord{
		Application: app.Hex(),
		Custodian:   asset.Custodian.Hex(),
		UnitID:      new(big.Int).Set(bigOrZero(asset.UnitID)),
		ListingID:   listingId.Hex(),
	})
	if errors.Is(err, badgerhold.ErrKeyExists) {
		return common.WrapErrInternal(err, "primary listing of [%s] under [%s] is already set", asset, app.Hex())
	}
	if err != nil {
		return common.WrapErrInternal(err, "failed to insert primary listing [%s]", key)
	}
	return nil
}

func (tx *txContext) findListings(seller, app ethcommon.Address) ([]*Listing, error) {
	var query *badgerhold.Query
	switch {
	case seller != (ethcommon.Address{}) && app != (ethcommon.Address{}):
		query = badgerhold.Where("Seller").Eq(seller.Hex()).Index("Seller").And("Application").Eq(app.Hex())
	case seller != (ethcommon.Address{}):
		query = badgerhold.Where("Seller").Eq(seller.Hex()).Index("Seller")
	case app != (ethcommon.Address{}):
		query = badgerhold.Where("Application").Eq(app.Hex()).Index("Application")
	default:
		return nil, common.NewErrInvalid(common.ReasonInvalidAddress, "query must contain at least one qualifier")
	}

	var records []listingRecord
	if err := tx.store.TxFind(tx.txn, &records, query); err != nil {
		return nil, common.WrapErrInternal(err, "failed to query listings")
	}

	listings := make([]*Listing, 0, len(records))
	for i := range records {
		listings = append(listings, records[i].toListing())
	}
	return listings, nil
}
