// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package escrow

import (
	"context"
	"fmt"
	"math/big"

	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/internal/store"
	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/timshannon/badgerhold/v4"
)

// Holder is the pseudo-address under which escrowed units are kept.
var Holder = common.HexToAddress("0x000000000000000000000000000000000000e5c0")

// Receiver is notified after units were moved into escrow, in the same transaction.
type Receiver interface {
	OnReceived(ctx context.Context, notification *market.Notification) (common.Hash, error)
	OnBatchReceived(ctx context.Context, notification *market.BatchNotification) ([]common.Hash, error)
}

type holdingRecord struct {
	Custodian string
	UnitID    *big.Int
	Holder    string
	Balance   *big.Int
}

func holdingKey(asset market.AssetRef, holder common.Address) string {
	return fmt.Sprintf("%s:%s:%s", asset.Custodian.Hex(), asset.UnitID.Text(16), holder.Hex())
}

// Escrow is a store-backed custodian ledger: it tracks unit balances per holder and moves
// units in and out of escrow on behalf of the marketplace.
type Escrow struct {
	store    *badgerhold.Store
	lg       *logger.SugarLogger
	receiver Receiver
}

func New(s *badgerhold.Store, lg *logger.SugarLogger) *Escrow {
	return &Escrow{store: s, lg: lg}
}

// SetReceiver must be called before Receive or ReceiveBatch.
func (e *Escrow) SetReceiver(r Receiver) {
	e.receiver = r
}

// Credit mints units to owner.
func (e *Escrow) Credit(ctx context.Context, asset market.AssetRef, owner common.Address, quantity *big.Int) error {
	if err := checkTransfer(asset, owner, quantity); err != nil {
		return err
	}
	return store.Update(ctx, e.store, func(_ context.Context, txn *badger.Txn) error {
		return e.add(txn, asset, owner, quantity)
	})
}

// Receive moves units from `from` into escrow and notifies the receiver with data as the
// listing config. If the receiver rejects the deposit the transfer is undone.
func (e *Escrow) Receive(ctx context.Context, operator, from common.Address, asset market.AssetRef, quantity *big.Int, data []byte) (common.Hash, error) {
	if e.receiver == nil {
		return common.Hash{}, errors.New("escrow has no receiver")
	}
	if err := checkTransfer(asset, from, quantity); err != nil {
		return common.Hash{}, err
	}

	var listingId common.Hash
	err := store.Update(ctx, e.store, func(ctx context.Context, txn *badger.Txn) error {
		if err := e.move(txn, asset, from, Holder, quantity); err != nil {
			return err
		}
		var err error
		listingId, err = e.receiver.OnReceived(ctx, &market.Notification{
			Operator:  operator,
			From:      from,
			Custodian: asset.Custodian,
			UnitID:    asset.UnitID,
			Quantity:  quantity,
			Data:      data,
		})
		return err
	})
	if err != nil {
		return common.Hash{}, err
	}
	return listingId, nil
}

// ReceiveBatch moves several units of one custodian into escrow under a shared listing config.
func (e *Escrow) ReceiveBatch(ctx context.Context, operator, from, custodian common.Address, unitIDs, quantities []*big.Int, data []byte) ([]common.Hash, error) {
	if e.receiver == nil {
		return nil, errors.New("escrow has no receiver")
	}
	if len(unitIDs) != len(quantities) {
		return nil, errors.Errorf("batch has %d unit IDs but %d quantities", len(unitIDs), len(quantities))
	}

	var listingIds []common.Hash
	err := store.Update(ctx, e.store, func(ctx context.Context, txn *badger.Txn) error {
		for i, unitID := range unitIDs {
			asset := market.AssetRef{Custodian: custodian, UnitID: unitID}
			if err := checkTransfer(asset, from, quantities[i]); err != nil {
				return err
			}
			if err := e.move(txn, asset, from, Holder, quantities[i]); err != nil {
				return err
			}
		}
		var err error
		listingIds, err = e.receiver.OnBatchReceived(ctx, &market.BatchNotification{
			Operator:   operator,
			From:       from,
			Custodian:  custodian,
			UnitIDs:    unitIDs,
			Quantities: quantities,
			Data:       data,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return listingIds, nil
}

// Release moves escrowed units to `to`. It joins the transaction carried by ctx.
func (e *Escrow) Release(ctx context.Context, asset market.AssetRef, to common.Address, quantity *big.Int) error {
	if err := checkTransfer(asset, to, quantity); err != nil {
		return err
	}
	return store.Update(ctx, e.store, func(_ context.Context, txn *badger.Txn) error {
		return e.move(txn, asset, Holder, to, quantity)
	})
}

func (e *Escrow) BalanceOf(ctx context.Context, asset market.AssetRef, holder common.Address) (*big.Int, error) {
	if asset.UnitID == nil {
		return nil, errors.New("unit ID is missing")
	}
	var balance *big.Int
	err := store.View(ctx, e.store, func(txn *badger.Txn) error {
		record, err := e.get(txn, asset, holder)
		if err != nil {
			return err
		}
		balance = record.Balance
		return nil
	})
	return balance, err
}

func checkTransfer(asset market.AssetRef, holder common.Address, quantity *big.Int) error {
	if asset.Custodian == (common.Address{}) {
		return errors.New("custodian is the zero address")
	}
	if asset.UnitID == nil || asset.UnitID.Sign() < 0 {
		return errors.Errorf("invalid unit ID: %v", asset.UnitID)
	}
	if holder == (common.Address{}) {
		return errors.New("holder is the zero address")
	}
	if quantity == nil || quantity.Sign() <= 0 {
		return errors.Errorf("invalid quantity: %v", quantity)
	}
	return nil
}

func (e *Escrow) move(txn *badger.Txn, asset market.AssetRef, from, to common.Address, quantity *big.Int) error {
	source, err := e.get(txn, asset, from)
	if err != nil {
		return err
	}
	if source.Balance.Cmp(quantity) < 0 {
		return errors.Errorf("insufficient balance of [%s] held by %s: %s < %s", asset, from.Hex(), source.Balance, quantity)
	}
	source.Balance = new(big.Int).Sub(source.Balance, quantity)
	if err = e.store.TxUpsert(txn, holdingKey(asset, from), source); err != nil {
		return errors.Wrapf(err, "failed to debit %s", from.Hex())
	}
	if err = e.add(txn, asset, to, quantity); err != nil {
		return err
	}
	e.lg.Debugf("Moved %s units of [%s] from %s to %s", quantity, asset, from.Hex(), to.Hex())
	return nil
}

func (e *Escrow) add(txn *badger.Txn, asset market.AssetRef, holder common.Address, quantity *big.Int) error {
	record, err := e.get(txn, asset, holder)
	if err != nil {
		return err
	}
	record.Balance = new(big.Int).Add(record.Balance, quantity)
	if err = e.store.TxUpsert(txn, holdingKey(asset, holder), record); err != nil {
		return errors.Wrapf(err, "failed to credit %s", holder.Hex())
	}
	return nil
}

func (e *Escrow) get(txn *badger.Txn, asset market.AssetRef, holder common.Address) (*holdingRecord, error) {
	record := &holdingRecord{}
	err := e.store.TxGet(txn, holdingKey(asset, holder), record)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return &holdingRecord{
			Custodian: asset.Custodian.Hex(),
			UnitID:    new(big.Int).Set(asset.UnitID),
			Holder:    holder.Hex(),
			Balance:   new(big.Int),
		}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get balance of [%s] held by %s", asset, holder.Hex())
	}
	if record.Balance == nil {
		record.Balance = new(big.Int)
	}
	return record, nil
}
