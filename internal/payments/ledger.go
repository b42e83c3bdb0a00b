// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package payments

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/store"
	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/timshannon/badgerhold/v4"
)

type payoutRecord struct {
	Holder  string
	Balance *big.Int
}

// Ledger accumulates the value paid out by settlements. Pay joins the transaction carried by
// its context, so payouts of an aborted settlement are discarded with it.
type Ledger struct {
	store *badgerhold.Store
	lg    *logger.SugarLogger
}

func NewLedger(s *badgerhold.Store, lg *logger.SugarLogger) *Ledger {
	return &Ledger{store: s, lg: lg}
}

func (l *Ledger) Pay(ctx context.Context, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Errorf("invalid payment amount to %s: %v", to.Hex(), amount)
	}
	if to == (common.Address{}) {
		return errors.New("payment to the zero address")
	}

	return store.Update(ctx, l.store, func(_ context.Context, txn *badger.Txn) error {
		record, err := l.get(txn, to)
		if err != nil {
			return err
		}
		record.Balance = new(big.Int).Add(record.Balance, amount)
		if err = l.store.TxUpsert(txn, record.Holder, record); err != nil {
			return errors.Wrapf(err, "failed to credit %s", to.Hex())
		}
		l.lg.Debugf("Credited %s to %s, balance: %s", amount, to.Hex(), record.Balance)
		return nil
	})
}

func (l *Ledger) BalanceOf(ctx context.Context, holder common.Address) (*big.Int, error) {
	var balance *big.Int
	err := store.View(ctx, l.store, func(txn *badger.Txn) error {
		record, err := l.get(txn, holder)
		if err != nil {
			return err
		}
		balance = record.Balance
		return nil
	})
	return balance, err
}

func (l *Ledger) get(txn *badger.Txn, holder common.Address) (*payoutRecord, error) {
	record := &payoutRecord{}
	err := l.store.TxGet(txn, holder.Hex(), record)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return &payoutRecord{Holder: holder.Hex(), Balance: new(big.Int)}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get balance of %s", holder.Hex())
	}
	if record.Balance == nil {
		record.Balance = new(big.Int)
	}
	return record, nil
}
