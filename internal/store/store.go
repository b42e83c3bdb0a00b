// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/timshannon/badgerhold/v4"
)

// Open opens the badgerhold store backing all marketplace tables.
// An empty dir keeps the whole store in memory.
func Open(dir string, lg *logger.SugarLogger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dir)
	if len(dir) == 0 {
		opts.InMemory = true
	}
	opts.Logger = nil
	if lg != nil {
		opts.Logger = &badgerLogger{lg: lg}
	}

	s, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store at '%s'", dir)
	}
	return s, nil
}

type txKey struct{}

// WithTx returns a context carrying txn. Collaborators that find a transaction in
// their context join it instead of opening their own.
func WithTx(ctx context.Context, txn *badger.Txn) context.Context {
	return context.WithValue(ctx, txKey{}, txn)
}

func TxFromContext(ctx context.Context) (*badger.Txn, bool) {
	txn, ok := ctx.Value(txKey{}).(*badger.Txn)
	return txn, ok && txn != nil
}

const (
	maxRetries = 10
	retryDelay = 10 * time.Millisecond
)

type hooksKey struct{}

// AfterCommit defers fn until the transaction carried by ctx commits. Hooks of an attempt that
// fails or conflicts are dropped. Without a transaction in ctx, fn runs right away.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey{}).(*[]func())
	if !ok || hooks == nil {
		fn()
		return
	}
	*hooks = append(*hooks, fn)
}

// Detach returns a context that no longer carries a transaction or its commit hooks.
func Detach(ctx context.Context) context.Context {
	return context.WithValue(WithTx(ctx, nil), hooksKey{}, (*[]func())(nil))
}

// Update runs fn inside a read-write transaction. If ctx already carries a transaction,
// fn joins it and the owner of that transaction decides whether to commit.
// Otherwise a new transaction is created, committed when fn succeeds and discarded when it fails.
// A commit that conflicts with a concurrent transaction runs fn again on a fresh transaction.
func Update(ctx context.Context, s *badgerhold.Store, fn func(ctx context.Context, txn *badger.Txn) error) error {
	if txn, ok := TxFromContext(ctx); ok {
		return fn(ctx, txn)
	}

	err := update(ctx, s, fn)
	for attempts := 1; errors.Is(err, badger.ErrConflict) && attempts <= maxRetries; attempts++ {
		time.Sleep(retryDelay)
		err = update(ctx, s, fn)
	}
	if errors.Is(err, badger.ErrConflict) {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return err
}

func update(ctx context.Context, s *badgerhold.Store, fn func(ctx context.Context, txn *badger.Txn) error) error {
	txn := s.Badger().NewTransaction(true)
	defer txn.Discard()

	var hooks []func()
	txCtx := context.WithValue(WithTx(ctx, txn), hooksKey{}, &hooks)
	if err := fn(txCtx, txn); err != nil {
		return err
	}
	if err := txn.Commit(); err != nil {
		if errors.Is(err, badger.ErrConflict) {
			return err
		}
		return errors.Wrap(err, "failed to commit transaction")
	}

	for _, hook := range hooks {
		hook()
	}
	return nil
}

// View runs fn inside a read-only transaction, or inside the transaction carried by ctx.
func View(ctx context.Context, s *badgerhold.Store, fn func(txn *badger.Txn) error) error {
	if txn, ok := TxFromContext(ctx); ok {
		return fn(txn)
	}
	txn := s.Badger().NewTransaction(false)
	defer txn.Discard()
	return fn(txn)
}

// badgerLogger demotes badger's chatty info messages to debug.
type badgerLogger struct {
	lg *logger.SugarLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.lg.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.lg.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.lg.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.lg.Debugf(format, args...)
}
