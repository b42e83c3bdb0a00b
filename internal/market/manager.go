// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"fmt"
	"sync"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/royalty"
	"github.com/copa-europe-marketplace/internal/store"
	"github.com/copa-europe-marketplace/pkg/config"
	"github.com/dgraph-io/badger/v4"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/timshannon/badgerhold/v4"
)

type Eligibility string

const (
	// EligibilityEnablement requires the platform to enable and the application to activate itself.
	EligibilityEnablement Eligibility = "enablement"
	// EligibilityFeeRate treats a non-zero fee rate as registration; the platform flag is ignored.
	EligibilityFeeRate Eligibility = "fee-rate"
)

type Policy struct {
	Eligibility Eligibility
	// WriteOnceSettings makes the fee rate and the seller-approval requirement settable only
	// while they still hold their zero value.
	WriteOnceSettings bool
}

func ParsePolicy(conf config.MarketplaceConf) (Policy, error) {
	policy := Policy{WriteOnceSettings: conf.WriteOnceSettings}
	switch Eligibility(conf.Eligibility) {
	case "", EligibilityEnablement:
		policy.Eligibility = EligibilityEnablement
	case EligibilityFeeRate:
		policy.Eligibility = EligibilityFeeRate
	default:
		return Policy{}, errors.Errorf("unknown eligibility policy: '%s'", conf.Eligibility)
	}
	return policy, nil
}

type inflightKey struct{}

// Manager is the listing registry and settlement engine.
// Every mutating operation runs alone, inside one store transaction.
type Manager struct {
	config *config.Configuration
	lg     *logger.SugarLogger
	store  *badgerhold.Store

	operator ethcommon.Address
	policy   Policy

	custody  Custody
	payments Payments
	royalty  royalty.Oracle
	events   EventSink

	mu sync.Mutex
}

func NewManager(conf *config.Configuration, s *badgerhold.Store, c Collaborators, lg *logger.SugarLogger) (*Manager, error) {
	operator, err := ParseAddress(conf.Marketplace.Operator, "platform operator")
	if err != nil {
		return nil, errors.Wrap(err, "bad config")
	}

	policy, err := ParsePolicy(conf.Marketplace)
	if err != nil {
		return nil, errors.Wrap(err, "bad config")
	}

	if c.Custody == nil || c.Payments == nil {
		return nil, errors.New("custody and payments collaborators are required")
	}

	m := &Manager{
		config:   conf,
		lg:       lg,
		store:    s,
		operator: operator,
		policy:   policy,
		custody:  c.Custody,
		payments: c.Payments,
		royalty:  c.Royalty,
		events:   c.Events,
	}
	if m.royalty == nil {
		m.royalty = royalty.NoRoyalties{}
	}
	if m.events == nil {
		m.events = &logSink{lg: lg}
	}

	m.lg.Infof("Marketplace manager ready, platform operator: %s, policy: %+v", operator.Hex(), policy)
	return m, nil
}

func (m *Manager) Close() error {
	if err := m.store.Close(); err != nil {
		return errors.Wrap(err, "failed to close store")
	}
	return nil
}

func (m *Manager) GetStatus() (string, error) {
	if m.store.Badger().IsClosed() {
		return "", errors.New("store is closed")
	}
	return fmt.Sprintf("connected: {operator: %s, eligibility: %s, writeOnceSettings: %t}",
		m.operator.Hex(), m.policy.Eligibility, m.policy.WriteOnceSettings), nil
}

// update runs fn as one serialized transaction. Nothing fn wrote is kept if it fails, and the
// events it emitted are delivered once the transaction commits. When ctx already carries a
// transaction, fn joins it and its owner's commit releases the events.
func (m *Manager) update(ctx context.Context, op string, fn func(tx *txContext) error) error {
	if inflight, ok := ctx.Value(inflightKey{}).(string); ok {
		return common.NewErrPermission(common.ReasonReentrantCall, "%s called while %s is in progress", op, inflight)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	emitCtx := store.Detach(ctx)
	err := store.Update(context.WithValue(ctx, inflightKey{}, op), m.store, func(ctx context.Context, txn *badger.Txn) error {
		tx := &txContext{ctx: ctx, lg: m.lg, store: m.store, txn: txn}
		if err := fn(tx); err != nil {
			return err
		}
		events := tx.events
		store.AfterCommit(ctx, func() {
			for _, ev := range events {
				m.events.Emit(emitCtx, ev)
			}
		})
		return nil
	})
	if err != nil {
		if common.KindOf(err) == common.KindExternalTransfer || common.KindOf(err) == common.KindInternal {
			m.lg.Errorf("%s aborted: %s", op, err)
		} else {
			m.lg.Debugf("%s rejected: %s", op, err)
		}
		return err
	}
	return nil
}

func (m *Manager) view(ctx context.Context, fn func(tx *txContext) error) error {
	return store.View(ctx, m.store, func(txn *badger.Txn) error {
		return fn(&txContext{ctx: ctx, lg: m.lg, store: m.store, txn: txn})
	})
}

// checkEligible applies the configured eligibility policy to an application.
func (m *Manager) checkEligible(app *appConfigRecord) error {
	switch m.policy.Eligibility {
	case EligibilityFeeRate:
		if app.FeeRate == 0 {
			return common.NewErrConfig(common.ReasonAppNotEligible, "application [%s] is not registered", app.Application)
		}
	default:
		if !app.Enabled {
			return common.NewErrConfig(common.ReasonAppNotEligible, "application [%s] is not enabled", app.Application)
		}
	}
	if !app.Active {
		return common.NewErrConfig(common.ReasonAppNotEligible, "application [%s] is not active", app.Application)
	}
	return nil
}
