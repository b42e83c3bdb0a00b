// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"

	"github.com/copa-europe-marketplace/internal/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// SetAppEnabled is reserved to the platform operator.
func (m *Manager) SetAppEnabled(ctx context.Context, caller ethcommon.Address, app ethcommon.Address, enabled bool) error {
	if caller != m.operator {
		return common.NewErrPermission(common.ReasonNotPlatformOperator, "only the platform operator may enable applications, caller: %s", caller.Hex())
	}
	return m.updateAppConfig(ctx, "SetAppEnabled", app, func(record *appConfigRecord) error {
		record.Enabled = enabled
		return nil
	})
}

// The setters below are self-service: app is both the caller and the application configured.

func (m *Manager) SetAppActive(ctx context.Context, app ethcommon.Address, active bool) error {
	return m.updateAppConfig(ctx, "SetAppActive", app, func(record *appConfigRecord) error {
		record.Active = active
		return nil
	})
}

func (m *Manager) SetFeeRate(ctx context.Context, app ethcommon.Address, rate uint8) error {
	return m.updateAppConfig(ctx, "SetFeeRate", app, func(record *appConfigRecord) error {
		if m.policy.WriteOnceSettings && record.FeeRate != 0 {
			return common.NewErrInvalid(common.ReasonSettingLocked, "fee rate of [%s] is already set to %d", record.Application, record.FeeRate)
		}
		record.FeeRate = rate
		return nil
	})
}

func (m *Manager) SetGratitudeRate(ctx context.Context, app ethcommon.Address, rate uint8) error {
	return m.updateAppConfig(ctx, "SetGratitudeRate", app, func(record *appConfigRecord) error {
		record.GratitudeRate = rate
		return nil
	})
}

func (m *Manager) SetSellerApprovalRequired(ctx context.Context, app ethcommon.Address, required bool) error {
	return m.updateAppConfig(ctx, "SetSellerApprovalRequired", app, func(record *appConfigRecord) error {
		if m.policy.WriteOnceSettings && record.SellerApprovalRequired {
			return common.NewErrInvalid(common.ReasonSettingLocked, "seller approval of [%s] is already required", record.Application)
		}
		record.SellerApprovalRequired = required
		return nil
	})
}

// SetSellerApproval is issued by app for a seller in its own namespace.
func (m *Manager) SetSellerApproval(ctx context.Context, app ethcommon.Address, seller ethcommon.Address, approved bool) error {
	if err := requireAddress(app, "application"); err != nil {
		return err
	}
	if err := requireAddress(seller, "seller"); err != nil {
		return err
	}

	return m.update(ctx, "SetSellerApproval", func(tx *txContext) error {
		if err := tx.putSellerApproval(app, seller, approved); err != nil {
			return err
		}
		tx.emit(SellerApprovalChanged{Application: app, Seller: seller, Approved: approved})
		return nil
	})
}

func (m *Manager) updateAppConfig(ctx context.Context, op string, app ethcommon.Address, mutate func(record *appConfigRecord) error) error {
	if err := requireAddress(app, "application"); err != nil {
		return err
	}

	return m.update(ctx, op, func(tx *txContext) error {
		record, err := tx.getAppConfig(app)
		if err != nil {
			return err
		}
		if err = mutate(record); err != nil {
			return err
		}
		if err = tx.putAppConfig(record); err != nil {
			return err
		}
		tx.emit(AppConfigChanged{Config: *record.toAppConfig()})
		return nil
	})
}

// GetAppConfig returns zero-valued defaults for applications that were never configured.
func (m *Manager) GetAppConfig(ctx context.Context, app ethcommon.Address) (*AppConfig, error) {
	var config *AppConfig
	err := m.view(ctx, func(tx *txContext) error {
		record, err := tx.getAppConfig(app)
		if err != nil {
			return err
		}
		config = record.toAppConfig()
		return nil
	})
	return config, err
}

func (m *Manager) GetSellerApproval(ctx context.Context, app ethcommon.Address, seller ethcommon.Address) (bool, error) {
	var approved bool
	err := m.view(ctx, func(tx *txContext) (err error) {
		approved, err = tx.getSellerApproval(app, seller)
		return
	})
	return approved, err
}

func (m *Manager) GetPrimaryListing(ctx context.Context, app ethcommon.Address, asset AssetRef) (ethcommon.Hash, error) {
	var listingId ethcommon.Hash
	err := m.view(ctx, func(tx *txContext) error {
		id, existed, err := tx.getPrimaryListing(app, asset)
		if err != nil {
			return err
		}
		if !existed {
			return common.NewErrNotFound(common.ReasonPrimaryNotFound, "no primary listing of [%s] under [%s]", asset, app.Hex())
		}
		listingId = id
		return nil
	})
	return listingId, err
}
