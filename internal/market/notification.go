// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	addressType, _ = abi.NewType("address", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	// (address seller, address application, uint256 unitPrice)
	listingConfigArgs = abi.Arguments{
		{Name: "seller", Type: addressType},
		{Name: "application", Type: addressType},
		{Name: "unitPrice", Type: uint256Type},
	}

	// (address application, uint256 unitPrice); the seller is the depositing operator.
	legacyListingConfigArgs = abi.Arguments{
		{Name: "application", Type: addressType},
		{Name: "unitPrice", Type: uint256Type},
	}
)

// Notification is sent by a custodian after it moved units of one asset into escrow.
type Notification struct {
	Operator  ethcommon.Address
	From      ethcommon.Address
	Custodian ethcommon.Address
	UnitID    *big.Int
	Quantity  *big.Int
	Data      []byte
}

// BatchNotification carries several assets of one custodian that share a listing config.
type BatchNotification struct {
	Operator   ethcommon.Address
	From       ethcommon.Address
	Custodian  ethcommon.Address
	UnitIDs    []*big.Int
	Quantities []*big.Int
	Data       []byte
}

func EncodeListingConfig(config ListingConfig) ([]byte, error) {
	return listingConfigArgs.Pack(config.Seller, config.Application, bigOrZero(config.UnitPrice))
}

func EncodeLegacyListingConfig(app ethcommon.Address, unitPrice *big.Int) ([]byte, error) {
	return legacyListingConfigArgs.Pack(app, bigOrZero(unitPrice))
}

// DecodeListingConfig decodes a notification payload. Legacy payloads carry no seller, so the
// operator is taken as the seller.
func DecodeListingConfig(data []byte, operator ethcommon.Address) (ListingConfig, error) {
	switch len(data) {
	case 3 * wordSize:
		values, err := listingConfigArgs.Unpack(data)
		if err != nil {
			return ListingConfig{}, common.WrapErrInvalid(common.ReasonInvalidPayload, err)
		}
		return ListingConfig{
			Seller:      values[0].(ethcommon.Address),
			Application: values[1].(ethcommon.Address),
			UnitPrice:   values[2].(*big.Int),
		}, nil
	case 2 * wordSize:
		values, err := legacyListingConfigArgs.Unpack(data)
		if err != nil {
			return ListingConfig{}, common.WrapErrInvalid(common.ReasonInvalidPayload, err)
		}
		return ListingConfig{
			Seller:      operator,
			Application: values[0].(ethcommon.Address),
			UnitPrice:   values[1].(*big.Int),
		}, nil
	default:
		return ListingConfig{}, common.NewErrInvalid(common.ReasonInvalidPayload, "listing config must be %d or %d bytes, got %d", 2*wordSize, 3*wordSize, len(data))
	}
}

func (m *Manager) OnReceived(ctx context.Context, notification *Notification) (ethcommon.Hash, error) {
	config, err := DecodeListingConfig(notification.Data, notification.Operator)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	return m.Deposit(ctx, &DepositRequest{
		Operator: notification.Operator,
		From:     notification.From,
		Asset:    AssetRef{Custodian: notification.Custodian, UnitID: notification.UnitID},
		Quantity: notification.Quantity,
		Config:   config,
	})
}

// OnBatchReceived deposits each asset in order, in a single transaction: either every
// deposit succeeds or none is kept.
func (m *Manager) OnBatchReceived(ctx context.Context, notification *BatchNotification) ([]ethcommon.Hash, error) {
	if len(notification.UnitIDs) != len(notification.Quantities) {
		return nil, common.NewErrInvalid(common.ReasonInvalidPayload, "batch has %d unit IDs but %d quantities", len(notification.UnitIDs), len(notification.Quantities))
	}
	config, err := DecodeListingConfig(notification.Data, notification.Operator)
	if err != nil {
		return nil, err
	}

	listingIds := make([]ethcommon.Hash, 0, len(notification.UnitIDs))
	err = m.update(ctx, "OnBatchReceived", func(tx *txContext) error {
		for i, unitID := range notification.UnitIDs {
			listingId, err := m.deposit(tx, &DepositRequest{
				Operator: notification.Operator,
				From:     notification.From,
				Asset:    AssetRef{Custodian: notification.Custodian, UnitID: unitID},
				Quantity: notification.Quantities[i],
				Config:   config,
			})
			if err != nil {
				return err
			}
			listingIds = append(listingIds, listingId)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listingIds, nil
}
