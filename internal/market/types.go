// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// AssetRef identifies a unit of an external asset collection held by a custodian.
type AssetRef struct {
	Custodian ethcommon.Address
	UnitID    *big.Int
}

func (a AssetRef) String() string {
	return fmt.Sprintf("%s/%s", a.Custodian.Hex(), bigOrZero(a.UnitID))
}

// ListingConfig is supplied with every deposit and is not stored as-is.
type ListingConfig struct {
	Seller      ethcommon.Address
	Application ethcommon.Address
	UnitPrice   *big.Int
}

// Listing is a standing offer to sell units of one asset, scoped to one seller and one application.
// Asset, Seller and Application never change once the listing exists.
type Listing struct {
	ID          ethcommon.Hash
	Asset       AssetRef
	Seller      ethcommon.Address
	Application ethcommon.Address
	UnitPrice   *big.Int
	Stock       *big.Int
}

type AppConfig struct {
	Application            ethcommon.Address
	Enabled                bool
	Active                 bool
	FeeRate                uint8
	GratitudeRate          uint8
	SellerApprovalRequired bool
}

// DepositRequest describes units that were moved into custody on behalf of Config.Seller.
// Operator is the party that initiated the custody transfer and From is the previous holder.
type DepositRequest struct {
	Operator ethcommon.Address
	From     ethcommon.Address
	Asset    AssetRef
	Quantity *big.Int
	Config   ListingConfig
}

type PurchaseRequest struct {
	Buyer     ethcommon.Address
	ListingID ethcommon.Hash
	Quantity  *big.Int
	// Payment is the value sent with the purchase. It must equal UnitPrice * Quantity.
	Payment *big.Int
}

type WithdrawRequest struct {
	Caller    ethcommon.Address
	ListingID ethcommon.Hash
	To        ethcommon.Address
	Quantity  *big.Int
}

// PurchaseReceipt records how a purchase was settled.
// RoyaltyAmount + AppFee + Gratitude + SellerProfit == Payment.
type PurchaseReceipt struct {
	ReceiptID        string
	ListingID        ethcommon.Hash
	Asset            AssetRef
	Buyer            ethcommon.Address
	Quantity         *big.Int
	Payment          *big.Int
	RoyaltyRecipient ethcommon.Address
	RoyaltyAmount    *big.Int
	Application      ethcommon.Address
	AppFee           *big.Int
	Gratitude        *big.Int
	Seller           ethcommon.Address
	SellerProfit     *big.Int
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
