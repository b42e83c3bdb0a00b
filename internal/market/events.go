// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
)

// Event is a record of a committed state change.
type Event interface {
	EventName() string
}

// EventSink receives events after the transaction that produced them has committed.
type EventSink interface {
	Emit(ctx context.Context, ev Event)
}

type ListingCreated struct {
	Listing Listing
}

// ListingReplenished is emitted for every deposit, including the one that created the listing.
type ListingReplenished struct {
	ListingID ethcommon.Hash
	Quantity  *big.Int
	UnitPrice *big.Int
	Stock     *big.Int
}

type ListingPurchased struct {
	Receipt PurchaseReceipt
}

type ListingWithdrawn struct {
	ListingID ethcommon.Hash
	To        ethcommon.Address
	Quantity  *big.Int
	Stock     *big.Int
}

type AppConfigChanged struct {
	Config AppConfig
}

type SellerApprovalChanged struct {
	Application ethcommon.Address
	Seller      ethcommon.Address
	Approved    bool
}

func (ListingCreated) EventName() string        { return "ListingCreated" }
func (ListingReplenished) EventName() string    { return "ListingReplenished" }
func (ListingPurchased) EventName() string      { return "ListingPurchased" }
func (ListingWithdrawn) EventName() string      { return "ListingWithdrawn" }
func (AppConfigChanged) EventName() string      { return "AppConfigChanged" }
func (SellerApprovalChanged) EventName() string { return "SellerApprovalChanged" }

// logSink is the default sink.
type logSink struct {
	lg *logger.SugarLogger
}

func (s *logSink) Emit(_ context.Context, ev Event) {
	s.lg.Infof("%s: %+v", ev.EventName(), ev)
}
