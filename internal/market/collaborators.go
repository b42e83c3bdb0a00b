// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"

	"github.com/copa-europe-marketplace/internal/royalty"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Custody releases escrowed units. Release must be synchronous: when it returns nil the
// units belong to the recipient, and any error aborts the enclosing operation.
type Custody interface {
	Release(ctx context.Context, asset AssetRef, to ethcommon.Address, quantity *big.Int) error
}

// Payments transfers value. A returned error aborts the enclosing settlement.
type Payments interface {
	Pay(ctx context.Context, to ethcommon.Address, amount *big.Int) error
}

// Collaborators that see the context passed to them can join the marketplace transaction
// (see store.TxFromContext). They must pass the same context back if they call into the
// Manager; such calls are rejected as reentrant.
type Collaborators struct {
	Custody  Custody
	Payments Payments
	Royalty  royalty.Oracle
	Events   EventSink
}
