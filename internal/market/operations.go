package market

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

//go:generate counterfeiter -o mocks/operations.go --fake-name Operations . Operations

type Operations interface {

	// Management API

	Close() error
	GetStatus() (string, error)

	// Application configuration API

	SetAppEnabled(ctx context.Context, caller ethcommon.Address, app ethcommon.Address, enabled bool) error
	SetAppActive(ctx context.Context, app ethcommon.Address, active bool) error
	SetFeeRate(ctx context.Context, app ethcommon.Address, rate uint8) error
	SetGratitudeRate(ctx context.Context, app ethcommon.Address, rate uint8) error
	SetSellerApprovalRequired(ctx context.Context, app ethcommon.Address, required bool) error
	SetSellerApproval(ctx context.Context, app ethcommon.Address, seller ethcommon.Address, approved bool) error
	GetAppConfig(ctx context.Context, app ethcommon.Address) (*AppConfig, error)
	GetSellerApproval(ctx context.Context, app ethcommon.Address, seller ethcommon.Address) (bool, error)
	GetPrimaryListing(ctx context.Context, app ethcommon.Address, asset AssetRef) (ethcommon.Hash, error)

	// Listing API

	OnReceived(ctx context.Context, notification *Notification) (ethcommon.Hash, error)
	OnBatchReceived(ctx context.Context, notification *BatchNotification) ([]ethcommon.Hash, error)
	Purchase(ctx context.Context, request *PurchaseRequest) (*PurchaseReceipt, error)
	Withdraw(ctx context.Context, request *WithdrawRequest) error
	GetListing(ctx context.Context, listingId ethcommon.Hash) (*Listing, error)
	QueryListings(ctx context.Context, seller ethcommon.Address, app ethcommon.Address) ([]*Listing, error)
}
