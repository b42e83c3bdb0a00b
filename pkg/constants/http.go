// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package constants

const (
	StatusEndpoint = "/status"

	MarketplaceAppsSubTree               = "/marketplace/apps/"
	MarketplaceAppQuery                  = "/marketplace/apps/{app}"
	MarketplaceAppEnabled                = "/marketplace/apps/{app}/enabled"
	MarketplaceAppActive                 = "/marketplace/apps/{app}/active"
	MarketplaceAppFeeRate                = "/marketplace/apps/{app}/fee-rate"
	MarketplaceAppGratitudeRate          = "/marketplace/apps/{app}/gratitude-rate"
	MarketplaceAppSellerApprovalRequired = "/marketplace/apps/{app}/seller-approval-required"
	MarketplaceAppSellerApproval         = "/marketplace/apps/{app}/sellers/{seller}/approval"
	MarketplaceAppPrimaryListing         = "/marketplace/apps/{app}/primary"

	MarketplaceListingsEndpoint = "/marketplace/listings"
	MarketplaceListingsSubTree  = "/marketplace/listings/"
	MarketplaceListingQuery     = "/marketplace/listings/{listingId}"
	MarketplaceListingPurchase  = "/marketplace/listings/{listingId}/purchase"
	MarketplaceListingWithdraw  = "/marketplace/listings/{listingId}/withdraw"

	CustodySubTree       = "/custody/"
	CustodyCredit        = "/custody/credit"
	CustodyReceive       = "/custody/receive"
	CustodyReceiveBatch  = "/custody/receive-batch"
	CustodyBalanceQuery  = "/custody/balances/{custodian}/{unitId}/{holder}"
	PaymentsSubTree      = "/payments/"
	PaymentsBalanceQuery = "/payments/balances/{holder}"
)
