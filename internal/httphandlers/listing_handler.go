// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"net/http"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/copa-europe-marketplace/pkg/types"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
)

type listingHandler struct{ operationsHandler }

func NewListingHandler(manager market.Operations, lg *logger.SugarLogger) *listingHandler {
	d := listingHandler{newOperationsHandler(manager, lg)}

	d.addHandler(constants.MarketplaceListingsEndpoint, d.handleQuery, http.StatusOK).Methods(http.MethodGet)
	d.addHandler(constants.MarketplaceListingQuery, d.handleGet, http.StatusOK).Methods(http.MethodGet)
	d.addHandler(constants.MarketplaceListingPurchase, d.handlePurchase, http.StatusOK).Methods(http.MethodPost)
	d.addHandler(constants.MarketplaceListingWithdraw, d.handleWithdraw, http.StatusOK).Methods(http.MethodPost)

	return &d
}

func listingResponse(listing *market.Listing) *types.ListingResponse {
	return &types.ListingResponse{
		ListingId:   listing.ID.Hex(),
		Custodian:   listing.Asset.Custodian.Hex(),
		UnitId:      types.FormatAmount(listing.Asset.UnitID),
		Seller:      listing.Seller.Hex(),
		Application: listing.Application.Hex(),
		UnitPrice:   types.FormatAmount(listing.UnitPrice),
		Stock:       types.FormatAmount(listing.Stock),
		Url:         common.URLForListing(constants.MarketplaceListingQuery, listing.ID.Hex()),
	}
}

func (d *listingHandler) handleGet(request *http.Request, params map[string]string) (interface{}, error) {
	listingId, err := market.ParseListingID(params[listingIdPlaceholder])
	if err != nil {
		return nil, err
	}
	listing, err := d.manager.GetListing(request.Context(), listingId)
	if err != nil {
		return nil, err
	}
	return listingResponse(listing), nil
}

// handleQuery filters by the optional seller and app query parameters; at least one is required.
func (d *listingHandler) handleQuery(request *http.Request, params map[string]string) (interface{}, error) {
	seller, err := parseOptionalAddress(params[sellerPlaceholder], "seller")
	if err != nil {
		return nil, err
	}
	app, err := parseOptionalAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	listings, err := d.manager.QueryListings(request.Context(), seller, app)
	if err != nil {
		return nil, err
	}
	response := make([]*types.ListingResponse, 0, len(listings))
	for _, l := range listings {
		response = append(response, listingResponse(l))
	}
	return response, nil
}

func (d *listingHandler) handlePurchase(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.PurchaseRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}

	listingId, err := market.ParseListingID(params[listingIdPlaceholder])
	if err != nil {
		return nil, err
	}
	buyer, err := parseAddress(requestBody.Buyer, "buyer")
	if err != nil {
		return nil, err
	}
	quantity, err := parseAmount(requestBody.Quantity, "quantity")
	if err != nil {
		return nil, err
	}
	payment, err := parseAmount(requestBody.Payment, "payment")
	if err != nil {
		return nil, err
	}

	receipt, err := d.manager.Purchase(request.Context(), &market.PurchaseRequest{
		Buyer:     buyer,
		ListingID: listingId,
		Quantity:  quantity,
		Payment:   payment,
	})
	if err != nil {
		return nil, err
	}

	response := &types.PurchaseResponse{
		ReceiptId:     receipt.ReceiptID,
		ListingId:     receipt.ListingID.Hex(),
		Custodian:     receipt.Asset.Custodian.Hex(),
		UnitId:        types.FormatAmount(receipt.Asset.UnitID),
		Buyer:         receipt.Buyer.Hex(),
		Quantity:      types.FormatAmount(receipt.Quantity),
		Payment:       types.FormatAmount(receipt.Payment),
		RoyaltyAmount: types.FormatAmount(receipt.RoyaltyAmount),
		Application:   receipt.Application.Hex(),
		AppFee:        types.FormatAmount(receipt.AppFee),
		Gratitude:     types.FormatAmount(receipt.Gratitude),
		Seller:        receipt.Seller.Hex(),
		SellerProfit:  types.FormatAmount(receipt.SellerProfit),
	}
	if receipt.RoyaltyAmount != nil && receipt.RoyaltyAmount.Sign() > 0 {
		response.RoyaltyRecipient = receipt.RoyaltyRecipient.Hex()
	}
	return response, nil
}

func (d *listingHandler) handleWithdraw(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.WithdrawRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}

	listingId, err := market.ParseListingID(params[listingIdPlaceholder])
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress(requestBody.Caller, "caller")
	if err != nil {
		return nil, err
	}
	to, err := parseAddress(requestBody.To, "recipient")
	if err != nil {
		return nil, err
	}
	quantity, err := parseAmount(requestBody.Quantity, "quantity")
	if err != nil {
		return nil, err
	}

	err = d.manager.Withdraw(request.Context(), &market.WithdrawRequest{
		Caller:    caller,
		ListingID: listingId,
		To:        to,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, err
	}
	return &types.WithdrawResponse{
		ListingId: listingId.Hex(),
		To:        to.Hex(),
		Quantity:  quantity.String(),
		Url:       common.URLForListing(constants.MarketplaceListingQuery, listingId.Hex()),
	}, nil
}
