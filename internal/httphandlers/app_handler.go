// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"encoding/json"
	"net/http"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/copa-europe-marketplace/pkg/types"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
)

// appHandler serves the application configuration API.
// The {app} path variable names the application a setter acts for.
type appHandler struct{ operationsHandler }

func NewAppHandler(manager market.Operations, lg *logger.SugarLogger) *appHandler {
	d := appHandler{newOperationsHandler(manager, lg)}

	d.addHandler(constants.MarketplaceAppQuery, d.handleGetConfig, http.StatusOK).Methods(http.MethodGet)
	d.addHandler(constants.MarketplaceAppEnabled, d.handleSetEnabled, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppActive, d.handleSetActive, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppFeeRate, d.handleSetFeeRate, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppGratitudeRate, d.handleSetGratitudeRate, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppSellerApprovalRequired, d.handleSetApprovalRequired, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppSellerApproval, d.handleGetSellerApproval, http.StatusOK).Methods(http.MethodGet)
	d.addHandler(constants.MarketplaceAppSellerApproval, d.handleSetSellerApproval, http.StatusOK).Methods(http.MethodPut)
	d.addHandler(constants.MarketplaceAppPrimaryListing, d.handleGetPrimaryListing, http.StatusOK).Methods(http.MethodGet)

	return &d
}

func (d *appHandler) appConfig(request *http.Request, params map[string]string) (interface{}, error) {
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	conf, err := d.manager.GetAppConfig(request.Context(), app)
	if err != nil {
		return nil, err
	}
	return &types.AppConfigResponse{
		Application:            conf.Application.Hex(),
		Enabled:                conf.Enabled,
		Active:                 conf.Active,
		FeeRate:                conf.FeeRate,
		GratitudeRate:          conf.GratitudeRate,
		SellerApprovalRequired: conf.SellerApprovalRequired,
		Url:                    common.URLForApp(constants.MarketplaceAppQuery, conf.Application.Hex()),
	}, nil
}

func (d *appHandler) handleGetConfig(request *http.Request, params map[string]string) (interface{}, error) {
	return d.appConfig(request, params)
}

func (d *appHandler) handleSetEnabled(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.SetAppEnabledRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	caller, err := parseAddress(requestBody.Caller, "caller")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetAppEnabled(request.Context(), caller, app, requestBody.Enabled); err != nil {
		return nil, err
	}
	return d.appConfig(request, params)
}

func (d *appHandler) handleSetActive(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.SetAppActiveRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetAppActive(request.Context(), app, requestBody.Active); err != nil {
		return nil, err
	}
	return d.appConfig(request, params)
}

// decodeRate reads a SetRateRequest. Rates are whole numbers of 1/255 units.
func decodeRate(request *http.Request) (uint8, error) {
	requestBody := types.SetRateRequest{}
	err := decode(request, &requestBody)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "rate" {
		return 0, common.NewErrInvalid(common.ReasonInvalidRate, "rate must be a whole number between 0 and 255, got %s", typeErr.Value)
	}
	if err != nil {
		return 0, err
	}
	return requestBody.Rate, nil
}

func (d *appHandler) handleSetFeeRate(request *http.Request, params map[string]string) (interface{}, error) {
	rate, err := decodeRate(request)
	if err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetFeeRate(request.Context(), app, rate); err != nil {
		return nil, err
	}
	return d.appConfig(request, params)
}

func (d *appHandler) handleSetGratitudeRate(request *http.Request, params map[string]string) (interface{}, error) {
	rate, err := decodeRate(request)
	if err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetGratitudeRate(request.Context(), app, rate); err != nil {
		return nil, err
	}
	return d.appConfig(request, params)
}

func (d *appHandler) handleSetApprovalRequired(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.SetSellerApprovalRequiredRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetSellerApprovalRequired(request.Context(), app, requestBody.Required); err != nil {
		return nil, err
	}
	return d.appConfig(request, params)
}

func (d *appHandler) handleGetSellerApproval(request *http.Request, params map[string]string) (interface{}, error) {
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	seller, err := parseAddress(params[sellerPlaceholder], "seller")
	if err != nil {
		return nil, err
	}
	approved, err := d.manager.GetSellerApproval(request.Context(), app, seller)
	if err != nil {
		return nil, err
	}
	return &types.SellerApprovalResponse{Application: app.Hex(), Seller: seller.Hex(), Approved: approved}, nil
}

func (d *appHandler) handleSetSellerApproval(request *http.Request, params map[string]string) (interface{}, error) {
	requestBody := types.SetSellerApprovalRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	seller, err := parseAddress(params[sellerPlaceholder], "seller")
	if err != nil {
		return nil, err
	}
	if err = d.manager.SetSellerApproval(request.Context(), app, seller, requestBody.Approved); err != nil {
		return nil, err
	}
	return &types.SellerApprovalResponse{Application: app.Hex(), Seller: seller.Hex(), Approved: requestBody.Approved}, nil
}

// handleGetPrimaryListing expects the asset as the custodian and unitId query parameters.
func (d *appHandler) handleGetPrimaryListing(request *http.Request, params map[string]string) (interface{}, error) {
	app, err := parseAddress(params[appPlaceholder], "application")
	if err != nil {
		return nil, err
	}
	asset, err := parseAsset(params[custodianPlaceholder], params[unitIdPlaceholder])
	if err != nil {
		return nil, err
	}
	listingId, err := d.manager.GetPrimaryListing(request.Context(), app, asset)
	if err != nil {
		return nil, err
	}
	return &types.PrimaryListingResponse{
		Application: app.Hex(),
		Custodian:   asset.Custodian.Hex(),
		UnitId:      asset.UnitID.String(),
		ListingId:   listingId.Hex(),
	}, nil
}
