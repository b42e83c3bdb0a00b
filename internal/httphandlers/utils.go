// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/pkg/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
)

const (
	appPlaceholder       = "app"
	sellerPlaceholder    = "seller"
	listingIdPlaceholder = "listingId"
	custodianPlaceholder = "custodian"
	unitIdPlaceholder    = "unitId"
	holderPlaceholder    = "holder"
)

// SendHTTPResponse writes HTTP response back including HTTP code number and encode payload
func SendHTTPResponse(w http.ResponseWriter, code int, payload interface{}, lg *logger.SugarLogger) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		lg.Warningf("Failed to write response [%v] to the response writer", w)
	}
}

type RequestHandler func(http.ResponseWriter, *http.Request)
type MarketRequestHandler func(*http.Request, map[string]string) (interface{}, error)

type marketRouter struct {
	mux.Router
	lg *logger.SugarLogger
}

func newMarketRouter(lg *logger.SugarLogger) marketRouter {
	return marketRouter{
		Router: *mux.NewRouter(),
		lg:     lg,
	}
}

// operationsHandler serves routes backed by the marketplace manager.
type operationsHandler struct {
	marketRouter
	manager market.Operations
}

func newOperationsHandler(manager market.Operations, lg *logger.SugarLogger) operationsHandler {
	return operationsHandler{
		marketRouter: newMarketRouter(lg),
		manager:      manager,
	}
}

// decode wraps the decoding procedure
func decode(request *http.Request, requestBody interface{}) error {
	dec := json.NewDecoder(request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(requestBody); err != nil {
		return common.WrapErrInvalid(common.ReasonInvalidPayload, err)
	}
	return nil
}

// getParameters fetches the REST URI variables and optional query parameters
func getParameters(request *http.Request) map[string]string {
	// Get rest URI vars
	params := mux.Vars(request)
	if params == nil {
		params = map[string]string{}
	}

	// Get optional query parameters
	query := request.URL.Query()
	for key := range query {
		params[key] = query.Get(key)
	}

	return params
}

// sendHttpResponseOrError writes response if not error. Otherwise, writes an HttpResponseErr.
func (d *marketRouter) sendHttpResponseOrError(
	writer http.ResponseWriter, response interface{}, err error, successStatus int,
) {
	status := successStatus
	if err != nil {
		errResponse := &types.HttpResponseErr{ErrMsg: err.Error()}
		var marketErr *common.MarketErr
		if errors.As(err, &marketErr) {
			status = marketErr.StatusCode
			errResponse.Reason = marketErr.Reason
		} else {
			status = http.StatusInternalServerError
		}
		response = errResponse
	}
	SendHTTPResponse(writer, status, response, d.lg)
}

func (d *marketRouter) genericHandler(handler MarketRequestHandler, successStatus int) RequestHandler {
	return func(writer http.ResponseWriter, request *http.Request) {
		res, err := handler(request, getParameters(request))
		d.sendHttpResponseOrError(writer, res, err, successStatus)
	}
}

func (d *marketRouter) addHandler(path string, handler MarketRequestHandler, successStatus int) *mux.Route {
	return d.HandleFunc(path, d.genericHandler(handler, successStatus))
}

// ====
// Request parsing
// ====

func parseAddress(address string, tag string) (ethcommon.Address, error) {
	return market.ParseAddress(address, tag)
}

// parseOptionalAddress maps an empty string to the zero address.
func parseOptionalAddress(address string, tag string) (ethcommon.Address, error) {
	if address == "" {
		return ethcommon.Address{}, nil
	}
	return market.ParseAddress(address, tag)
}

func parseAmount(amount string, tag string) (*big.Int, error) {
	v, err := types.ParseAmount(amount)
	if err != nil {
		return nil, common.WrapErrInvalid(common.ReasonInvalidAmount, errors.Wrap(err, tag))
	}
	return v, nil
}

func parseAmounts(amounts []string, tag string) ([]*big.Int, error) {
	v, err := types.ParseAmounts(amounts)
	if err != nil {
		return nil, common.WrapErrInvalid(common.ReasonInvalidAmount, errors.Wrap(err, tag))
	}
	return v, nil
}

func parseAsset(custodian, unitId string) (market.AssetRef, error) {
	c, err := parseAddress(custodian, "custodian")
	if err != nil {
		return market.AssetRef{}, err
	}
	u, err := parseAmount(unitId, "unit ID")
	if err != nil {
		return market.AssetRef{}, err
	}
	return market.AssetRef{Custodian: c, UnitID: u}, nil
}

func parseListingConfig(config types.ListingConfig) (market.ListingConfig, error) {
	seller, err := parseAddress(config.Seller, "seller")
	if err != nil {
		return market.ListingConfig{}, err
	}
	app, err := parseAddress(config.Application, "application")
	if err != nil {
		return market.ListingConfig{}, err
	}
	price, err := parseAmount(config.UnitPrice, "unit price")
	if err != nil {
		return market.ListingConfig{}, err
	}
	return market.ListingConfig{Seller: seller, Application: app, UnitPrice: price}, nil
}
