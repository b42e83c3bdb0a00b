// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"context"
	"math/big"
	"net/http"
	"net/url"
	"testing"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/internal/market/mocks"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/copa-europe-marketplace/pkg/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	testApp      = ethcommon.HexToAddress(appHex)
	testSeller   = ethcommon.HexToAddress(sellerHex)
	testBuyer    = ethcommon.HexToAddress(buyerHex)
	testOperator = ethcommon.HexToAddress(operatorHex)
	testAsset    = market.AssetRef{Custodian: ethcommon.HexToAddress(custodianHex), UnitID: big.NewInt(7)}
)

func testAppConfig() *market.AppConfig {
	return &market.AppConfig{
		Application:            testApp,
		Enabled:                true,
		Active:                 true,
		FeeRate:                5,
		GratitudeRate:          10,
		SellerApprovalRequired: true,
	}
}

func testAppConfigResponse() *types.AppConfigResponse {
	return &types.AppConfigResponse{
		Application:            testApp.Hex(),
		Enabled:                true,
		Active:                 true,
		FeeRate:                5,
		GratitudeRate:          10,
		SellerApprovalRequired: true,
		Url:                    common.URLForApp(constants.MarketplaceAppQuery, testApp.Hex()),
	}
}

func TestAppHandler_GetConfig(t *testing.T) {
	reqUrl := buildTestUrl(common.URLForApp(constants.MarketplaceAppQuery, appHex))

	t.Run("success", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		mockManager.GetAppConfigReturns(testAppConfig(), nil)

		requestHandlerTest(t, appHandlerFactory, mockManager, nil, reqUrl, http.MethodGet,
			http.StatusOK, testAppConfigResponse(), &types.AppConfigResponse{})

		require.Equal(t, 1, mockManager.GetAppConfigCallCount())
		_, app := mockManager.GetAppConfigArgsForCall(0)
		require.Equal(t, testApp, app)
	})

	t.Run("error: bad address", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		badUrl := buildTestUrl(common.URLForApp(constants.MarketplaceAppQuery, "0x1234"))
		requestHandlerTest(t, appHandlerFactory, mockManager, nil, badUrl, http.MethodGet,
			http.StatusBadRequest,
			&types.HttpResponseErr{ErrMsg: "invalid application address: '0x1234'", Reason: common.ReasonInvalidAddress},
			&types.HttpResponseErr{})
		require.Equal(t, 0, mockManager.GetAppConfigCallCount())
	})

	requestHandlerErrorsTest(t, appHandlerFactory, func(m *mocks.Operations, err error) {
		m.GetAppConfigReturns(nil, err)
	}, nil, reqUrl, http.MethodGet, "other")
}

func TestAppHandler_Setters(t *testing.T) {
	for _, tt := range []struct {
		name    string
		path    string
		request interface{}
		setErr  func(m *mocks.Operations, err error)
		check   func(t *testing.T, m *mocks.Operations)
	}{
		{
			name:    "enabled",
			path:    constants.MarketplaceAppEnabled,
			request: &types.SetAppEnabledRequest{Caller: operatorHex, Enabled: true},
			setErr:  func(m *mocks.Operations, err error) { m.SetAppEnabledReturns(err) },
			check: func(t *testing.T, m *mocks.Operations) {
				require.Equal(t, 1, m.SetAppEnabledCallCount())
				_, caller, app, enabled := m.SetAppEnabledArgsForCall(0)
				require.Equal(t, testOperator, caller)
				require.Equal(t, testApp, app)
				require.True(t, enabled)
			},
		},
		{
			name:    "active",
			path:    constants.MarketplaceAppActive,
			request: &types.SetAppActiveRequest{Active: true},
			setErr:  func(m *mocks.Operations, err error) { m.SetAppActiveReturns(err) },
			check: func(t *testing.T, m *mocks.Operations) {
				_, app, active := m.SetAppActiveArgsForCall(0)
				require.Equal(t, testApp, app)
				require.True(t, active)
			},
		},
		{
			name:    "fee rate",
			path:    constants.MarketplaceAppFeeRate,
			request: &types.SetRateRequest{Rate: 5},
			setErr:  func(m *mocks.Operations, err error) { m.SetFeeRateReturns(err) },
			check: func(t *testing.T, m *mocks.Operations) {
				_, _, rate := m.SetFeeRateArgsForCall(0)
				require.Equal(t, uint8(5), rate)
			},
		},
		{
			name:    "gratitude rate",
			path:    constants.MarketplaceAppGratitudeRate,
			request: &types.SetRateRequest{Rate: 10},
			setErr:  func(m *mocks.Operations, err error) { m.SetGratitudeRateReturns(err) },
			check: func(t *testing.T, m *mocks.Operations) {
				_, _, rate := m.SetGratitudeRateArgsForCall(0)
				require.Equal(t, uint8(10), rate)
			},
		},
		{
			name:    "seller approval required",
			path:    constants.MarketplaceAppSellerApprovalRequired,
			request: &types.SetSellerApprovalRequiredRequest{Required: true},
			setErr:  func(m *mocks.Operations, err error) { m.SetSellerApprovalRequiredReturns(err) },
			check: func(t *testing.T, m *mocks.Operations) {
				_, _, required := m.SetSellerApprovalRequiredArgsForCall(0)
				require.True(t, required)
			},
		},
	} {
		reqUrl := buildTestUrl(common.URLForApp(tt.path, appHex))

		t.Run("success: "+tt.name, func(t *testing.T) {
			mockManager := &mocks.Operations{}
			mockManager.GetAppConfigReturns(testAppConfig(), nil)

			requestHandlerTest(t, appHandlerFactory, mockManager, tt.request, reqUrl, http.MethodPut,
				http.StatusOK, testAppConfigResponse(), &types.AppConfigResponse{})
			tt.check(t, mockManager)
		})

		t.Run(tt.name, func(t *testing.T) {
			requestHandlerErrorsTest(t, appHandlerFactory, tt.setErr, tt.request, reqUrl, http.MethodPut, allErrors...)
		})
	}

	t.Run("error: rate out of range", func(t *testing.T) {
		for _, path := range []string{constants.MarketplaceAppFeeRate, constants.MarketplaceAppGratitudeRate} {
			for _, body := range []string{`{"rate": 256}`, `{"rate": -1}`, `{"rate": 2.5}`} {
				mockManager := &mocks.Operations{}
				h := NewAppHandler(mockManager, testLogger(t, "debug"))
				reqUrl := buildTestUrl(common.URLForApp(path, appHex))

				resp := &types.HttpResponseErr{}
				serveRaw(t, h, body, reqUrl, http.MethodPut, http.StatusBadRequest, resp)
				require.Equal(t, common.ReasonInvalidRate, resp.Reason, "%s %s", path, body)
				require.Contains(t, resp.ErrMsg, "rate must be a whole number between 0 and 255")
				require.Equal(t, 0, mockManager.SetFeeRateCallCount())
				require.Equal(t, 0, mockManager.SetGratitudeRateCallCount())
			}
		}
	})

	t.Run("error: malformed rate payload", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		h := NewAppHandler(mockManager, testLogger(t, "debug"))
		reqUrl := buildTestUrl(common.URLForApp(constants.MarketplaceAppFeeRate, appHex))

		resp := &types.HttpResponseErr{}
		serveRaw(t, h, `{"rate": "five"}`, reqUrl, http.MethodPut, http.StatusBadRequest, resp)
		require.Equal(t, common.ReasonInvalidRate, resp.Reason)

		resp = &types.HttpResponseErr{}
		serveRaw(t, h, `{"rate": 5`, reqUrl, http.MethodPut, http.StatusBadRequest, resp)
		require.Equal(t, common.ReasonInvalidPayload, resp.Reason)
		require.Equal(t, 0, mockManager.SetFeeRateCallCount())
	})

	t.Run("error: unknown field", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		h := NewAppHandler(mockManager, testLogger(t, "debug"))
		reqUrl := buildTestUrl(common.URLForApp(constants.MarketplaceAppActive, appHex))

		resp := &types.HttpResponseErr{}
		serveRaw(t, h, `{"active": true, "owner": "me"}`, reqUrl, http.MethodPut, http.StatusBadRequest, resp)
		require.Equal(t, common.ReasonInvalidPayload, resp.Reason)
	})
}

func TestAppHandler_SellerApproval(t *testing.T) {
	reqUrl := buildTestUrl(common.URLForSeller(constants.MarketplaceAppSellerApproval, appHex, sellerHex))

	t.Run("success: set", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		requestHandlerTest(t, appHandlerFactory, mockManager, &types.SetSellerApprovalRequest{Approved: true}, reqUrl, http.MethodPut,
			http.StatusOK,
			&types.SellerApprovalResponse{Application: testApp.Hex(), Seller: testSeller.Hex(), Approved: true},
			&types.SellerApprovalResponse{})

		_, app, seller, approved := mockManager.SetSellerApprovalArgsForCall(0)
		require.Equal(t, testApp, app)
		require.Equal(t, testSeller, seller)
		require.True(t, approved)
	})

	t.Run("success: get", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		mockManager.GetSellerApprovalReturns(true, nil)
		requestHandlerTest(t, appHandlerFactory, mockManager, nil, reqUrl, http.MethodGet,
			http.StatusOK,
			&types.SellerApprovalResponse{Application: testApp.Hex(), Seller: testSeller.Hex(), Approved: true},
			&types.SellerApprovalResponse{})
	})

	requestHandlerErrorsTest(t, appHandlerFactory, func(m *mocks.Operations, err error) {
		m.SetSellerApprovalReturns(err)
	}, &types.SetSellerApprovalRequest{Approved: true}, reqUrl, http.MethodPut, "invalid", "other")
}

func TestAppHandler_PrimaryListing(t *testing.T) {
	query := url.Values{}
	query.Add("custodian", custodianHex)
	query.Add("unitId", "7")
	reqUrl := buildTestUrlWithQuery(common.URLForApp(constants.MarketplaceAppPrimaryListing, appHex), query)
	listingId := market.ListingID(testAsset, testSeller, testApp)

	t.Run("success", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		mockManager.GetPrimaryListingStub = func(_ context.Context, app ethcommon.Address, asset market.AssetRef) (ethcommon.Hash, error) {
			require.Equal(t, testApp, app)
			require.Equal(t, testAsset, asset)
			return listingId, nil
		}

		requestHandlerTest(t, appHandlerFactory, mockManager, nil, reqUrl, http.MethodGet,
			http.StatusOK,
			&types.PrimaryListingResponse{
				Application: testApp.Hex(),
				Custodian:   testAsset.Custodian.Hex(),
				UnitId:      "7",
				ListingId:   listingId.Hex(),
			},
			&types.PrimaryListingResponse{})
	})

	requestHandlerErrorsTest(t, appHandlerFactory, func(m *mocks.Operations, err error) {
		m.GetPrimaryListingReturns(ethcommon.Hash{}, err)
	}, nil, reqUrl, http.MethodGet, "not-found", "other")
}
