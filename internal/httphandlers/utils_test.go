// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market/mocks"
	"github.com/copa-europe-marketplace/pkg/types"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	appHex       = "0x00000000000000000000000000000000000000AA"
	sellerHex    = "0x00000000000000000000000000000000000000A0"
	buyerHex     = "0x00000000000000000000000000000000000000B0"
	operatorHex  = "0x00000000000000000000000000000000000000F0"
	custodianHex = "0x00000000000000000000000000000000000000C1"
	creatorHex   = "0x00000000000000000000000000000000000000A1"
)

func testLogger(t *testing.T, level string) *logger.SugarLogger {
	c := &logger.Config{
		Level:         level,
		OutputPath:    []string{"stdout"},
		ErrOutputPath: []string{"stderr"},
		Encoding:      "console",
		Name:          "marketplace-test",
	}
	lg, err := logger.New(c)
	require.NoError(t, err)
	return lg
}

func buildTestUrlWithQuery(path string, query url.Values) string {
	reqUrl := &url.URL{
		Scheme:   "http",
		Host:     "server1.example.com:6101",
		Path:     path,
		RawQuery: query.Encode(),
	}
	return reqUrl.String()
}

func buildTestUrl(path string) string {
	return buildTestUrlWithQuery(path, url.Values{})
}

// requireResponse validates the status code and the response fields
func requireResponse(t *testing.T, expectedStatus int, expectedResponse interface{}, resp *httptest.ResponseRecorder, responseBody interface{}) {
	// Read the response body into a buffer, so we could print it in case of an error
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	require.Equal(t, expectedStatus, resp.Code, "Status: %d, Response: %s", resp.Code, buf.String())
	// If status code matches, then attempt to validate the response fields
	decoder := json.NewDecoder(buf)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&responseBody)
	require.NoError(t, err, "Status: %d, Response: %s", resp.Code, buf.String())

	require.Equal(t, expectedResponse, responseBody, "Response: %+v", responseBody)
}

type handlerFactory func(manager *mocks.Operations, lg *logger.SugarLogger) http.Handler

func appHandlerFactory(manager *mocks.Operations, lg *logger.SugarLogger) http.Handler {
	return NewAppHandler(manager, lg)
}

func listingHandlerFactory(manager *mocks.Operations, lg *logger.SugarLogger) http.Handler {
	return NewListingHandler(manager, lg)
}

func requestHandlerTest(
	t *testing.T,
	newHandler handlerFactory,
	mockManager *mocks.Operations,
	request interface{},
	reqUrl string,
	method string,
	expectedStatus int,
	expectedResponse interface{},
	actualResponseBody interface{},
) {
	h := newHandler(mockManager, testLogger(t, "debug"))
	require.NotNil(t, h)
	serveTest(t, h, request, reqUrl, method, expectedStatus, expectedResponse, actualResponseBody)
}

func serveTest(
	t *testing.T,
	h http.Handler,
	request interface{},
	reqUrl string,
	method string,
	expectedStatus int,
	expectedResponse interface{},
	actualResponseBody interface{},
) {
	var body *bytes.Reader
	if request == nil {
		body = bytes.NewReader(nil)
	} else {
		requestBytes, err := json.Marshal(request)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	}

	responseRecorder := httptest.NewRecorder()
	require.NotNil(t, responseRecorder)

	req, err := http.NewRequest(method, reqUrl, body)
	require.NoError(t, err)

	h.ServeHTTP(responseRecorder, req)

	requireResponse(t, expectedStatus, expectedResponse, responseRecorder, actualResponseBody)
}

var ERRORS = map[string]error{
	"config":     common.NewErrConfig(common.ReasonAppNotEligible, "not eligible"),
	"invalid":    common.NewErrInvalid(common.ReasonInvalidValue, "invalid"),
	"not-found":  common.NewErrNotFound(common.ReasonListingNotFound, "not-found"),
	"permission": common.NewErrPermission(common.ReasonNotSeller, "permission"),
	"transfer":   common.WrapErrTransfer(errors.New("rejected"), "transfer"),
	"other":      errors.New("other"),
}

var STATUS = map[string]int{
	"config":     http.StatusPreconditionFailed,
	"invalid":    http.StatusBadRequest,
	"not-found":  http.StatusNotFound,
	"permission": http.StatusForbidden,
	"transfer":   http.StatusBadGateway,
	"other":      http.StatusInternalServerError,
}

var REASON = map[string]string{
	"config":     common.ReasonAppNotEligible,
	"invalid":    common.ReasonInvalidValue,
	"not-found":  common.ReasonListingNotFound,
	"permission": common.ReasonNotSeller,
	"transfer":   common.ReasonTransferFailed,
}

func requestHandlerErrorsTest(
	t *testing.T,
	newHandler handlerFactory,
	setMockErrorFunc func(*mocks.Operations, error),
	request interface{},
	reqUrl string,
	method string,
	errors ...string,
) {
	for _, e := range errors {
		t.Run(fmt.Sprintf("error:%v", e), func(t *testing.T) {
			expectedErr := ERRORS[e]
			expectedStatus := STATUS[e]
			expectedResponse := types.HttpResponseErr{ErrMsg: expectedErr.Error(), Reason: REASON[e]}

			mockManager := mocks.Operations{}
			setMockErrorFunc(&mockManager, expectedErr)

			requestHandlerTest(t, newHandler,
				&mockManager, request, reqUrl, method,
				expectedStatus, &expectedResponse, &types.HttpResponseErr{},
			)
		})
	}
}

var allErrors = []string{"config", "invalid", "not-found", "permission", "transfer", "other"}

// serveRaw sends a raw body and decodes the response into actualResponseBody.
func serveRaw(t *testing.T, h http.Handler, body string, reqUrl string, method string, expectedStatus int, actualResponseBody interface{}) {
	responseRecorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, reqUrl, bytes.NewReader([]byte(body)))
	require.NoError(t, err)

	h.ServeHTTP(responseRecorder, req)

	require.Equal(t, expectedStatus, responseRecorder.Code, "Response: %s", responseRecorder.Body.String())
	require.NoError(t, json.NewDecoder(responseRecorder.Body).Decode(actualResponseBody))
}

func mustJSON(t *testing.T, v interface{}) string {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
