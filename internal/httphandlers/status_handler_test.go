// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"net/http"
	"testing"

	"github.com/copa-europe-marketplace/internal/market/mocks"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/copa-europe-marketplace/pkg/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewStatusHandler(t *testing.T) {
	h := NewStatusHandler(nil, nil)
	require.NotNil(t, h)
}

func TestStatusHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		mockManager.GetStatusReturns("connected: {operator: "+operatorHex+"}", nil)

		h := NewStatusHandler(mockManager, testLogger(t, "debug"))
		serveTest(t, h, nil, buildTestUrl(constants.StatusEndpoint), http.MethodGet,
			http.StatusOK, &types.StatusResponse{Status: "connected: {operator: " + operatorHex + "}"}, &types.StatusResponse{})
	})

	t.Run("error: store closed", func(t *testing.T) {
		mockManager := &mocks.Operations{}
		mockManager.GetStatusReturns("", errors.New("store is closed"))

		h := NewStatusHandler(mockManager, testLogger(t, "debug"))
		serveTest(t, h, nil, buildTestUrl(constants.StatusEndpoint), http.MethodGet,
			http.StatusServiceUnavailable, &types.HttpResponseErr{ErrMsg: "store is closed"}, &types.HttpResponseErr{})
	})
}
