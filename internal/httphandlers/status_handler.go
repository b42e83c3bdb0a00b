// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"net/http"

	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/pkg/types"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
)

type statusHandler struct {
	manager market.Operations
	lg      *logger.SugarLogger
}

func NewStatusHandler(manager market.Operations, lg *logger.SugarLogger) *statusHandler {
	return &statusHandler{
		manager: manager,
		lg:      lg}
}

func (d *statusHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	stat, err := d.manager.GetStatus()
	if err != nil {
		SendHTTPResponse(response, http.StatusServiceUnavailable, &types.HttpResponseErr{ErrMsg: err.Error()}, d.lg)
		return
	}
	SendHTTPResponse(response, http.StatusOK, &types.StatusResponse{Status: stat}, d.lg)
}
