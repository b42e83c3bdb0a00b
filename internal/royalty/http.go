// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package royalty

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
)

type SupportResponse struct {
	Supported bool `json:"supported"`
}

type InfoResponse struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// HTTPOracle queries a remote royalty service:
//
//	GET {endpoint}/custodians/{custodian}/support
//	GET {endpoint}/custodians/{custodian}/units/{unitId}/royalty?salePrice={price}
type HTTPOracle struct {
	endpoint string
	client   *retryablehttp.Client
}

func NewHTTPOracle(endpoint string, retries int, timeout time.Duration, lg *logger.SugarLogger) *HTTPOracle {
	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = 50 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil
	if lg != nil {
		client.Logger = &leveledLogger{lg: lg}
	}

	return &HTTPOracle{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   client,
	}
}

func (o *HTTPOracle) SupportsRoyalties(ctx context.Context, custodian common.Address) (bool, error) {
	resp := &SupportResponse{}
	if err := o.get(ctx, fmt.Sprintf("%s/custodians/%s/support", o.endpoint, custodian.Hex()), resp); err != nil {
		return false, err
	}
	return resp.Supported, nil
}

func (o *HTTPOracle) RoyaltyInfo(ctx context.Context, custodian common.Address, unitID, salePrice *big.Int) (common.Address, *big.Int, error) {
	query := url.Values{}
	query.Set("salePrice", salePrice.String())
	reqUrl := fmt.Sprintf("%s/custodians/%s/units/%s/royalty?%s", o.endpoint, custodian.Hex(), unitID.String(), query.Encode())

	resp := &InfoResponse{}
	if err := o.get(ctx, reqUrl, resp); err != nil {
		return common.Address{}, nil, err
	}

	if resp.Recipient == "" {
		return common.Address{}, new(big.Int), nil
	}
	if !common.IsHexAddress(resp.Recipient) {
		return common.Address{}, nil, errors.Errorf("royalty oracle returned an invalid recipient: '%s'", resp.Recipient)
	}
	amount, ok := new(big.Int).SetString(resp.Amount, 10)
	if !ok || amount.Sign() < 0 {
		return common.Address{}, nil, errors.Errorf("royalty oracle returned an invalid amount: '%s'", resp.Amount)
	}
	return common.HexToAddress(resp.Recipient), amount, nil
}

func (o *HTTPOracle) get(ctx context.Context, reqUrl string, result interface{}) error {
	req, err := retryablehttp.NewRequest(http.MethodGet, reqUrl, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build royalty request: %s", reqUrl)
	}
	req = req.WithContext(ctx)

	resp, err := o.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "royalty request failed: %s", reqUrl)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("royalty oracle responded %d to %s", resp.StatusCode, reqUrl)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrapf(err, "failed to decode royalty response from %s", reqUrl)
	}
	return nil
}

// leveledLogger adapts the service logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	lg *logger.SugarLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.lg.Warnw(msg, keysAndValues...)
}
