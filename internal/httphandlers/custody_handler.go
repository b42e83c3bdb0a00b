// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package httphandlers

import (
	"context"
	"math/big"
	"net/http"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/copa-europe-marketplace/pkg/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
)

// Custodian is the custody ledger the marketplace holds units in.
type Custodian interface {
	Credit(ctx context.Context, asset market.AssetRef, owner ethcommon.Address, quantity *big.Int) error
	Receive(ctx context.Context, operator, from ethcommon.Address, asset market.AssetRef, quantity *big.Int, data []byte) (ethcommon.Hash, error)
	ReceiveBatch(ctx context.Context, operator, from, custodian ethcommon.Address, unitIDs, quantities []*big.Int, data []byte) ([]ethcommon.Hash, error)
	BalanceOf(ctx context.Context, asset market.AssetRef, holder ethcommon.Address) (*big.Int, error)
}

// PayoutLedger reports the value settlements paid out.
type PayoutLedger interface {
	BalanceOf(ctx context.Context, holder ethcommon.Address) (*big.Int, error)
}

type custodyHandler struct {
	marketRouter
	custody  Custodian
	payouts  PayoutLedger
	decimals int32
}

func NewCustodyHandler(custody Custodian, payouts PayoutLedger, decimals int32, lg *logger.SugarLogger) *custodyHandler {
	d := custodyHandler{
		marketRouter: newMarketRouter(lg),
		custody:      custody,
		payouts:      payouts,
		decimals:     decimals,
	}

	d.addHandler(constants.CustodyCredit, d.handleCredit, http.StatusOK).Methods(http.MethodPost)
	d.addHandler(constants.CustodyReceive, d.handleReceive, http.StatusOK).Methods(http.MethodPost)
	d.addHandler(constants.CustodyReceiveBatch, d.handleReceiveBatch, http.StatusOK).Methods(http.MethodPost)
	d.addHandler(constants.CustodyBalanceQuery, d.handleBalance, http.StatusOK).Methods(http.MethodGet)
	d.addHandler(constants.PaymentsBalanceQuery, d.handlePayouts, http.StatusOK).Methods(http.MethodGet)

	return &d
}

// custodyErr keeps marketplace errors as they are and reports any other custody failure as a
// rejected transfer.
func custodyErr(err error, format string, a ...interface{}) error {
	var marketErr *common.MarketErr
	if errors.As(err, &marketErr) {
		return err
	}
	return common.WrapErrTransfer(err, format, a...)
}

// listingPayload returns the raw payload if given, or encodes the structured config.
func listingPayload(config *types.ListingConfig, data string) ([]byte, error) {
	switch {
	case data != "":
		raw, err := hexutil.Decode(data)
		if err != nil {
			return nil, common.WrapErrInvalid(common.ReasonInvalidPayload, err)
		}
		return raw, nil
	case config != nil:
		conf, err := parseListingConfig(*config)
		if err != nil {
			return nil, err
		}
		raw, err := market.EncodeListingConfig(conf)
		if err != nil {
			return nil, common.WrapErrInvalid(common.ReasonInvalidPayload, err)
		}
		return raw, nil
	default:
		return nil, common.NewErrInvalid(common.ReasonInvalidPayload, "either config or data is required")
	}
}

func (d *custodyHandler) handleCredit(request *http.Request, _ map[string]string) (interface{}, error) {
	requestBody := types.CreditRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	asset, err := parseAsset(requestBody.Custodian, requestBody.UnitId)
	if err != nil {
		return nil, err
	}
	owner, err := parseAddress(requestBody.Owner, "owner")
	if err != nil {
		return nil, err
	}
	quantity, err := parseAmount(requestBody.Quantity, "quantity")
	if err != nil {
		return nil, err
	}

	if err = d.custody.Credit(request.Context(), asset, owner, quantity); err != nil {
		return nil, custodyErr(err, "failed to credit [%s] to [%s]", asset, owner.Hex())
	}
	balance, err := d.custody.BalanceOf(request.Context(), asset, owner)
	if err != nil {
		return nil, common.WrapErrInternal(err, "failed to read balance")
	}
	return &types.CreditResponse{
		Custodian: asset.Custodian.Hex(),
		UnitId:    asset.UnitID.String(),
		Owner:     owner.Hex(),
		Balance:   balance.String(),
	}, nil
}

func (d *custodyHandler) handleReceive(request *http.Request, _ map[string]string) (interface{}, error) {
	requestBody := types.ReceiveRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	operator, err := parseAddress(requestBody.Operator, "operator")
	if err != nil {
		return nil, err
	}
	from, err := parseAddress(requestBody.From, "from")
	if err != nil {
		return nil, err
	}
	asset, err := parseAsset(requestBody.Custodian, requestBody.UnitId)
	if err != nil {
		return nil, err
	}
	quantity, err := parseAmount(requestBody.Quantity, "quantity")
	if err != nil {
		return nil, err
	}
	data, err := listingPayload(requestBody.Config, requestBody.Data)
	if err != nil {
		return nil, err
	}

	listingId, err := d.custody.Receive(request.Context(), operator, from, asset, quantity, data)
	if err != nil {
		return nil, custodyErr(err, "failed to receive [%s] from [%s]", asset, from.Hex())
	}
	return &types.ReceiveResponse{ListingIds: []string{listingId.Hex()}}, nil
}

func (d *custodyHandler) handleReceiveBatch(request *http.Request, _ map[string]string) (interface{}, error) {
	requestBody := types.ReceiveBatchRequest{}
	if err := decode(request, &requestBody); err != nil {
		return nil, err
	}
	operator, err := parseAddress(requestBody.Operator, "operator")
	if err != nil {
		return nil, err
	}
	from, err := parseAddress(requestBody.From, "from")
	if err != nil {
		return nil, err
	}
	custodian, err := parseAddress(requestBody.Custodian, "custodian")
	if err != nil {
		return nil, err
	}
	unitIds, err := parseAmounts(requestBody.UnitIds, "unit IDs")
	if err != nil {
		return nil, err
	}
	quantities, err := parseAmounts(requestBody.Quantities, "quantities")
	if err != nil {
		return nil, err
	}
	data, err := listingPayload(requestBody.Config, requestBody.Data)
	if err != nil {
		return nil, err
	}

	listingIds, err := d.custody.ReceiveBatch(request.Context(), operator, from, custodian, unitIds, quantities, data)
	if err != nil {
		return nil, custodyErr(err, "failed to receive batch of [%s] from [%s]", custodian.Hex(), from.Hex())
	}
	response := &types.ReceiveResponse{ListingIds: make([]string, 0, len(listingIds))}
	for _, id := range listingIds {
		response.ListingIds = append(response.ListingIds, id.Hex())
	}
	return response, nil
}

func (d *custodyHandler) handleBalance(request *http.Request, params map[string]string) (interface{}, error) {
	asset, err := parseAsset(params[custodianPlaceholder], params[unitIdPlaceholder])
	if err != nil {
		return nil, err
	}
	holder, err := parseAddress(params[holderPlaceholder], "holder")
	if err != nil {
		return nil, err
	}
	balance, err := d.custody.BalanceOf(request.Context(), asset, holder)
	if err != nil {
		return nil, common.WrapErrInternal(err, "failed to read balance")
	}
	return &types.BalanceResponse{Holder: holder.Hex(), Balance: balance.String()}, nil
}

func (d *custodyHandler) handlePayouts(request *http.Request, params map[string]string) (interface{}, error) {
	holder, err := parseAddress(params[holderPlaceholder], "holder")
	if err != nil {
		return nil, err
	}
	balance, err := d.payouts.BalanceOf(request.Context(), holder)
	if err != nil {
		return nil, common.WrapErrInternal(err, "failed to read payouts")
	}
	return &types.BalanceResponse{
		Holder:  holder.Hex(),
		Balance: balance.String(),
		Display: types.FormatUnits(balance, d.decimals),
	}, nil
}
