// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

// Amounts, unit IDs and prices travel as base-unit decimal strings, addresses as 0x-prefixed hex.

// HttpResponseErr holds an error message. It is used as the body of an http error response.
type HttpResponseErr struct {
	ErrMsg string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func (e *HttpResponseErr) Error() string {
	return e.ErrMsg
}

type StatusResponse struct {
	Status string `json:"status"`
}

// ====
// Applications
// ====

type AppConfigResponse struct {
	Application            string `json:"application"`
	Enabled                bool   `json:"enabled"`
	Active                 bool   `json:"active"`
	FeeRate                uint8  `json:"feeRate"`
	GratitudeRate          uint8  `json:"gratitudeRate"`
	SellerApprovalRequired bool   `json:"sellerApprovalRequired"`
	Url                    string `json:"url"`
}

type SetAppEnabledRequest struct {
	Caller  string `json:"caller"`
	Enabled bool   `json:"enabled"`
}

type SetAppActiveRequest struct {
	Active bool `json:"active"`
}

// SetRateRequest sets a rate in units of 1/255.
type SetRateRequest struct {
	Rate uint8 `json:"rate"`
}

type SetSellerApprovalRequiredRequest struct {
	Required bool `json:"required"`
}

type SetSellerApprovalRequest struct {
	Approved bool `json:"approved"`
}

type SellerApprovalResponse struct {
	Application string `json:"application"`
	Seller      string `json:"seller"`
	Approved    bool   `json:"approved"`
}

type PrimaryListingResponse struct {
	Application string `json:"application"`
	Custodian   string `json:"custodian"`
	UnitId      string `json:"unitId"`
	ListingId   string `json:"listingId"`
}

// ====
// Listings
// ====

type ListingConfig struct {
	Seller      string `json:"seller"`
	Application string `json:"application"`
	UnitPrice   string `json:"unitPrice"`
}

type ListingResponse struct {
	ListingId   string `json:"listingId"`
	Custodian   string `json:"custodian"`
	UnitId      string `json:"unitId"`
	Seller      string `json:"seller"`
	Application string `json:"application"`
	UnitPrice   string `json:"unitPrice"`
	Stock       string `json:"stock"`
	Url         string `json:"url"`
}

type PurchaseRequest struct {
	Buyer    string `json:"buyer"`
	Quantity string `json:"quantity"`
	Payment  string `json:"payment"`
}

type PurchaseResponse struct {
	ReceiptId        string `json:"receiptId"`
	ListingId        string `json:"listingId"`
	Custodian        string `json:"custodian"`
	UnitId           string `json:"unitId"`
	Buyer            string `json:"buyer"`
	Quantity         string `json:"quantity"`
	Payment          string `json:"payment"`
	RoyaltyRecipient string `json:"royaltyRecipient,omitempty"`
	RoyaltyAmount    string `json:"royaltyAmount"`
	Application      string `json:"application"`
	AppFee           string `json:"appFee"`
	Gratitude        string `json:"gratitude"`
	Seller           string `json:"seller"`
	SellerProfit     string `json:"sellerProfit"`
}

type WithdrawRequest struct {
	Caller   string `json:"caller"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
}

type WithdrawResponse struct {
	ListingId string `json:"listingId"`
	To        string `json:"to"`
	Quantity  string `json:"quantity"`
	Url       string `json:"url"`
}

// ====
// Custody and payments
// ====

type CreditRequest struct {
	Custodian string `json:"custodian"`
	UnitId    string `json:"unitId"`
	Owner     string `json:"owner"`
	Quantity  string `json:"quantity"`
}

type CreditResponse struct {
	Custodian string `json:"custodian"`
	UnitId    string `json:"unitId"`
	Owner     string `json:"owner"`
	Balance   string `json:"balance"`
}

// ReceiveRequest moves units into escrow. The listing config is either given as Config, or
// as a raw 0x-hex ABI payload in Data, which also accepts the legacy two-field layout.
type ReceiveRequest struct {
	Operator  string         `json:"operator"`
	From      string         `json:"from"`
	Custodian string         `json:"custodian"`
	UnitId    string         `json:"unitId"`
	Quantity  string         `json:"quantity"`
	Config    *ListingConfig `json:"config,omitempty"`
	Data      string         `json:"data,omitempty"`
}

type ReceiveBatchRequest struct {
	Operator   string         `json:"operator"`
	From       string         `json:"from"`
	Custodian  string         `json:"custodian"`
	UnitIds    []string       `json:"unitIds"`
	Quantities []string       `json:"quantities"`
	Config     *ListingConfig `json:"config,omitempty"`
	Data       string         `json:"data,omitempty"`
}

type ReceiveResponse struct {
	ListingIds []string `json:"listingIds"`
}

type BalanceResponse struct {
	Holder  string `json:"holder"`
	Balance string `json:"balance"`
	// Display renders Balance in whole currency units.
	Display string `json:"display,omitempty"`
}
