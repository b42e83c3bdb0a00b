// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrKind classifies a failure. Each kind maps to a single HTTP status.
type ErrKind string

const (
	KindConfig           ErrKind = "config"
	KindAuthorization    ErrKind = "authorization"
	KindValidation       ErrKind = "validation"
	KindNotFound         ErrKind = "not-found"
	KindExternalTransfer ErrKind = "external-transfer"
	KindInternal         ErrKind = "internal"
)

// Reason codes. They are stable and are returned to HTTP clients.
const (
	ReasonAppNotEligible         = "AppNotEligible"
	ReasonSellerNotApproved      = "SellerNotApproved"
	ReasonInvalidSeller          = "InvalidSeller"
	ReasonNotSeller              = "NotSeller"
	ReasonNotPlatformOperator    = "NotPlatformOperator"
	ReasonInvalidAddress         = "InvalidAddress"
	ReasonAmountMustBePositive   = "AmountMustBePositive"
	ReasonInvalidAmount          = "InvalidAmount"
	ReasonInvalidValue           = "InvalidValue"
	ReasonInsufficientStock      = "InsufficientStock"
	ReasonInvalidRate            = "InvalidRate"
	ReasonSettingLocked          = "SettingLocked"
	ReasonInvalidPayload         = "InvalidPayload"
	ReasonInvalidListingID       = "InvalidListingId"
	ReasonListingNotFound        = "ListingNotFound"
	ReasonPrimaryNotFound        = "PrimaryListingNotFound"
	ReasonTransferFailed         = "TransferFailed"
	ReasonRoyaltyExceedsProceeds = "RoyaltyExceedsProceeds"
	ReasonReentrantCall          = "ReentrantCall"
	ReasonInternal               = "Internal"
)

var kindStatus = map[ErrKind]int{
	KindConfig:           http.StatusPreconditionFailed,
	KindAuthorization:    http.StatusForbidden,
	KindValidation:       http.StatusBadRequest,
	KindNotFound:         http.StatusNotFound,
	KindExternalTransfer: http.StatusBadGateway,
	KindInternal:         http.StatusInternalServerError,
}

type MarketErr struct {
	Kind       ErrKind
	Reason     string
	ErrMsg     string
	StatusCode int
	cause      error
}

func (e *MarketErr) Error() string {
	return e.ErrMsg
}

func (e *MarketErr) String() string {
	return fmt.Sprintf("[%d: %s] %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Reason, e.ErrMsg)
}

func (e *MarketErr) Unwrap() error {
	return e.cause
}

func newMarketErr(kind ErrKind, reason string, format string, a ...interface{}) *MarketErr {
	return &MarketErr{
		Kind:       kind,
		Reason:     reason,
		ErrMsg:     fmt.Sprintf(format, a...),
		StatusCode: kindStatus[kind],
	}
}

func NewErrConfig(reason string, format string, a ...interface{}) *MarketErr {
	return newMarketErr(KindConfig, reason, format, a...)
}

func NewErrPermission(reason string, format string, a ...interface{}) *MarketErr {
	return newMarketErr(KindAuthorization, reason, format, a...)
}

func NewErrInvalid(reason string, format string, a ...interface{}) *MarketErr {
	return newMarketErr(KindValidation, reason, format, a...)
}

func WrapErrInvalid(reason string, err error) *MarketErr {
	e := NewErrInvalid(reason, "%s", err.Error())
	e.cause = err
	return e
}

func NewErrNotFound(reason string, format string, a ...interface{}) *MarketErr {
	return newMarketErr(KindNotFound, reason, format, a...)
}

// WrapErrTransfer reports a custody or value-transfer collaborator rejection.
// The collaborator's error is kept as the cause.
func WrapErrTransfer(err error, format string, a ...interface{}) *MarketErr {
	e := newMarketErr(KindExternalTransfer, ReasonTransferFailed, "%s: %s", fmt.Sprintf(format, a...), err)
	e.cause = err
	return e
}

func NewErrTransfer(reason string, format string, a ...interface{}) *MarketErr {
	return newMarketErr(KindExternalTransfer, reason, format, a...)
}

func WrapErrInternal(err error, format string, a ...interface{}) *MarketErr {
	e := newMarketErr(KindInternal, ReasonInternal, "%s: %s", fmt.Sprintf(format, a...), err)
	e.cause = err
	return e
}

// IsReason reports whether err is, or wraps, a MarketErr with the given reason.
func IsReason(err error, reason string) bool {
	var marketErr *MarketErr
	if errors.As(err, &marketErr) {
		return marketErr.Reason == reason
	}
	return false
}

// KindOf returns the kind of err, or KindInternal for errors that are not a MarketErr.
func KindOf(err error) ErrKind {
	var marketErr *MarketErr
	if errors.As(err, &marketErr) {
		return marketErr.Kind
	}
	return KindInternal
}
