// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"math/big"
	"strings"

	"github.com/copa-europe-marketplace/internal/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const wordSize = 32

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ListingID derives the identity of the listing of asset by seller under application:
// keccak256 over the 32-byte words of (custodian, unitId, seller, application), in that order.
// It is a pure function of its inputs, so off-chain indexers can precompute it.
func ListingID(asset AssetRef, seller, application ethcommon.Address) ethcommon.Hash {
	buf := make([]byte, 0, 4*wordSize)
	buf = append(buf, ethcommon.LeftPadBytes(asset.Custodian.Bytes(), wordSize)...)
	buf = append(buf, ethcommon.LeftPadBytes(bigOrZero(asset.UnitID).Bytes(), wordSize)...)
	buf = append(buf, ethcommon.LeftPadBytes(seller.Bytes(), wordSize)...)
	buf = append(buf, ethcommon.LeftPadBytes(application.Bytes(), wordSize)...)
	return crypto.Keccak256Hash(buf)
}

// ParseListingID accepts a 0x-prefixed, 32-byte hex listing id.
func ParseListingID(listingId string) (ethcommon.Hash, error) {
	if listingId == "" {
		return ethcommon.Hash{}, common.NewErrInvalid(common.ReasonInvalidListingID, "listing ID is empty")
	}
	if !strings.HasPrefix(listingId, "0x") && !strings.HasPrefix(listingId, "0X") {
		return ethcommon.Hash{}, common.NewErrInvalid(common.ReasonInvalidListingID, "listing ID is not 0x-prefixed: %s", listingId)
	}
	raw, err := hexutil.Decode(listingId)
	if err != nil {
		return ethcommon.Hash{}, common.NewErrInvalid(common.ReasonInvalidListingID, "listing ID is not hex: %s", listingId)
	}
	if len(raw) != ethcommon.HashLength {
		return ethcommon.Hash{}, common.NewErrInvalid(common.ReasonInvalidListingID, "listing ID must be %d bytes, got %d", ethcommon.HashLength, len(raw))
	}
	return ethcommon.BytesToHash(raw), nil
}

// ParseAddress accepts a 0x-prefixed, 20-byte hex address. The zero address is rejected.
func ParseAddress(address string, tag string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(address) {
		return ethcommon.Address{}, common.NewErrInvalid(common.ReasonInvalidAddress, "invalid %s address: '%s'", tag, address)
	}
	addr := ethcommon.HexToAddress(address)
	if addr == (ethcommon.Address{}) {
		return ethcommon.Address{}, common.NewErrInvalid(common.ReasonInvalidAddress, "%s address is the zero address", tag)
	}
	return addr, nil
}

func requireAddress(addr ethcommon.Address, tag string) error {
	if addr == (ethcommon.Address{}) {
		return common.NewErrInvalid(common.ReasonInvalidAddress, "%s address is the zero address", tag)
	}
	return nil
}

// uint256 returns a copy of v checked to be in [0, 2^256). A nil v is zero.
func uint256(v *big.Int, tag string) (*big.Int, error) {
	if v == nil {
		return new(big.Int), nil
	}
	if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return nil, common.NewErrInvalid(common.ReasonInvalidAmount, "%s is out of range: %s", tag, v)
	}
	return new(big.Int).Set(v), nil
}

// positive is uint256 that also rejects zero.
func positive(v *big.Int, tag string) (*big.Int, error) {
	n, err := uint256(v, tag)
	if err != nil {
		return nil, err
	}
	if n.Sign() == 0 {
		return nil, common.NewErrInvalid(common.ReasonAmountMustBePositive, "%s must be positive", tag)
	}
	return n, nil
}
