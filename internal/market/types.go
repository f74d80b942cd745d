package market

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnavailable is the uniform failure signal for market data lookups. It
// covers non-200 responses, network failures, and malformed or incomplete
// payloads; callers never see a raw transport or decode error.
var ErrUnavailable = errors.New("market data unavailable")

// IndexPrice is the spot index price of a single asset.
type IndexPrice struct {
	Asset string
	Price decimal.Decimal
}

// FundingRate is the current funding rate of an asset's perpetual contract.
type FundingRate struct {
	Asset string
	Rate  decimal.Decimal
}
