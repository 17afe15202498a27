package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// CurrencyExchangeRate an observed exchange rate between two currencies on a given date.
// One unit of SourceCurrency is worth RateValue units of ExchangedCurrency.
type CurrencyExchangeRate struct {
	SourceCurrency    Currency
	ExchangedCurrency Currency

	// ValuationDate the calendar day the rate applies to
	ValuationDate civil.Date

	// RateValue is not checked; zero and negative rates are kept as given
	RateValue float64
}

// NewCurrencyExchangeRate constructs a CurrencyExchangeRate without validation.
// source and exchanged may be the same currency.
func NewCurrencyExchangeRate(source, exchanged Currency, valuationDate civil.Date, rateValue float64) CurrencyExchangeRate {
	return CurrencyExchangeRate{
		SourceCurrency:    source,
		ExchangedCurrency: exchanged,
		ValuationDate:     valuationDate,
		RateValue:         rateValue,
	}
}

// String renders the rate as "USD/EUR = 0.85 (2023-10-01)".
// The rate uses the shortest float form that round-trips (%v).
func (r CurrencyExchangeRate) String() string {
	return fmt.Sprintf("%s/%s = %v (%s)",
		r.SourceCurrency.Code,
		r.ExchangedCurrency.Code,
		r.RateValue,
		r.ValuationDate,
	)
}
