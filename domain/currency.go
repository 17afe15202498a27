package domain

// Currency describes a monetary unit: a short code, a full name and an optional display symbol
type Currency struct {
	// Code short identifier, e.g. "USD". Not validated.
	Code string

	// Name human-readable name, e.g. "United States Dollar"
	Name string

	// Symbol display glyph, e.g. "$". May be empty.
	Symbol string
}

// NewCurrency constructs a Currency. Any strings are accepted.
func NewCurrency(code, name, symbol string) Currency {
	return Currency{
		Code:   code,
		Name:   name,
		Symbol: symbol,
	}
}

// String renders the currency as "USD ($): United States Dollar",
// or "JPY: Japanese Yen" when there is no symbol.
func (c Currency) String() string {
	if c.Symbol == "" {
		return c.Code + ": " + c.Name
	}
	return c.Code + " (" + c.Symbol + "): " + c.Name
}
