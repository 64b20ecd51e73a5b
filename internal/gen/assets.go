package gen

// Ccy is one merged entry of the code and name assets, ready for the
// label templates.
type Ccy struct {
	Symbol     string
	Number     int
	MinorUnits int
	Name       string
	Sign       string
}

// CurrencyNames mirrors the display-name asset file, a trimmed CLDR
// currencies block.
type CurrencyNames struct {
	Currencies map[string]struct {
		DisplayName string `json:"displayName"`
		Sign        string `json:"symbol-alt-narrow"`
	} `json:"currencies"`
}
