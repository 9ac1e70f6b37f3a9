package model

// MaturityBucket is the total receivable value falling due in one month.
// Amount is in BRL.
type MaturityBucket struct {
	Month  string  `json:"month" yaml:"month"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// StateShare is the portfolio value concentrated in one Brazilian state (UF).
// Percentage is 0..100.
type StateShare struct {
	State      string  `json:"state" yaml:"state"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Statistics is the dataset behind the statistical analysis panel.
type Statistics struct {
	Maturity        []MaturityBucket `json:"maturity" yaml:"maturity"`
	States          []StateShare     `json:"states" yaml:"states"`
	PortfolioTotal  float64          `json:"portfolio_total" yaml:"portfolio_total"`
	AverageTermDays int              `json:"average_term_days" yaml:"average_term_days"`
	TitleCount      int              `json:"title_count" yaml:"title_count"`
}
