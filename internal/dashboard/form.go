package dashboard

import (
	"fmt"
	"sync"
)

// Form field names as they travel over the wire.
const (
	FieldCessionRate      = "cession_rate_percent"
	FieldPortfolioDate    = "portfolio_date"
	FieldCessionPotential = "cession_potential_amount"
	FieldSimulationCount  = "simulation_count"
)

var formFields = []string{FieldCessionRate, FieldPortfolioDate, FieldCessionPotential, FieldSimulationCount}

// FormData is the simulation configuration as typed by the operator.
// Values stay raw strings: the only check ever made is presence.
type FormData struct {
	CessionRatePercent     string `json:"cession_rate_percent"`
	PortfolioDate          string `json:"portfolio_date"`
	CessionPotentialAmount string `json:"cession_potential_amount"`
	SimulationCount        string `json:"simulation_count"`
}

// FormUpdate carries a partial edit; nil fields are left alone.
type FormUpdate struct {
	CessionRatePercent     *string `json:"cession_rate_percent"`
	PortfolioDate          *string `json:"portfolio_date"`
	CessionPotentialAmount *string `json:"cession_potential_amount"`
	SimulationCount        *string `json:"simulation_count"`
}

// FormState holds the configuration form.
type FormState struct {
	data FormData
	mu   sync.RWMutex
}

func (f *FormState) Data() FormData {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}

// Set changes one field by wire name.
func (f *FormState) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldCessionRate:
		f.data.CessionRatePercent = value
	case FieldPortfolioDate:
		f.data.PortfolioDate = value
	case FieldCessionPotential:
		f.data.CessionPotentialAmount = value
	case FieldSimulationCount:
		f.data.SimulationCount = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// Apply merges a partial edit.
func (f *FormState) Apply(u FormUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u.CessionRatePercent != nil {
		f.data.CessionRatePercent = *u.CessionRatePercent
	}
	if u.PortfolioDate != nil {
		f.data.PortfolioDate = *u.PortfolioDate
	}
	if u.CessionPotentialAmount != nil {
		f.data.CessionPotentialAmount = *u.CessionPotentialAmount
	}
	if u.SimulationCount != nil {
		f.data.SimulationCount = *u.SimulationCount
	}
}

// Missing lists the empty fields in form order.
func (f *FormState) Missing() []string {
	d := f.Data()
	values := map[string]string{
		FieldCessionRate:      d.CessionRatePercent,
		FieldPortfolioDate:    d.PortfolioDate,
		FieldCessionPotential: d.CessionPotentialAmount,
		FieldSimulationCount:  d.SimulationCount,
	}
	var missing []string
	for _, name := range formFields {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
