package dashboard

import (
	"fmt"
	"sync"

	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

// SimulationPicker is the "Seleção de Simulação" control each data panel owns.
type SimulationPicker struct {
	provider fixtures.Provider
	selected model.SimulationID
	mu       sync.RWMutex
}

func newSimulationPicker(provider fixtures.Provider, initial model.SimulationID) *SimulationPicker {
	return &SimulationPicker{provider: provider, selected: initial}
}

// Selected returns the chosen id, or "" when nothing is chosen.
func (s *SimulationPicker) Selected() model.SimulationID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select chooses a simulation from the provider's catalog.
func (s *SimulationPicker) Select(id model.SimulationID) error {
	if !fixtures.HasSimulation(s.provider, id) {
		return fmt.Errorf("%w: %q", fixtures.ErrUnknownSimulation, id)
	}
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

// StatisticsPanel shows the portfolio statistics for the selected simulation.
type StatisticsPanel struct {
	*SimulationPicker
}

func NewStatisticsPanel(provider fixtures.Provider) *StatisticsPanel {
	return &StatisticsPanel{SimulationPicker: newSimulationPicker(provider, firstSimulation(provider))}
}

func (p *StatisticsPanel) Data() (*model.Statistics, error) {
	return p.provider.Statistics(p.Selected())
}

// ResultsPanel shows the eligibility outcome for the selected simulation.
type ResultsPanel struct {
	*SimulationPicker
}

func NewResultsPanel(provider fixtures.Provider) *ResultsPanel {
	return &ResultsPanel{SimulationPicker: newSimulationPicker(provider, firstSimulation(provider))}
}

func (p *ResultsPanel) Data() (*model.CriteriaResults, error) {
	return p.provider.Results(p.Selected())
}

// firstSimulation is the default pick for panels that always show data.
func firstSimulation(p fixtures.Provider) model.SimulationID {
	sims := p.Simulations()
	if len(sims) == 0 {
		return ""
	}
	return sims[0].ID
}
