// Package fixtures serves the sample datasets the dashboard renders. A real results
// source would implement Provider; nothing above this package knows the data is static.
package fixtures

import (
	"errors"
	"fmt"

	"cessao-fidc/internal/model"
)

// ErrUnknownSimulation is returned for ids outside the simulation catalog.
var ErrUnknownSimulation = errors.New("unknown simulation")

// Provider is the data source behind the statistics, results and downloads panels.
type Provider interface {
	Simulations() []model.Simulation
	Statistics(id model.SimulationID) (*model.Statistics, error)
	Results(id model.SimulationID) (*model.CriteriaResults, error)
	DownloadOptions() []model.DownloadOption
	DownloadHistory() []model.DownloadRecord
}

// Dataset is the full fixture set. It doubles as the YAML fixture file shape.
type Dataset struct {
	Simulations     []model.Simulation     `yaml:"simulations"`
	Statistics      model.Statistics       `yaml:"statistics"`
	Results         model.CriteriaResults  `yaml:"results"`
	DownloadOptions []model.DownloadOption `yaml:"download_options"`
	DownloadHistory []model.DownloadRecord `yaml:"download_history"`
}

// Static answers every simulation with the same dataset.
type Static struct {
	data Dataset
}

// NewStatic wraps a dataset.
func NewStatic(data Dataset) *Static {
	return &Static{data: data}
}

// Default returns the built-in sample data.
func Default() *Static {
	return NewStatic(Builtin())
}

func (s *Static) Simulations() []model.Simulation {
	out := make([]model.Simulation, len(s.data.Simulations))
	copy(out, s.data.Simulations)
	return out
}

// Statistics ignores which simulation was asked for once the id is known to exist.
func (s *Static) Statistics(id model.SimulationID) (*model.Statistics, error) {
	if err := s.check(id); err != nil {
		return nil, err
	}
	st := s.data.Statistics
	st.Maturity = append([]model.MaturityBucket(nil), st.Maturity...)
	st.States = append([]model.StateShare(nil), st.States...)
	return &st, nil
}

func (s *Static) Results(id model.SimulationID) (*model.CriteriaResults, error) {
	if err := s.check(id); err != nil {
		return nil, err
	}
	r := s.data.Results
	r.Reasons = append([]model.RejectionReason(nil), r.Reasons...)
	return &r, nil
}

func (s *Static) DownloadOptions() []model.DownloadOption {
	out := make([]model.DownloadOption, len(s.data.DownloadOptions))
	copy(out, s.data.DownloadOptions)
	return out
}

func (s *Static) DownloadHistory() []model.DownloadRecord {
	out := make([]model.DownloadRecord, len(s.data.DownloadHistory))
	copy(out, s.data.DownloadHistory)
	return out
}

func (s *Static) check(id model.SimulationID) error {
	for _, sim := range s.data.Simulations {
		if sim.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSimulation, id)
}

// HasSimulation reports whether id is in the provider's catalog.
func HasSimulation(p Provider, id model.SimulationID) bool {
	for _, sim := range p.Simulations() {
		if sim.ID == id {
			return true
		}
	}
	return false
}

// HasOption reports whether id is in the provider's download catalog.
func HasOption(p Provider, id model.DownloadOptionID) bool {
	for _, opt := range p.DownloadOptions() {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Dataset returns the data behind the provider, as it would be written to a
// fixture file.
func (s *Static) Dataset() Dataset {
	return Dataset{
		Simulations:     s.Simulations(),
		Statistics:      s.data.Statistics,
		Results:         s.data.Results,
		DownloadOptions: s.DownloadOptions(),
		DownloadHistory: s.DownloadHistory(),
	}
}
