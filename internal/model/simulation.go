package model

// SimulationID identifies one simulation run in the fixture catalog.
// Values are opaque strings ("1", "2", "3"); the empty string means "not selected".
type SimulationID string

// Simulation is one entry of the simulation selector.
type Simulation struct {
	ID    SimulationID `json:"id" yaml:"id"`
	Label string       `json:"label" yaml:"label"`
}

func (id SimulationID) IsSet() bool {
	return id != ""
}
