package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays a YAML fixture file on the built-in data. Sections absent from
// the file keep their built-in values. A missing file is not an error.
func LoadFile(path string) (*Static, error) {
	base := Builtin()
	if path == "" {
		return NewStatic(base), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStatic(base), nil
		}
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	var overlay Dataset
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}

	return NewStatic(merge(base, overlay)), nil
}

func merge(base, overlay Dataset) Dataset {
	out := base
	if len(overlay.Simulations) > 0 {
		out.Simulations = overlay.Simulations
	}
	if len(overlay.Statistics.Maturity) > 0 || len(overlay.Statistics.States) > 0 || overlay.Statistics.PortfolioTotal != 0 {
		out.Statistics = overlay.Statistics
	}
	if overlay.Results.Approved.Count != 0 || overlay.Results.Rejected.Count != 0 || len(overlay.Results.Reasons) > 0 {
		out.Results = overlay.Results
	}
	if len(overlay.DownloadOptions) > 0 {
		out.DownloadOptions = overlay.DownloadOptions
	}
	if len(overlay.DownloadHistory) > 0 {
		out.DownloadHistory = overlay.DownloadHistory
	}
	return out
}
