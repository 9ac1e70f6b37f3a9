package dashboard

import (
	"cessao-fidc/internal/model"
	"cessao-fidc/internal/selection"
)

// WidgetSnapshot is the visible state of one file-selection widget.
type WidgetSnapshot struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Accept   string           `json:"accept"`
	Multiple bool             `json:"multiple"`
	DragOver bool             `json:"drag_over"`
	Files    []selection.File `json:"files"`
}

// DownloadsSnapshot is the visible state of the downloads panel.
type DownloadsSnapshot struct {
	Simulation model.SimulationID       `json:"simulation"`
	Checked    []model.DownloadOptionID `json:"checked"`
	Summary    DownloadSummary          `json:"summary"`
	Pending    int                      `json:"pending"`
}

// Snapshot is a read-only copy of the whole page state.
type Snapshot struct {
	ActiveTab            Tab                `json:"active_tab"`
	Widgets              []WidgetSnapshot   `json:"widgets"`
	Form                 FormData           `json:"form"`
	StatisticsSimulation model.SimulationID `json:"statistics_simulation"`
	ResultsSimulation    model.SimulationID `json:"results_simulation"`
	Downloads            DownloadsSnapshot  `json:"downloads"`
	PendingNotifications int                `json:"pending_notifications"`
}

func snapshotWidget(w *selection.Widget) WidgetSnapshot {
	cfg := w.Config()
	return WidgetSnapshot{
		ID:       cfg.ID,
		Label:    cfg.Label,
		Accept:   cfg.Accept,
		Multiple: cfg.Multiple,
		DragOver: w.DragActive(),
		Files:    w.Files(),
	}
}

// Snapshot copies the current state of every panel.
func (d *Dashboard) Snapshot() Snapshot {
	widgets := make([]WidgetSnapshot, 0, 2)
	for _, w := range d.Submission.Widgets() {
		widgets = append(widgets, snapshotWidget(w))
	}
	return Snapshot{
		ActiveTab:            d.Tabs.Active(),
		Widgets:              widgets,
		Form:                 d.Submission.Form.Data(),
		StatisticsSimulation: d.Statistics.Selected(),
		ResultsSimulation:    d.Results.Selected(),
		Downloads: DownloadsSnapshot{
			Simulation: d.Downloads.Selected(),
			Checked:    d.Downloads.Checked(),
			Summary:    d.Downloads.Summary(),
			Pending:    d.Downloads.Pending(),
		},
		PendingNotifications: d.Notifier.Pending(),
	}
}
