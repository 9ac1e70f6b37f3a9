// Package dashboard is the page state of the cession dashboard: the tab bar and
// the four panels, each owning its own state.
package dashboard

import (
	"sync"
	"time"

	"cessao-fidc/internal/events"
	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/notify"
)

// Options configures a new dashboard.
type Options struct {
	Provider      fixtures.Provider
	DownloadDelay time.Duration
	// Bus and Notifier are created when nil.
	Bus      *events.EventBus
	Notifier *notify.Center
}

// Dashboard is one operator's page.
type Dashboard struct {
	Tabs       *TabController
	Submission *SubmissionPanel
	Statistics *StatisticsPanel
	Results    *ResultsPanel
	Downloads  *DownloadsPanel

	Bus      *events.EventBus
	Notifier *notify.Center

	closeOnce sync.Once
}

func New(opts Options) *Dashboard {
	if opts.Provider == nil {
		opts.Provider = fixtures.Default()
	}
	if opts.Bus == nil {
		opts.Bus = events.NewEventBus(0)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewCenter(opts.Bus, 0)
	}

	return &Dashboard{
		Tabs:       NewTabController(opts.Bus),
		Submission: NewSubmissionPanel(opts.Notifier, opts.Bus),
		Statistics: NewStatisticsPanel(opts.Provider),
		Results:    NewResultsPanel(opts.Provider),
		Downloads:  NewDownloadsPanel(opts.Provider, opts.Notifier, opts.DownloadDelay),
		Bus:        opts.Bus,
		Notifier:   opts.Notifier,
	}
}

// Close tears the page down: pending download timers are stopped and the event
// bus is closed. Safe to call more than once.
func (d *Dashboard) Close() {
	d.closeOnce.Do(func() {
		d.Downloads.Close()
		d.Bus.Close()
	})
}
