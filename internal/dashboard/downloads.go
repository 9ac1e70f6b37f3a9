package dashboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
	"cessao-fidc/internal/notify"
)

// ErrUnknownOption is returned for checkbox ids outside the download catalog.
var ErrUnknownOption = errors.New("unknown download option")

// DefaultDownloadDelay is how long a mocked download takes to "complete".
const DefaultDownloadDelay = 2 * time.Second

// estimatedMBPerFile drives the size shown in the download summary.
const estimatedMBPerFile = 2.5

// DownloadSummary is the "Resumo do Download" card. Ready is false until both a
// simulation and at least one option are chosen; the button is disabled until then.
type DownloadSummary struct {
	Ready           bool               `json:"ready"`
	Simulation      model.SimulationID `json:"simulation"`
	FileCount       int                `json:"file_count"`
	Format          string             `json:"format"`
	EstimatedSizeMB float64            `json:"estimated_size_mb"`
}

// DownloadsPanel tracks the simulation and report checkboxes and runs the mocked
// download. Completion timers die with the panel.
type DownloadsPanel struct {
	*SimulationPicker

	notifier *notify.Center
	delay    time.Duration

	checked map[model.DownloadOptionID]bool
	pending map[uint64]*time.Timer
	nextID  uint64
	closed  bool
	mu      sync.Mutex
}

func NewDownloadsPanel(provider fixtures.Provider, notifier *notify.Center, delay time.Duration) *DownloadsPanel {
	if delay <= 0 {
		delay = DefaultDownloadDelay
	}
	return &DownloadsPanel{
		SimulationPicker: newSimulationPicker(provider, ""),
		notifier:         notifier,
		delay:            delay,
		checked:          make(map[model.DownloadOptionID]bool),
		pending:          make(map[uint64]*time.Timer),
	}
}

// Options returns the catalog in display order.
func (p *DownloadsPanel) Options() []model.DownloadOption {
	return p.provider.DownloadOptions()
}

// History returns the fixture download history.
func (p *DownloadsPanel) History() []model.DownloadRecord {
	return p.provider.DownloadHistory()
}

// SetChecked ticks or unticks one report type.
func (p *DownloadsPanel) SetChecked(id model.DownloadOptionID, checked bool) error {
	if !fixtures.HasOption(p.provider, id) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if checked {
		p.checked[id] = true
	} else {
		delete(p.checked, id)
	}
	return nil
}

// Checked returns the ticked options in catalog order.
func (p *DownloadsPanel) Checked() []model.DownloadOptionID {
	catalog := p.provider.DownloadOptions()

	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.DownloadOptionID, 0, len(p.checked))
	for _, opt := range catalog {
		if p.checked[opt.ID] {
			out = append(out, opt.ID)
		}
	}
	return out
}

// Summary describes what a download would produce right now.
func (p *DownloadsPanel) Summary() DownloadSummary {
	sim := p.Selected()
	n := len(p.Checked())
	return DownloadSummary{
		Ready:           sim.IsSet() && n > 0,
		Simulation:      sim,
		FileCount:       n,
		Format:          "Excel (.xlsx)",
		EstimatedSizeMB: float64(n) * estimatedMBPerFile,
	}
}

// Download validates the selection, announces the start and schedules the
// completion notice. It returns the first notification emitted.
func (p *DownloadsPanel) Download() model.Notification {
	sim := p.Selected()
	if !sim.IsSet() {
		return p.notifier.Failure("Erro", "Selecione uma simulação para realizar o download.")
	}
	n := len(p.Checked())
	if n == 0 {
		return p.notifier.Failure("Erro", "Selecione ao menos um tipo de arquivo para download.")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return p.notifier.Failure("Erro", "Painel de downloads encerrado.")
	}
	// started is queued under the lock so completion can never overtake it
	started := p.notifier.Success("Download iniciado",
		fmt.Sprintf("Gerando %d arquivo(s) da Simulação %s...", n, sim))
	p.nextID++
	id := p.nextID
	p.pending[id] = time.AfterFunc(p.delay, func() { p.complete(id) })
	return started
}

func (p *DownloadsPanel) complete(id uint64) {
	p.mu.Lock()
	if _, ok := p.pending[id]; !ok || p.closed {
		p.mu.Unlock()
		return
	}
	delete(p.pending, id)
	p.mu.Unlock()

	p.notifier.Success("Download concluído", "Arquivos baixados com sucesso!")
}

// Pending returns the number of downloads still waiting to complete.
func (p *DownloadsPanel) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Close stops every pending completion timer. Timers already firing see the
// closed flag and emit nothing.
func (p *DownloadsPanel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	for id, t := range p.pending {
		t.Stop()
		delete(p.pending, id)
	}
}
