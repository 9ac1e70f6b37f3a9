package dashboard

import (
	"errors"
	"fmt"
	"sync"

	"cessao-fidc/internal/events"
)

// ErrUnknownTab is returned when a tab id is not one of the four panels.
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies one of the mutually exclusive panels.
type Tab string

const (
	TabDataSubmission Tab = "envio-dados"
	TabStatistics     Tab = "analise-estatistica"
	TabResults        Tab = "resultados-criterios"
	TabDownloads      Tab = "downloads"
)

// TabInfo is a tab and its caption, in display order.
type TabInfo struct {
	ID    Tab
	Label string
}

// AllTabs lists the tabs in the order the tab bar shows them.
var AllTabs = []TabInfo{
	{ID: TabDataSubmission, Label: "Envio de Dados"},
	{ID: TabStatistics, Label: "Análise Estatística"},
	{ID: TabResults, Label: "Resultados de Critérios"},
	{ID: TabDownloads, Label: "Downloads"},
}

// ParseTab validates a tab id coming from a request.
func ParseTab(s string) (Tab, error) {
	for _, t := range AllTabs {
		if string(t.ID) == s {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// TabController holds which panel is visible. There are no guards and no terminal state.
type TabController struct {
	active Tab
	bus    *events.EventBus
	mu     sync.RWMutex
}

// NewTabController starts on the data submission panel.
func NewTabController(bus *events.EventBus) *TabController {
	return &TabController{active: TabDataSubmission, bus: bus}
}

// Active returns the visible tab.
func (t *TabController) Active() Tab {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// Select shows tab. Selecting the active tab is a no-op and reports false.
func (t *TabController) Select(tab Tab) bool {
	t.mu.Lock()
	from := t.active
	if from == tab {
		t.mu.Unlock()
		return false
	}
	t.active = tab
	t.mu.Unlock()

	if t.bus != nil {
		t.bus.PublishTabChanged(string(from), string(tab))
	}
	return true
}
