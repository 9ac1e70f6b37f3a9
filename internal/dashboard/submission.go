package dashboard

import (
	"errors"
	"fmt"
	"sync"

	"cessao-fidc/internal/events"
	"cessao-fidc/internal/model"
	"cessao-fidc/internal/notify"
	"cessao-fidc/internal/selection"
)

// ErrUnknownWidget is returned for widget ids the submission panel does not own.
var ErrUnknownWidget = errors.New("unknown widget")

// Widget ids on the submission panel.
const (
	WidgetBatch    = "cnab"
	WidgetInvoices = "notas-fiscais"
)

// SubmissionPanel owns the two file-selection widgets, the configuration form and
// the three actions. Actions only emit notifications.
type SubmissionPanel struct {
	batch    *selection.Widget
	invoices *selection.Widget
	Form     *FormState

	notifier *notify.Center
	bus      *events.EventBus

	// copies lifted from the widgets' change callbacks
	batchFiles   []selection.File
	invoiceFiles []selection.File
	mu           sync.RWMutex
}

func NewSubmissionPanel(notifier *notify.Center, bus *events.EventBus) *SubmissionPanel {
	p := &SubmissionPanel{
		Form:     &FormState{},
		notifier: notifier,
		bus:      bus,
	}
	p.batch = selection.New(selection.Config{
		ID:       WidgetBatch,
		Label:    "Upload CNAB (400 ou 600)",
		Accept:   ".txt,.cnab",
		Multiple: true,
	}, func(files []selection.File) { p.lift(WidgetBatch, files) })
	p.invoices = selection.New(selection.Config{
		ID:       WidgetInvoices,
		Label:    "Upload Notas Fiscais",
		Accept:   ".pdf,.xml",
		Multiple: true,
	}, func(files []selection.File) { p.lift(WidgetInvoices, files) })
	return p
}

// Widget looks up a widget by id.
func (p *SubmissionPanel) Widget(id string) (*selection.Widget, error) {
	switch id {
	case WidgetBatch:
		return p.batch, nil
	case WidgetInvoices:
		return p.invoices, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, id)
}

// Widgets returns both widgets in display order.
func (p *SubmissionPanel) Widgets() []*selection.Widget {
	return []*selection.Widget{p.batch, p.invoices}
}

func (p *SubmissionPanel) lift(widget string, files []selection.File) {
	p.mu.Lock()
	switch widget {
	case WidgetBatch:
		p.batchFiles = files
	case WidgetInvoices:
		p.invoiceFiles = files
	}
	p.mu.Unlock()

	if p.bus != nil {
		p.bus.PublishSelectionChanged(widget, len(files))
	}
}

// BatchFiles returns the batch files the panel last heard about.
func (p *SubmissionPanel) BatchFiles() []selection.File {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]selection.File(nil), p.batchFiles...)
}

// InvoiceFiles returns the invoice files the panel last heard about.
func (p *SubmissionPanel) InvoiceFiles() []selection.File {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]selection.File(nil), p.invoiceFiles...)
}

// TransformBatch would hand the CNAB files to the transform service.
func (p *SubmissionPanel) TransformBatch() model.Notification {
	n := len(p.BatchFiles())
	if n == 0 {
		return p.notifier.Failure("Erro", "Selecione ao menos um arquivo CNAB para transformar.")
	}
	return p.notifier.Success("Processando CNAB",
		fmt.Sprintf("Transformando %d arquivo(s) CNAB para formato Finaxis...", n))
}

// SendInvoices would hand the invoice files to the ingestion service.
func (p *SubmissionPanel) SendInvoices() model.Notification {
	n := len(p.InvoiceFiles())
	if n == 0 {
		return p.notifier.Failure("Erro", "Selecione ao menos uma Nota Fiscal para enviar.")
	}
	return p.notifier.Success("Upload realizado",
		fmt.Sprintf("%d Nota(s) Fiscal(is) enviada(s) com sucesso.", n))
}

// ApplyCriteria would start the eligibility analysis. Only presence is checked.
func (p *SubmissionPanel) ApplyCriteria() model.Notification {
	if len(p.Form.Missing()) > 0 {
		return p.notifier.Failure("Campos obrigatórios", "Preencha todos os campos do formulário.")
	}
	return p.notifier.Success("Critérios aplicados", "Análise de elegibilidade iniciada com sucesso.")
}
