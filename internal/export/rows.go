// Package export turns fixture datasets into the spreadsheets the downloads panel
// advertises. The mocked Download action never calls it; the preview endpoint and
// the CLI do.
package export

import (
	"errors"
	"fmt"

	"cessao-fidc/internal/fixtures"
	"cessao-fidc/internal/model"
)

// ErrUnknownOption is returned for option ids without a sheet layout.
var ErrUnknownOption = errors.New("no export layout for option")

// Table is a header plus data rows for one download option.
type Table struct {
	Title  string
	Header []string
	Rows   [][]any
}

// BuildTable lays out one download option for one simulation.
func BuildTable(p fixtures.Provider, id model.SimulationID, option model.DownloadOptionID) (*Table, error) {
	title := string(option)
	for _, opt := range p.DownloadOptions() {
		if opt.ID == option {
			title = opt.Label
		}
	}

	switch option {
	case model.OptionApprovedPortfolio:
		r, err := p.Results(id)
		if err != nil {
			return nil, err
		}
		return &Table{
			Title:  title,
			Header: []string{"Métrica", "Valor"},
			Rows: [][]any{
				{"Títulos aprovados", r.Approved.Count},
				{"Valor total aprovado (R$)", r.Approved.Amount},
				{"Percentual aprovado (%)", r.Approved.Percentage},
				{"Taxa de aprovação (%)", r.Metrics.ApprovalRate},
				{"Valor médio aprovado (R$)", r.Metrics.AverageApprovedValue},
				{"Concentração máxima (%)", r.Metrics.MaxConcentration},
				{"Prazo médio aprovado (dias)", r.Metrics.AverageApprovedTerm},
			},
		}, nil

	case model.OptionNewPortfolio:
		st, err := p.Statistics(id)
		if err != nil {
			return nil, err
		}
		t := &Table{Title: title, Header: []string{"Agrupamento", "Chave", "Valor (R$)", "Percentual (%)"}}
		for _, b := range st.Maturity {
			t.Rows = append(t.Rows, []any{"Vencimento", b.Month, b.Amount, ""})
		}
		for _, s := range st.States {
			t.Rows = append(t.Rows, []any{"UF", s.State, s.Amount, s.Percentage})
		}
		t.Rows = append(t.Rows,
			[]any{"Total", "Carteira", st.PortfolioTotal, ""},
			[]any{"Total", "Prazo médio (dias)", st.AverageTermDays, ""},
			[]any{"Total", "Quantidade de títulos", st.TitleCount, ""},
		)
		return t, nil

	case model.OptionRejectedCredits:
		r, err := p.Results(id)
		if err != nil {
			return nil, err
		}
		t := &Table{Title: title, Header: []string{"Motivo", "Quantidade", "% do total reprovado"}}
		for _, reason := range r.Reasons {
			t.Rows = append(t.Rows, []any{reason.Reason, reason.Count, reason.Percentage})
		}
		t.Rows = append(t.Rows, []any{"Total de Recusas", r.TotalRejections(), ""})
		return t, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOption, option)
}
