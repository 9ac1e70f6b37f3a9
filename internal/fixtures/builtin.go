package fixtures

import "cessao-fidc/internal/model"

// Builtin returns the sample data shown when no fixture file is configured.
func Builtin() Dataset {
	return Dataset{
		Simulations: []model.Simulation{
			{ID: "1", Label: "Simulação 1"},
			{ID: "2", Label: "Simulação 2"},
			{ID: "3", Label: "Simulação 3"},
		},
		Statistics: model.Statistics{
			Maturity: []model.MaturityBucket{
				{Month: "Jan", Amount: 120000},
				{Month: "Fev", Amount: 98000},
				{Month: "Mar", Amount: 145000},
				{Month: "Abr", Amount: 167000},
				{Month: "Mai", Amount: 134000},
				{Month: "Jun", Amount: 189000},
			},
			States: []model.StateShare{
				{State: "SP", Amount: 450000, Percentage: 35},
				{State: "RJ", Amount: 280000, Percentage: 22},
				{State: "MG", Amount: 190000, Percentage: 15},
				{State: "RS", Amount: 150000, Percentage: 12},
				{State: "PR", Amount: 120000, Percentage: 9},
				{State: "Outros", Amount: 90000, Percentage: 7},
			},
			PortfolioTotal:  1280000,
			AverageTermDays: 127,
			TitleCount:      2450,
		},
		Results: model.CriteriaResults{
			Approved: model.Tally{Count: 1850, Amount: 980000, Percentage: 75.5},
			Rejected: model.Tally{Count: 600, Amount: 300000, Percentage: 24.5},
			Reasons: []model.RejectionReason{
				{Reason: "Prazo de vencimento superior a 180 dias", Count: 245, Percentage: 40.8},
				{Reason: "Rating do devedor inferior ao mínimo", Count: 156, Percentage: 26.0},
				{Reason: "Valor individual inferior ao limite", Count: 98, Percentage: 16.3},
				{Reason: "Concentração por devedor excedida", Count: 67, Percentage: 11.2},
				{Reason: "Outros critérios", Count: 34, Percentage: 5.7},
			},
			Metrics: model.ResultMetrics{
				ApprovalRate:         75.5,
				AverageApprovedValue: 530,
				MaxConcentration:     8.5,
				AverageApprovedTerm:  98,
			},
		},
		DownloadOptions: []model.DownloadOption{
			{
				ID:          model.OptionApprovedPortfolio,
				Label:       "Carteira Pós-Cessão",
				Description: "Lista de créditos aprovados após aplicação dos critérios",
			},
			{
				ID:          model.OptionNewPortfolio,
				Label:       "Carteira Nova",
				Description: "Dados da carteira original antes da análise",
			},
			{
				ID:          model.OptionRejectedCredits,
				Label:       "Créditos Recusados",
				Description: "Lista detalhada dos créditos reprovados com motivos",
			},
		},
		DownloadHistory: []model.DownloadRecord{
			{At: "2024-01-15 14:30", Simulation: "Simulação 3", Files: "3 arquivos", Status: "Concluído"},
			{At: "2024-01-15 11:20", Simulation: "Simulação 2", Files: "2 arquivos", Status: "Concluído"},
			{At: "2024-01-14 16:45", Simulation: "Simulação 1", Files: "3 arquivos", Status: "Concluído"},
		},
	}
}
