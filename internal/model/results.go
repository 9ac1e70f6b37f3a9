package model

// Tally counts titles and their value for one side of the eligibility split.
type Tally struct {
	Count      int     `json:"count" yaml:"count"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// RejectionReason is one criterion that caused titles to be rejected.
// Percentage is relative to the rejected total, not the whole portfolio.
type RejectionReason struct {
	Reason     string  `json:"reason" yaml:"reason"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ResultMetrics are the headline figures under the rejection breakdown.
type ResultMetrics struct {
	ApprovalRate         float64 `json:"approval_rate" yaml:"approval_rate"`
	AverageApprovedValue float64 `json:"average_approved_value" yaml:"average_approved_value"`
	MaxConcentration     float64 `json:"max_concentration" yaml:"max_concentration"`
	AverageApprovedTerm  int     `json:"average_approved_term_days" yaml:"average_approved_term_days"`
}

// CriteriaResults is the dataset behind the criteria results panel.
type CriteriaResults struct {
	Approved Tally             `json:"approved" yaml:"approved"`
	Rejected Tally             `json:"rejected" yaml:"rejected"`
	Reasons  []RejectionReason `json:"reasons" yaml:"reasons"`
	Metrics  ResultMetrics     `json:"metrics" yaml:"metrics"`
}

// TotalRejections sums the per-reason counts.
// It need not match Rejected.Count; the fixtures never guaranteed that.
func (r *CriteriaResults) TotalRejections() int {
	total := 0
	for _, reason := range r.Reasons {
		total += reason.Count
	}
	return total
}
