package model

// DownloadOptionID identifies one report type in the download catalog.
type DownloadOptionID string

const (
	OptionApprovedPortfolio DownloadOptionID = "carteira-pos-cessao"
	OptionNewPortfolio      DownloadOptionID = "carteira-nova"
	OptionRejectedCredits   DownloadOptionID = "creditos-recusados"
)

// DownloadOption is one checkbox in the downloads panel.
type DownloadOption struct {
	ID          DownloadOptionID `json:"id" yaml:"id"`
	Label       string           `json:"label" yaml:"label"`
	Description string           `json:"description" yaml:"description"`
}

// DownloadRecord is one line of the download history.
type DownloadRecord struct {
	At         string `json:"at" yaml:"at"` // "2006-01-02 15:04", kept as displayed
	Simulation string `json:"simulation" yaml:"simulation"`
	Files      string `json:"files" yaml:"files"`
	Status     string `json:"status" yaml:"status"`
}
