package models

// TabRequest selects the active tab.
type TabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// DragRequest reports the pointer entering (over=true) or leaving a drop zone.
type DragRequest struct {
	Over bool `json:"over"`
}

// FileInfo is the metadata the browser knows about a chosen file.
type FileInfo struct {
	FileName      string `json:"fileName" binding:"required"`
	FileSizeBytes int64  `json:"fileSizeBytes"`
	ContentType   string `json:"contentType,omitempty"`
}

// FilesRequest replaces a widget's selection, either from a drop or from the picker.
type FilesRequest struct {
	Modality string     `json:"modality" binding:"required,oneof=drop pick"`
	Files    []FileInfo `json:"files" binding:"dive"`
}

// SimulationRequest selects a simulation on a panel.
type SimulationRequest struct {
	ID string `json:"id" binding:"required"`
}

// OptionRequest ticks or unticks a download option.
type OptionRequest struct {
	Checked bool `json:"checked"`
}
