package dto

// StageResponse resultado de una hoja.
type StageResponse struct {
	Sheet       string `json:"sheet"`
	File        string `json:"file,omitempty"`
	Processed   int    `json:"processed"`
	Created     int    `json:"created"`
	Skipped     int    `json:"skipped"`
	Failed      int    `json:"failed"`
	Warnings    int    `json:"warnings"`
	SkippedFile bool   `json:"skipped_file"`
	Error       string `json:"error,omitempty"`
}

// ImportResponse resumen de una importación.
type ImportResponse struct {
	Success    bool            `json:"success"`
	DurationMs int64           `json:"duration_ms"`
	Stages     []StageResponse `json:"stages"`
}
