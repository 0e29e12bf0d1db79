package importer

import (
	"time"

	"github.com/jhoicas/catalogo-tienda/internal/application/dto"
)

// StageReport resultado de una hoja.
type StageReport struct {
	Sheet       string `json:"sheet"`
	File        string `json:"file,omitempty"`
	Processed   int    `json:"processed"` // filas escritas (creadas o ya existentes)
	Created     int    `json:"created"`
	Skipped     int    `json:"skipped"`
	Failed      int    `json:"failed"`
	Warnings    int    `json:"warnings"`
	SkippedFile bool   `json:"skipped_file"`
	Error       string `json:"error,omitempty"`
}

// Report resultado de una ejecución completa.
type Report struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	DryRun    bool          `json:"dry_run"`
	Stages    []StageReport `json:"stages"`
	Success   bool          `json:"success"`
}

// Stage devuelve el reporte de la hoja indicada, o nil.
func (r *Report) Stage(sheet string) *StageReport {
	for i := range r.Stages {
		if r.Stages[i].Sheet == sheet {
			return &r.Stages[i]
		}
	}
	return nil
}

// Response convierte el reporte al DTO de la API.
func (r *Report) Response() dto.ImportResponse {
	out := dto.ImportResponse{
		Success:    r.Success,
		DurationMs: r.Duration.Milliseconds(),
		Stages:     make([]dto.StageResponse, 0, len(r.Stages)),
	}
	for _, s := range r.Stages {
		out.Stages = append(out.Stages, dto.StageResponse{
			Sheet:       s.Sheet,
			File:        s.File,
			Processed:   s.Processed,
			Created:     s.Created,
			Skipped:     s.Skipped,
			Failed:      s.Failed,
			Warnings:    s.Warnings,
			SkippedFile: s.SkippedFile,
			Error:       s.Error,
		})
	}
	return out
}
