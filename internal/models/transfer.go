package models

import "time"

// ExportDocument is the backup file format.
type ExportDocument struct {
	Grids         []Grid  `json:"grids"`
	CurrentGridID *string `json:"currentGridId"`
	ExportDate    string  `json:"exportDate"`
}

// StateEnvelope wraps AppData as it is written to the persistence port.
type StateEnvelope struct {
	State   AppData `json:"state"`
	Version int     `json:"version"`
}

// ExportFileName returns kanban-export-<YYYY-MM-DD>.json for the given instant (UTC date).
func ExportFileName(at time.Time) string {
	return "kanban-export-" + at.UTC().Format("2006-01-02") + ".json"
}
