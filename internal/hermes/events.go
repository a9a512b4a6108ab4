package hermes

import "time"

// ExportGeneratedEvent is published after an export payload is rendered.
type ExportGeneratedEvent struct {
	ExportID    string    `json:"export_id"`
	Format      string    `json:"format"`
	FileName    string    `json:"file_name"`
	Regions     int       `json:"regions"`
	Bytes       int       `json:"bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

// MessageID is the export ID, used for stream de-duplication.
func (e ExportGeneratedEvent) MessageID() string { return e.ExportID }

type CatalogLoadedEvent struct {
	Regions   int       `json:"regions"`
	High      int       `json:"high"`
	Moderate  int       `json:"moderate"`
	Low       int       `json:"low"`
	Top       string    `json:"top,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
