package report

import "time"

// Report is a rendered export ready to be streamed to the client.
type Report struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	GeneratedAt time.Time `json:"generated_at"`
	Data        []byte    `json:"-"`
}

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)
