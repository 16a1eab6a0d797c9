package repository

import (
	"context"

	"hrsynth/pkg/models"
)

// DatasetStore is an interface for persisting the finished employee table.
type DatasetStore interface {
	// Save writes every record. Either the whole table is stored or nothing is.
	Save(ctx context.Context, records []models.Employee) error
	// Location describes where the table was written.
	Location() string
}

// ReportStore is an interface for persisting rendered reports.
type ReportStore interface {
	// SaveReport writes one named report document.
	SaveReport(ctx context.Context, name string, content []byte) (string, error)
}
