package services

import (
	"context"

	"hrsynth/internal/pipeline"
)

// Runner is an interface for producing a finished employee table.
type Runner interface {
	// Run generates and verifies the table.
	Run(ctx context.Context) (pipeline.Table, error)
}
