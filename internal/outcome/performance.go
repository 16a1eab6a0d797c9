// Package outcome assigns the fields that depend on an employee's static
// attributes and lifecycle: performance, career progression, compensation and
// departure details. Cross-field coupling is left to the reconciler.
package outcome

import (
	"fmt"

	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

const highPotentialShare = 0.7

func rating(src *sampling.Source) int {
	return sampling.Clamp(int(src.Normal(3.5, 1)), 1, 5)
}

// Performance assigns ratings, engagement, training hours and the
// high-potential flag.
func Performance(e models.Employee, src *sampling.Source) (models.Employee, error) {
	r, err := sampling.Pick(src, catalog.PerformanceRatings.Values, catalog.PerformanceRatings.Weights)
	if err != nil {
		return e, fmt.Errorf("performance rating: %w", err)
	}
	e.PerformanceRating = catalog.Rating(r)
	e.EngagementScore = sampling.Clamp(int(src.Normal(75, 15)), 1, 100)
	e.WorkLifeBalanceRating = rating(src)
	e.JobSatisfaction = rating(src)
	e.RelationshipWithManager = rating(src)

	boost := 1.0
	if e.JobLevel <= 3 {
		boost = 1.2
	}
	e.TrainingHoursLastYear = sampling.Clamp(int(src.Normal(40, 20)*boost), 0, 100)

	e.HighPotential = e.PerformanceRating >= 4 && e.EngagementScore >= 70 && src.Bernoulli(highPotentialShare)
	return e, nil
}
