package outcome

import (
	"fmt"

	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

const (
	voluntaryShare        = 0.7
	lowPerformerVoluntary = 0.4
	lowWorkLifeBoost      = 0.2
)

// VoluntaryShare returns the chance a departure is voluntary given the
// performance rating.
func VoluntaryShare(rating int) float64 {
	if rating <= 2 {
		return lowPerformerVoluntary
	}
	return voluntaryShare
}

// ReasonWeights returns the renormalized reason weights for an employee and
// turnover category.
func ReasonWeights(e models.Employee, category models.TurnoverCategory) ([]string, []float64, error) {
	if category == models.TurnoverInvoluntary {
		w, err := sampling.Normalize(catalog.InvoluntaryWeights(e.PerformanceRating))
		return catalog.InvoluntaryReasons, w, err
	}
	weights := catalog.VoluntaryWeights(e.TenureMonths)
	if e.WorkLifeBalanceRating <= 2 {
		weights[1] += lowWorkLifeBoost
	}
	w, err := sampling.Normalize(weights)
	return catalog.VoluntaryReasons, w, err
}

// Departure classifies how and why a former employee left. Current employees
// get no departure details.
func Departure(e models.Employee, src *sampling.Source) (models.Employee, error) {
	if !e.Departed() {
		e.Departure = nil
		return e, nil
	}

	d := &models.Departure{Category: models.TurnoverInvoluntary, Functional: true}
	if src.Bernoulli(VoluntaryShare(e.PerformanceRating)) {
		d.Category = models.TurnoverVoluntary
		// losing a strong performer hurts
		d.Functional = e.PerformanceRating <= 3
	}

	reasons, weights, err := ReasonWeights(e, d.Category)
	if err != nil {
		return e, fmt.Errorf("departure reason for %s: %w", e.ID, err)
	}
	if d.Reason, err = sampling.Pick(src, reasons, weights); err != nil {
		return e, fmt.Errorf("departure reason for %s: %w", e.ID, err)
	}
	e.Departure = d
	return e, nil
}
