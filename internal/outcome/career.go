package outcome

import (
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// monthsPerPromotion is the average spacing between promotions.
const monthsPerPromotion = 18

// Career assigns promotion history and time-in-role fields.
func Career(e models.Employee, src *sampling.Source) (models.Employee, error) {
	years := e.TenureYears()

	e.NumberOfPromotions = min(e.JobLevel-1, max(0, e.TenureMonths/monthsPerPromotion))

	if e.NumberOfPromotions > 0 {
		e.YearsSinceLastPromotion = min(years, src.IntRange(0, min(5, years)))
		e.YearsInCurrentRole = min(years, e.YearsSinceLastPromotion)
	} else {
		e.YearsSinceLastPromotion = years
		e.YearsInCurrentRole = years
	}

	e.YearsWithCurrentManager = min(src.IntRange(0, max(1, years)), years)

	// a recent promotion usually comes with a recent salary change
	months := 0
	if e.YearsSinceLastPromotion > 0 || src.Bernoulli(0.7) {
		months = src.IntRange(0, 24)
	}
	e.MonthsSinceLastSalaryChange = min(months, e.TenureMonths)
	return e, nil
}
