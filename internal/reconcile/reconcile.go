// Package reconcile enforces the cross-field rules of the finished dataset.
// Corrections are clamps; nothing is re-sampled.
package reconcile

import (
	"errors"
	"fmt"

	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// ErrInvariantViolated is returned by Verify for the first broken rule.
var ErrInvariantViolated = errors.New("invariant violated")

const (
	seniorLevel      = 4
	shortTenure      = 36
	maxEarlyPromos   = 2
	educatedLevel    = 5
	lowestEducation  = models.EducationHighSchool
	defaultEducation = models.EducationBachelor
)

// Record applies every correction to one employee.
func Record(e models.Employee) models.Employee {
	years := e.TenureYears()

	if e.NumberOfPromotions > e.JobLevel-1 {
		e.NumberOfPromotions = max(0, e.JobLevel-1)
	}
	if e.NumberOfPromotions < 0 {
		e.NumberOfPromotions = 0
	}
	if e.JobLevel >= seniorLevel && e.TenureMonths < shortTenure && e.NumberOfPromotions > maxEarlyPromos {
		e.NumberOfPromotions = maxEarlyPromos
	}

	if e.YearsInCurrentRole*12 > e.TenureMonths {
		e.YearsInCurrentRole = years
	}
	if e.YearsSinceLastPromotion*12 > e.TenureMonths {
		e.YearsSinceLastPromotion = years
	}
	if e.YearsWithCurrentManager*12 > e.TenureMonths {
		e.YearsWithCurrentManager = years
	}
	if e.MonthsSinceLastSalaryChange > e.TenureMonths {
		e.MonthsSinceLastSalaryChange = e.TenureMonths
	}

	if e.NumberOfPromotions == 0 {
		e.YearsSinceLastPromotion = years
	}

	if e.JobLevel >= educatedLevel && e.Education == lowestEducation {
		e.Education = defaultEducation
	}

	if !e.Departed() {
		e.TerminationDate = nil
		e.Departure = nil
	}
	return e
}

// Stage adapts Record to the pipeline stage signature. It draws no randomness.
func Stage(e models.Employee, _ *sampling.Source) (models.Employee, error) {
	return Record(e), nil
}

// Check returns the first rule the employee breaks, or nil.
func Check(e models.Employee) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvariantViolated, e.ID, fmt.Sprintf(format, args...))
	}
	switch {
	case e.YearsInCurrentRole*12 > e.TenureMonths:
		return fail("years in current role %d exceeds tenure %d months", e.YearsInCurrentRole, e.TenureMonths)
	case e.YearsSinceLastPromotion*12 > e.TenureMonths:
		return fail("years since last promotion %d exceeds tenure %d months", e.YearsSinceLastPromotion, e.TenureMonths)
	case e.YearsWithCurrentManager*12 > e.TenureMonths:
		return fail("years with current manager %d exceeds tenure %d months", e.YearsWithCurrentManager, e.TenureMonths)
	case e.MonthsSinceLastSalaryChange > e.TenureMonths:
		return fail("months since last salary change %d exceeds tenure %d", e.MonthsSinceLastSalaryChange, e.TenureMonths)
	case e.NumberOfPromotions < 0 || e.NumberOfPromotions > e.JobLevel-1:
		return fail("promotions %d outside [0, %d]", e.NumberOfPromotions, e.JobLevel-1)
	case e.NumberOfPromotions == 0 && e.YearsSinceLastPromotion != e.TenureYears():
		return fail("no promotions but %d years since last promotion, tenure %d years", e.YearsSinceLastPromotion, e.TenureYears())
	case e.JobLevel >= seniorLevel && e.TenureMonths < shortTenure && e.NumberOfPromotions > maxEarlyPromos:
		return fail("level %d with %d months tenure has %d promotions", e.JobLevel, e.TenureMonths, e.NumberOfPromotions)
	case e.JobLevel >= educatedLevel && e.Education == lowestEducation:
		return fail("level %d with %s education", e.JobLevel, e.Education)
	}

	if e.Departed() {
		switch {
		case e.TerminationDate == nil:
			return fail("former employee without termination date")
		case e.Departure == nil:
			return fail("former employee without departure details")
		case !e.TerminationDate.After(e.HireDate):
			return fail("termination %s not after hire %s", models.FormatDate(e.TerminationDate), e.HireDate.Format(models.DateLayout))
		}
	} else if e.TerminationDate != nil || e.Departure != nil {
		return fail("current employee with departure fields")
	}
	return nil
}

// Verify checks every record; any violation is a defect and aborts the run.
func Verify(records []models.Employee) error {
	for _, e := range records {
		if err := Check(e); err != nil {
			return err
		}
	}
	return nil
}
