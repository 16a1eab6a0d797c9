// Package lifecycle walks each employee through simulated months from hire to
// the reference date and decides whether and when they depart.
package lifecycle

import (
	"fmt"
	"time"

	"hrsynth/internal/hazard"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// recentHireShare is the chance a hire date is redrawn from the last decade.
const recentHireShare = 0.7

// Window bounds the simulated calendar.
type Window struct {
	EarliestHire time.Time
	Reference    time.Time
}

// Outcome is the result of one employee's survival scan.
type Outcome struct {
	Status          models.EmploymentStatus
	TenureMonths    int
	TerminationDate *time.Time
	// DepartureMonth is the zero-based month the departure fired in, or -1.
	DepartureMonth int
}

// HazardFunc returns the departure probability for a month of tenure.
type HazardFunc func(month int) float64

// SampleHireDate draws a hire date in [EarliestHire, Reference], skewed toward
// the last ten years. Recent draws that reach back past EarliestHire are
// pinned to it.
func SampleHireDate(src *sampling.Source, w Window) time.Time {
	span := models.DaysBetween(w.EarliestHire, w.Reference)
	hire := models.AddDays(w.EarliestHire, src.IntRange(0, span))
	if src.Bernoulli(recentHireShare) {
		years := src.IntRange(0, 10)
		hire = models.AddDays(w.Reference, -(365*years + src.IntRange(0, 365)))
	}
	if hire.Before(w.EarliestHire) {
		hire = w.EarliestHire
	}
	return hire
}

// Simulate runs one Bernoulli trial per whole month of tenure up to the
// reference date and stops at the first departure. A departure in month m is
// dated at the end of that month, hire + (m+1)*30 days, so it always falls
// strictly after the hire date and never after the reference date.
func Simulate(hire, reference time.Time, h HazardFunc, src *sampling.Source) Outcome {
	months := models.MonthsBetween(hire, reference)
	for m := 0; m < months; m++ {
		if !src.Bernoulli(h(m)) {
			continue
		}
		term := models.AddDays(hire, (m+1)*models.DaysPerMonth)
		return Outcome{
			Status:          models.StatusFormer,
			TenureMonths:    models.MonthsBetween(hire, term),
			TerminationDate: &term,
			DepartureMonth:  m,
		}
	}
	return Outcome{
		Status:         models.StatusCurrent,
		TenureMonths:   months,
		DepartureMonth: -1,
	}
}

// Stage assigns hire date, status, tenure and termination date.
func Stage(w Window) func(models.Employee, *sampling.Source) (models.Employee, error) {
	return func(e models.Employee, src *sampling.Source) (models.Employee, error) {
		if e.Department == "" {
			return e, fmt.Errorf("lifecycle: employee %s has no department", e.ID)
		}
		e.HireDate = SampleHireDate(src, w)
		out := Simulate(e.HireDate, w.Reference, func(m int) float64 {
			return hazard.ForEmployee(e, m)
		}, src)
		e.Status = out.Status
		e.TenureMonths = out.TenureMonths
		e.TerminationDate = out.TerminationDate
		return e, nil
	}
}
