// Package hazard maps tenure and department to a monthly departure
// probability. Every function here is deterministic.
package hazard

import (
	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// Phase is a named stage of the employee lifecycle.
type Phase int

const (
	Onboarding Phase = iota
	Integration
	FirstAssessment
	MidCareer
	Established
)

// Inclusive upper bounds of each phase, in months of tenure.
const (
	OnboardingEnd  = 3
	IntegrationEnd = 12
	AssessmentEnd  = 18
	MidCareerEnd   = 60
)

// Mid-career peak window for Credit Analysis and IT.
const (
	peakStart = 24
	peakEnd   = 36
)

func (p Phase) String() string {
	switch p {
	case Onboarding:
		return "onboarding"
	case Integration:
		return "integration"
	case FirstAssessment:
		return "first-assessment"
	case MidCareer:
		return "mid-career"
	case Established:
		return "established"
	}
	return "unknown"
}

// PhaseOf returns the phase a tenure falls in. A tenure on a boundary belongs
// to the lower phase.
func PhaseOf(tenureMonths int) Phase {
	switch {
	case tenureMonths <= OnboardingEnd:
		return Onboarding
	case tenureMonths <= IntegrationEnd:
		return Integration
	case tenureMonths <= AssessmentEnd:
		return FirstAssessment
	case tenureMonths <= MidCareerEnd:
		return MidCareer
	default:
		return Established
	}
}

// Multiplier returns the tenure-phase factor applied to the department base
// rate. leadership selects the career-ceiling factor in the established phase.
func Multiplier(tenureMonths int, dept models.Department, leadership bool) float64 {
	t := float64(tenureMonths)
	switch PhaseOf(tenureMonths) {
	case Onboarding:
		if p, ok := catalog.Profile(dept); ok && p.HighTurnover {
			return 2.5
		}
		return 1.8
	case Integration:
		decline := 1 - (t-OnboardingEnd)/(IntegrationEnd-OnboardingEnd)*0.5
		return max(1, decline*1.8)
	case FirstAssessment:
		return 1 + (t-IntegrationEnd)/(AssessmentEnd-IntegrationEnd)*0.8
	case MidCareer:
		switch dept {
		case models.DeptSales:
			return 1.2
		case models.DeptCreditAnalysis, models.DeptIT:
			if tenureMonths >= peakStart && tenureMonths <= peakEnd {
				return 1.5
			}
			return 1.2
		case models.DeptCollections:
			// burnout relief
			return 1 - (t-AssessmentEnd)/(MidCareerEnd-AssessmentEnd)*0.3
		}
		return 1
	}

	switch {
	case leadership:
		return 1.3
	case dept == models.DeptOperations:
		return 0.7
	}
	return 0.9
}

// Evaluate returns the monthly departure probability for an employee at the
// given tenure, bounded to [0, 1].
func Evaluate(tenureMonths int, dept models.Department, leadership bool) float64 {
	base := catalog.AttritionRate(dept) / 12
	return sampling.ClampFloat(base*Multiplier(tenureMonths, dept, leadership), 0, 1)
}

// Monthly is the hazard for a non-leadership employee.
func Monthly(tenureMonths int, dept models.Department) float64 {
	return Evaluate(tenureMonths, dept, false)
}

// ForEmployee evaluates the hazard at a tenure using the employee's
// department and role.
func ForEmployee(e models.Employee, tenureMonths int) float64 {
	return Evaluate(tenureMonths, e.Department, catalog.IsLeadership(e.JobRole))
}
