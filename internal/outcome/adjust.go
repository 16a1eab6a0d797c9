package outcome

import (
	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// AdjustAttritionPatterns nudges the scores of a departed employee toward
// their departure reason. It applies to every departed record.
func AdjustAttritionPatterns(e models.Employee, src *sampling.Source) (models.Employee, error) {
	if !e.Departed() || e.Departure == nil {
		return e, nil
	}

	switch e.Departure.Reason {
	case catalog.ReasonBetterOpportunity:
		// strong performers leave for better offers
		if src.Bernoulli(0.7) {
			e.PerformanceRating = min(5, e.PerformanceRating+1)
		}
		e.EngagementScore = max(10, e.EngagementScore-20)

	case catalog.ReasonWorkLifeBalance:
		e.WorkLifeBalanceRating = max(1, e.WorkLifeBalanceRating-2)
		e.OvertimeHours = min(maxOvertime, e.OvertimeHours+15)

	case catalog.ReasonCareerGrowth:
		e.YearsSinceLastPromotion = min(10, e.YearsSinceLastPromotion+2)
		e.JobSatisfaction = max(1, e.JobSatisfaction-1)

	case catalog.ReasonRelocation:
		e.CommuteDistance = min(100, e.CommuteDistance+20)

	case catalog.ReasonPerformanceIssue:
		e.PerformanceRating = max(1, e.PerformanceRating-2)
		e.EngagementScore = max(10, e.EngagementScore-30)

	case catalog.ReasonPolicyViolation, catalog.ReasonMisconduct:
		if src.Bernoulli(0.5) {
			e.PerformanceRating = max(1, e.PerformanceRating-1)
		}
	}
	return e, nil
}
