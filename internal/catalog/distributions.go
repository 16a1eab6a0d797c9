package catalog

import (
	"fmt"
	"math"
	"strconv"

	"hrsynth/pkg/models"
)

// Distribution is a fixed categorical distribution.
type Distribution struct {
	Name    string
	Values  []string
	Weights []float64
}

func (d Distribution) validate() error {
	if len(d.Values) != len(d.Weights) {
		return fmt.Errorf("%w: %s has %d values and %d weights", ErrInconsistentCatalog, d.Name, len(d.Values), len(d.Weights))
	}
	total := 0.0
	for _, w := range d.Weights {
		total += w
	}
	if math.Abs(total-1) > 1e-9 {
		return fmt.Errorf("%w: %s weights sum to %v", ErrInconsistentCatalog, d.Name, total)
	}
	return nil
}

var (
	Genders = Distribution{
		Name:    "gender",
		Values:  []string{"Male", "Female"},
		Weights: []float64{0.55, 0.45},
	}
	Educations = Distribution{
		Name:    "education",
		Values:  []string{models.EducationHighSchool, models.EducationDiploma, models.EducationBachelor, models.EducationMaster},
		Weights: []float64{0.25, 0.15, 0.55, 0.05},
	}
	MaritalStatuses = Distribution{
		Name:    "marital status",
		Values:  []string{"Single", "Married", "Divorced"},
		Weights: []float64{0.35, 0.6, 0.05},
	}
	Regions = Distribution{
		Name:    "region",
		Values:  []string{"Java", "Sumatra", "Kalimantan", "Sulawesi", "Bali & NT"},
		Weights: []float64{0.6, 0.2, 0.1, 0.05, 0.05},
	}
	BranchTypes = Distribution{
		Name:    "branch type",
		Values:  []string{"Large Branch", "Medium Branch", "Small Branch"},
		Weights: []float64{0.2, 0.3, 0.5},
	}
	RemoteAtHQ = Distribution{
		Name:    "remote (HQ)",
		Values:  []string{models.RemoteYes, models.RemoteNo, models.RemoteHybrid},
		Weights: []float64{0.05, 0.6, 0.35},
	}
	RemoteAtBranch = Distribution{
		Name:    "remote (branch)",
		Values:  []string{models.RemoteYes, models.RemoteNo, models.RemoteHybrid},
		Weights: []float64{0.03, 0.8, 0.17},
	}
	PerformanceRatings = Distribution{
		Name:    "performance rating",
		Values:  []string{"1", "2", "3", "4", "5"},
		Weights: []float64{0.05, 0.1, 0.3, 0.4, 0.15},
	}
)

// HQRegion is the only region with a headquarters branch.
const HQRegion = "Java"

// HQShare is the chance a HQRegion employee sits at HQ.
const HQShare = 0.15

// Rating converts a PerformanceRatings value back to an int. Validate rejects
// any value that does not parse.
func Rating(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

// Departure reasons.
const (
	ReasonBetterOpportunity = "Better Opportunity"
	ReasonWorkLifeBalance   = "Work-Life Balance"
	ReasonCareerGrowth      = "Career Growth"
	ReasonRelocation        = "Relocation"
	ReasonEducation         = "Education"
	ReasonPersonal          = "Personal Reasons"
	ReasonRetirement        = "Retirement"

	ReasonPerformanceIssue = "Performance Issue"
	ReasonReorganization   = "Reorganization"
	ReasonContractEnd      = "Contract End"
	ReasonPolicyViolation  = "Policy Violation"
	ReasonMisconduct       = "Misconduct"
)

// VoluntaryReasons in weight order.
var VoluntaryReasons = []string{
	ReasonBetterOpportunity,
	ReasonWorkLifeBalance,
	ReasonCareerGrowth,
	ReasonRelocation,
	ReasonEducation,
	ReasonPersonal,
	ReasonRetirement,
}

// InvoluntaryReasons in weight order.
var InvoluntaryReasons = []string{
	ReasonPerformanceIssue,
	ReasonReorganization,
	ReasonContractEnd,
	ReasonPolicyViolation,
	ReasonMisconduct,
}

// VoluntaryWeights returns the voluntary reason weights for a tenure band.
// The returned slice is a fresh copy the caller may modify.
func VoluntaryWeights(tenureMonths int) []float64 {
	years := float64(tenureMonths) / 12
	switch {
	case years <= 2:
		return []float64{0.4, 0.2, 0.1, 0.1, 0.1, 0.1, 0}
	case years <= 5:
		return []float64{0.3, 0.1, 0.4, 0.1, 0.1, 0, 0}
	default:
		return []float64{0.2, 0.4, 0.1, 0.1, 0, 0.1, 0.1}
	}
}

// InvoluntaryWeights returns the involuntary reason weights for a rating.
func InvoluntaryWeights(rating int) []float64 {
	if rating <= 2 {
		return []float64{0.6, 0.1, 0.1, 0.1, 0.1}
	}
	return []float64{0.2, 0.3, 0.2, 0.15, 0.15}
}

// IsVoluntaryReason reports whether a reason belongs to the voluntary set.
func IsVoluntaryReason(r string) bool {
	for _, v := range VoluntaryReasons {
		if v == r {
			return true
		}
	}
	return false
}

// IsInvoluntaryReason reports whether a reason belongs to the involuntary set.
func IsInvoluntaryReason(r string) bool {
	for _, v := range InvoluntaryReasons {
		if v == r {
			return true
		}
	}
	return false
}
