package outcome

import (
	"fmt"
	"math"

	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

const (
	maxHike     = 25.0
	maxOvertime = 60
)

// IncomeFactors are the multiplicative adjustments applied to a base salary.
type IncomeFactors struct {
	Department  float64
	Performance float64
	Tenure      float64
	Promotion   float64
}

// Product composes the factors.
func (f IncomeFactors) Product() float64 {
	return f.Department * f.Performance * f.Tenure * f.Promotion
}

// FactorsFor computes the income factors for an employee.
func FactorsFor(e models.Employee) IncomeFactors {
	// tenure adds up to 30% at ten years
	f := IncomeFactors{
		Department:  1,
		Performance: 1 + float64(e.PerformanceRating-3)*0.05,
		Tenure:      1 + math.Min(0.3, float64(e.TenureMonths)/120),
		Promotion:   1 + float64(e.NumberOfPromotions)*0.05,
	}
	if e.Department == models.DeptIT || e.Department == models.DeptFinance {
		f.Department = 1.1
	}
	return f
}

func overtimeMean(d models.Department) float64 {
	switch d {
	case models.DeptSales, models.DeptCollections, models.DeptOperations:
		return 10
	}
	return 5
}

// Compensation assigns monthly income, last salary hike and overtime.
func Compensation(e models.Employee, src *sampling.Source) (models.Employee, error) {
	band, ok := catalog.SalaryBands[e.JobLevel]
	if !ok {
		return e, fmt.Errorf("compensation: no salary band for level %d (%s)", e.JobLevel, e.ID)
	}
	e.MonthlyIncome = src.Uniform(band.Min, band.Max) * FactorsFor(e).Product()

	hike := src.Normal(5+3*float64(e.PerformanceRating-3), 3)
	if e.YearsSinceLastPromotion == 0 {
		hike += 5
	}
	e.PercentSalaryHikeLastYear = sampling.ClampFloat(hike, 0, maxHike)

	e.OvertimeHours = sampling.Clamp(int(src.Exponential(overtimeMean(e.Department))), 0, maxOvertime)
	return e, nil
}
