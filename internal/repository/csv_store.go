package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"hrsynth/pkg/models"
)

// Columns is the header row of the dataset, in output order.
var Columns = []string{
	"EmployeeID", "Gender", "Education", "MaritalStatus", "Department", "Region",
	"JobRole", "JobLevel", "BranchType", "IsRemote", "CommuteDistance", "Age",
	"HireDate", "Tenure", "EmploymentStatus", "AttritionFlag", "TerminationDate",
	"PerformanceRating", "EngagementScore", "WorkLifeBalanceRating", "JobSatisfaction",
	"RelationshipWithManager", "TrainingHoursLastYear", "HighPotentialFlag",
	"NumberOfPromotions", "YearsSinceLastPromotion", "YearsInCurrentRole",
	"YearsWithCurrentManager", "MonthsSinceLastSalaryChange",
	"MonthlyIncome", "PercentSalaryHikeLastYear", "OvertimeHours",
	"TurnoverCategory", "DepartureReason", "FunctionalTurnover",
}

// Row renders one employee in column order.
func Row(e models.Employee) []string {
	itoa := strconv.Itoa
	money := func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

	var category, reason, functional string
	if e.Departure != nil {
		category = string(e.Departure.Category)
		reason = e.Departure.Reason
		functional = models.YesNo(e.Departure.Functional)
	}

	return []string{
		e.ID, e.Gender, e.Education, e.MaritalStatus, string(e.Department), e.Region,
		e.JobRole, itoa(e.JobLevel), e.BranchType, e.IsRemote, itoa(e.CommuteDistance), itoa(e.Age),
		e.HireDate.Format(models.DateLayout), itoa(e.TenureMonths), string(e.Status), e.Attrition(), models.FormatDate(e.TerminationDate),
		itoa(e.PerformanceRating), itoa(e.EngagementScore), itoa(e.WorkLifeBalanceRating), itoa(e.JobSatisfaction),
		itoa(e.RelationshipWithManager), itoa(e.TrainingHoursLastYear), models.YesNo(e.HighPotential),
		itoa(e.NumberOfPromotions), itoa(e.YearsSinceLastPromotion), itoa(e.YearsInCurrentRole),
		itoa(e.YearsWithCurrentManager), itoa(e.MonthsSinceLastSalaryChange),
		money(e.MonthlyIncome), money(e.PercentSalaryHikeLastYear), itoa(e.OvertimeHours),
		category, reason, functional,
	}
}

// WriteCSV writes the header and every record to w.
func WriteCSV(w io.Writer, records []models.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range records {
		if err := cw.Write(Row(e)); err != nil {
			return fmt.Errorf("write %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVDatasetStore writes the table to a single CSV file.
type CSVDatasetStore struct {
	path string
}

// NewCSVDatasetStore creates a new CSVDatasetStore.
func NewCSVDatasetStore(dir, file string) *CSVDatasetStore {
	return &CSVDatasetStore{path: filepath.Join(dir, file)}
}

// Location returns the output file path.
func (s *CSVDatasetStore) Location() string {
	return s.path
}

// Save writes to a temporary file in the target directory and renames it into
// place, so a failed run never leaves a partial table behind.
func (s *CSVDatasetStore) Save(ctx context.Context, records []models.Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".hrsynth-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to move dataset into place: %w", err)
	}
	return nil
}
