// Package models defines the domain models for the synthetic HR dataset
package models

import (
	"time"
)

// DateLayout is the format used for every date column in the dataset.
const DateLayout = "2006-01-02"

// Department identifies an organizational unit.
type Department string

const (
	DeptSales           Department = "Sales"
	DeptCollections     Department = "Collections"
	DeptCreditAnalysis  Department = "Credit Analysis"
	DeptOperations      Department = "Operations"
	DeptFinance         Department = "Finance"
	DeptIT              Department = "IT"
	DeptCustomerService Department = "Customer Service"
	DeptHR              Department = "HR"
)

// EmploymentStatus represents whether the employee is still with the organization
type EmploymentStatus string

const (
	StatusCurrent EmploymentStatus = "Current"
	StatusFormer  EmploymentStatus = "Former"
)

// TurnoverCategory distinguishes who initiated a departure
type TurnoverCategory string

const (
	TurnoverVoluntary   TurnoverCategory = "Voluntary"
	TurnoverInvoluntary TurnoverCategory = "Involuntary"
)

// Education levels, lowest first.
const (
	EducationHighSchool = "High School"
	EducationDiploma    = "Diploma"
	EducationBachelor   = "Bachelor's"
	EducationMaster     = "Master's"
)

// Remote work modes.
const (
	RemoteYes    = "Yes"
	RemoteNo     = "No"
	RemoteHybrid = "Hybrid"
)

// Departure describes why and how a former employee left.
// It is only set when the employee status is Former.
type Departure struct {
	Category   TurnoverCategory `json:"turnover_category"`
	Reason     string           `json:"departure_reason"`
	Functional bool             `json:"functional_turnover"`
}

// Employee is one row of the generated dataset.
//
// Records are passed between pipeline stages by value. Pointer fields
// (TerminationDate, Departure) are replaced, never mutated in place, so a
// stage never changes the record it received.
type Employee struct {
	// Static identity and demographics
	ID              string     `json:"employee_id"`
	Gender          string     `json:"gender"`
	Education       string     `json:"education"`
	MaritalStatus   string     `json:"marital_status"`
	Department      Department `json:"department"`
	Region          string     `json:"region"`
	JobRole         string     `json:"job_role"`
	JobLevel        int        `json:"job_level"`
	BranchType      string     `json:"branch_type"`
	IsRemote        string     `json:"is_remote"`
	CommuteDistance int        `json:"commute_distance"`
	Age             int        `json:"age"`

	// Lifecycle
	HireDate        time.Time        `json:"hire_date"`
	TenureMonths    int              `json:"tenure"`
	Status          EmploymentStatus `json:"employment_status"`
	TerminationDate *time.Time       `json:"termination_date,omitempty"`

	// Performance and engagement
	PerformanceRating       int  `json:"performance_rating"`
	EngagementScore         int  `json:"engagement_score"`
	WorkLifeBalanceRating   int  `json:"work_life_balance_rating"`
	JobSatisfaction         int  `json:"job_satisfaction"`
	RelationshipWithManager int  `json:"relationship_with_manager"`
	TrainingHoursLastYear   int  `json:"training_hours_last_year"`
	HighPotential           bool `json:"high_potential_flag"`

	// Career progression
	NumberOfPromotions          int `json:"number_of_promotions"`
	YearsSinceLastPromotion     int `json:"years_since_last_promotion"`
	YearsInCurrentRole          int `json:"years_in_current_role"`
	YearsWithCurrentManager     int `json:"years_with_current_manager"`
	MonthsSinceLastSalaryChange int `json:"months_since_last_salary_change"`

	// Compensation
	MonthlyIncome             float64 `json:"monthly_income"`
	PercentSalaryHikeLastYear float64 `json:"percent_salary_hike_last_year"`
	OvertimeHours             int     `json:"overtime_hours"`

	Departure *Departure `json:"departure,omitempty"`
}

// Departed reports whether the employee has left the organization.
func (e Employee) Departed() bool {
	return e.Status == StatusFormer
}

// Attrition returns the Yes/No attrition flag.
func (e Employee) Attrition() string {
	return YesNo(e.Departed())
}

// TenureYears returns completed years of tenure.
func (e Employee) TenureYears() int {
	return e.TenureMonths / 12
}

// YesNo renders a boolean flag the way the dataset does.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
