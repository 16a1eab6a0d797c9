// Package catalog holds the fixed tables the generator samples from: department
// attrition rates, job roles and levels, salary bands, categorical
// distributions and departure reasons.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hrsynth/pkg/models"
)

// ErrInconsistentCatalog is returned by Validate when the tables disagree.
var ErrInconsistentCatalog = errors.New("inconsistent catalog")

// DepartmentProfile describes one department.
type DepartmentProfile struct {
	Department    models.Department
	AttritionRate float64 // annual
	Share         float64 // share of headcount
	Roles         []string
	HighTurnover  bool
}

// Departments lists every department in a stable order.
var Departments = []DepartmentProfile{
	{
		Department:    models.DeptSales,
		AttritionRate: 0.225,
		Share:         0.25,
		Roles:         []string{"Account Executive", "Sales Manager", "Branch Sales Lead", "Regional Sales Director", "VP Sales"},
		HighTurnover:  true,
	},
	{
		Department:    models.DeptCollections,
		AttritionRate: 0.20,
		Share:         0.15,
		Roles:         []string{"Collection Officer", "Collection Supervisor", "Collection Manager", "Recovery Specialist"},
		HighTurnover:  true,
	},
	{
		Department:    models.DeptCreditAnalysis,
		AttritionRate: 0.17,
		Share:         0.15,
		Roles:         []string{"Credit Analyst", "Senior Credit Analyst", "Credit Manager", "Risk Analyst", "Credit Director"},
	},
	{
		Department:    models.DeptOperations,
		AttritionRate: 0.12,
		Share:         0.15,
		Roles:         []string{"Operations Staff", "Operations Supervisor", "Branch Operations Manager", "Regional Operations Director"},
	},
	{
		Department:    models.DeptFinance,
		AttritionRate: 0.10,
		Share:         0.10,
		Roles:         []string{"Finance Staff", "Financial Analyst", "Accounting Manager", "Finance Manager", "CFO"},
	},
	{
		Department:    models.DeptIT,
		AttritionRate: 0.15,
		Share:         0.10,
		Roles:         []string{"IT Support", "Software Developer", "System Analyst", "IT Project Manager", "IT Director", "CTO"},
	},
	{
		Department:    models.DeptCustomerService,
		AttritionRate: 0.15,
		Share:         0.05,
		Roles:         []string{"Customer Service Rep", "Customer Service Supervisor", "Customer Experience Manager"},
	},
	{
		Department:    models.DeptHR,
		AttritionRate: 0.10,
		Share:         0.05,
		Roles:         []string{"HR Staff", "HR Specialist", "Recruitment Officer", "Training Specialist", "HR Manager", "HR Director"},
	},
}

// JobLevels maps each role to its level, 1 (entry) through 6 (executive).
var JobLevels = map[string]int{
	"Account Executive":    1,
	"Credit Analyst":       1,
	"Collection Officer":   1,
	"Operations Staff":     1,
	"Finance Staff":        1,
	"IT Support":           1,
	"Software Developer":   1,
	"Customer Service Rep": 1,
	"HR Staff":             1,
	"HR Specialist":        1,
	"Recruitment Officer":  1,

	"Senior Credit Analyst": 2,
	"Recovery Specialist":   2,
	"Financial Analyst":     2,
	"System Analyst":        2,
	"Training Specialist":   2,

	"Sales Manager":               3,
	"Collection Supervisor":       3,
	"Operations Supervisor":       3,
	"Customer Service Supervisor": 3,

	"Branch Sales Lead":           4,
	"Credit Manager":              4,
	"Collection Manager":          4,
	"Branch Operations Manager":   4,
	"Accounting Manager":          4,
	"Finance Manager":             4,
	"IT Project Manager":          4,
	"Customer Experience Manager": 4,
	"HR Manager":                  4,

	"Regional Sales Director":      5,
	"Credit Director":              5,
	"Regional Operations Director": 5,
	"IT Director":                  5,
	"HR Director":                  5,
	"Risk Analyst":                 5,

	"VP Sales": 6,
	"CFO":      6,
	"CTO":      6,
}

// MaxJobLevel is the highest job level.
const MaxJobLevel = 6

// SalaryBand is a monthly income range in IDR millions.
type SalaryBand struct {
	Min, Max float64
}

// SalaryBands by job level.
var SalaryBands = map[int]SalaryBand{
	1: {3, 7},
	2: {6, 12},
	3: {10, 20},
	4: {18, 35},
	5: {30, 60},
	6: {50, 100},
}

// leadershipMarkers identify management and leadership roles.
var leadershipMarkers = []string{"Manager", "Director", "VP", "CFO", "CTO"}

// IsLeadership reports whether a role is a management or leadership role.
func IsLeadership(role string) bool {
	for _, m := range leadershipMarkers {
		if strings.Contains(role, m) {
			return true
		}
	}
	return false
}

// Profile returns the profile for a department.
func Profile(d models.Department) (DepartmentProfile, bool) {
	for _, p := range Departments {
		if p.Department == d {
			return p, true
		}
	}
	return DepartmentProfile{}, false
}

// AttritionRate returns the configured annual attrition rate, or 0 for an
// unknown department.
func AttritionRate(d models.Department) float64 {
	p, _ := Profile(d)
	return p.AttritionRate
}

// HasRole reports whether a role belongs to a department.
func HasRole(d models.Department, role string) bool {
	p, ok := Profile(d)
	if !ok {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Validate checks the tables against each other. Any error here is a
// programming defect in the tables, not a runtime condition.
func Validate() error {
	seen := map[string]models.Department{}
	share := 0.0
	for _, p := range Departments {
		if p.AttritionRate < 0 || p.AttritionRate > 1 {
			return fmt.Errorf("%w: %s attrition rate %v outside [0,1]", ErrInconsistentCatalog, p.Department, p.AttritionRate)
		}
		share += p.Share
		if len(p.Roles) == 0 {
			return fmt.Errorf("%w: %s has no roles", ErrInconsistentCatalog, p.Department)
		}
		for _, r := range p.Roles {
			if other, dup := seen[r]; dup {
				return fmt.Errorf("%w: role %q in both %s and %s", ErrInconsistentCatalog, r, other, p.Department)
			}
			seen[r] = p.Department
			lvl, ok := JobLevels[r]
			if !ok {
				return fmt.Errorf("%w: role %q has no job level", ErrInconsistentCatalog, r)
			}
			if _, ok := SalaryBands[lvl]; !ok {
				return fmt.Errorf("%w: level %d has no salary band", ErrInconsistentCatalog, lvl)
			}
		}
	}
	if math.Abs(share-1) > 1e-9 {
		return fmt.Errorf("%w: department shares sum to %v", ErrInconsistentCatalog, share)
	}
	for r := range JobLevels {
		if _, ok := seen[r]; !ok {
			return fmt.Errorf("%w: role %q is not assigned to a department", ErrInconsistentCatalog, r)
		}
	}
	for _, d := range []Distribution{Genders, Educations, MaritalStatuses, Regions, BranchTypes, RemoteAtHQ, RemoteAtBranch, PerformanceRatings} {
		if err := d.validate(); err != nil {
			return err
		}
	}
	for _, v := range PerformanceRatings.Values {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			return fmt.Errorf("%w: performance rating %q is not an integer in 1-5", ErrInconsistentCatalog, v)
		}
	}
	return nil
}
