// Package attributes draws the static identity and demographic fields of an
// employee.
package attributes

import (
	"fmt"

	"hrsynth/internal/catalog"
	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

// Age bounds.
const (
	minAge = 20
	maxAge = 60
)

// EmployeeID formats the identifier for the n-th employee, starting at 1.
func EmployeeID(n int) string {
	return fmt.Sprintf("EMP%05d", n)
}

func pick(src *sampling.Source, d catalog.Distribution) (string, error) {
	v, err := sampling.Pick(src, d.Values, d.Weights)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.Name, err)
	}
	return v, nil
}

// Sample fills every static attribute of e.
func Sample(e models.Employee, src *sampling.Source) (models.Employee, error) {
	var err error
	if e.Gender, err = pick(src, catalog.Genders); err != nil {
		return e, err
	}
	if e.Education, err = pick(src, catalog.Educations); err != nil {
		return e, err
	}
	if e.MaritalStatus, err = pick(src, catalog.MaritalStatuses); err != nil {
		return e, err
	}

	depts := make([]models.Department, len(catalog.Departments))
	shares := make([]float64, len(catalog.Departments))
	for i, p := range catalog.Departments {
		depts[i] = p.Department
		shares[i] = p.Share
	}
	if e.Department, err = sampling.Pick(src, depts, shares); err != nil {
		return e, fmt.Errorf("department: %w", err)
	}
	if e.Region, err = pick(src, catalog.Regions); err != nil {
		return e, err
	}

	profile, _ := catalog.Profile(e.Department)
	if e.JobRole, err = sampling.Uniformly(src, profile.Roles); err != nil {
		return e, fmt.Errorf("job role: %w", err)
	}
	level, ok := catalog.JobLevels[e.JobRole]
	if !ok || !catalog.HasRole(e.Department, e.JobRole) {
		return e, fmt.Errorf("attributes: role %q does not belong to %s", e.JobRole, e.Department)
	}
	e.JobLevel = level

	if e.Region == catalog.HQRegion && src.Bernoulli(catalog.HQShare) {
		e.BranchType = "HQ"
	} else if e.BranchType, err = pick(src, catalog.BranchTypes); err != nil {
		return e, err
	}

	remote := catalog.RemoteAtBranch
	if e.BranchType == "HQ" {
		remote = catalog.RemoteAtHQ
	}
	if e.IsRemote, err = pick(src, remote); err != nil {
		return e, err
	}

	switch e.IsRemote {
	case models.RemoteYes:
		e.CommuteDistance = 0
	case models.RemoteHybrid:
		e.CommuteDistance = src.IntRange(1, 29)
	default:
		e.CommuteDistance = src.IntRange(1, 49)
	}

	e.Age = sampling.Clamp(int(src.Normal(25+5*float64(e.JobLevel), 3)), minAge, maxAge)
	return e, nil
}
