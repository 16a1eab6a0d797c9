package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrsynth/pkg/models"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestValidateCatchesOrphanRole(t *testing.T) {
	JobLevels["Chief Dreamer"] = 6
	defer delete(JobLevels, "Chief Dreamer")

	assert.ErrorIs(t, Validate(), ErrInconsistentCatalog)
}

func TestValidateCatchesNonNumericRating(t *testing.T) {
	orig := PerformanceRatings.Values[0]
	PerformanceRatings.Values[0] = "one"
	defer func() { PerformanceRatings.Values[0] = orig }()

	err := Validate()
	assert.ErrorIs(t, err, ErrInconsistentCatalog)
	assert.Contains(t, err.Error(), `"one"`)
}

func TestValidateCatchesRatingOutOfRange(t *testing.T) {
	orig := PerformanceRatings.Values[4]
	PerformanceRatings.Values[4] = "6"
	defer func() { PerformanceRatings.Values[4] = orig }()

	assert.ErrorIs(t, Validate(), ErrInconsistentCatalog)
}

func TestRatingParsesEveryValue(t *testing.T) {
	for i, v := range PerformanceRatings.Values {
		assert.Equal(t, i+1, Rating(v))
	}
}

func TestIsLeadership(t *testing.T) {
	cases := map[string]bool{
		"Sales Manager":       true,
		"IT Director":         true,
		"VP Sales":            true,
		"CFO":                 true,
		"CTO":                 true,
		"Account Executive":   false,
		"Risk Analyst":        false,
		"Recovery Specialist": false,
	}
	for role, want := range cases {
		assert.Equal(t, want, IsLeadership(role), role)
	}
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole(models.DeptIT, "CTO"))
	assert.False(t, HasRole(models.DeptHR, "CTO"))
	assert.False(t, HasRole(models.Department("Legal"), "CTO"))
}

func TestVoluntaryWeightsAreFreshCopies(t *testing.T) {
	w := VoluntaryWeights(6)
	w[0] = 99
	assert.Equal(t, 0.4, VoluntaryWeights(6)[0])
}

func TestVoluntaryWeightsByTenureBand(t *testing.T) {
	assert.Equal(t, 0.4, VoluntaryWeights(24)[0])
	assert.Equal(t, 0.4, VoluntaryWeights(25)[2])
	assert.Equal(t, 0.4, VoluntaryWeights(61)[1])
}
