package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrsynth/internal/sampling"
	"hrsynth/pkg/models"
)

var (
	reference = models.Date(2025, time.May, 1)
	window    = Window{EarliestHire: models.Date(1995, time.January, 1), Reference: reference}
)

func TestSimulateNoMonthToEvaluate(t *testing.T) {
	hire := models.Date(2025, time.April, 20)
	calls := 0
	out := Simulate(hire, reference, func(int) float64 {
		calls++
		return 1
	}, sampling.NewSource(1, 1))

	assert.Equal(t, 0, calls)
	assert.Equal(t, models.StatusCurrent, out.Status)
	assert.Nil(t, out.TerminationDate)
	assert.Equal(t, 0, out.TenureMonths)
}

func TestSimulateStopsAtFirstHit(t *testing.T) {
	hire := models.Date(2020, time.January, 1)
	var months []int
	out := Simulate(hire, reference, func(m int) float64 {
		months = append(months, m)
		if m == 5 {
			return 1
		}
		return 0
	}, sampling.NewSource(1, 1))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, months)
	assert.Equal(t, models.StatusFormer, out.Status)
	assert.Equal(t, 5, out.DepartureMonth)
	require.NotNil(t, out.TerminationDate)
	assert.Equal(t, models.AddDays(hire, 180), *out.TerminationDate)
	assert.Equal(t, 6, out.TenureMonths)
}

func TestSimulateCertainDepartureInFirstMonth(t *testing.T) {
	hire := models.Date(2024, time.January, 1)
	out := Simulate(hire, reference, func(int) float64 { return 1 }, sampling.NewSource(1, 1))

	require.NotNil(t, out.TerminationDate)
	assert.True(t, out.TerminationDate.After(hire))
	assert.Equal(t, 1, out.TenureMonths)
}

func TestSimulateSurvivorTenure(t *testing.T) {
	hire := models.Date(2015, time.March, 10)
	out := Simulate(hire, reference, func(int) float64 { return 0 }, sampling.NewSource(1, 1))

	assert.Equal(t, models.StatusCurrent, out.Status)
	assert.Equal(t, models.MonthsBetween(hire, reference), out.TenureMonths)
	assert.Equal(t, -1, out.DepartureMonth)
}

func TestSimulateTerminationWithinWindow(t *testing.T) {
	for i := 0; i < 2000; i++ {
		src := sampling.Stream(42, 1, i)
		hire := SampleHireDate(src, window)
		out := Simulate(hire, reference, func(int) float64 { return 0.02 }, src)
		if out.Status == models.StatusFormer {
			require.NotNil(t, out.TerminationDate)
			assert.True(t, out.TerminationDate.After(hire))
			assert.False(t, out.TerminationDate.After(reference))
		} else {
			assert.Nil(t, out.TerminationDate)
		}
	}
}

func TestSampleHireDateNeverAfterReference(t *testing.T) {
	src := sampling.NewSource(3, 3)
	for i := 0; i < 5000; i++ {
		hire := SampleHireDate(src, window)
		assert.False(t, hire.After(reference))
	}
}

func TestSampleHireDateRespectsEarliestHire(t *testing.T) {
	// A window shorter than the ten-year recent-hire skew.
	earliest := models.Date(2020, time.January, 1)
	w := Window{EarliestHire: earliest, Reference: reference}

	src := sampling.NewSource(5, 5)
	pinned := 0
	for i := 0; i < 5000; i++ {
		hire := SampleHireDate(src, w)
		require.False(t, hire.Before(earliest), "hire %s before %s", hire.Format(models.DateLayout), earliest.Format(models.DateLayout))
		require.False(t, hire.After(reference))
		if hire.Equal(earliest) {
			pinned++
		}
	}
	assert.Positive(t, pinned)
}

func TestStage(t *testing.T) {
	run := Stage(window)
	e := models.Employee{ID: "EMP00001", Department: models.DeptSales, JobRole: "Account Executive"}

	a, err := run(e, sampling.Stream(42, 1, 0))
	require.NoError(t, err)
	b, err := run(e, sampling.Stream(42, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.False(t, a.HireDate.IsZero())
	assert.True(t, e.HireDate.IsZero(), "input record must not change")

	_, err = run(models.Employee{ID: "EMP00002"}, sampling.Stream(42, 1, 1))
	assert.Error(t, err)
}
