package repository

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrsynth/pkg/models"
)

func sampleRecords() []models.Employee {
	term := models.Date(2024, time.March, 15)
	return []models.Employee{
		{
			ID:            "EMP00001",
			Gender:        "Female",
			Education:     models.EducationBachelor,
			MaritalStatus: "Married",
			Department:    models.DeptSales,
			Region:        "Java",
			JobRole:       "Sales Executive",
			JobLevel:      2,
			BranchType:    "Headquarters",
			IsRemote:      models.RemoteHybrid,
			Age:           31,
			HireDate:      models.Date(2020, time.January, 2),
			TenureMonths:  64,
			Status:        models.StatusCurrent,
			MonthlyIncome: 9.5,
		},
		{
			ID:              "EMP00002",
			Department:      models.DeptIT,
			JobRole:         "IT Manager",
			JobLevel:        4,
			HireDate:        models.Date(2021, time.June, 1),
			TenureMonths:    33,
			Status:          models.StatusFormer,
			TerminationDate: &term,
			HighPotential:   true,
			MonthlyIncome:   25.123456,
			Departure: &models.Departure{
				Category:   models.TurnoverVoluntary,
				Reason:     "Relocation",
				Functional: false,
			},
		},
	}
}

func TestRowFollowsColumnOrder(t *testing.T) {
	recs := sampleRecords()

	current := Row(recs[0])
	require.Len(t, current, len(Columns))
	col := func(row []string, name string) string {
		for i, c := range Columns {
			if c == name {
				return row[i]
			}
		}
		t.Fatalf("unknown column %s", name)
		return ""
	}

	assert.Equal(t, "EMP00001", col(current, "EmployeeID"))
	assert.Equal(t, "2020-01-02", col(current, "HireDate"))
	assert.Equal(t, "Current", col(current, "EmploymentStatus"))
	assert.Equal(t, "No", col(current, "AttritionFlag"))
	assert.Equal(t, "", col(current, "TerminationDate"))
	assert.Equal(t, "", col(current, "TurnoverCategory"))
	assert.Equal(t, "", col(current, "FunctionalTurnover"))
	assert.Equal(t, "9.50", col(current, "MonthlyIncome"))

	former := Row(recs[1])
	assert.Equal(t, "Yes", col(former, "AttritionFlag"))
	assert.Equal(t, "2024-03-15", col(former, "TerminationDate"))
	assert.Equal(t, "Voluntary", col(former, "TurnoverCategory"))
	assert.Equal(t, "Relocation", col(former, "DepartureReason"))
	assert.Equal(t, "No", col(former, "FunctionalTurnover"))
	assert.Equal(t, "Yes", col(former, "HighPotentialFlag"))
	assert.Equal(t, "25.12", col(former, "MonthlyIncome"))
}

func TestCSVDatasetStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data", "raw")
	store := NewCSVDatasetStore(dir, "hr_data.csv")

	t.Run("Save writes header and rows", func(t *testing.T) {
		err := store.Save(ctx, sampleRecords())
		require.NoError(t, err)

		f, err := os.Open(store.Location())
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, Columns, rows[0])
		assert.Equal(t, "EMP00002", rows[2][0])
	})

	t.Run("Save leaves no temp files", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), ".hrsynth-"), e.Name())
		}
	})

	t.Run("Save honors cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, store.Save(cctx, sampleRecords()), context.Canceled)
	})
}

func TestFileReportStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := NewFileReportStore(dir)

	path, err := store.SaveReport(context.Background(), "dataset_statistics.md", []byte("# Summary\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dataset_statistics.md"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Summary\n", string(got))
}
