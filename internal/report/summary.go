// Package report aggregates a finished dataset into summary statistics and
// renders them as Markdown, a styled console block, or YAML.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"hrsynth/internal/catalog"
	"hrsynth/pkg/models"
)

// Title heads every rendered report.
const Title = "BFI Finance HR Dataset Summary"

// TopReasons is how many departure reasons the summary lists.
const TopReasons = 5

// datasetNamespace scopes dataset IDs so they never collide with other SHA-1 UUIDs.
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("hrsynth.dataset"))

// Generation identifies the run that produced a dataset.
type Generation struct {
	Seed        int64
	Reference   time.Time
	GeneratedAt time.Time
}

// DatasetID derives a stable ID from the inputs that fully determine a dataset.
func DatasetID(seed int64, count int, reference time.Time) uuid.UUID {
	name := fmt.Sprintf("seed=%d;count=%d;reference=%s", seed, count, reference.Format(models.DateLayout))
	return uuid.NewSHA1(datasetNamespace, []byte(name))
}

// Summary holds every aggregate the report shows.
type Summary struct {
	DatasetID   string    `yaml:"dataset_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Seed        int64     `yaml:"seed"`
	Reference   string    `yaml:"reference_date"`

	Total         int     `yaml:"total_employees"`
	Current       int     `yaml:"current_employees"`
	Former        int     `yaml:"former_employees"`
	AttritionRate float64 `yaml:"attrition_rate_pct"`
	// AnnualizedRate is departures per 100 exposure-years of tenure.
	AnnualizedRate float64 `yaml:"annualized_attrition_rate_pct"`

	Departments []DepartmentStat `yaml:"departments"`
	Tenure      TenureStat       `yaml:"tenure_months"`

	Voluntary      int     `yaml:"voluntary"`
	VoluntaryPct   float64 `yaml:"voluntary_pct_of_departures"`
	Involuntary    int     `yaml:"involuntary"`
	InvoluntaryPct float64 `yaml:"involuntary_pct_of_departures"`

	Reasons []ReasonStat `yaml:"top_departure_reasons"`
}

// DepartmentStat is the attrition of one department.
type DepartmentStat struct {
	Department models.Department `yaml:"department"`
	Employees  int               `yaml:"employees"`
	Departed   int               `yaml:"departed"`
	Rate       float64           `yaml:"attrition_rate_pct"`

	ExposureYears  float64 `yaml:"exposure_years"`
	AnnualizedRate float64 `yaml:"annualized_attrition_rate_pct"`
}

// TenureStat describes the tenure distribution in months.
type TenureStat struct {
	Mean   float64 `yaml:"mean"`
	Median float64 `yaml:"median"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
}

// ReasonStat is one departure reason and its share of all departures.
type ReasonStat struct {
	Reason string  `yaml:"reason"`
	Count  int     `yaml:"count"`
	Pct    float64 `yaml:"pct_of_departures"`
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// annualized returns departures per 100 years of tenure.
func annualized(departed, exposureMonths int) float64 {
	if exposureMonths == 0 {
		return 0
	}
	return float64(departed) / (float64(exposureMonths) / 12) * 100
}

// Summarize aggregates records. It only reads its input.
func Summarize(records []models.Employee, gen Generation) Summary {
	s := Summary{
		DatasetID:   DatasetID(gen.Seed, len(records), gen.Reference).String(),
		GeneratedAt: gen.GeneratedAt,
		Seed:        gen.Seed,
		Reference:   gen.Reference.Format(models.DateLayout),
		Total:       len(records),
	}

	total := map[models.Department]int{}
	gone := map[models.Department]int{}
	exposure := map[models.Department]int{}
	totalExposure := 0
	reasons := map[string]int{}
	tenures := make([]int, 0, len(records))

	for _, e := range records {
		total[e.Department]++
		tenures = append(tenures, e.TenureMonths)
		exposure[e.Department] += e.TenureMonths
		totalExposure += e.TenureMonths
		if !e.Departed() {
			s.Current++
			continue
		}
		s.Former++
		gone[e.Department]++
		if e.Departure == nil {
			continue
		}
		switch e.Departure.Category {
		case models.TurnoverVoluntary:
			s.Voluntary++
		case models.TurnoverInvoluntary:
			s.Involuntary++
		}
		if e.Departure.Reason != "" {
			reasons[e.Departure.Reason]++
		}
	}

	s.AttritionRate = pct(s.Former, s.Total)
	s.AnnualizedRate = annualized(s.Former, totalExposure)
	s.VoluntaryPct = pct(s.Voluntary, s.Former)
	s.InvoluntaryPct = pct(s.Involuntary, s.Former)

	// Catalog order first, then anything the catalog does not know about.
	seen := map[models.Department]bool{}
	addDept := func(d models.Department) {
		if seen[d] || total[d] == 0 {
			return
		}
		seen[d] = true
		s.Departments = append(s.Departments, DepartmentStat{
			Department: d,
			Employees:  total[d],
			Departed:   gone[d],
			Rate:       pct(gone[d], total[d]),

			ExposureYears:  float64(exposure[d]) / 12,
			AnnualizedRate: annualized(gone[d], exposure[d]),
		})
	}
	for _, p := range catalog.Departments {
		addDept(p.Department)
	}
	extra := make([]models.Department, 0)
	for d := range total {
		if !seen[d] {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	for _, d := range extra {
		addDept(d)
	}

	s.Tenure = tenureStat(tenures)

	for r, n := range reasons {
		s.Reasons = append(s.Reasons, ReasonStat{Reason: r, Count: n, Pct: pct(n, s.Former)})
	}
	slices.SortFunc(s.Reasons, func(a, b ReasonStat) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
	if len(s.Reasons) > TopReasons {
		s.Reasons = s.Reasons[:TopReasons]
	}
	return s
}

func tenureStat(values []int) TenureStat {
	if len(values) == 0 {
		return TenureStat{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}
	n := len(sorted)
	median := float64(sorted[n/2])
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return TenureStat{
		Mean:   float64(sum) / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
