package domain

import (
	"fmt"
	"time"
)

// NationalRegion is the GEO value of the national aggregate rows.
const NationalRegion = "Canada"

// EmployeeBand is one of the four business-size buckets.
type EmployeeBand int

const (
	Employees1To4 EmployeeBand = iota
	Employees5To19
	Employees20To99
	Employees100Plus
)

var employeeLabels = [...]string{
	"1 to 4 employees",
	"5 to 19 employees",
	"20 to 99 employees",
	"100 or more employees",
}

// EmployeeBands lists every band in canonical order.
var EmployeeBands = []EmployeeBand{Employees1To4, Employees5To19, Employees20To99, Employees100Plus}

// Label returns the label used in the statistics extract.
func (b EmployeeBand) Label() string {
	if b < 0 || int(b) >= len(employeeLabels) {
		return fmt.Sprintf("employee band %d", int(b))
	}
	return employeeLabels[b]
}

func (b EmployeeBand) String() string { return b.Label() }

// EmployeeBandAt resolves an index (0..3) into a band.
func EmployeeBandAt(i int) (EmployeeBand, error) {
	if i < 0 || i >= len(employeeLabels) {
		return 0, fmt.Errorf("employee band index %d out of range [0,%d)", i, len(employeeLabels))
	}
	return EmployeeBand(i), nil
}

// HorizonBand is one of the five time-to-insolvency buckets.
type HorizonBand int

const (
	HorizonUnder1Month HorizonBand = iota
	Horizon1To3Months
	Horizon3To6Months
	Horizon6To12Months
	Horizon12MonthsPlus
)

var horizonLabels = [...]string{
	"less than 1 month",
	"1 month to less than 3 months",
	"3 months to less than 6 months",
	"6 months to less than 12 months",
	"12 months or more",
}

// HorizonBands lists every band in canonical order.
var HorizonBands = []HorizonBand{HorizonUnder1Month, Horizon1To3Months, Horizon3To6Months, Horizon6To12Months, Horizon12MonthsPlus}

// Label returns the label used in the statistics extract.
func (b HorizonBand) Label() string {
	if b < 0 || int(b) >= len(horizonLabels) {
		return fmt.Sprintf("horizon band %d", int(b))
	}
	return horizonLabels[b]
}

func (b HorizonBand) String() string { return b.Label() }

// HorizonBandAt resolves an index (0..4) into a band.
func HorizonBandAt(i int) (HorizonBand, error) {
	if i < 0 || i >= len(horizonLabels) {
		return 0, fmt.Errorf("horizon band index %d out of range [0,%d)", i, len(horizonLabels))
	}
	return HorizonBand(i), nil
}

// BankruptcyRecord is one retained row of a statistics extract.
type BankruptcyRecord struct {
	Region        string
	EmployeeLabel string
	HorizonLabel  string
	Percentage    float64
	Snapshot      time.Time
}

// BandPair selects one chart: a horizon band and an employee band.
type BandPair struct {
	Horizon  HorizonBand
	Employee EmployeeBand
}

// AllBandPairs enumerates every (horizon, employee) combination.
func AllBandPairs() []BandPair {
	pairs := make([]BandPair, 0, len(HorizonBands)*len(EmployeeBands))
	for _, h := range HorizonBands {
		for _, e := range EmployeeBands {
			pairs = append(pairs, BandPair{Horizon: h, Employee: e})
		}
	}
	return pairs
}

// SeriesPoint is one quarter of a QuarterlySeries.
type SeriesPoint struct {
	Snapshot             time.Time
	Positive             int
	Total                int
	PositiveRatio        float64
	BankruptcyPercentage float64
	HasBankruptcyData    bool
}

// PositivePercent returns the positive-article ratio on the 0..100 scale
// used by the bankruptcy percentages.
func (p SeriesPoint) PositivePercent() float64 {
	return p.PositiveRatio * 100
}

// QuarterlySeries is the pipeline output consumed by the renderer.
type QuarterlySeries struct {
	Pair          BandPair
	EmployeeLabel string
	HorizonLabel  string
	Points        []SeriesPoint
}
