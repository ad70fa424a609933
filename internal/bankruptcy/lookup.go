package bankruptcy

import (
	"strings"

	"BankruptcySentiment/internal/domain"
)

// Lookup returns the percentage of the first record matching both bands, or
// 0.0 when nothing matches. Zero here means "no data" as much as a true zero;
// use Find to tell them apart.
func Lookup(records []domain.BankruptcyRecord, horizon domain.HorizonBand, employee domain.EmployeeBand) float64 {
	value, _ := Find(records, horizon, employee)
	return value
}

// Find is Lookup with an explicit found flag. Some extracts carry several
// rows per band pair; the first one wins.
func Find(records []domain.BankruptcyRecord, horizon domain.HorizonBand, employee domain.EmployeeBand) (float64, bool) {
	for _, rec := range records {
		if strings.Contains(rec.EmployeeLabel, employee.Label()) && strings.Contains(rec.HorizonLabel, horizon.Label()) {
			return rec.Percentage, true
		}
	}
	return 0, false
}
