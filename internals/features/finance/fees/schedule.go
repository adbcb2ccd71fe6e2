// file: internals/features/finance/fees/schedule.go
package fees

import (
	"strconv"
	"strings"
)

// =========================================================
// CATEGORY: grade level bucket for the fee schedule
// =========================================================

type Category string

const (
	CategoryJHS Category = "JHS" // Grades 7-10
	CategorySHS Category = "SHS" // Grades 11-12
)

// LineItemTuition is the only line item the subsidy may reduce.
const LineItemTuition = "Tuition Fee"

// =========================================================
// FEE BREAKDOWN
// All amounts are integer centavos. Display conversion to
// peso happens at the presentation boundary only.
// =========================================================

type FeeBreakdown struct {
	Category        Category         `json:"category"`
	TuitionCentavos int64            `json:"tuition_centavos"`
	Standard        map[string]int64 `json:"standard"`
	NonStandard     map[string]int64 `json:"non_standard"`
	SchoolYearLabel string           `json:"school_year_label,omitempty"`
}

// Total returns the total assessment: tuition + all standard
// and non-standard line items.
func (b FeeBreakdown) Total() int64 {
	total := b.TuitionCentavos
	for _, v := range b.Standard {
		total += v
	}
	for _, v := range b.NonStandard {
		total += v
	}
	return total
}

// LineItems flattens the breakdown into lineItem -> original amount,
// tuition included under LineItemTuition.
func (b FeeBreakdown) LineItems() map[string]int64 {
	items := make(map[string]int64, len(b.Standard)+len(b.NonStandard)+1)
	items[LineItemTuition] = b.TuitionCentavos
	for k, v := range b.Standard {
		items[k] = v
	}
	for k, v := range b.NonStandard {
		items[k] = v
	}
	return items
}

// =========================================================
// SCHEDULE TABLES (per school year; configuration data)
// =========================================================

var jhsSchedule = FeeBreakdown{
	Category:        CategoryJHS,
	TuitionCentavos: 1_185_000, // ₱11,850.00
	Standard: map[string]int64{
		"Books and Modules": 250_000,
		"Miscellaneous Fee": 150_000,
		"ID and Insurance":  38_000,
		"PTA Fee":           30_000,
	},
	NonStandard: map[string]int64{
		"Registration": 22_000,
	},
}

var shsSchedule = FeeBreakdown{
	Category:        CategorySHS,
	TuitionCentavos: 1_450_000, // ₱14,500.00
	Standard: map[string]int64{
		"Books and Modules": 320_000,
		"Miscellaneous Fee": 180_000,
		"ID and Insurance":  38_000,
		"PTA Fee":           30_000,
	},
	NonStandard: map[string]int64{
		"Registration": 22_000,
	},
}

// =========================================================
// RESOLVER
// =========================================================

// ResolveCategory maps a grade level string ("7", "Grade 7", "grade 11")
// to a schedule category. Levels outside 7-12 carry no fee schedule.
func ResolveCategory(gradeLevel string) (Category, bool) {
	s := strings.TrimSpace(gradeLevel)
	s = strings.TrimPrefix(strings.ToLower(s), "grade")
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}
	switch {
	case n >= 7 && n <= 10:
		return CategoryJHS, true
	case n == 11 || n == 12:
		return CategorySHS, true
	default:
		return "", false
	}
}

// ResolveFees returns a copy of the fee schedule applicable to the grade
// level, or nil when the level carries no schedule (e.g. Kindergarten).
// Pure and deterministic; absence of a schedule is not an error.
func ResolveFees(gradeLevel string) *FeeBreakdown {
	cat, ok := ResolveCategory(gradeLevel)
	if !ok {
		return nil
	}
	var src FeeBreakdown
	switch cat {
	case CategoryJHS:
		src = jhsSchedule
	case CategorySHS:
		src = shsSchedule
	default:
		return nil
	}
	out := FeeBreakdown{
		Category:        src.Category,
		TuitionCentavos: src.TuitionCentavos,
		Standard:        make(map[string]int64, len(src.Standard)),
		NonStandard:     make(map[string]int64, len(src.NonStandard)),
	}
	for k, v := range src.Standard {
		out.Standard[k] = v
	}
	for k, v := range src.NonStandard {
		out.NonStandard[k] = v
	}
	return &out
}
