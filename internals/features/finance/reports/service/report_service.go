// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"errors"
	"sort"
	"time"

	enrollmentModel "srcs_backend/internals/features/enrollment/enrollments/model"
	paymentModel "srcs_backend/internals/features/finance/payments/model"
	helper "srcs_backend/internals/helpers"
)

var ErrBadDateRange = errors.New("date range must be YYYY-MM-DD with date_from not after date_to")

// =========================================================
// DAY-BOUNDED RANGE
// An inclusive calendar-day range [from 00:00:00, to 23:59:59]
// in local time, held as [start, endExclusive) for comparison.
// =========================================================

type DayRange struct {
	Start        time.Time
	EndExclusive time.Time
}

func ParseDayRange(from, to string, loc *time.Location) (DayRange, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation("2006-01-02", from, loc)
	if err != nil {
		return DayRange{}, ErrBadDateRange
	}
	end, err := time.ParseInLocation("2006-01-02", to, loc)
	if err != nil {
		return DayRange{}, ErrBadDateRange
	}
	if end.Before(start) {
		return DayRange{}, ErrBadDateRange
	}
	return DayRange{Start: start, EndExclusive: end.AddDate(0, 0, 1)}, nil
}

// Contains reports whether t falls inside the inclusive day range.
// A transaction stamped exactly 23:59:59 on the end day is included.
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.EndExclusive)
}

// =========================================================
// COLLECTION REPORT
// =========================================================

type CollectionRow struct {
	OrNumber       string    `json:"or_number"`
	StudentName    string    `json:"student_name"`
	GradeLevel     string    `json:"grade_level"`
	Mode           string    `json:"mode"`
	ProcessedBy    string    `json:"processed_by"`
	PaidAt         time.Time `json:"paid_at"`
	AmountCentavos int64     `json:"amount_centavos"`
	AmountDisplay  string    `json:"amount_display"`
}

type CollectionReport struct {
	DateFrom           string          `json:"date_from"`
	DateTo             string          `json:"date_to"`
	Rows               []CollectionRow `json:"rows"`
	GrandTotalCentavos int64           `json:"grand_total_centavos"`
	GrandTotalDisplay  string          `json:"grand_total_display"`
}

// BuildCollectionReport filters to non-void rows inside the range and
// appends the grand total. Pure projection; input order is preserved
// only after the paid-at sort applied to this report copy.
func BuildCollectionReport(dateFrom, dateTo string, r DayRange, rows []CollectionRow) CollectionReport {
	kept := make([]CollectionRow, 0, len(rows))
	var total int64
	for _, row := range rows {
		if !r.Contains(row.PaidAt) {
			continue
		}
		row.AmountDisplay = helper.FormatPeso(row.AmountCentavos)
		kept = append(kept, row)
		total += row.AmountCentavos
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].PaidAt.Before(kept[j].PaidAt)
	})
	return CollectionReport{
		DateFrom:           dateFrom,
		DateTo:             dateTo,
		Rows:               kept,
		GrandTotalCentavos: total,
		GrandTotalDisplay:  helper.FormatPeso(total),
	}
}

// =========================================================
// RECEIPT
// Plain data for the external document renderer; no layout here.
// =========================================================

type ReceiptLine struct {
	LineItem       string `json:"line_item"`
	AmountCentavos int64  `json:"amount_centavos"`
	AmountDisplay  string `json:"amount_display"`
}

type Receipt struct {
	OrNumber      string        `json:"or_number"`
	Date          time.Time     `json:"date"`
	StudentName   string        `json:"student_name"`
	GradeLevel    string        `json:"grade_level"`
	SchoolYear    string        `json:"school_year"`
	Lines         []ReceiptLine `json:"lines"`
	TotalCentavos int64         `json:"total_centavos"`
	TotalDisplay  string        `json:"total_display"`
	Mode          string        `json:"mode"`
	ProcessedBy   string        `json:"processed_by"`
	IsVoid        bool          `json:"is_void"`
}

// BuildReceipt projects one payment record plus the student identity
// into receipt data. Lines are sorted by name for a stable printout.
func BuildReceipt(p paymentModel.PaymentModel, enr enrollmentModel.EnrollmentModel) Receipt {
	allocation := p.Allocation()
	lines := make([]ReceiptLine, 0, len(allocation))
	for item, amount := range allocation {
		lines = append(lines, ReceiptLine{
			LineItem:       item,
			AmountCentavos: amount,
			AmountDisplay:  helper.FormatPeso(amount),
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].LineItem < lines[j].LineItem })

	return Receipt{
		OrNumber:      p.PaymentOrNumber,
		Date:          p.PaymentPaidAt,
		StudentName:   enr.FullName(),
		GradeLevel:    enr.EnrollmentGradeLevel,
		SchoolYear:    enr.EnrollmentSchoolYear,
		Lines:         lines,
		TotalCentavos: p.PaymentAmountCentavos,
		TotalDisplay:  helper.FormatPeso(p.PaymentAmountCentavos),
		Mode:          string(p.PaymentMode),
		ProcessedBy:   p.PaymentProcessedBy,
		IsVoid:        p.PaymentIsVoid,
	}
}
