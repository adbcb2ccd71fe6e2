// file: internals/features/finance/reports/service/report_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	enrollmentModel "srcs_backend/internals/features/enrollment/enrollments/model"
	paymentModel "srcs_backend/internals/features/finance/payments/model"
)

func TestParseDayRange(t *testing.T) {
	r, err := ParseDayRange("2026-09-01", "2026-09-15", time.Local)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local), r.EndExclusive)

	_, err = ParseDayRange("2026-09-15", "2026-09-01", time.Local)
	assert.ErrorIs(t, err, ErrBadDateRange)
	_, err = ParseDayRange("09/01/2026", "2026-09-15", time.Local)
	assert.ErrorIs(t, err, ErrBadDateRange)
}

func TestDayRange_BoundariesInclusive(t *testing.T) {
	r, err := ParseDayRange("2026-09-01", "2026-09-15", time.Local)
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)))
	// exactly 23:59:59 on the end day is in range
	assert.True(t, r.Contains(time.Date(2026, 9, 15, 23, 59, 59, 0, time.Local)))
	assert.False(t, r.Contains(time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)))
	assert.False(t, r.Contains(time.Date(2026, 9, 16, 0, 0, 0, 0, time.Local)))
}

func TestBuildCollectionReport_GrandTotal(t *testing.T) {
	r, err := ParseDayRange("2026-09-01", "2026-09-02", time.Local)
	require.NoError(t, err)

	rows := []CollectionRow{
		{OrNumber: "OR-260901-0001", PaidAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local), AmountCentavos: 522_000},
		{OrNumber: "OR-260902-0002", PaidAt: time.Date(2026, 9, 2, 23, 59, 59, 0, time.Local), AmountCentavos: 100_000},
		// outside the range; must not count
		{OrNumber: "OR-260903-0003", PaidAt: time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local), AmountCentavos: 999_999},
	}

	report := BuildCollectionReport("2026-09-01", "2026-09-02", r, rows)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, int64(622_000), report.GrandTotalCentavos)
	assert.Equal(t, "₱6,220.00", report.GrandTotalDisplay)

	// grand total always equals the sum of listed rows
	var sum int64
	for _, row := range report.Rows {
		sum += row.AmountCentavos
	}
	assert.Equal(t, report.GrandTotalCentavos, sum)

	// rows come out ordered by paid-at
	assert.Equal(t, "OR-260901-0001", report.Rows[0].OrNumber)
	assert.Equal(t, "₱5,220.00", report.Rows[0].AmountDisplay)
}

func TestBuildCollectionReport_Empty(t *testing.T) {
	r, err := ParseDayRange("2026-01-01", "2026-01-01", time.Local)
	require.NoError(t, err)

	report := BuildCollectionReport("2026-01-01", "2026-01-01", r, nil)
	assert.Empty(t, report.Rows)
	assert.Equal(t, int64(0), report.GrandTotalCentavos)
	assert.Equal(t, "₱0.00", report.GrandTotalDisplay)
}

func TestBuildReceipt(t *testing.T) {
	middle := "Santos"
	enr := enrollmentModel.EnrollmentModel{
		EnrollmentLastName:   "Dela Cruz",
		EnrollmentFirstName:  "Juan",
		EnrollmentMiddleName: &middle,
		EnrollmentGradeLevel: "Grade 7",
		EnrollmentSchoolYear: "2026-2027",
	}
	p := paymentModel.PaymentModel{
		PaymentOrNumber:       "OR-260901-1234",
		PaymentAmountCentavos: 522_000,
		PaymentAllocation: datatypes.NewJSONType(map[string]int64{
			"Tuition Fee":  500_000,
			"Registration": 22_000,
		}),
		PaymentMode:        paymentModel.PaymentModeGCash,
		PaymentPaidAt:      time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local),
		PaymentProcessedBy: "cashier01",
	}

	receipt := BuildReceipt(p, enr)
	assert.Equal(t, "OR-260901-1234", receipt.OrNumber)
	assert.Equal(t, "Dela Cruz, Juan Santos", receipt.StudentName)
	assert.Equal(t, "₱5,220.00", receipt.TotalDisplay)
	assert.Equal(t, "GCash", receipt.Mode)
	assert.False(t, receipt.IsVoid)

	// lines sorted by name, amounts summing to the record total
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, "Registration", receipt.Lines[0].LineItem)
	assert.Equal(t, "Tuition Fee", receipt.Lines[1].LineItem)
	assert.Equal(t, receipt.TotalCentavos, receipt.Lines[0].AmountCentavos+receipt.Lines[1].AmountCentavos)
}

func TestCollectionReportXLSX(t *testing.T) {
	r, err := ParseDayRange("2026-09-01", "2026-09-01", time.Local)
	require.NoError(t, err)
	report := BuildCollectionReport("2026-09-01", "2026-09-01", r, []CollectionRow{
		{
			OrNumber:       "OR-260901-0001",
			StudentName:    "Dela Cruz, Juan",
			GradeLevel:     "Grade 7",
			Mode:           "Cash",
			ProcessedBy:    "cashier01",
			PaidAt:         time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local),
			AmountCentavos: 522_000,
		},
	})

	f, err := CollectionReportXLSX(report)
	require.NoError(t, err)
	defer f.Close()

	or, err := f.GetCellValue("Collections", "A2")
	require.NoError(t, err)
	assert.Equal(t, "OR-260901-0001", or)

	label, err := f.GetCellValue("Collections", "F3")
	require.NoError(t, err)
	assert.Equal(t, "GRAND TOTAL", label)

	total, err := f.GetCellValue("Collections", "G3")
	require.NoError(t, err)
	assert.Equal(t, "₱5,220.00", total)
}
