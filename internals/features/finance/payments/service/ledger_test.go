// file: internals/features/finance/payments/service/ledger_test.go
package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"srcs_backend/internals/features/finance/fees"
	"srcs_backend/internals/features/finance/payments/model"
)

func jhsLedger(t *testing.T, subsidy int64) *Ledger {
	t.Helper()
	b := fees.ResolveFees("7")
	require.NotNil(t, b)
	return &Ledger{Breakdown: *b, SubsidyCentavos: subsidy}
}

func activePayment(allocation map[string]int64) model.PaymentModel {
	var total int64
	for _, v := range allocation {
		total += v
	}
	return model.PaymentModel{
		PaymentID:             uuid.New(),
		PaymentOrNumber:       GenerateOrNumber(time.Now()),
		PaymentAmountCentavos: total,
		PaymentAllocation:     datatypes.NewJSONType(allocation),
		PaymentMode:           model.PaymentModeCash,
		PaymentPaidAt:         time.Now(),
		PaymentProcessedBy:    "cashier01",
	}
}

// appendValidated runs the allocator against the current ledger state and
// pushes the resulting record, the way AppendPayment does inside its tx.
func appendValidated(t *testing.T, l *Ledger, requested map[string]int64) model.PaymentModel {
	t.Helper()
	allocation, total, err := ValidateAllocation(l.RemainingByLine(), requested)
	require.NoError(t, err)
	p := activePayment(allocation)
	require.Equal(t, total, p.PaymentAmountCentavos)
	l.Payments = append(l.Payments, p)
	return p
}

// =========================================================
// Balance conservation & the worked JHS scenario
// =========================================================

func TestLedger_JHSScenario(t *testing.T) {
	l := jhsLedger(t, 0)

	// 11,850 + 4,680 + 220 = 16,750 pesos
	require.Equal(t, int64(1_675_000), l.TotalAssessment())
	assert.Equal(t, int64(1_675_000), l.Balance())

	// cashier tenders Tuition 5,000 + Registration 220
	p := appendValidated(t, l, map[string]int64{
		fees.LineItemTuition: 500_000,
		"Registration":       22_000,
	})
	assert.Equal(t, int64(522_000), p.PaymentAmountCentavos)
	assert.Equal(t, int64(1_153_000), l.Balance()) // ₱11,530.00

	// edit: Tuition allocation raised to 6,000 -> amount 6,220
	alloc, total, err := ValidateAllocation(l.RemainingByLine(p.PaymentID), map[string]int64{
		fees.LineItemTuition: 600_000,
		"Registration":       22_000,
	})
	require.NoError(t, err)
	l.Payments[0].PaymentAllocation = datatypes.NewJSONType(alloc)
	l.Payments[0].PaymentAmountCentavos = total
	assert.Equal(t, int64(1_053_000), l.Balance()) // ₱10,530.00

	// void: full reversal back to the opening balance
	l.Payments[0].PaymentIsVoid = true
	assert.Equal(t, int64(1_675_000), l.Balance())
}

func TestLedger_BalanceConservation(t *testing.T) {
	l := jhsLedger(t, 100_000)

	check := func() {
		var paid int64
		for i := range l.Payments {
			if !l.Payments[i].PaymentIsVoid {
				paid += l.Payments[i].PaymentAmountCentavos
			}
		}
		assert.Equal(t, l.TotalAssessment()-l.SubsidyCentavos-paid, l.Balance())
	}
	check()

	appendValidated(t, l, map[string]int64{fees.LineItemTuition: 200_000})
	check()
	appendValidated(t, l, map[string]int64{"Miscellaneous Fee": 150_000, "PTA Fee": 30_000})
	check()

	l.Payments[0].PaymentIsVoid = true
	check()

	appendValidated(t, l, map[string]int64{"Registration": 22_000})
	check()
}

// =========================================================
// Allocation sum invariant
// =========================================================

func TestValidateAllocation_SumEqualsTotal(t *testing.T) {
	l := jhsLedger(t, 0)
	allocation, total, err := ValidateAllocation(l.RemainingByLine(), map[string]int64{
		fees.LineItemTuition: 300_000,
		"ID and Insurance":   38_000,
		"PTA Fee":            0, // dropped, not stored as zero noise
	})
	require.NoError(t, err)

	var sum int64
	for _, v := range allocation {
		sum += v
	}
	assert.Equal(t, total, sum)
	assert.NotContains(t, allocation, "PTA Fee")
	assert.Len(t, allocation, 2)
}

func TestValidateAllocation_Rejections(t *testing.T) {
	l := jhsLedger(t, 0)
	remaining := l.RemainingByLine()

	_, _, err := ValidateAllocation(remaining, map[string]int64{})
	assert.ErrorIs(t, err, ErrNothingToAllocate)

	_, _, err = ValidateAllocation(remaining, map[string]int64{"PTA Fee": -500})
	assert.ErrorIs(t, err, ErrNothingToAllocate)

	_, _, err = ValidateAllocation(remaining, map[string]int64{"Laboratory Fee": 10_000})
	var unknown *UnknownLineItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Laboratory Fee", unknown.LineItem)

	_, _, err = ValidateAllocation(remaining, map[string]int64{"Registration": 22_001})
	var over *OverAllocationError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, int64(22_000), over.RemainingCentavos)
	assert.Equal(t, int64(22_001), over.RequestedCentavos)
}

func TestValidateAllocation_ExactRemainingAccepted(t *testing.T) {
	l := jhsLedger(t, 0)
	appendValidated(t, l, map[string]int64{"Registration": 10_000})

	remaining := l.RemainingByLine()
	assert.Equal(t, int64(12_000), remaining["Registration"])

	_, total, err := ValidateAllocation(remaining, map[string]int64{"Registration": 12_000})
	require.NoError(t, err)
	assert.Equal(t, int64(12_000), total)
}

// =========================================================
// Subsidy handling on the Tuition line
// =========================================================

func TestRemainingByLine_SubsidyReducesTuitionFirst(t *testing.T) {
	l := jhsLedger(t, 185_000) // ₱1,850 subsidy
	remaining := l.RemainingByLine()
	assert.Equal(t, int64(1_000_000), remaining[fees.LineItemTuition])

	// other lines untouched
	assert.Equal(t, int64(22_000), remaining["Registration"])

	// over-allocation against the reduced tuition line is rejected
	_, _, err := ValidateAllocation(remaining, map[string]int64{fees.LineItemTuition: 1_000_001})
	var over *OverAllocationError
	require.ErrorAs(t, err, &over)
}

func TestRemainingByLine_SubsidyFlooredAtZero(t *testing.T) {
	l := jhsLedger(t, 0)
	l.SubsidyCentavos = l.Breakdown.TuitionCentavos + 50_000 // larger than tuition
	remaining := l.RemainingByLine()
	assert.Equal(t, int64(0), remaining[fees.LineItemTuition])
}

// =========================================================
// Void reversibility / edit exclusion
// =========================================================

func TestLedger_VoidRestoresPriorBalance(t *testing.T) {
	l := jhsLedger(t, 0)
	appendValidated(t, l, map[string]int64{fees.LineItemTuition: 400_000})
	balanceBefore := l.Balance()

	p := appendValidated(t, l, map[string]int64{fees.LineItemTuition: 300_000})
	assert.Equal(t, balanceBefore-300_000, l.Balance())

	for i := range l.Payments {
		if l.Payments[i].PaymentID == p.PaymentID {
			l.Payments[i].PaymentIsVoid = true
		}
	}
	assert.Equal(t, balanceBefore, l.Balance())
}

func TestRemainingByLine_ExcludesEditedRecord(t *testing.T) {
	l := jhsLedger(t, 0)
	p := appendValidated(t, l, map[string]int64{"PTA Fee": 30_000})

	// the line is exhausted...
	assert.Equal(t, int64(0), l.RemainingByLine()["PTA Fee"])
	// ...but re-validating the same record against the ledger minus
	// itself sees the full line again
	assert.Equal(t, int64(30_000), l.RemainingByLine(p.PaymentID)["PTA Fee"])

	// voided records never consume balance either
	for i := range l.Payments {
		l.Payments[i].PaymentIsVoid = true
	}
	assert.Equal(t, int64(30_000), l.RemainingByLine()["PTA Fee"])
}

// =========================================================
// Void immutability & OR-number reservation
// =========================================================

func TestFindActive_VoidIsTerminal(t *testing.T) {
	l := jhsLedger(t, 0)
	p := appendValidated(t, l, map[string]int64{"Registration": 22_000})

	rec, err := findActive(l.Payments, p.PaymentID)
	require.NoError(t, err)
	require.Equal(t, p.PaymentID, rec.PaymentID)

	rec.PaymentIsVoid = true

	// an edit addressing the voided record is rejected
	_, err = findActive(l.Payments, p.PaymentID)
	assert.ErrorIs(t, err, ErrPaymentVoided)

	// so is a second void; a double reversal would corrupt the balance
	_, err = findActive(l.Payments, p.PaymentID)
	assert.ErrorIs(t, err, ErrPaymentVoided)
}

func TestFindActive_UnknownID(t *testing.T) {
	l := jhsLedger(t, 0)
	appendValidated(t, l, map[string]int64{"PTA Fee": 30_000})

	_, err := findActive(l.Payments, uuid.New())
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestOrNumberActive_DuplicateRejectedVoidReleases(t *testing.T) {
	l := jhsLedger(t, 0)
	p := appendValidated(t, l, map[string]int64{"Registration": 22_000})
	or := l.Payments[0].PaymentOrNumber

	// the number is reserved while the record is active
	assert.True(t, orNumberActive(l.Payments, or, nil))

	// the record itself is excluded when re-validating its own edit
	assert.False(t, orNumberActive(l.Payments, or, &p.PaymentID))

	// a number nobody carries is free
	assert.False(t, orNumberActive(l.Payments, "OR-000000-0000", nil))

	// voiding releases the number for reissue
	l.Payments[0].PaymentIsVoid = true
	assert.False(t, orNumberActive(l.Payments, or, nil))
}

// =========================================================
// OR numbers
// =========================================================

func TestGenerateOrNumber(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	or := GenerateOrNumber(now)
	assert.True(t, strings.HasPrefix(or, "OR-260901-"), "got %q", or)
	assert.Len(t, or, len("OR-260901-")+4)

	suffix := strings.TrimPrefix(or, "OR-260901-")
	for _, r := range suffix {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestLedgerErrors_AreDistinct(t *testing.T) {
	// controllers branch on these; they must not alias
	errs := []error{
		ErrNothingToAllocate, ErrPaymentVoided, ErrPaymentNotFound,
		ErrSoaNotFound, ErrDuplicateOrNumber, ErrNotEnrolled, ErrSubsidyOutOfRange,
	}
	for i, a := range errs {
		for j, b := range errs {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
