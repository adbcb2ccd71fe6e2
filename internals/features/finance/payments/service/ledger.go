// file: internals/features/finance/payments/service/ledger.go
package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"srcs_backend/internals/features/finance/fees"
	"srcs_backend/internals/features/finance/payments/model"
)

// =========================================================
// ERRORS: money-affecting failures are never swallowed;
// controllers map these onto the response envelope.
// =========================================================

var (
	ErrNothingToAllocate = errors.New("payment allocation is empty or sums to zero")
	ErrPaymentVoided     = errors.New("payment record is void and immutable")
	ErrPaymentNotFound   = errors.New("payment record not found")
	ErrSoaNotFound       = errors.New("statement of accounts not found")
	ErrDuplicateOrNumber = errors.New("official receipt number already in use")
	ErrNotEnrolled       = errors.New("enrollment is not in Enrolled status")
	ErrSubsidyOutOfRange = errors.New("subsidy must be between zero and the tuition amount")
)

// OverAllocationError reports one line item allocated beyond its
// remaining balance.
type OverAllocationError struct {
	LineItem          string
	RequestedCentavos int64
	RemainingCentavos int64
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("allocation for %q exceeds remaining balance: requested %d, remaining %d centavos",
		e.LineItem, e.RequestedCentavos, e.RemainingCentavos)
}

// UnknownLineItemError reports an allocation entry that does not match
// any line item in the SOA's fee breakdown snapshot.
type UnknownLineItemError struct {
	LineItem string
}

func (e *UnknownLineItemError) Error() string {
	return fmt.Sprintf("unknown fee line item %q", e.LineItem)
}

// =========================================================
// ACTIVE-RECORD GUARDS
// Pure lookups shared by the mutating paths: a void record is
// terminal, and an OR number is reserved only while a non-void
// record carries it.
// =========================================================

// findActive locates a payment by id for mutation. Void records are
// immutable, so addressing one fails the same way for edit and void.
func findActive(payments []model.PaymentModel, id uuid.UUID) (*model.PaymentModel, error) {
	for i := range payments {
		if payments[i].PaymentID != id {
			continue
		}
		if payments[i].PaymentIsVoid {
			return nil, ErrPaymentVoided
		}
		return &payments[i], nil
	}
	return nil, ErrPaymentNotFound
}

// orNumberActive reports whether orNumber is carried by a non-void
// record other than exclude. Voiding a record releases its number.
func orNumberActive(payments []model.PaymentModel, orNumber string, exclude *uuid.UUID) bool {
	for i := range payments {
		p := &payments[i]
		if p.PaymentIsVoid || p.PaymentOrNumber != orNumber {
			continue
		}
		if exclude != nil && p.PaymentID == *exclude {
			continue
		}
		return true
	}
	return false
}

// =========================================================
// LEDGER: in-memory view of one SOA's financial state.
// All derivations run off this snapshot; the persisted balance
// is overwritten with Balance() inside every mutating tx so the
// conservation invariant cannot drift.
// =========================================================

type Ledger struct {
	Breakdown       fees.FeeBreakdown
	SubsidyCentavos int64
	Payments        []model.PaymentModel // full history, voids included, ledger order
}

func (l *Ledger) TotalAssessment() int64 {
	return l.Breakdown.Total()
}

// TotalPaid sums non-void payment amounts.
func (l *Ledger) TotalPaid() int64 {
	var total int64
	for i := range l.Payments {
		if !l.Payments[i].PaymentIsVoid {
			total += l.Payments[i].PaymentAmountCentavos
		}
	}
	return total
}

// Balance = assessment - subsidy - sum(non-void payment amounts).
func (l *Ledger) Balance() int64 {
	return l.TotalAssessment() - l.SubsidyCentavos - l.TotalPaid()
}

// RemainingByLine computes each line item's outstanding balance.
// The subsidy reduces the Tuition line first (floored at zero) before
// any cash allocation counts against it. Payments listed in exclude
// are skipped: used when re-validating an edit against the ledger
// minus the record being edited.
func (l *Ledger) RemainingByLine(exclude ...uuid.UUID) map[string]int64 {
	skip := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	remaining := l.Breakdown.LineItems()
	tuition := remaining[fees.LineItemTuition] - l.SubsidyCentavos
	if tuition < 0 {
		tuition = 0
	}
	remaining[fees.LineItemTuition] = tuition

	for i := range l.Payments {
		p := &l.Payments[i]
		if p.PaymentIsVoid || skip[p.PaymentID] {
			continue
		}
		for item, amount := range p.Allocation() {
			remaining[item] -= amount
		}
	}
	return remaining
}

// =========================================================
// ALLOCATOR: pure validation/normalization step (no mutation)
// =========================================================

// ValidateAllocation checks a cashier-entered allocation map against
// per-line remaining balances and normalizes it:
//   - entries <= 0 are dropped, not stored as zero-value noise
//   - every kept entry must satisfy 0 < amount <= remaining
//   - the normalized total must be > 0
//
// Returns the normalized allocation and its total.
func ValidateAllocation(remaining map[string]int64, requested map[string]int64) (map[string]int64, int64, error) {
	normalized := make(map[string]int64, len(requested))
	var total int64

	for item, amount := range requested {
		if amount <= 0 {
			continue
		}
		rem, ok := remaining[item]
		if !ok {
			return nil, 0, &UnknownLineItemError{LineItem: item}
		}
		if amount > rem {
			return nil, 0, &OverAllocationError{
				LineItem:          item,
				RequestedCentavos: amount,
				RemainingCentavos: rem,
			}
		}
		normalized[item] = amount
		total += amount
	}

	if total <= 0 {
		return nil, 0, ErrNothingToAllocate
	}
	return normalized, total, nil
}

// =========================================================
// OR NUMBER
// =========================================================

// GenerateOrNumber builds OR-YYMMDD-NNNN with a 4-digit pseudo-random
// suffix. The suffix is not collision-proof; the append path re-checks
// active OR numbers and retries, and operator-supplied numbers are
// checked the same way.
func GenerateOrNumber(now time.Time) string {
	return fmt.Sprintf("OR-%s-%04d", now.Format("060102"), rand.Intn(10_000))
}
