// file: internals/features/finance/payments/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrollmentModel "srcs_backend/internals/features/enrollment/enrollments/model"
	"srcs_backend/internals/features/finance/fees"
	"srcs_backend/internals/features/finance/payments/model"
	soaModel "srcs_backend/internals/features/finance/soa/model"
)

// LedgerService owns every mutation of an SOA's financial state.
// Each operation is one transaction: the SOA row is taken FOR UPDATE,
// the ledger is re-read, the balance re-derived, and everything commits
// or nothing does. Two cashiers hitting the same student serialize on
// the row lock instead of last-write-wins on the whole record.
type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// =========================================================
// INPUTS
// =========================================================

type AppendPaymentInput struct {
	SoaID       uuid.UUID
	Allocation  map[string]int64
	Mode        model.PaymentMode
	OrNumber    string // optional; generated when blank
	PaidAt      *time.Time
	ProcessedBy string
}

type EditPaymentInput struct {
	Allocation map[string]int64
	Mode       model.PaymentMode
	OrNumber   string
	PaidAt     *time.Time
	EditedBy   string
}

// =========================================================
// INTERNAL: locked load of one SOA + its full ledger
// =========================================================

func (s *LedgerService) lockSoa(tx *gorm.DB, soaID uuid.UUID) (*soaModel.StudentSoaModel, []model.PaymentModel, error) {
	var soa soaModel.StudentSoaModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_soa_id = ?", soaID).
		Take(&soa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSoaNotFound
		}
		return nil, nil, err
	}

	// Ledger order is creation order; never reordered in storage.
	var payments []model.PaymentModel
	if err := tx.
		Where("payment_soa_id = ?", soaID).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, nil, err
	}
	return &soa, payments, nil
}

func (s *LedgerService) ledgerFor(soa *soaModel.StudentSoaModel, payments []model.PaymentModel) *Ledger {
	return &Ledger{
		Breakdown:       soa.StudentSoaFeeBreakdown.Data(),
		SubsidyCentavos: soa.StudentSoaSubsidyCentavos,
		Payments:        payments,
	}
}

func (s *LedgerService) saveBalance(tx *gorm.DB, soa *soaModel.StudentSoaModel, ledger *Ledger) error {
	soa.StudentSoaBalanceCentavos = ledger.Balance()
	return tx.Model(&soaModel.StudentSoaModel{}).
		Where("student_soa_id = ?", soa.StudentSoaID).
		Updates(map[string]any{
			"student_soa_balance_centavos": soa.StudentSoaBalanceCentavos,
			"student_soa_updated_at":       time.Now(),
		}).Error
}

// orNumberInUse fetches every record carrying orNumber, any SOA, and
// delegates the decision to the pure guard.
func (s *LedgerService) orNumberInUse(tx *gorm.DB, orNumber string, excludeID *uuid.UUID) (bool, error) {
	var rows []model.PaymentModel
	if err := tx.
		Where("payment_or_number = ?", orNumber).
		Find(&rows).Error; err != nil {
		return false, err
	}
	return orNumberActive(rows, orNumber, excludeID), nil
}

// =========================================================
// APPEND
// =========================================================

// AppendPayment validates the allocation against remaining line-item
// balances and pushes a new active record. Cashiering only applies to
// Enrolled students.
func (s *LedgerService) AppendPayment(ctx context.Context, in AppendPaymentInput) (*model.PaymentModel, *soaModel.StudentSoaModel, error) {
	var (
		created model.PaymentModel
		outSoa  *soaModel.StudentSoaModel
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		soa, payments, err := s.lockSoa(tx, in.SoaID)
		if err != nil {
			return err
		}

		var enr enrollmentModel.EnrollmentModel
		if err := tx.
			Where("enrollment_id = ?", soa.StudentSoaEnrollmentID).
			Take(&enr).Error; err != nil {
			return err
		}
		if enr.EnrollmentStatus != enrollmentModel.EnrollmentStatusEnrolled {
			return ErrNotEnrolled
		}

		ledger := s.ledgerFor(soa, payments)
		allocation, total, err := ValidateAllocation(ledger.RemainingByLine(), in.Allocation)
		if err != nil {
			return err
		}

		orNumber := strings.TrimSpace(in.OrNumber)
		if orNumber == "" {
			// regenerate on the (unlikely) suffix collision
			for attempt := 0; attempt < 5; attempt++ {
				orNumber = GenerateOrNumber(time.Now())
				used, err := s.orNumberInUse(tx, orNumber, nil)
				if err != nil {
					return err
				}
				if !used {
					break
				}
				orNumber = ""
			}
			if orNumber == "" {
				return ErrDuplicateOrNumber
			}
		} else {
			used, err := s.orNumberInUse(tx, orNumber, nil)
			if err != nil {
				return err
			}
			if used {
				return ErrDuplicateOrNumber
			}
		}

		paidAt := time.Now()
		if in.PaidAt != nil {
			paidAt = *in.PaidAt
		}

		created = model.PaymentModel{
			PaymentID:             uuid.New(),
			PaymentSoaID:          soa.StudentSoaID,
			PaymentOrNumber:       orNumber,
			PaymentAmountCentavos: total,
			PaymentAllocation:     datatypes.NewJSONType(allocation),
			PaymentMode:           in.Mode,
			PaymentPaidAt:         paidAt,
			PaymentProcessedBy:    in.ProcessedBy,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		ledger.Payments = append(ledger.Payments, created)
		if err := s.saveBalance(tx, soa, ledger); err != nil {
			return err
		}
		outSoa = soa
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &created, outSoa, nil
}

// =========================================================
// EDIT
// =========================================================

// EditPayment replaces a non-void record's content in place. The new
// allocation is validated against remaining balances computed without
// the record being edited, then the balance is re-derived: editing an
// amount from X to Y moves the balance by exactly X - Y.
func (s *LedgerService) EditPayment(ctx context.Context, soaID, paymentID uuid.UUID, in EditPaymentInput) (*model.PaymentModel, *soaModel.StudentSoaModel, error) {
	var (
		edited model.PaymentModel
		outSoa *soaModel.StudentSoaModel
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		soa, payments, err := s.lockSoa(tx, soaID)
		if err != nil {
			return err
		}

		rec, err := findActive(payments, paymentID)
		if err != nil {
			return err
		}

		ledger := s.ledgerFor(soa, payments)
		allocation, total, err := ValidateAllocation(ledger.RemainingByLine(paymentID), in.Allocation)
		if err != nil {
			return err
		}

		orNumber := strings.TrimSpace(in.OrNumber)
		if orNumber == "" {
			orNumber = rec.PaymentOrNumber
		}
		if orNumber != rec.PaymentOrNumber {
			used, err := s.orNumberInUse(tx, orNumber, &paymentID)
			if err != nil {
				return err
			}
			if used {
				return ErrDuplicateOrNumber
			}
		}

		rec.PaymentOrNumber = orNumber
		rec.PaymentAmountCentavos = total
		rec.PaymentAllocation = datatypes.NewJSONType(allocation)
		if in.Mode != "" {
			rec.PaymentMode = in.Mode
		}
		if in.PaidAt != nil {
			rec.PaymentPaidAt = *in.PaidAt
		}
		rec.PaymentProcessedBy = in.EditedBy
		rec.PaymentUpdatedAt = time.Now()

		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", rec.PaymentID).
			Updates(map[string]any{
				"payment_or_number":       rec.PaymentOrNumber,
				"payment_amount_centavos": rec.PaymentAmountCentavos,
				"payment_allocation":      rec.PaymentAllocation,
				"payment_mode":            rec.PaymentMode,
				"payment_paid_at":         rec.PaymentPaidAt,
				"payment_processed_by":    rec.PaymentProcessedBy,
				"payment_updated_at":      rec.PaymentUpdatedAt,
			}).Error; err != nil {
			return err
		}

		if err := s.saveBalance(tx, soa, ledger); err != nil {
			return err
		}
		edited = *rec
		outSoa = soa
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &edited, outSoa, nil
}

// =========================================================
// VOID
// =========================================================

// VoidPayment soft-cancels a record: the full current amount returns to
// the balance and the record becomes immutable. Voiding a void record
// is rejected: a double reversal would corrupt the balance.
func (s *LedgerService) VoidPayment(ctx context.Context, soaID, paymentID uuid.UUID, voidedBy string) (*model.PaymentModel, *soaModel.StudentSoaModel, error) {
	var (
		voided model.PaymentModel
		outSoa *soaModel.StudentSoaModel
	)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		soa, payments, err := s.lockSoa(tx, soaID)
		if err != nil {
			return err
		}

		rec, err := findActive(payments, paymentID)
		if err != nil {
			return err
		}

		now := time.Now()
		rec.PaymentIsVoid = true
		rec.PaymentVoidedAt = &now
		rec.PaymentVoidedBy = &voidedBy

		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_id = ?", rec.PaymentID).
			Updates(map[string]any{
				"payment_is_void":    true,
				"payment_voided_at":  now,
				"payment_voided_by":  voidedBy,
				"payment_updated_at": now,
			}).Error; err != nil {
			return err
		}

		ledger := s.ledgerFor(soa, payments)
		if err := s.saveBalance(tx, soa, ledger); err != nil {
			return err
		}
		voided = *rec
		outSoa = soa
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &voided, outSoa, nil
}

// =========================================================
// SUBSIDY
// =========================================================

// ApplySubsidy sets the tuition subsidy. It must fit inside the tuition
// line and may not cut below what cash payments already allocated there.
func (s *LedgerService) ApplySubsidy(ctx context.Context, soaID uuid.UUID, amountCentavos int64, breakdown map[string]int64) (*soaModel.StudentSoaModel, error) {
	var outSoa *soaModel.StudentSoaModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		soa, payments, err := s.lockSoa(tx, soaID)
		if err != nil {
			return err
		}

		tuition := soa.StudentSoaFeeBreakdown.Data().TuitionCentavos
		if amountCentavos < 0 || amountCentavos > tuition {
			return ErrSubsidyOutOfRange
		}

		// cash already allocated to Tuition must still fit
		var allocatedToTuition int64
		for i := range payments {
			if payments[i].PaymentIsVoid {
				continue
			}
			allocatedToTuition += payments[i].Allocation()[fees.LineItemTuition]
		}
		if tuition-amountCentavos < allocatedToTuition {
			return ErrSubsidyOutOfRange
		}

		soa.StudentSoaSubsidyCentavos = amountCentavos
		soa.StudentSoaSubsidyBreakdown = datatypes.NewJSONType(breakdown)

		ledger := s.ledgerFor(soa, payments)
		if err := tx.Model(&soaModel.StudentSoaModel{}).
			Where("student_soa_id = ?", soa.StudentSoaID).
			Updates(map[string]any{
				"student_soa_subsidy_centavos":  soa.StudentSoaSubsidyCentavos,
				"student_soa_subsidy_breakdown": soa.StudentSoaSubsidyBreakdown,
				"student_soa_balance_centavos":  ledger.Balance(),
				"student_soa_updated_at":        time.Now(),
			}).Error; err != nil {
			return err
		}
		soa.StudentSoaBalanceCentavos = ledger.Balance()
		outSoa = soa
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outSoa, nil
}
