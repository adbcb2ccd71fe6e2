// file: internals/features/finance/soa/dto/student_soa_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "srcs_backend/internals/features/finance/payments/model"
	paymentService "srcs_backend/internals/features/finance/payments/service"
	"srcs_backend/internals/features/finance/soa/model"
	helper "srcs_backend/internals/helpers"
)

////////////////////////////////////////////////////////////////////////////////
// STATEMENT OF ACCOUNTS: DTO
////////////////////////////////////////////////////////////////////////////////

type SubsidyApplyDTO struct {
	SubsidyCentavos  int64            `json:"subsidy_centavos" validate:"min=0"`
	SubsidyBreakdown map[string]int64 `json:"subsidy_breakdown,omitempty"`
}

// Response: the cashier panel's full financial view of one student.
// payment_status and per-line remaining balances are derived, never read
// from storage.
type StudentSoaResponse struct {
	StudentSoaID           uuid.UUID `json:"student_soa_id"`
	StudentSoaEnrollmentID uuid.UUID `json:"student_soa_enrollment_id"`

	FeeBreakdown     map[string]int64 `json:"fee_breakdown"`
	RemainingByLine  map[string]int64 `json:"remaining_by_line"`
	SubsidyCentavos  int64            `json:"subsidy_centavos"`
	SubsidyBreakdown map[string]int64 `json:"subsidy_breakdown,omitempty"`

	TotalAssessmentCentavos int64  `json:"total_assessment_centavos"`
	TotalAssessmentDisplay  string `json:"total_assessment_display"`
	TotalPaidCentavos       int64  `json:"total_paid_centavos"`
	BalanceCentavos         int64  `json:"balance_centavos"`
	BalanceDisplay          string `json:"balance_display"`

	PaymentStatus string `json:"payment_status"` // Unpaid | Partial | Fully Paid

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

// ToStudentSoaResponse derives the financial view from the SOA snapshot
// plus its full ledger (voids included).
func ToStudentSoaResponse(m model.StudentSoaModel, payments []paymentModel.PaymentModel) StudentSoaResponse {
	ledger := paymentService.Ledger{
		Breakdown:       m.StudentSoaFeeBreakdown.Data(),
		SubsidyCentavos: m.StudentSoaSubsidyCentavos,
		Payments:        payments,
	}

	return StudentSoaResponse{
		StudentSoaID:           m.StudentSoaID,
		StudentSoaEnrollmentID: m.StudentSoaEnrollmentID,

		FeeBreakdown:     ledger.Breakdown.LineItems(),
		RemainingByLine:  ledger.RemainingByLine(),
		SubsidyCentavos:  m.StudentSoaSubsidyCentavos,
		SubsidyBreakdown: m.StudentSoaSubsidyBreakdown.Data(),

		TotalAssessmentCentavos: m.StudentSoaTotalAssessmentCentavos,
		TotalAssessmentDisplay:  helper.FormatPeso(m.StudentSoaTotalAssessmentCentavos),
		TotalPaidCentavos:       ledger.TotalPaid(),
		BalanceCentavos:         ledger.Balance(),
		BalanceDisplay:          helper.FormatPeso(ledger.Balance()),

		PaymentStatus: string(model.StatusForBalance(
			ledger.Balance(),
			m.StudentSoaTotalAssessmentCentavos,
			m.StudentSoaSubsidyCentavos,
		)),

		CreatedAt: m.StudentSoaCreatedAt,
		UpdatedAt: m.StudentSoaUpdatedAt,
	}
}
